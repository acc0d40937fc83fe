package dateutil

import "fmt"

// HumanizeSeconds spells a number of seconds in days, hours, minutes and
// seconds, omitting leading units that are zero: 3725 -> "1小时2分5秒".
func HumanizeSeconds(sec int64) string {
	if sec < 60 {
		return fmt.Sprintf("%d秒", sec)
	}
	s := sec % 60
	minutes := sec / 60
	if minutes < 60 {
		return fmt.Sprintf("%d分%d秒", minutes, s)
	}
	m := minutes % 60
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d小时%d分%d秒", hours, m, s)
	}
	return fmt.Sprintf("%d天%d小时%d分%d秒", hours/24, hours%24, m, s)
}
