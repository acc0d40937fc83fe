package dateutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeSeconds(t *testing.T) {
	tests := []struct {
		sec  int64
		want string
	}{
		{0, "0秒"},
		{59, "59秒"},
		{60, "1分0秒"},
		{3599, "59分59秒"},
		{3725, "1小时2分5秒"},
		{86399, "23小时59分59秒"},
		{90061, "1天1小时1分1秒"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanizeSeconds(tt.sec))
		})
	}
}
