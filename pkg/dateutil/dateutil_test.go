package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// friday is 2025-03-07 14:05:09.045 UTC
var friday = time.Date(2025, 3, 7, 14, 5, 9, 45*int(time.Millisecond), time.UTC)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		at      time.Time
		layout  string
		english bool
		want    string
	}{
		{"full timestamp", friday, "yyyy-MM-dd HH:mm:ss", false, "2025-03-07 14:05:09"},
		{"short fields", friday, "yy/M/d", false, "25/3/7"},
		{"single year digit", friday, "y", false, "5"},
		{"year capped at four digits", friday, "yyyyy", false, "2025"},
		{"adjacent runs", friday, "yyyyMMdd", false, "20250307"},
		{"chinese literals", friday, "yyyy年MM月dd日", false, "2025年03月07日"},
		{"bracket literals", friday, "[yyyy]", false, "[2025]"},
		{"short month english", friday, "MMM", true, "Mar"},
		{"long month english", friday, "MMMM", true, "March"},
		{"month chinese", friday, "MMM", false, "三月"},
		{"short weekday english", friday, "ddd", true, "Fri"},
		{"long weekday english", friday, "dddd", true, "Friday"},
		{"weekday chinese", friday, "dddd", false, "周五"},
		{"12 hour with short meridiem", friday, "h:mm t", true, "2:05 P"},
		{"12 hour padded", friday, "hh:mm tt", true, "02:05 PM"},
		{"meridiem chinese", friday, "tt", false, "下午"},
		{"meridiem chinese single", friday, "t", false, "下"},
		{"morning english", time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC), "tt", true, "AM"},
		{"midnight is 12", time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), "hh", false, "12"},
		{"minute width capped", friday, "mmm", false, "05"},
		{"fraction", friday, "fff", false, "045"},
		{"fraction two digits", friday, "ff", false, "04"},
		{"fraction one digit keeps a zero", friday, "f", false, "0"},
		{"fraction trimmed", friday, "FFF", false, "45"},
		{"fraction trailing zeros", time.Date(2025, 1, 1, 0, 0, 0, 500*int(time.Millisecond), time.UTC), "fff", false, "5"},
		{"no fields", friday, "--:--", false, "--:--"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.at, tt.layout, tt.english))
		})
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("yyyyMMdd HH")
	assert.Equal(t, []Token{
		{Kind: Year, Width: 4, Text: "yyyy"},
		{Kind: Month, Width: 2, Text: "MM"},
		{Kind: Day, Width: 2, Text: "dd"},
		{Kind: Literal, Text: " "},
		{Kind: Hour24, Width: 2, Text: "HH"},
	}, tokens)

	assert.Empty(t, Tokenize(""))
	assert.Equal(t, []Token{{Kind: Literal, Text: "年-"}}, Tokenize("年-"))
}

func TestFormatInput(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		layout string
		want   string
	}{
		{"epoch millis", "0", "yyyy-MM-dd", "1970-01-01"},
		{"millis timestamp", "1741356309045", "yyyy-MM-dd HH:mm:ss.fff", "2025-03-07 14:05:09.045"},
		{"empty input unchanged", "", "yyyy", ""},
		{"unparsable input unchanged", "not a date", "yyyy", "not a date"},
		{"date time string", "2024-02-29 08:30:00", "yyyy/MM/dd HH:mm", "2024/02/29 08:30"},
		{"slash date", "2024/02/29", "dd", "29"},
		{"rfc3339 keeps its offset", "2024-01-02T03:04:05+08:00", "HH", "03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatInput(tt.input, tt.layout, false, time.UTC))
		})
	}
}

func TestParseTime_DefaultsToLocal(t *testing.T) {
	got, ok := ParseTime("2024-02-29", nil)
	assert.True(t, ok)
	assert.Equal(t, time.Local, got.Location())

	_, ok = ParseTime("   ", time.UTC)
	assert.False(t, ok)
}

// Digits-only input is always a millisecond timestamp, even when it looks
// like a compact date or a bare year.
func TestParseTime_DigitsAreMillis(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"20250307", time.Date(1970, 1, 1, 5, 37, 30, 307*int(time.Millisecond), time.UTC)},
		{"2025", time.Date(1970, 1, 1, 0, 0, 2, 25*int(time.Millisecond), time.UTC)},
		{"-1000", time.Date(1969, 12, 31, 23, 59, 59, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseTime(tt.input, time.UTC)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}
