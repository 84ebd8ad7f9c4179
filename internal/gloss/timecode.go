package gloss

import (
	"fmt"
	"regexp"
	"strconv"
)

var timecodeSep = regexp.MustCompile(`[:.]`)

// ParseTimecode converts a clock string such as "00:12:11.454" to
// milliseconds. The last group is taken as a plain millisecond count, so
// "0:00:01.5" is 1005 ms, not 1500.
func ParseTimecode(s string) (Timecode, error) {
	groups := timecodeSep.Split(s, -1)
	if len(groups) != 4 {
		return Timecode{}, &TimecodeError{Value: s}
	}

	var n [4]int64
	for i, g := range groups {
		if g == "" || !isDigits(g) {
			return Timecode{}, &TimecodeError{Value: s}
		}
		v, err := strconv.ParseInt(g, 10, 64)
		if err != nil {
			return Timecode{}, &TimecodeError{Value: s}
		}
		n[i] = v
	}

	ms := n[3] + ((n[0]*60+n[1])*60+n[2])*1000
	return Timecode{Raw: s, Ms: ms}, nil
}

// FormatTimecode renders milliseconds as HH:MM:SS.mmm, with a leading minus
// sign for negative values.
func FormatTimecode(ms int64) string {
	sign := ""
	if ms < 0 {
		sign, ms = "-", -ms
	}
	hours := ms / 3600000
	minutes := ms / 60000 % 60
	secs := ms / 1000 % 60
	return fmt.Sprintf("%s%02d:%02d:%02d.%03d", sign, hours, minutes, secs, ms%1000)
}

// clock returns the string to print for t.
func (t Timecode) clock() string {
	if t.Raw != "" {
		return t.Raw
	}
	return FormatTimecode(t.Ms)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
