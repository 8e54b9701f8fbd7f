// Package lyrics parses LRC-style timestamped lyrics and resolves which
// line is active at a playback position.
package lyrics

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Line is one timestamped lyric line.
type Line struct {
	Timestamp time.Duration
	Text      string
}

var lrcLine = regexp.MustCompile(`^\[(\d+):(\d+)\.(\d+)\](.*)$`)

// Parse extracts the "[mm:ss.xx]text" lines from raw, in source order.
//
// Lines without a bracketed timestamp prefix are dropped. The fraction is
// read as hundredths of a second when it has two digits and tenths when it
// has one; any other length is taken as milliseconds verbatim.
// A nil result means raw has no synchronised lyrics.
func Parse(raw string) []Line {
	var lines []Line
	for _, l := range strings.Split(raw, "\n") {
		m := lrcLine.FindStringSubmatch(strings.TrimSpace(l))
		if m == nil {
			continue
		}
		minutes, err := strconv.ParseUint(m[1], 10, 32)
		if err != nil {
			continue
		}
		seconds, err := strconv.ParseUint(m[2], 10, 32)
		if err != nil {
			continue
		}
		millis, err := strconv.ParseUint(m[3], 10, 32)
		if err != nil {
			continue
		}
		switch len(m[3]) {
		case 1:
			millis *= 100
		case 2:
			millis *= 10
		}

		ts := time.Duration(minutes)*time.Minute +
			time.Duration(seconds)*time.Second +
			time.Duration(millis)*time.Millisecond
		lines = append(lines, Line{Timestamp: ts, Text: strings.TrimSpace(m[4])})
	}
	return lines
}

// ActiveLine returns the greatest index whose timestamp is <= pos.
// Before the first timestamp it returns 0. It returns -1 only for no lines.
func ActiveLine(lines []Line, pos time.Duration) int {
	if len(lines) == 0 {
		return -1
	}
	active := 0
	for i, l := range lines {
		if l.Timestamp <= pos {
			active = i
		}
	}
	return active
}

// Window returns the [start, end) range of a height-line viewport centred on
// active, shifted so it never runs past either end of total lines.
func Window(total, active, height int) (start, end int) {
	if height <= 0 || total <= 0 {
		return 0, 0
	}
	if total <= height {
		return 0, total
	}
	start = active - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}
