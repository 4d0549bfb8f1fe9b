package touch

import (
	"strconv"
	"strings"
	"time"
)

// StampFields are the calendar fields decoded from a -t stamp string.
type StampFields struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Time combines the fields in loc. Day is not checked against the month,
// so time.Date normalisation applies (Feb 31 becomes early March).
func (f StampFields) Time(loc *time.Location) time.Time {
	return time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, 0, loc)
}

// fieldWindow locates a two-digit field counted back from the end of the
// integer part of a stamp.
type fieldWindow struct {
	minLen int
	end    int
	lo     int
	hi     int
	def    int
}

var (
	minuteWindow = fieldWindow{minLen: 2, end: 0, lo: 0, hi: 59, def: 0}
	hourWindow   = fieldWindow{minLen: 8, end: 2, lo: 0, hi: 23, def: 0}
	dayWindow    = fieldWindow{minLen: 8, end: 4, lo: 1, hi: 31, def: 1}
	monthWindow  = fieldWindow{minLen: 8, end: 6, lo: 1, hi: 12, def: 1}
)

func (w fieldWindow) extract(digits string) int {
	n := len(digits)
	if n < w.minLen {
		return w.def
	}

	return parseField(digits[n-w.end-2:n-w.end], w.lo, w.hi, w.def)
}

// yearRule selects the leading year token by stamp length. Rules are
// checked in order and the first match wins.
type yearRule struct {
	match func(digitsLen, stampLen int) bool
	width int
	base  int
	// nowOnInvalid makes a non-numeric token fall back to the current year
	// instead of zero.
	nowOnInvalid bool
}

var yearRules = []yearRule{
	{
		match: func(digitsLen, stampLen int) bool {
			return digitsLen == 12 || stampLen == 13 || stampLen == 15
		},
		width: 4,
	},
	{
		match: func(digitsLen, _ int) bool {
			return digitsLen == 10
		},
		width:        2,
		base:         2000,
		nowOnInvalid: true,
	},
}

func resolveYear(stamp, digits string, now time.Time) int {
	for _, rule := range yearRules {
		if !rule.match(len(digits), len(stamp)) {
			continue
		}

		v, err := strconv.ParseUint(stamp[:rule.width], 10, 0)
		if err != nil {
			if rule.nowOnInvalid {
				return now.Year()
			}
			return 0
		}

		return rule.base + int(v)
	}

	return now.Year()
}

func parseSeconds(suffix string, ok bool) int {
	if !ok {
		return 0
	}

	switch len(suffix) {
	case 0:
		return 0
	case 1:
		suffix += "0"
	default:
		suffix = suffix[:2]
	}

	return parseField(suffix, 0, 59, 0)
}

func parseField(s string, lo, hi, def int) int {
	v, err := strconv.ParseUint(s, 10, 0)
	if err != nil || v < uint64(lo) || v > uint64(hi) {
		return def
	}

	return int(v)
}

// ParseStampFields decodes a [[CC]YY]MMDDhhmm[.ss] stamp. It never fails:
// every missing or out-of-range field falls back to its own default and
// leaves the others alone.
func ParseStampFields(stamp string, now time.Time) StampFields {
	digits, suffix, hasSeconds := strings.Cut(stamp, ".")

	return StampFields{
		Year:   resolveYear(stamp, digits, now),
		Month:  monthWindow.extract(digits),
		Day:    dayWindow.extract(digits),
		Hour:   hourWindow.extract(digits),
		Minute: minuteWindow.extract(digits),
		Second: parseSeconds(suffix, hasSeconds),
	}
}

// ParseStamp is ParseStampFields combined in now's location.
func ParseStamp(stamp string, now time.Time) time.Time {
	return ParseStampFields(stamp, now).Time(now.Location())
}
