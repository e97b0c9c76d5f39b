package formatstyle

import (
	"fmt"
	"strings"
	"time"
)

// ISO8601FormatStyle renders fixed, locale-independent ISO 8601 text. The
// locale engine never participates; output shape is fully determined by the
// style's own flags and separators.
type ISO8601FormatStyle struct {
	Year              bool   `json:"year"`
	Month             bool   `json:"month"`
	Day               bool   `json:"day"`
	WeekOfYear        bool   `json:"week_of_year"`
	Time              bool   `json:"time"`
	TimeZone          bool   `json:"time_zone"`
	FractionalSeconds bool   `json:"fractional_seconds"`
	DateSeparator     string `json:"date_separator"`
	DateTimeSeparator string `json:"date_time_separator"`
	TimeSeparator     string `json:"time_separator"`
	TimeZoneSeparator string `json:"time_zone_separator"`
}

// ISO8601 is the standard internet timestamp shape,
// "1970-01-01T00:00:00Z".
func ISO8601() ISO8601FormatStyle {
	return ISO8601FormatStyle{
		Year: true, Month: true, Day: true,
		Time: true, TimeZone: true,
		DateSeparator:     "-",
		DateTimeSeparator: "T",
		TimeSeparator:     ":",
		TimeZoneSeparator: ":",
	}
}

func (s ISO8601FormatStyle) WithWeekOfYear() ISO8601FormatStyle {
	s.WeekOfYear = true
	return s
}

func (s ISO8601FormatStyle) WithFractionalSeconds() ISO8601FormatStyle {
	s.FractionalSeconds = true
	return s
}

func (s ISO8601FormatStyle) WithDateSeparator(sep string) ISO8601FormatStyle {
	s.DateSeparator = sep
	return s
}

func (s ISO8601FormatStyle) WithDateTimeSeparator(sep string) ISO8601FormatStyle {
	s.DateTimeSeparator = sep
	return s
}

func (s ISO8601FormatStyle) WithTimeSeparator(sep string) ISO8601FormatStyle {
	s.TimeSeparator = sep
	return s
}

// Format renders t in its own location; the zone designator reflects that
// offset, with Z for UTC. The caller converts first when UTC output is wanted.
// The day component takes one of three shapes: day-of-week inside a week
// date, day-of-month alongside a month, or ordinal day-of-year on its own.
func (s ISO8601FormatStyle) Format(t time.Time) string {
	var b strings.Builder

	if s.WeekOfYear {
		year, week := t.ISOWeek()
		if s.Year {
			fmt.Fprintf(&b, "%04d", year)
			b.WriteString(s.DateSeparator)
		}
		fmt.Fprintf(&b, "W%02d", week)
		if s.Day {
			b.WriteString(s.DateSeparator)
			fmt.Fprintf(&b, "%02d", isoWeekday(t))
		}
	} else {
		if s.Year {
			fmt.Fprintf(&b, "%04d", t.Year())
		}
		switch {
		case s.Month:
			if s.Year {
				b.WriteString(s.DateSeparator)
			}
			fmt.Fprintf(&b, "%02d", int(t.Month()))
			if s.Day {
				b.WriteString(s.DateSeparator)
				fmt.Fprintf(&b, "%02d", t.Day())
			}
		case s.Day:
			if s.Year {
				b.WriteString(s.DateSeparator)
			}
			fmt.Fprintf(&b, "%03d", t.YearDay())
		}
	}

	if s.Time {
		if b.Len() > 0 {
			b.WriteString(s.DateTimeSeparator)
		}
		fmt.Fprintf(&b, "%02d%s%02d%s%02d", t.Hour(), s.TimeSeparator, t.Minute(), s.TimeSeparator, t.Second())
		if s.FractionalSeconds {
			fmt.Fprintf(&b, ".%03d", t.Nanosecond()/1e6)
		}
	}

	if s.TimeZone {
		_, offset := t.Zone()
		if offset == 0 {
			b.WriteString("Z")
		} else {
			sign := "+"
			if offset < 0 {
				sign = "-"
				offset = -offset
			}
			fmt.Fprintf(&b, "%s%02d%s%02d", sign, offset/3600, s.TimeZoneSeparator, (offset%3600)/60)
		}
	}
	return b.String()
}

func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// Parse reads text produced by the same style configuration.
func (s ISO8601FormatStyle) Parse(text string) (time.Time, error) {
	i := 0
	year, month, day := 1970, 1, 1
	var week, weekday int
	hasWeek := false

	fail := func() (time.Time, error) {
		return time.Time{}, newParseError(text, s.Format(time.Date(2023, time.October, 21, 14, 30, 5, 0, time.UTC)))
	}

	if s.Year {
		v, ok := parseDigits(text, &i, 4)
		if !ok {
			return fail()
		}
		year = v
	}
	if s.WeekOfYear {
		consumeSymbol(text, &i, s.DateSeparator)
		if !consumeSymbol(text, &i, "W") {
			return fail()
		}
		v, ok := parseDigits(text, &i, 2)
		if !ok {
			return fail()
		}
		week, hasWeek = v, true
		if s.Day {
			consumeSymbol(text, &i, s.DateSeparator)
			if weekday, ok = parseDigits(text, &i, 2); !ok {
				return fail()
			}
		}
	} else if s.Month {
		consumeSymbol(text, &i, s.DateSeparator)
		v, ok := parseDigits(text, &i, 2)
		if !ok || v < 1 || v > 12 {
			return fail()
		}
		month = v
		if s.Day {
			consumeSymbol(text, &i, s.DateSeparator)
			if day, ok = parseDigits(text, &i, 2); !ok || day < 1 || day > 31 {
				return fail()
			}
		}
	} else if s.Day {
		consumeSymbol(text, &i, s.DateSeparator)
		v, ok := parseDigits(text, &i, 3)
		if !ok || v < 1 || v > 366 {
			return fail()
		}
		base := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, v-1)
		month, day = int(base.Month()), base.Day()
	}

	hour, minute, second, nanos := 0, 0, 0, 0
	if s.Time {
		consumeSymbol(text, &i, s.DateTimeSeparator)
		var ok bool
		if hour, ok = parseDigits(text, &i, 2); !ok || hour > 23 {
			return fail()
		}
		consumeSymbol(text, &i, s.TimeSeparator)
		if minute, ok = parseDigits(text, &i, 2); !ok || minute > 59 {
			return fail()
		}
		consumeSymbol(text, &i, s.TimeSeparator)
		if second, ok = parseDigits(text, &i, 2); !ok || second > 60 {
			return fail()
		}
		if consumeSymbol(text, &i, ".") {
			startAt := i
			v, ok := parseDigits(text, &i, 9)
			if !ok {
				return fail()
			}
			for d := i - startAt; d < 9; d++ {
				v *= 10
			}
			nanos = v
		}
	}

	loc := time.UTC
	if s.TimeZone && i < len(text) {
		switch text[i] {
		case 'Z':
			i++
		case '+', '-':
			sign := 1
			if text[i] == '-' {
				sign = -1
			}
			i++
			hours, ok := parseDigits(text, &i, 2)
			if !ok {
				return fail()
			}
			consumeSymbol(text, &i, s.TimeZoneSeparator)
			minutes, _ := parseDigits(text, &i, 2)
			offset := sign * (hours*3600 + minutes*60)
			loc = time.FixedZone(gmtOffsetLabel(offset), offset)
		}
	}

	if i != len(text) {
		return fail()
	}

	if hasWeek {
		return isoWeekDate(year, week, weekday, hour, minute, second, nanos, loc), nil
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, nanos, loc), nil
}

// isoWeekDate converts an ISO week date to a concrete time. Week 1 contains
// January 4th; weekday zero means the week's Monday.
func isoWeekDate(year, week, weekday, hour, minute, second, nanos int, loc *time.Location) time.Time {
	if weekday == 0 {
		weekday = 1
	}
	jan4 := time.Date(year, 1, 4, 0, 0, 0, 0, loc)
	monday := jan4.AddDate(0, 0, 1-isoWeekday(jan4))
	d := monday.AddDate(0, 0, (week-1)*7+weekday-1)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, second, nanos, loc)
}
