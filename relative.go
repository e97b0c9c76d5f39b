package formatstyle

import "time"

// RelativeComponent is one calendar component used for relative-date output.
type RelativeComponent int

const (
	ComponentYear RelativeComponent = iota
	ComponentMonth
	ComponentWeek
	ComponentDay
	ComponentHour
	ComponentMinute
	ComponentSecond
)

func (c RelativeComponent) name() string {
	switch c {
	case ComponentYear:
		return "year"
	case ComponentMonth:
		return "month"
	case ComponentWeek:
		return "week"
	case ComponentDay:
		return "day"
	case ComponentHour:
		return "hour"
	case ComponentMinute:
		return "minute"
	default:
		return "second"
	}
}

// roundToNearestSecond applies the nanosecond-level pre-adjustment: the
// destination date is rounded to the nearest second before the component
// search so sub-second jitter cannot flip which component is largest
// non-zero. Kept exactly as documented, including around DST transitions.
func roundToNearestSecond(t time.Time) time.Time {
	truncated := t.Truncate(time.Second)
	if t.Sub(truncated) >= 500*time.Millisecond {
		return truncated.Add(time.Second)
	}
	return truncated
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(from, to time.Time) int {
	fromDay := startOfDay(from)
	toDay := startOfDay(to)
	// Dividing the wall-clock delta by 24h miscounts across DST shifts, so
	// walk via Unix days in the destination's offset instead.
	_, fromOff := fromDay.Zone()
	_, toOff := toDay.Zone()
	fromUnix := fromDay.Unix() + int64(fromOff)
	toUnix := toDay.Unix() + int64(toOff)
	return int((toUnix - fromUnix) / 86400)
}

// halfEvenQuotient divides delta by unit, rounding the result half to even
// against the remainder: the quotient is incremented when the remainder is at
// least half the unit's range, ties resolving toward the even value.
func halfEvenQuotient(delta, unit time.Duration) int {
	if unit <= 0 {
		return 0
	}
	negative := delta < 0
	if negative {
		delta = -delta
	}
	q := int64(delta / unit)
	rem := delta % unit
	switch {
	case 2*rem > unit:
		q++
	case 2*rem == unit && q%2 != 0:
		q++
	}
	if negative {
		q = -q
	}
	return int(q)
}

// alignedComponent finds the largest calendar component with a non-zero
// difference between destination and reference. Whole-number components
// (year/month/week/day) align to calendar-interval boundaries so time of day
// cannot shrink "tomorrow" into "in 0 days"; sub-day components round half to
// even against the next smaller unit's remainder.
func alignedComponent(destination, reference time.Time) (RelativeComponent, int) {
	destination = roundToNearestSecond(destination)
	reference = roundToNearestSecond(reference)
	destination = destination.In(reference.Location())

	if years := destination.Year() - reference.Year(); years != 0 {
		return ComponentYear, years
	}

	destMonths := destination.Year()*12 + int(destination.Month()) - 1
	refMonths := reference.Year()*12 + int(reference.Month()) - 1
	if months := destMonths - refMonths; months != 0 {
		return ComponentMonth, months
	}

	days := daysBetween(reference, destination)
	if weeks := days / 7; weeks != 0 {
		return ComponentWeek, weeks
	}
	if days != 0 {
		return ComponentDay, days
	}

	delta := destination.Sub(reference)
	if hours := halfEvenQuotient(delta, time.Hour); hours != 0 {
		// A same-day delta can still round up to a full day (23:59:59 from
		// midnight); promote instead of reporting 24 hours.
		if hours >= 24 || hours <= -24 {
			return ComponentDay, hours / 24
		}
		return ComponentHour, hours
	}
	if minutes := halfEvenQuotient(delta, time.Minute); minutes != 0 {
		return ComponentMinute, minutes
	}
	return ComponentSecond, halfEvenQuotient(delta, time.Second)
}
