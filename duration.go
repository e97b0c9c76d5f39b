package formatstyle

import (
	"math"
	"time"
)

// DurationUnit identifies one decomposition unit, largest to smallest.
type DurationUnit int

const (
	UnitWeeks DurationUnit = iota
	UnitDays
	UnitHours
	UnitMinutes
	UnitSeconds
	UnitMilliseconds
	UnitMicroseconds
	UnitNanoseconds
)

func (u DurationUnit) coefficient() time.Duration {
	switch u {
	case UnitWeeks:
		return 7 * 24 * time.Hour
	case UnitDays:
		return 24 * time.Hour
	case UnitHours:
		return time.Hour
	case UnitMinutes:
		return time.Minute
	case UnitSeconds:
		return time.Second
	case UnitMilliseconds:
		return time.Millisecond
	case UnitMicroseconds:
		return time.Microsecond
	default:
		return time.Nanosecond
	}
}

func (u DurationUnit) name() string {
	switch u {
	case UnitWeeks:
		return "week"
	case UnitDays:
		return "day"
	case UnitHours:
		return "hour"
	case UnitMinutes:
		return "minute"
	case UnitSeconds:
		return "second"
	case UnitMilliseconds:
		return "millisecond"
	case UnitMicroseconds:
		return "microsecond"
	default:
		return "nanosecond"
	}
}

// roundToIncrement rounds v to a multiple of increment under the rule.
// increment must be positive.
func roundToIncrement(v float64, increment float64, rule RoundingRule) float64 {
	if increment <= 0 {
		return v
	}
	quotient := v / increment
	var rounded float64
	switch rule {
	case RoundUp:
		rounded = math.Ceil(quotient)
	case RoundDown:
		rounded = math.Floor(quotient)
	case RoundTowardZero:
		rounded = math.Trunc(quotient)
	case RoundAwayFromZero:
		if quotient >= 0 {
			rounded = math.Ceil(quotient)
		} else {
			rounded = math.Floor(quotient)
		}
	case RoundToNearestOrAwayFromZero:
		rounded = math.Round(quotient)
	default: // RoundToNearestOrEven
		rounded = math.RoundToEven(quotient)
	}
	return rounded * increment
}

// decomposeDuration splits d across units (ordered largest to smallest) by
// repeated divide-and-remainder on each unit's coefficient, folding the final
// remainder into the smallest unit as a fractional addend. Rounding applies
// to the smallest unit only and happens BEFORE decomposition: the duration is
// rounded to the smallest unit's increment (10^-fractionalDigits of the unit)
// first, otherwise the remainder folding would double-count the rounded-away
// part. fractionalDigits < 0 means no rounding.
func decomposeDuration(d time.Duration, units []DurationUnit, fractionalDigits int, rule RoundingRule) []float64 {
	if len(units) == 0 {
		return nil
	}

	total := float64(d) // nanoseconds
	if fractionalDigits >= 0 {
		smallest := float64(units[len(units)-1].coefficient())
		increment := smallest * math.Pow(10, float64(-fractionalDigits))
		total = roundToIncrement(total, increment, rule)
	}

	values := make([]float64, len(units))
	remainder := total
	for i, unit := range units {
		coeff := float64(unit.coefficient())
		if i == len(units)-1 {
			values[i] = remainder / coeff
			break
		}
		whole := math.Trunc(remainder / coeff)
		values[i] = whole
		remainder -= whole * coeff
	}
	return values
}
