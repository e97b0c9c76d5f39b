package formatstyle

import "sort"

// Engine field codes, following the native date-formatter field numbering.
// Several codes alias the same semantic field (the two hour-of-day and two
// hour codes all mean "hour").
const (
	engFieldEra        = 0
	engFieldYear       = 1
	engFieldMonth      = 2
	engFieldDate       = 3
	engFieldHourOfDay1 = 4
	engFieldHourOfDay0 = 5
	engFieldMinute     = 6
	engFieldSecond     = 7
	engFieldFraction   = 8
	engFieldDayOfWeek  = 9
	engFieldDayOfYear  = 10
	engFieldWeekOfYear = 11
	engFieldAMPM       = 14
	engFieldHour1      = 15
	engFieldHour0      = 16
	engFieldTimeZone   = 17
	engFieldQuarter    = 27
	engFieldRelated    = 34
)

// Engine number-formatter field codes occupy a separate range.
const (
	engFieldInteger = 100 + iota
	engFieldNumberFraction
	engFieldDecimalSeparator
	engFieldGroupingSeparator
	engFieldSign
	engFieldPercent
	engFieldCurrency
	engFieldExponent
	engFieldCompact
)

// Field is the semantic field taxonomy attributed output maps onto.
type Field int

const (
	FieldUnknown Field = iota
	FieldEra
	FieldYear
	FieldQuarter
	FieldMonth
	FieldWeek
	FieldDay
	FieldDayOfYear
	FieldWeekday
	FieldDayPeriod
	FieldHour
	FieldMinute
	FieldSecond
	FieldSecondFraction
	FieldTimeZone
	FieldInteger
	FieldFraction
	FieldDecimalSeparator
	FieldGroupingSeparator
	FieldSign
	FieldPercentSymbol
	FieldCurrencySymbol
	FieldExponent
	FieldCompactName
)

var fieldNames = map[Field]string{
	FieldEra: "era", FieldYear: "year", FieldQuarter: "quarter",
	FieldMonth: "month", FieldWeek: "week", FieldDay: "day",
	FieldDayOfYear: "dayOfYear", FieldWeekday: "weekday",
	FieldDayPeriod: "amPM", FieldHour: "hour", FieldMinute: "minute",
	FieldSecond: "second", FieldSecondFraction: "secondFraction",
	FieldTimeZone: "timeZone", FieldInteger: "integer",
	FieldFraction: "fraction", FieldDecimalSeparator: "decimalSeparator",
	FieldGroupingSeparator: "groupingSeparator", FieldSign: "sign",
	FieldPercentSymbol: "percent", FieldCurrencySymbol: "currency",
	FieldExponent: "exponent", FieldCompactName: "compactName",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// engineFieldTable merges aliasing engine codes onto one semantic field.
var engineFieldTable = map[int]Field{
	engFieldEra:               FieldEra,
	engFieldYear:              FieldYear,
	engFieldRelated:           FieldYear,
	engFieldQuarter:           FieldQuarter,
	engFieldMonth:             FieldMonth,
	engFieldWeekOfYear:        FieldWeek,
	engFieldDate:              FieldDay,
	engFieldDayOfYear:         FieldDayOfYear,
	engFieldDayOfWeek:         FieldWeekday,
	engFieldAMPM:              FieldDayPeriod,
	engFieldHourOfDay1:        FieldHour,
	engFieldHourOfDay0:        FieldHour,
	engFieldHour1:             FieldHour,
	engFieldHour0:             FieldHour,
	engFieldMinute:            FieldMinute,
	engFieldSecond:            FieldSecond,
	engFieldFraction:          FieldSecondFraction,
	engFieldTimeZone:          FieldTimeZone,
	engFieldInteger:           FieldInteger,
	engFieldNumberFraction:    FieldFraction,
	engFieldDecimalSeparator:  FieldDecimalSeparator,
	engFieldGroupingSeparator: FieldGroupingSeparator,
	engFieldSign:              FieldSign,
	engFieldPercent:           FieldPercentSymbol,
	engFieldCurrency:          FieldCurrencySymbol,
	engFieldExponent:          FieldExponent,
	engFieldCompact:           FieldCompactName,
}

// FieldRun is one attributed span over the output's UTF-16 code units.
type FieldRun struct {
	Field Field
	Begin int
	End   int
}

// AttributedString is a formatted string with ordered, non-overlapping
// semantic field runs. Runs cover a subset of the output; literal text
// between fields carries no run.
type AttributedString struct {
	Text string
	Runs []FieldRun
}

// newAttributedString translates engine field positions into semantic runs.
// Unknown engine codes are dropped silently; zero-length and out-of-order
// spans never survive.
func newAttributedString(text string, positions []FieldPosition) AttributedString {
	limit := utf16Len(text)
	runs := make([]FieldRun, 0, len(positions))
	for _, p := range positions {
		field, ok := engineFieldTable[p.Field]
		if !ok {
			continue
		}
		if p.Begin < 0 || p.End > limit || p.End <= p.Begin {
			continue
		}
		runs = append(runs, FieldRun{Field: field, Begin: p.Begin, End: p.End})
	}

	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Begin != runs[j].Begin {
			return runs[i].Begin < runs[j].Begin
		}
		return runs[i].End < runs[j].End
	})

	// Drop whatever overlaps its predecessor; attribution is strictly a
	// subset of the output range.
	kept := runs[:0]
	prevEnd := 0
	for _, run := range runs {
		if run.Begin < prevEnd {
			continue
		}
		kept = append(kept, run)
		prevEnd = run.End
	}
	return AttributedString{Text: text, Runs: kept}
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r > 0xFFFF {
			n++
		}
	}
	return n
}
