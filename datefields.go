package formatstyle

// Symbol options carry the raw UTS-35 pattern characters contributed by each
// calendar field. An empty option means the field stays out of the skeleton.

type EraSymbol string

const (
	EraAbbreviated EraSymbol = "G"
	EraWide        EraSymbol = "GGGG"
	EraNarrow      EraSymbol = "GGGGG"
)

type YearSymbol string

const (
	YearDefaultDigits YearSymbol = "y"
	YearTwoDigits     YearSymbol = "yy"
	YearPadded        YearSymbol = "yyyy"
	YearRelated       YearSymbol = "r"
	YearExtended      YearSymbol = "u"
)

type QuarterSymbol string

const (
	QuarterNumeric     QuarterSymbol = "Q"
	QuarterTwoDigits   QuarterSymbol = "QQ"
	QuarterAbbreviated QuarterSymbol = "QQQ"
	QuarterWide        QuarterSymbol = "QQQQ"
	QuarterNarrow      QuarterSymbol = "QQQQQ"
)

type MonthSymbol string

const (
	MonthDefaultDigits MonthSymbol = "M"
	MonthTwoDigits     MonthSymbol = "MM"
	MonthAbbreviated   MonthSymbol = "MMM"
	MonthWide          MonthSymbol = "MMMM"
	MonthNarrow        MonthSymbol = "MMMMM"
)

type WeekSymbol string

const (
	WeekDefaultDigits WeekSymbol = "w"
	WeekTwoDigits     WeekSymbol = "ww"
	WeekOfMonth       WeekSymbol = "W"
)

type DaySymbol string

const (
	DayDefaultDigits DaySymbol = "d"
	DayTwoDigits     DaySymbol = "dd"
)

type DayOfYearSymbol string

const (
	DayOfYearDefaultDigits DayOfYearSymbol = "D"
	DayOfYearTwoDigits     DayOfYearSymbol = "DD"
	DayOfYearThreeDigits   DayOfYearSymbol = "DDD"
)

type WeekdaySymbol string

const (
	WeekdayAbbreviated WeekdaySymbol = "EEE"
	WeekdayWide        WeekdaySymbol = "EEEE"
	WeekdayNarrow      WeekdaySymbol = "EEEEE"
	WeekdayShort       WeekdaySymbol = "EEEEEE"
	WeekdayOneDigit    WeekdaySymbol = "e"
	WeekdayTwoDigits   WeekdaySymbol = "ee"
)

type DayPeriodSymbol string

const (
	DayPeriodStandard DayPeriodSymbol = "a"
	DayPeriodWide     DayPeriodSymbol = "aaaa"
	DayPeriodNarrow   DayPeriodSymbol = "aaaaa"
)

// HourSymbol is resolved against the locale's hour cycle before the skeleton
// is assembled: default-digit and two-digit variants become h/hh in 12-hour
// locales (with a day period) and H/HH in 24-hour locales. The *Clock24
// variants force a 24-hour rendition regardless of locale.
type HourSymbol string

const (
	HourDefaultDigits        HourSymbol = "j"
	HourTwoDigits            HourSymbol = "jj"
	HourDefaultDigitsClock24 HourSymbol = "H"
	HourTwoDigitsClock24     HourSymbol = "HH"
	HourDefaultDigitsClock12 HourSymbol = "h"
	HourTwoDigitsClock12     HourSymbol = "hh"
)

type MinuteSymbol string

const (
	MinuteDefaultDigits MinuteSymbol = "m"
	MinuteTwoDigits     MinuteSymbol = "mm"
)

type SecondSymbol string

const (
	SecondDefaultDigits SecondSymbol = "s"
	SecondTwoDigits     SecondSymbol = "ss"
)

type SecondFractionSymbol string

const (
	SecondFraction1 SecondFractionSymbol = "S"
	SecondFraction2 SecondFractionSymbol = "SS"
	SecondFraction3 SecondFractionSymbol = "SSS"
)

type TimeZoneSymbol string

const (
	TimeZoneSpecificShort  TimeZoneSymbol = "z"
	TimeZoneSpecificLong   TimeZoneSymbol = "zzzz"
	TimeZoneGenericShort   TimeZoneSymbol = "v"
	TimeZoneGenericLong    TimeZoneSymbol = "vvvv"
	TimeZoneIdentifier     TimeZoneSymbol = "VV"
	TimeZoneLocalizedGMT   TimeZoneSymbol = "O"
	TimeZoneISO8601        TimeZoneSymbol = "xxx"
	TimeZoneISO8601Exended TimeZoneSymbol = "XXX"
)

// DateFieldCollection holds one optional symbol option per calendar field.
// Absent fields stay out of the compiled skeleton. Layering two collections
// merges field by field, later non-nil values winning.
type DateFieldCollection struct {
	Era            *EraSymbol            `json:"era,omitempty"`
	Year           *YearSymbol           `json:"year,omitempty"`
	Quarter        *QuarterSymbol        `json:"quarter,omitempty"`
	Month          *MonthSymbol          `json:"month,omitempty"`
	Week           *WeekSymbol           `json:"week,omitempty"`
	Day            *DaySymbol            `json:"day,omitempty"`
	DayOfYear      *DayOfYearSymbol      `json:"day_of_year,omitempty"`
	Weekday        *WeekdaySymbol        `json:"weekday,omitempty"`
	DayPeriod      *DayPeriodSymbol      `json:"day_period,omitempty"`
	Hour           *HourSymbol           `json:"hour,omitempty"`
	Minute         *MinuteSymbol         `json:"minute,omitempty"`
	Second         *SecondSymbol         `json:"second,omitempty"`
	SecondFraction *SecondFractionSymbol `json:"second_fraction,omitempty"`
	TimeZone       *TimeZoneSymbol       `json:"time_zone,omitempty"`
}

// Add unions two collections field by field. Non-nil fields of other
// overwrite the receiver's; nil fields leave the receiver's value in place.
func (c DateFieldCollection) Add(other DateFieldCollection) DateFieldCollection {
	if other.Era != nil {
		c.Era = other.Era
	}
	if other.Year != nil {
		c.Year = other.Year
	}
	if other.Quarter != nil {
		c.Quarter = other.Quarter
	}
	if other.Month != nil {
		c.Month = other.Month
	}
	if other.Week != nil {
		c.Week = other.Week
	}
	if other.Day != nil {
		c.Day = other.Day
	}
	if other.DayOfYear != nil {
		c.DayOfYear = other.DayOfYear
	}
	if other.Weekday != nil {
		c.Weekday = other.Weekday
	}
	if other.DayPeriod != nil {
		c.DayPeriod = other.DayPeriod
	}
	if other.Hour != nil {
		c.Hour = other.Hour
	}
	if other.Minute != nil {
		c.Minute = other.Minute
	}
	if other.Second != nil {
		c.Second = other.Second
	}
	if other.SecondFraction != nil {
		c.SecondFraction = other.SecondFraction
	}
	if other.TimeZone != nil {
		c.TimeZone = other.TimeZone
	}
	return c
}

func (c DateFieldCollection) empty() bool {
	return c == DateFieldCollection{}
}

// DateStyle is the coarse date-verbosity axis used to seed a collection.
type DateStyle int

const (
	DateStyleOmitted DateStyle = iota
	DateStyleNumeric
	DateStyleAbbreviated
	DateStyleLong
	DateStyleComplete
)

// TimeStyle is the coarse time-verbosity axis used to seed a collection.
type TimeStyle int

const (
	TimeStyleOmitted TimeStyle = iota
	TimeStyleShortened
	TimeStyleStandard
	TimeStyleComplete
)

func sym[T any](v T) *T { return &v }

// CollectionDate populates the date subset of fields for the coarse style.
// Calling it alongside CollectionTime and layering the results with Add
// produces the union.
func CollectionDate(style DateStyle) DateFieldCollection {
	var c DateFieldCollection
	switch style {
	case DateStyleNumeric:
		c.Year = sym(YearDefaultDigits)
		c.Month = sym(MonthDefaultDigits)
		c.Day = sym(DayDefaultDigits)
	case DateStyleAbbreviated:
		c.Year = sym(YearDefaultDigits)
		c.Month = sym(MonthAbbreviated)
		c.Day = sym(DayDefaultDigits)
	case DateStyleLong:
		c.Year = sym(YearDefaultDigits)
		c.Month = sym(MonthWide)
		c.Day = sym(DayDefaultDigits)
	case DateStyleComplete:
		c.Year = sym(YearDefaultDigits)
		c.Month = sym(MonthWide)
		c.Day = sym(DayDefaultDigits)
		c.Weekday = sym(WeekdayWide)
	}
	return c
}

// CollectionTime populates the time subset of fields for the coarse style.
func CollectionTime(style TimeStyle) DateFieldCollection {
	var c DateFieldCollection
	switch style {
	case TimeStyleShortened:
		c.Hour = sym(HourDefaultDigits)
		c.Minute = sym(MinuteTwoDigits)
	case TimeStyleStandard:
		c.Hour = sym(HourDefaultDigits)
		c.Minute = sym(MinuteTwoDigits)
		c.Second = sym(SecondTwoDigits)
	case TimeStyleComplete:
		c.Hour = sym(HourDefaultDigits)
		c.Minute = sym(MinuteTwoDigits)
		c.Second = sym(SecondTwoDigits)
		c.TimeZone = sym(TimeZoneSpecificShort)
	}
	return c
}
