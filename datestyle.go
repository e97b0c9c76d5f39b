package formatstyle

import (
	"time"

	"golang.org/x/text/language"
)

// DateFormatStyle is the locale-aware date/time style. Coarse date and time
// styles seed the field collection; individual field modifiers layer on top,
// later writes winning per field. Every modifier returns a changed copy.
type DateFormatStyle struct {
	locale         string
	calendar       string
	timeZone       string
	capitalization Capitalization
	lenient        bool
	cutoff         int
	dateStyle      DateStyle
	timeStyle      TimeStyle
	fields         DateFieldCollection
	engine         Engine
}

// DateTimeStyle builds a style from the coarse verbosity axes.
func DateTimeStyle(date DateStyle, timeStyle TimeStyle) DateFormatStyle {
	return DateFormatStyle{
		locale:    "en",
		calendar:  "gregorian",
		dateStyle: date,
		timeStyle: timeStyle,
		engine:    DefaultEngine(),
	}
}

func (s DateFormatStyle) Locale(tag language.Tag) DateFormatStyle {
	s.locale = tag.String()
	return s
}

// LocaleFromComponents sets the locale from a structured component set. The
// composed identifier carries keyword preferences such as the hour cycle and
// numbering system. The calendar binds its dedicated signature field as well;
// the time zone binds only the signature, since the engine configures it on
// the formatter rather than the locale.
func (s DateFormatStyle) LocaleFromComponents(c LocaleComponents) DateFormatStyle {
	if c.Calendar != "" {
		s.calendar = c.Calendar
	}
	if c.TimeZone != "" {
		s.timeZone = c.TimeZone
		c.TimeZone = ""
	}
	s.locale = c.Identifier()
	return s
}

func (s DateFormatStyle) TimeZone(name string) DateFormatStyle {
	s.timeZone = name
	return s
}

func (s DateFormatStyle) Calendar(name string) DateFormatStyle {
	s.calendar = name
	return s
}

func (s DateFormatStyle) Capitalized(c Capitalization) DateFormatStyle {
	s.capitalization = c
	return s
}

func (s DateFormatStyle) Lenient(lenient bool) DateFormatStyle {
	s.lenient = lenient
	return s
}

func (s DateFormatStyle) TwoDigitYearCutoff(year int) DateFormatStyle {
	s.cutoff = year
	return s
}

func (s DateFormatStyle) WithEngine(engine Engine) DateFormatStyle {
	if engine != nil {
		s.engine = engine
	}
	return s
}

func (s DateFormatStyle) Era(v EraSymbol) DateFormatStyle {
	s.fields.Era = sym(v)
	return s
}

func (s DateFormatStyle) Year(v YearSymbol) DateFormatStyle {
	s.fields.Year = sym(v)
	return s
}

func (s DateFormatStyle) Quarter(v QuarterSymbol) DateFormatStyle {
	s.fields.Quarter = sym(v)
	return s
}

func (s DateFormatStyle) Month(v MonthSymbol) DateFormatStyle {
	s.fields.Month = sym(v)
	return s
}

func (s DateFormatStyle) Week(v WeekSymbol) DateFormatStyle {
	s.fields.Week = sym(v)
	return s
}

func (s DateFormatStyle) Day(v DaySymbol) DateFormatStyle {
	s.fields.Day = sym(v)
	return s
}

func (s DateFormatStyle) DayOfYear(v DayOfYearSymbol) DateFormatStyle {
	s.fields.DayOfYear = sym(v)
	return s
}

func (s DateFormatStyle) Weekday(v WeekdaySymbol) DateFormatStyle {
	s.fields.Weekday = sym(v)
	return s
}

func (s DateFormatStyle) DayPeriod(v DayPeriodSymbol) DateFormatStyle {
	s.fields.DayPeriod = sym(v)
	return s
}

func (s DateFormatStyle) Hour(v HourSymbol) DateFormatStyle {
	s.fields.Hour = sym(v)
	return s
}

func (s DateFormatStyle) Minute(v MinuteSymbol) DateFormatStyle {
	s.fields.Minute = sym(v)
	return s
}

func (s DateFormatStyle) Second(v SecondSymbol) DateFormatStyle {
	s.fields.Second = sym(v)
	return s
}

func (s DateFormatStyle) SecondFraction(v SecondFractionSymbol) DateFormatStyle {
	s.fields.SecondFraction = sym(v)
	return s
}

func (s DateFormatStyle) TimeZoneSymbol(v TimeZoneSymbol) DateFormatStyle {
	s.fields.TimeZone = sym(v)
	return s
}

// resolvedFields layers the coarse style seeds under the explicit field
// requests.
func (s DateFormatStyle) resolvedFields() DateFieldCollection {
	seeded := CollectionDate(s.dateStyle).Add(CollectionTime(s.timeStyle))
	fields := seeded.Add(s.fields)
	if fields.empty() {
		fields = CollectionDate(DateStyleNumeric)
	}
	return fields
}

func (s DateFormatStyle) tag() language.Tag {
	tag, err := language.Parse(s.locale)
	if err != nil {
		return language.English
	}
	return tag
}

func (s DateFormatStyle) formatter() (*DateFormatter, error) {
	engine := s.engine
	if engine == nil {
		engine = DefaultEngine()
	}
	pattern, err := ResolveDatePattern(engine, s.tag(), s.calendar, s.resolvedFields())
	if err != nil {
		return nil, err
	}
	sig := Signature{
		Locale:             s.locale,
		Calendar:           s.calendar,
		TimeZone:           s.timeZone,
		Pattern:            pattern,
		Lenient:            s.lenient,
		Capitalization:     s.capitalization,
		TwoDigitYearCutoff: s.cutoff,
	}
	return DateFormatterFor(engine, sig)
}

// Format renders t. The display path never fails; when no native formatter
// can be constructed a fixed numeric rendition stands in.
func (s DateFormatStyle) Format(t time.Time) string {
	formatter, err := s.formatter()
	if err == nil {
		if text, ok := formatter.Format(t); ok {
			return text
		}
	}
	return t.Format("2006-01-02 15:04:05")
}

func (s DateFormatStyle) AttributedFormat(t time.Time) AttributedString {
	formatter, err := s.formatter()
	if err == nil {
		if attributed, ok := formatter.AttributedFormat(t); ok {
			return attributed
		}
	}
	return AttributedString{Text: t.Format("2006-01-02 15:04:05")}
}

// Parse parses the complete input against the style's resolved pattern.
func (s DateFormatStyle) Parse(text string) (time.Time, error) {
	formatter, err := s.formatter()
	if err != nil {
		return time.Time{}, err
	}
	return formatter.Parse(text)
}

// ParseAt attempts a consuming parse at *pos, reporting no-match without an
// error so scanners can try the next offset.
func (s DateFormatStyle) ParseAt(text string, pos *int) (time.Time, bool) {
	formatter, err := s.formatter()
	if err != nil {
		return time.Time{}, false
	}
	return formatter.ParseAt(text, pos)
}
