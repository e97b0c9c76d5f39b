package formatstyle

import (
	"strings"

	"golang.org/x/text/language"
)

// Skeleton renders the collection to a date skeleton: one fragment per
// populated field, concatenated in canonical field order (era, year, quarter,
// month, week, day, day-of-year, weekday, day period, hour, minute, second,
// sub-second, timezone). The hour fragment is the only locale-sensitive one:
// default-cycle hour symbols are substituted for the locale's 12- or 24-hour
// variant before concatenation.
func (c DateFieldCollection) Skeleton(locale language.Tag) string {
	twelveHour := localeUsesTwelveHourClock(locale)

	var b strings.Builder
	if c.Era != nil {
		b.WriteString(string(*c.Era))
	}
	if c.Year != nil {
		b.WriteString(string(*c.Year))
	}
	if c.Quarter != nil {
		b.WriteString(string(*c.Quarter))
	}
	if c.Month != nil {
		b.WriteString(string(*c.Month))
	}
	if c.Week != nil {
		b.WriteString(string(*c.Week))
	}
	if c.Day != nil {
		b.WriteString(string(*c.Day))
	}
	if c.DayOfYear != nil {
		b.WriteString(string(*c.DayOfYear))
	}
	if c.Weekday != nil {
		b.WriteString(string(*c.Weekday))
	}
	if c.DayPeriod != nil {
		b.WriteString(string(*c.DayPeriod))
	} else if c.Hour != nil && twelveHour && hourSymbolFollowsLocale(*c.Hour) {
		// A 12-hour clock needs a day period even when the caller did not
		// ask for one.
		b.WriteString(string(DayPeriodStandard))
	}
	if c.Hour != nil {
		b.WriteString(resolveHourSymbol(*c.Hour, twelveHour))
	}
	if c.Minute != nil {
		b.WriteString(string(*c.Minute))
	}
	if c.Second != nil {
		b.WriteString(string(*c.Second))
	}
	if c.SecondFraction != nil {
		b.WriteString(string(*c.SecondFraction))
	}
	if c.TimeZone != nil {
		b.WriteString(string(*c.TimeZone))
	}
	return b.String()
}

func hourSymbolFollowsLocale(h HourSymbol) bool {
	return h == HourDefaultDigits || h == HourTwoDigits
}

func resolveHourSymbol(h HourSymbol, twelveHour bool) string {
	switch h {
	case HourDefaultDigits:
		if twelveHour {
			return "h"
		}
		return "H"
	case HourTwoDigits:
		if twelveHour {
			return "hh"
		}
		return "HH"
	default:
		return string(h)
	}
}

// twelveHourRegions lists regions whose preferred hour cycle is 12-hour.
// An explicit -u-hc- extension on the tag overrides the region default.
var twelveHourRegions = map[string]bool{
	"US": true, "CA": true, "AU": true, "NZ": true, "PH": true,
	"IN": true, "PK": true, "BD": true, "EG": true, "SA": true,
	"CO": true, "MX": true, "MY": true, "HN": true, "NI": true,
}

var twelveHourLanguages = map[string]bool{
	"en": true,
}

func localeUsesTwelveHourClock(tag language.Tag) bool {
	switch tag.TypeForKey("hc") {
	case "h11", "h12":
		return true
	case "h23", "h24":
		return false
	}

	if region, conf := tag.Region(); conf != language.No {
		if twelveHour, ok := twelveHourRegions[region.String()]; ok {
			return twelveHour
		}
		// A concrete region that is not in the 12-hour set prefers the
		// 24-hour cycle even for languages that default to 12-hour.
		if conf == language.Exact {
			return false
		}
	}

	base, _ := tag.Base()
	return twelveHourLanguages[base.String()]
}

// ResolveDatePattern turns a field collection into the final locale-correct
// pattern by handing the compiled skeleton to the engine's best-pattern
// facility. Results are memoized per (locale, calendar, skeleton) since
// pattern generation is comparatively expensive.
func ResolveDatePattern(engine Engine, locale language.Tag, calendar string, fields DateFieldCollection) (string, error) {
	skeleton := fields.Skeleton(locale)
	if skeleton == "" {
		return "", nil
	}
	return cachedBestPattern(engine, locale.String(), calendar, skeleton)
}
