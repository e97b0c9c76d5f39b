package formatstyle

import (
	"strconv"
	"strings"
)

// Capitalization is the context the formatted text will appear in; it decides
// whether standalone names (months, relative dates) get an initial capital.
type Capitalization int

const (
	CapitalizationUnknown Capitalization = iota
	CapitalizationStandalone
	CapitalizationBeginningOfSentence
	CapitalizationMiddleOfSentence
)

// DefaultTwoDigitYearCutoff anchors two-digit year parsing: a parsed "yy"
// lands in [cutoff, cutoff+99].
const DefaultTwoDigitYearCutoff = 1950

// Signature is the complete set of inputs that determine a native formatter's
// behavior, used as the cache key. Two equal Signatures must produce
// formatters with byte-identical output for the same input; the cache depends
// on that contract. Signatures are pure data and never own engine resources.
type Signature struct {
	Locale             string         `json:"locale"`
	Calendar           string         `json:"calendar"`
	TimeZone           string         `json:"time_zone"`
	Pattern            string         `json:"pattern"`
	Lenient            bool           `json:"lenient,omitempty"`
	Capitalization     Capitalization `json:"capitalization,omitempty"`
	FirstWeekday       int            `json:"first_weekday,omitempty"`
	MinDaysInFirstWeek int            `json:"min_days_in_first_week,omitempty"`
	// TwoDigitYearCutoff anchors two-digit-year parsing; zero means the
	// package default.
	TwoDigitYearCutoff int `json:"two_digit_year_cutoff,omitempty"`
}

// cacheKey derives the singleflight rendezvous key. Field order is fixed;
// the unit separator keeps adjacent fields from aliasing each other.
func (s Signature) cacheKey() string {
	parts := []string{
		s.Locale,
		s.Calendar,
		s.TimeZone,
		s.Pattern,
		strconv.FormatBool(s.Lenient),
		strconv.Itoa(int(s.Capitalization)),
		strconv.Itoa(s.FirstWeekday),
		strconv.Itoa(s.MinDaysInFirstWeek),
		strconv.Itoa(s.TwoDigitYearCutoff),
	}
	return strings.Join(parts, "\x1f")
}
