package formatstyle

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// numberStyleBase carries the pieces every concrete number style shares. The
// compiled skeleton plus the locale is the whole cacheable identity of a
// style; two styles with equal skeletons share one native formatter.
type numberStyleBase struct {
	locale     string
	lenient    bool
	collection NumberFormatCollection
	engine     Engine
}

func newNumberStyleBase() numberStyleBase {
	return numberStyleBase{locale: "en", engine: DefaultEngine()}
}

func (b numberStyleBase) signature(styleTokens string) Signature {
	skeleton := b.collection.Skeleton()
	if styleTokens != "" {
		skeleton = strings.TrimSpace(styleTokens + " " + skeleton)
	}
	return Signature{Locale: b.locale, Pattern: skeleton, Lenient: b.lenient}
}

func (b numberStyleBase) formatter(styleTokens string) (*NumberFormatter, error) {
	engine := b.engine
	if engine == nil {
		engine = DefaultEngine()
	}
	return NumberFormatterFor(engine, b.signature(styleTokens))
}

// fallbackFloat is the last-resort rendition when no native formatter can be
// constructed; display paths always produce some string.
func fallbackFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FloatFormatStyle renders floating-point values as locale decimal text.
// Every modifier returns a changed copy.
type FloatFormatStyle struct {
	base numberStyleBase
}

// DecimalStyle is the default floating-point style for the en locale.
func DecimalStyle() FloatFormatStyle {
	return FloatFormatStyle{base: newNumberStyleBase()}
}

func (s FloatFormatStyle) Locale(tag language.Tag) FloatFormatStyle {
	s.base.locale = tag.String()
	return s
}

func (s FloatFormatStyle) Lenient(lenient bool) FloatFormatStyle {
	s.base.lenient = lenient
	return s
}

func (s FloatFormatStyle) WithEngine(engine Engine) FloatFormatStyle {
	if engine != nil {
		s.base.engine = engine
	}
	return s
}

func (s FloatFormatStyle) Precision(p Precision) FloatFormatStyle {
	s.base.collection = s.base.collection.withPrecision(p)
	return s
}

func (s FloatFormatStyle) Grouping(g Grouping) FloatFormatStyle {
	s.base.collection = s.base.collection.withGrouping(g)
	return s
}

func (s FloatFormatStyle) Sign(strategy SignDisplayStrategy) FloatFormatStyle {
	s.base.collection = s.base.collection.withSign(strategy)
	return s
}

func (s FloatFormatStyle) Notation(n Notation) FloatFormatStyle {
	s.base.collection = s.base.collection.withNotation(n)
	return s
}

func (s FloatFormatStyle) Scale(scale float64) FloatFormatStyle {
	s.base.collection = s.base.collection.withScale(scale)
	return s
}

func (s FloatFormatStyle) DecimalSeparator(d DecimalSeparatorDisplay) FloatFormatStyle {
	s.base.collection = s.base.collection.withDecimalSeparator(d)
	return s
}

func (s FloatFormatStyle) Rounded(rule RoundingRule) FloatFormatStyle {
	s.base.collection = s.base.collection.withRounding(rule)
	return s
}

func (s FloatFormatStyle) RoundedBy(increment RoundingIncrement) FloatFormatStyle {
	s.base.collection = s.base.collection.withRoundingIncrement(increment)
	return s
}

func (s FloatFormatStyle) Format(v float64) string {
	formatter, err := s.base.formatter("")
	if err == nil {
		if text, ok := formatter.FormatFloat(v); ok {
			return text
		}
	}
	return fallbackFloat(v)
}

func (s FloatFormatStyle) AttributedFormat(v float64) AttributedString {
	formatter, err := s.base.formatter("")
	if err == nil {
		if attributed, ok := formatter.AttributedFormatFloat(v); ok {
			return attributed
		}
	}
	return AttributedString{Text: fallbackFloat(v)}
}

func (s FloatFormatStyle) Parse(text string) (float64, error) {
	formatter, err := s.base.formatter("")
	if err != nil {
		return 0, err
	}
	return formatter.Parse(text)
}

// IntegerFormatStyle renders integers as locale decimal text. Unlike the
// float style it shows no fraction digits unless precision asks for them.
type IntegerFormatStyle struct {
	base numberStyleBase
}

func IntegerStyle() IntegerFormatStyle {
	return IntegerFormatStyle{base: newNumberStyleBase()}
}

func (s IntegerFormatStyle) Locale(tag language.Tag) IntegerFormatStyle {
	s.base.locale = tag.String()
	return s
}

func (s IntegerFormatStyle) Lenient(lenient bool) IntegerFormatStyle {
	s.base.lenient = lenient
	return s
}

func (s IntegerFormatStyle) WithEngine(engine Engine) IntegerFormatStyle {
	if engine != nil {
		s.base.engine = engine
	}
	return s
}

func (s IntegerFormatStyle) Precision(p Precision) IntegerFormatStyle {
	s.base.collection = s.base.collection.withPrecision(p)
	return s
}

func (s IntegerFormatStyle) Grouping(g Grouping) IntegerFormatStyle {
	s.base.collection = s.base.collection.withGrouping(g)
	return s
}

func (s IntegerFormatStyle) Sign(strategy SignDisplayStrategy) IntegerFormatStyle {
	s.base.collection = s.base.collection.withSign(strategy)
	return s
}

func (s IntegerFormatStyle) Notation(n Notation) IntegerFormatStyle {
	s.base.collection = s.base.collection.withNotation(n)
	return s
}

func (s IntegerFormatStyle) Scale(scale float64) IntegerFormatStyle {
	s.base.collection = s.base.collection.withScale(scale)
	return s
}

func (s IntegerFormatStyle) Rounded(rule RoundingRule) IntegerFormatStyle {
	s.base.collection = s.base.collection.withRounding(rule)
	return s
}

func (s IntegerFormatStyle) Format(v int64) string {
	formatter, err := s.base.formatter("")
	if err == nil {
		if text, ok := formatter.FormatInt(v); ok {
			return text
		}
	}
	return strconv.FormatInt(v, 10)
}

func (s IntegerFormatStyle) Parse(text string) (int64, error) {
	formatter, err := s.base.formatter("")
	if err != nil {
		return 0, err
	}
	v, err := formatter.Parse(text)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// PercentFormatStyle renders fractional values as percentages; 0.25 formats
// as "25%".
type PercentFormatStyle struct {
	base numberStyleBase
}

func PercentStyle() PercentFormatStyle {
	return PercentFormatStyle{base: newNumberStyleBase()}
}

func (s PercentFormatStyle) Locale(tag language.Tag) PercentFormatStyle {
	s.base.locale = tag.String()
	return s
}

func (s PercentFormatStyle) Lenient(lenient bool) PercentFormatStyle {
	s.base.lenient = lenient
	return s
}

func (s PercentFormatStyle) WithEngine(engine Engine) PercentFormatStyle {
	if engine != nil {
		s.base.engine = engine
	}
	return s
}

func (s PercentFormatStyle) Precision(p Precision) PercentFormatStyle {
	s.base.collection = s.base.collection.withPrecision(p)
	return s
}

func (s PercentFormatStyle) Grouping(g Grouping) PercentFormatStyle {
	s.base.collection = s.base.collection.withGrouping(g)
	return s
}

func (s PercentFormatStyle) Sign(strategy SignDisplayStrategy) PercentFormatStyle {
	s.base.collection = s.base.collection.withSign(strategy)
	return s
}

func (s PercentFormatStyle) Rounded(rule RoundingRule) PercentFormatStyle {
	s.base.collection = s.base.collection.withRounding(rule)
	return s
}

func (s PercentFormatStyle) Format(v float64) string {
	formatter, err := s.base.formatter("percent")
	if err == nil {
		if text, ok := formatter.FormatFloat(v); ok {
			return text
		}
	}
	return fallbackFloat(v*100) + "%"
}

func (s PercentFormatStyle) Parse(text string) (float64, error) {
	formatter, err := s.base.formatter("percent")
	if err != nil {
		return 0, err
	}
	return formatter.Parse(text)
}

// CurrencyFormatStyle renders monetary amounts for one ISO 4217 currency
// code. Presentation selects symbol, narrow symbol, ISO code or full name.
type CurrencyFormatStyle struct {
	base numberStyleBase
	code string
}

// CurrencyStyle builds a style for the given ISO 4217 code. Invalid codes
// surface at format time through the display fallback, not at construction.
func CurrencyStyle(code string) CurrencyFormatStyle {
	return CurrencyFormatStyle{base: newNumberStyleBase(), code: strings.ToUpper(code)}
}

func (s CurrencyFormatStyle) Locale(tag language.Tag) CurrencyFormatStyle {
	s.base.locale = tag.String()
	return s
}

func (s CurrencyFormatStyle) Lenient(lenient bool) CurrencyFormatStyle {
	s.base.lenient = lenient
	return s
}

func (s CurrencyFormatStyle) WithEngine(engine Engine) CurrencyFormatStyle {
	if engine != nil {
		s.base.engine = engine
	}
	return s
}

func (s CurrencyFormatStyle) Precision(p Precision) CurrencyFormatStyle {
	s.base.collection = s.base.collection.withPrecision(p)
	return s
}

func (s CurrencyFormatStyle) Grouping(g Grouping) CurrencyFormatStyle {
	s.base.collection = s.base.collection.withGrouping(g)
	return s
}

func (s CurrencyFormatStyle) Sign(strategy SignDisplayStrategy) CurrencyFormatStyle {
	s.base.collection = s.base.collection.withSign(strategy)
	return s
}

func (s CurrencyFormatStyle) Presentation(p CurrencyPresentation) CurrencyFormatStyle {
	s.base.collection = s.base.collection.withPresentation(p)
	return s
}

func (s CurrencyFormatStyle) Rounded(rule RoundingRule) CurrencyFormatStyle {
	s.base.collection = s.base.collection.withRounding(rule)
	return s
}

func (s CurrencyFormatStyle) RoundedBy(increment RoundingIncrement) CurrencyFormatStyle {
	s.base.collection = s.base.collection.withRoundingIncrement(increment)
	return s
}

func (s CurrencyFormatStyle) styleTokens() string {
	return "currency/" + s.code
}

// Format renders the amount. Currency output defaults to two fraction digits
// unless the style configured a precision or increment of its own.
func (s CurrencyFormatStyle) Format(v float64) string {
	formatter, err := s.currencyFormatter()
	if err == nil {
		if text, ok := formatter.FormatFloat(v); ok {
			return text
		}
	}
	return s.code + " " + fallbackFloat(v)
}

func (s CurrencyFormatStyle) AttributedFormat(v float64) AttributedString {
	formatter, err := s.currencyFormatter()
	if err == nil {
		if attributed, ok := formatter.AttributedFormatFloat(v); ok {
			return attributed
		}
	}
	return AttributedString{Text: s.code + " " + fallbackFloat(v)}
}

func (s CurrencyFormatStyle) Parse(text string) (float64, error) {
	formatter, err := s.currencyFormatter()
	if err != nil {
		return 0, err
	}
	return formatter.Parse(text)
}

func (s CurrencyFormatStyle) currencyFormatter() (*NumberFormatter, error) {
	base := s.base
	if base.collection.Precision == nil && base.collection.RoundingIncrement == nil {
		base.collection = base.collection.withPrecision(FractionLength(2, 2))
	}
	return base.formatter(s.styleTokens())
}
