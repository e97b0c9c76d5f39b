package formatstyle

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// RelativePresentation selects between numeric output ("in 1 day") and named
// idioms where the vocabulary has them ("tomorrow").
type RelativePresentation int

const (
	PresentationNumeric RelativePresentation = iota
	PresentationNamed
)

// RelativeDateFormatStyle renders the offset between two dates as relative
// vocabulary. The largest non-zero calendar component wins; whole-day
// components align to day boundaries so a 11pm-to-1am gap still reads
// "tomorrow".
type RelativeDateFormatStyle struct {
	locale         string
	presentation   RelativePresentation
	capitalization Capitalization
	engine         Engine
}

func RelativeStyle() RelativeDateFormatStyle {
	return RelativeDateFormatStyle{locale: "en", engine: DefaultEngine()}
}

func (s RelativeDateFormatStyle) Locale(tag language.Tag) RelativeDateFormatStyle {
	s.locale = tag.String()
	return s
}

func (s RelativeDateFormatStyle) Presentation(p RelativePresentation) RelativeDateFormatStyle {
	s.presentation = p
	return s
}

func (s RelativeDateFormatStyle) Capitalized(c Capitalization) RelativeDateFormatStyle {
	s.capitalization = c
	return s
}

func (s RelativeDateFormatStyle) WithEngine(engine Engine) RelativeDateFormatStyle {
	if engine != nil {
		s.engine = engine
	}
	return s
}

// Format renders destination relative to reference.
func (s RelativeDateFormatStyle) Format(destination, reference time.Time) string {
	component, value := alignedComponent(destination, reference)

	engine := s.engine
	if engine == nil {
		engine = DefaultEngine()
	}
	sig := Signature{Locale: s.locale, Capitalization: s.capitalization}
	formatter, err := RelativeFormatterFor(engine, sig)
	if err == nil {
		named := s.presentation == PresentationNamed
		if text, ok := formatter.Format(component, value, named); ok {
			return text
		}
	}

	if value < 0 {
		return fmt.Sprintf("%d %ss ago", -value, component.name())
	}
	return fmt.Sprintf("in %d %ss", value, component.name())
}

// FormatSince renders destination relative to now.
func (s RelativeDateFormatStyle) FormatSince(destination time.Time) string {
	return s.Format(destination, time.Now())
}
