package formatstyle

import (
	"strings"

	"golang.org/x/text/language"
)

// ListFormatStyle joins strings with the locale's list patterns
// ("a, b, and c").
type ListFormatStyle struct {
	locale string
	engine Engine
}

func ListStyle() ListFormatStyle {
	return ListFormatStyle{locale: "en", engine: DefaultEngine()}
}

func (s ListFormatStyle) Locale(tag language.Tag) ListFormatStyle {
	s.locale = tag.String()
	return s
}

func (s ListFormatStyle) WithEngine(engine Engine) ListFormatStyle {
	if engine != nil {
		s.engine = engine
	}
	return s
}

// Format joins items. An empty slice renders as an empty string; the display
// path never fails.
func (s ListFormatStyle) Format(items []string) string {
	engine := s.engine
	if engine == nil {
		engine = DefaultEngine()
	}
	formatter, err := ListFormatterFor(engine, Signature{Locale: s.locale})
	if err == nil {
		if text, ok := formatter.Format(items); ok {
			return text
		}
	}
	return strings.Join(items, ", ")
}
