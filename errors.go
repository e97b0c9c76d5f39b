package formatstyle

import (
	"errors"
	"fmt"
)

// ErrNoFormatter indicates that no native formatter could be constructed for
// the requested locale/pattern/calendar combination.
var ErrNoFormatter = errors.New("formatstyle: no formatter available")

// ErrUnsupportedCalendar marks calendar identifiers the engine has no data for.
var ErrUnsupportedCalendar = errors.New("formatstyle: unsupported calendar")

// ErrInvalidTimeZone indicates a timezone identifier the engine rejected.
var ErrInvalidTimeZone = errors.New("formatstyle: invalid time zone")

// ParseError reports that an input string could not be parsed by a style.
// It carries the original input and, where available, a worked example of the
// expected format so callers can surface a useful message.
type ParseError struct {
	Input   string
	Example string
}

func (e *ParseError) Error() string {
	if e.Example == "" {
		return fmt.Sprintf("formatstyle: cannot parse %q", e.Input)
	}
	return fmt.Sprintf("formatstyle: cannot parse %q, expected format like %q", e.Input, e.Example)
}

func newParseError(input, example string) error {
	return &ParseError{Input: input, Example: example}
}
