package formatstyle

import (
	"time"
	"unicode/utf16"
)

// initialBufferLen is the fixed first-attempt output buffer size. Output that
// does not fit triggers exactly one retry sized to the engine-reported
// requirement.
const initialBufferLen = 32

// formatWithRetry runs one engine format call with the buffer-growth
// discipline: a fixed-size first attempt, then a single retry at the reported
// required length. Any terminal failure yields ("", false); callers fall back
// to a default rendering so display paths always produce some string.
func formatWithRetry(iter *FieldIterator, call func(buf []uint16, iter *FieldIterator) (int, Status)) (string, bool) {
	iter.reset()
	buf := make([]uint16, initialBufferLen)
	n, status := call(buf, iter)
	if status == StatusBufferOverflow {
		if n <= len(buf) {
			panic("formatstyle: engine reported overflow without a larger required length")
		}
		buf = make([]uint16, n)
		iter.reset()
		n, status = call(buf, iter)
	}
	if status != StatusOK || n < 0 || n > len(buf) {
		return "", false
	}
	return string(utf16.Decode(buf[:n])), true
}

// DateFormatter wraps a cached native date formatter handle. The cache owns
// the handle; a DateFormatter must never close it.
type DateFormatter struct {
	handle DateEngineHandle
	sig    Signature
}

// Format renders t, or ("", false) on engine failure.
func (f *DateFormatter) Format(t time.Time) (string, bool) {
	return formatWithRetry(nil, func(buf []uint16, iter *FieldIterator) (int, Status) {
		return f.handle.Format(t, buf, iter)
	})
}

// AttributedFormat renders t with semantic field runs attached, threading the
// engine's field-position iterator through a single format pass.
func (f *DateFormatter) AttributedFormat(t time.Time) (AttributedString, bool) {
	var iter FieldIterator
	text, ok := formatWithRetry(&iter, func(buf []uint16, it *FieldIterator) (int, Status) {
		return f.handle.Format(t, buf, it)
	})
	if !ok {
		return AttributedString{}, false
	}
	return newAttributedString(text, iter.positions), true
}

// Parse parses the full input string. Failure surfaces as a typed ParseError
// carrying the input and a worked example of the expected format.
func (f *DateFormatter) Parse(text string) (time.Time, error) {
	pos := 0
	parsed, status := f.handle.Parse(text, &pos)
	if status != StatusOK || pos == 0 {
		return time.Time{}, newParseError(text, f.example())
	}
	return parsed, nil
}

// ParseAt attempts a consuming parse starting at *pos. A zero-progress result
// means "no match at this position" and is not an error; scanning callers use
// it to try the next offset.
func (f *DateFormatter) ParseAt(text string, pos *int) (time.Time, bool) {
	start := *pos
	parsed, status := f.handle.Parse(text, pos)
	if status != StatusOK || *pos == start {
		*pos = start
		return time.Time{}, false
	}
	return parsed, true
}

func (f *DateFormatter) example() string {
	sample := time.Date(2023, time.October, 21, 14, 30, 5, 0, time.UTC)
	if text, ok := f.Format(sample); ok {
		return text
	}
	return ""
}

// NumberFormatter wraps a cached native number formatter handle.
type NumberFormatter struct {
	handle NumberEngineHandle
	sig    Signature
}

func (f *NumberFormatter) FormatFloat(v float64) (string, bool) {
	return formatWithRetry(nil, func(buf []uint16, iter *FieldIterator) (int, Status) {
		return f.handle.FormatFloat(v, buf, iter)
	})
}

func (f *NumberFormatter) FormatInt(v int64) (string, bool) {
	return formatWithRetry(nil, func(buf []uint16, iter *FieldIterator) (int, Status) {
		return f.handle.FormatInt(v, buf, iter)
	})
}

func (f *NumberFormatter) AttributedFormatFloat(v float64) (AttributedString, bool) {
	var iter FieldIterator
	text, ok := formatWithRetry(&iter, func(buf []uint16, it *FieldIterator) (int, Status) {
		return f.handle.FormatFloat(v, buf, it)
	})
	if !ok {
		return AttributedString{}, false
	}
	return newAttributedString(text, iter.positions), true
}

func (f *NumberFormatter) Parse(text string) (float64, error) {
	pos := 0
	parsed, status := f.handle.Parse(text, &pos)
	if status != StatusOK || pos == 0 {
		example, _ := f.FormatFloat(1234.56)
		return 0, newParseError(text, example)
	}
	return parsed, nil
}

func (f *NumberFormatter) ParseAt(text string, pos *int) (float64, bool) {
	start := *pos
	parsed, status := f.handle.Parse(text, pos)
	if status != StatusOK || *pos == start {
		*pos = start
		return 0, false
	}
	return parsed, true
}

// ListFormatter wraps a cached native list formatter handle.
type ListFormatter struct {
	handle ListEngineHandle
	sig    Signature
}

func (f *ListFormatter) Format(items []string) (string, bool) {
	return formatWithRetry(nil, func(buf []uint16, iter *FieldIterator) (int, Status) {
		return f.handle.Format(items, buf, iter)
	})
}

// RelativeFormatter wraps a cached native relative-date formatter handle.
type RelativeFormatter struct {
	handle RelativeEngineHandle
	sig    Signature
}

func (f *RelativeFormatter) Format(component RelativeComponent, value int, named bool) (string, bool) {
	return formatWithRetry(nil, func(buf []uint16, iter *FieldIterator) (int, Status) {
		return f.handle.Format(component, value, named, buf, iter)
	})
}
