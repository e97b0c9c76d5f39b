package formatstyle

import "time"

// The engine boundary mirrors a C-style internationalization library:
// open/format/parse/close handle pairs, integer status codes and UTF-16
// output buffers with required-length reporting. The engine is an external
// collaborator; this package consumes it through the contract below and
// never reimplements its data tables.

// Status is the engine's success/failure signaling convention. Zero means
// success. StatusBufferOverflow is continuable: the call reports the required
// buffer length and may be retried with a larger buffer. Every other positive
// value is a failure.
type Status int

const (
	StatusOK             Status = 0
	StatusIllegalArg     Status = 1
	StatusUnsupported    Status = 2
	StatusInvalidFormat  Status = 3
	StatusParse          Status = 9
	StatusBufferOverflow Status = 15
	StatusInternal       Status = 66
)

// Failure reports whether the status is a terminal failure. Buffer overflow
// is continuable and therefore not a failure.
func (s Status) Failure() bool {
	return s > StatusOK && s != StatusBufferOverflow
}

func statusError(s Status) error {
	switch s {
	case StatusUnsupported:
		return ErrUnsupportedCalendar
	case StatusInvalidFormat:
		return ErrInvalidTimeZone
	default:
		return ErrNoFormatter
	}
}

// FieldPosition is one engine-reported (field-code, begin, end) triple over a
// just-produced string, in UTF-16 code unit indices.
type FieldPosition struct {
	Field int
	Begin int
	End   int
}

// FieldIterator collects field positions during a single format call. A nil
// iterator disables collection.
type FieldIterator struct {
	positions []FieldPosition
}

func (it *FieldIterator) add(field, begin, end int) {
	if it == nil || end <= begin {
		return
	}
	it.positions = append(it.positions, FieldPosition{Field: field, Begin: begin, End: end})
}

func (it *FieldIterator) reset() {
	if it != nil {
		it.positions = it.positions[:0]
	}
}

// DateEngineHandle is one configured native date formatter. Format writes
// UTF-16 code units into buf and returns the required length; when buf is too
// small it returns the required length with StatusBufferOverflow and writes
// nothing past len(buf). Parse starts at *pos and advances it past consumed
// text; zero advancement with StatusParse means "no match here".
type DateEngineHandle interface {
	Format(t time.Time, buf []uint16, iter *FieldIterator) (int, Status)
	Parse(text string, pos *int) (time.Time, Status)
	Close()
}

// NumberEngineHandle is one configured native number formatter.
type NumberEngineHandle interface {
	FormatFloat(v float64, buf []uint16, iter *FieldIterator) (int, Status)
	FormatInt(v int64, buf []uint16, iter *FieldIterator) (int, Status)
	Parse(text string, pos *int) (float64, Status)
	Close()
}

// ListEngineHandle joins items with locale list patterns.
type ListEngineHandle interface {
	Format(items []string, buf []uint16, iter *FieldIterator) (int, Status)
	Close()
}

// RelativeEngineHandle renders calendar-component offsets ("in 3 days",
// "last week"). Named output uses vocabulary entries where available and
// falls back to the numeric pattern.
type RelativeEngineHandle interface {
	Format(component RelativeComponent, value int, named bool, buf []uint16, iter *FieldIterator) (int, Status)
	Close()
}

// Engine is the narrow request/response contract with the locale engine.
type Engine interface {
	// BestPattern resolves a locale-independent skeleton into the final
	// locale-correct pattern arrangement.
	BestPattern(locale, calendar, skeleton string) (string, Status)
	// TimeSkeleton looks up the locale's duration time skeleton for the
	// field set "hm", "hms" or "ms".
	TimeSkeleton(locale, fields string) (string, Status)
	OpenDateFormatter(sig Signature) (DateEngineHandle, Status)
	OpenNumberFormatter(sig Signature) (NumberEngineHandle, Status)
	OpenListFormatter(sig Signature) (ListEngineHandle, Status)
	OpenRelativeFormatter(sig Signature) (RelativeEngineHandle, Status)
}
