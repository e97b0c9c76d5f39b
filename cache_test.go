package formatstyle

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeEngine counts constructor calls so the tests can observe the cache's
// at-most-once guarantee. Each test uses a unique Pattern because the
// formatter caches are process-wide.
type fakeEngine struct {
	opens       atomic.Int32
	patterns    atomic.Int32
	failOpens   atomic.Int32
	openBlocked chan struct{}
}

func (e *fakeEngine) BestPattern(locale, calendar, skeleton string) (string, Status) {
	e.patterns.Add(1)
	return "M/d/y", StatusOK
}

func (e *fakeEngine) TimeSkeleton(locale, fields string) (string, Status) {
	return "h:mm", StatusOK
}

func (e *fakeEngine) OpenDateFormatter(sig Signature) (DateEngineHandle, Status) {
	if e.openBlocked != nil {
		<-e.openBlocked
	}
	if e.failOpens.Load() > 0 {
		e.failOpens.Add(-1)
		e.opens.Add(1)
		return nil, StatusInternal
	}
	e.opens.Add(1)
	return &fakeDateHandle{text: "10/21/2023"}, StatusOK
}

func (e *fakeEngine) OpenNumberFormatter(sig Signature) (NumberEngineHandle, Status) {
	return nil, StatusInternal
}

func (e *fakeEngine) OpenListFormatter(sig Signature) (ListEngineHandle, Status) {
	return nil, StatusInternal
}

func (e *fakeEngine) OpenRelativeFormatter(sig Signature) (RelativeEngineHandle, Status) {
	return nil, StatusInternal
}

// fakeDateHandle emits a fixed string, honoring the buffer-overflow
// convention: too-small buffers get the required length and no payload.
type fakeDateHandle struct {
	text    string
	fields  []FieldPosition
	calls   atomic.Int32
	badSize bool
}

func (h *fakeDateHandle) Format(t time.Time, buf []uint16, iter *FieldIterator) (int, Status) {
	h.calls.Add(1)
	units := utf16Units(h.text)
	if len(buf) < len(units) {
		if h.badSize {
			return len(buf) / 2, StatusBufferOverflow
		}
		return len(units), StatusBufferOverflow
	}
	copy(buf, units)
	for _, f := range h.fields {
		iter.add(f.Field, f.Begin, f.End)
	}
	return len(units), StatusOK
}

func (h *fakeDateHandle) Parse(text string, pos *int) (time.Time, Status) {
	return time.Time{}, StatusParse
}

func (h *fakeDateHandle) Close() {}

func utf16Units(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for _, r := range s {
		if r > 0xFFFF {
			r -= 0x10000
			units = append(units, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
			continue
		}
		units = append(units, uint16(r))
	}
	return units
}

func TestDateFormatterForSharedInstance(t *testing.T) {
	engine := &fakeEngine{}
	sig := Signature{Locale: "en", Calendar: "gregorian", Pattern: "cache-shared"}

	first, err := DateFormatterFor(engine, sig)
	if err != nil {
		t.Fatalf("DateFormatterFor: %v", err)
	}
	second, err := DateFormatterFor(engine, sig)
	if err != nil {
		t.Fatalf("DateFormatterFor: %v", err)
	}
	if first != second {
		t.Fatal("equal signatures must share one formatter instance")
	}
	if got := engine.opens.Load(); got != 1 {
		t.Fatalf("opens = %d, want 1", got)
	}

	other := sig
	other.TimeZone = "America/New_York"
	third, err := DateFormatterFor(engine, other)
	if err != nil {
		t.Fatalf("DateFormatterFor: %v", err)
	}
	if third == first {
		t.Fatal("distinct signatures must not share a formatter")
	}
}

func TestDateFormatterForConcurrentAtMostOnce(t *testing.T) {
	engine := &fakeEngine{openBlocked: make(chan struct{})}
	sig := Signature{Locale: "en", Calendar: "gregorian", Pattern: "cache-concurrent"}

	const workers = 16
	var wg sync.WaitGroup
	results := make([]*DateFormatter, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = DateFormatterFor(engine, sig)
		}(i)
	}
	close(engine.openBlocked)
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d: %v", i, errs[i])
		}
		if results[i] != results[0] {
			t.Fatalf("worker %d received a different instance", i)
		}
	}
	if got := engine.opens.Load(); got != 1 {
		t.Fatalf("opens = %d, want 1", got)
	}
}

func TestDateFormatterForFailureNotCached(t *testing.T) {
	engine := &fakeEngine{}
	engine.failOpens.Store(1)
	sig := Signature{Locale: "en", Calendar: "gregorian", Pattern: "cache-failure"}

	if _, err := DateFormatterFor(engine, sig); !errors.Is(err, ErrNoFormatter) {
		t.Fatalf("first call err = %v, want ErrNoFormatter", err)
	}

	formatter, err := DateFormatterFor(engine, sig)
	if err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if formatter == nil {
		t.Fatal("retry returned nil formatter")
	}
	if got := engine.opens.Load(); got != 2 {
		t.Fatalf("opens = %d, want 2", got)
	}
}

func TestSignatureCacheKeySeparatesFields(t *testing.T) {
	a := Signature{Locale: "en", Calendar: "gregorian"}
	b := Signature{Locale: "eng", Calendar: "regorian"}
	if a.cacheKey() == b.cacheKey() {
		t.Fatal("adjacent fields must not alias in the cache key")
	}

	c := a
	c.Lenient = true
	if a.cacheKey() == c.cacheKey() {
		t.Fatal("lenient must be part of the cache key")
	}
}
