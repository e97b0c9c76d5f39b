package formatstyle

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// memoCache is the process-wide memoization layer shared by the formatter
// and pattern caches: RWMutex reads on hits, singleflight rendezvous so
// concurrent misses on the same key invoke the constructor exactly once, and
// no eviction. Entries live for the process lifetime; a failed construction
// is never retained, so the next lookup retries.
type memoCache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
	group   singleflight.Group
}

func newMemoCache[K comparable, V any]() *memoCache[K, V] {
	return &memoCache[K, V]{entries: make(map[K]V)}
}

func (c *memoCache[K, V]) getOrCreate(key K, flightKey string, construct func() (V, error)) (V, error) {
	c.mu.RLock()
	if value, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return value, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.group.Do(flightKey, func() (any, error) {
		// Another caller may have stored the value between the read miss
		// and this flight winning the key.
		c.mu.RLock()
		if value, ok := c.entries[key]; ok {
			c.mu.RUnlock()
			return value, nil
		}
		c.mu.RUnlock()

		value, err := construct()
		if err != nil {
			return value, err
		}

		c.mu.Lock()
		c.entries[key] = value
		c.mu.Unlock()
		return value, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return result.(V), nil
}

func (c *memoCache[K, V]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// formatterCache owns every native formatter handle the process constructs.
// Callers receive shared references and must never close them; the cache
// releases handles only at process exit via normal teardown.
var (
	dateFormatterCache     = newMemoCache[Signature, *DateFormatter]()
	numberFormatterCache   = newMemoCache[Signature, *NumberFormatter]()
	listFormatterCache     = newMemoCache[Signature, *ListFormatter]()
	relativeFormatterCache = newMemoCache[Signature, *RelativeFormatter]()
)

type patternKey struct {
	locale   string
	calendar string
	skeleton string
}

var bestPatternCache = newMemoCache[patternKey, string]()

func cachedBestPattern(engine Engine, locale, calendar, skeleton string) (string, error) {
	key := patternKey{locale: locale, calendar: calendar, skeleton: skeleton}
	return bestPatternCache.getOrCreate(key, locale+"\x1f"+calendar+"\x1f"+skeleton, func() (string, error) {
		pattern, status := engine.BestPattern(locale, calendar, skeleton)
		if status.Failure() {
			return "", statusError(status)
		}
		return pattern, nil
	})
}

// DateFormatterFor returns the shared date formatter for the signature,
// constructing it at most once per distinct signature.
func DateFormatterFor(engine Engine, sig Signature) (*DateFormatter, error) {
	return dateFormatterCache.getOrCreate(sig, "date\x1f"+sig.cacheKey(), func() (*DateFormatter, error) {
		handle, status := engine.OpenDateFormatter(sig)
		if status.Failure() {
			return nil, statusError(status)
		}
		if handle == nil {
			// Success status with no handle is a programming defect in the
			// engine, not a recoverable condition.
			panic("formatstyle: engine returned success with nil date handle")
		}
		return &DateFormatter{handle: handle, sig: sig}, nil
	})
}

// NumberFormatterFor returns the shared number formatter for the signature.
// The signature's Pattern field carries the compiled number skeleton.
func NumberFormatterFor(engine Engine, sig Signature) (*NumberFormatter, error) {
	return numberFormatterCache.getOrCreate(sig, "number\x1f"+sig.cacheKey(), func() (*NumberFormatter, error) {
		handle, status := engine.OpenNumberFormatter(sig)
		if status.Failure() {
			return nil, statusError(status)
		}
		if handle == nil {
			panic("formatstyle: engine returned success with nil number handle")
		}
		return &NumberFormatter{handle: handle, sig: sig}, nil
	})
}

// ListFormatterFor returns the shared list formatter for the signature.
func ListFormatterFor(engine Engine, sig Signature) (*ListFormatter, error) {
	return listFormatterCache.getOrCreate(sig, "list\x1f"+sig.cacheKey(), func() (*ListFormatter, error) {
		handle, status := engine.OpenListFormatter(sig)
		if status.Failure() {
			return nil, statusError(status)
		}
		if handle == nil {
			panic("formatstyle: engine returned success with nil list handle")
		}
		return &ListFormatter{handle: handle, sig: sig}, nil
	})
}

// RelativeFormatterFor returns the shared relative-date formatter for the
// signature.
func RelativeFormatterFor(engine Engine, sig Signature) (*RelativeFormatter, error) {
	return relativeFormatterCache.getOrCreate(sig, "relative\x1f"+sig.cacheKey(), func() (*RelativeFormatter, error) {
		handle, status := engine.OpenRelativeFormatter(sig)
		if status.Failure() {
			return nil, statusError(status)
		}
		if handle == nil {
			panic("formatstyle: engine returned success with nil relative handle")
		}
		return &RelativeFormatter{handle: handle, sig: sig}, nil
	})
}
