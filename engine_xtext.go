package formatstyle

import (
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// XTextEngine is the reference locale engine, backed by golang.org/x/text
// for locale tags, number rendering and currency metadata, and by the
// calendar bundles for names and patterns.
type XTextEngine struct {
	bundles *BundleProvider
}

// EngineOption configures engine construction.
type EngineOption func(*XTextEngine)

// WithBundleProvider swaps the engine's bundle source.
func WithBundleProvider(provider *BundleProvider) EngineOption {
	return func(e *XTextEngine) {
		if provider != nil {
			e.bundles = provider
		}
	}
}

// NewXTextEngine builds an engine with the built-in bundles.
func NewXTextEngine(opts ...EngineOption) *XTextEngine {
	engine := &XTextEngine{bundles: NewBundleProvider(nil)}
	for _, opt := range opts {
		if opt != nil {
			opt(engine)
		}
	}
	return engine
}

var defaultEngineInstance = NewXTextEngine()

// DefaultEngine returns the shared process-wide engine.
func DefaultEngine() Engine {
	return defaultEngineInstance
}

// bundleFor resolves locale data with a root fallback so formatting always
// has names to draw from.
func (e *XTextEngine) bundleFor(locale string) *CalendarBundle {
	if bundle := e.bundles.Get(locale); bundle != nil {
		return bundle
	}
	return e.bundles.Get("en")
}

// skeletonRun is one same-letter run of a parsed skeleton or pattern.
type skeletonRun struct {
	char  byte
	width int
}

func parseSkeletonRuns(skeleton string) []skeletonRun {
	var runs []skeletonRun
	for i := 0; i < len(skeleton); {
		c := skeleton[i]
		j := i
		for j < len(skeleton) && skeleton[j] == c {
			j++
		}
		runs = append(runs, skeletonRun{char: c, width: j - i})
		i = j
	}
	return runs
}

func isDateFieldChar(c byte) bool {
	switch c {
	case 'G', 'y', 'u', 'r', 'Q', 'M', 'L', 'w', 'W', 'd', 'D', 'E', 'c', 'e':
		return true
	}
	return false
}

func isTimeFieldChar(c byte) bool {
	switch c {
	case 'a', 'h', 'H', 'K', 'k', 'm', 's', 'S', 'z', 'v', 'V', 'O', 'x', 'X', 'Z':
		return true
	}
	return false
}

// lookupKey normalizes a skeleton run to the width class used by the
// available-formats table: numeric fields collapse to width one, text fields
// keep their width.
func (r skeletonRun) lookupKey() string {
	switch r.char {
	case 'M', 'L':
		if r.width <= 2 {
			return "M"
		}
		return strings.Repeat("M", r.width)
	case 'E', 'c', 'e':
		return "E"
	case 'y', 'u', 'r':
		return "y"
	case 'h', 'K':
		return "h"
	case 'H', 'k':
		return "H"
	case 'z', 'v', 'V', 'O', 'x', 'X', 'Z':
		return "z"
	default:
		return string(r.char)
	}
}

// BestPattern resolves a skeleton into the locale's pattern arrangement:
// available-formats lookup first (with field widths re-applied from the
// request), deterministic composition otherwise. The compiler never
// hand-authors final arrangement; it always comes through here.
func (e *XTextEngine) BestPattern(locale, calendar, skeleton string) (string, Status) {
	if calendar != "" && calendar != "gregorian" {
		return "", StatusUnsupported
	}
	if skeleton == "" {
		return "", StatusIllegalArg
	}
	bundle := e.bundleFor(locale)
	runs := parseSkeletonRuns(skeleton)

	var dateRuns, timeRuns []skeletonRun
	for _, run := range runs {
		switch {
		case isDateFieldChar(run.char):
			dateRuns = append(dateRuns, run)
		case isTimeFieldChar(run.char):
			timeRuns = append(timeRuns, run)
		default:
			return "", StatusIllegalArg
		}
	}

	datePart := e.resolvePart(bundle, dateRuns)
	timePart := e.resolvePart(bundle, timeRuns)
	switch {
	case datePart == "":
		return timePart, StatusOK
	case timePart == "":
		return datePart, StatusOK
	default:
		return datePart + ", " + timePart, StatusOK
	}
}

func (e *XTextEngine) resolvePart(bundle *CalendarBundle, runs []skeletonRun) string {
	if len(runs) == 0 {
		return ""
	}
	var key strings.Builder
	for _, run := range runs {
		key.WriteString(run.lookupKey())
	}
	if pattern, ok := bundle.AvailableFormats[key.String()]; ok {
		return applyRunWidths(pattern, runs)
	}

	// Table keys may list the same fields in a different order; compare
	// order-insensitively before giving up on the table.
	want := canonicalLookupKey(runs)
	for dataKey, pattern := range bundle.AvailableFormats {
		if canonicalLookupKey(parseSkeletonRuns(dataKey)) == want {
			return applyRunWidths(pattern, runs)
		}
	}
	return composePart(bundle, runs)
}

// fieldClassOrder ranks normalized field classes largest to smallest so
// lookup keys compare independent of the order fields were requested in.
func fieldClassOrder(c byte) int {
	switch c {
	case 'G':
		return 0
	case 'y':
		return 1
	case 'Q':
		return 2
	case 'M':
		return 3
	case 'w', 'W':
		return 4
	case 'd':
		return 5
	case 'D':
		return 6
	case 'E':
		return 7
	case 'a':
		return 8
	case 'h', 'H':
		return 9
	case 'm':
		return 10
	case 's':
		return 11
	case 'S':
		return 12
	default:
		return 13
	}
}

func canonicalLookupKey(runs []skeletonRun) string {
	keys := make([]string, len(runs))
	for i, run := range runs {
		keys[i] = run.lookupKey()
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return fieldClassOrder(keys[i][0]) < fieldClassOrder(keys[j][0])
	})
	return strings.Join(keys, "")
}

// applyRunWidths rewrites pattern field runs to the widths the request asked
// for, leaving quoted literals untouched. Only same-class substitutions
// happen: numeric widths adjust numeric runs, text widths adjust text runs.
func applyRunWidths(pattern string, runs []skeletonRun) string {
	widths := make(map[byte]int, len(runs))
	for _, run := range runs {
		widths[normalizePatternChar(run.char)] = run.width
	}

	var b strings.Builder
	inQuote := false
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if c == '\'' {
			b.WriteByte(c)
			i++
			inQuote = !inQuote
			continue
		}
		if inQuote || !isPatternLetter(c) {
			b.WriteByte(c)
			i++
			continue
		}
		j := i
		for j < len(pattern) && pattern[j] == c {
			j++
		}
		width := j - i
		// Hour runs keep the pattern's own width; the locale decides hour
		// padding, not the request.
		if c != 'h' && c != 'H' && c != 'K' && c != 'k' {
			if requested, ok := widths[normalizePatternChar(c)]; ok && compatibleWidths(width, requested) {
				width = requested
			}
		}
		b.WriteString(strings.Repeat(string(c), width))
		i = j
	}
	return b.String()
}

func normalizePatternChar(c byte) byte {
	switch c {
	case 'u', 'r':
		return 'y'
	case 'L':
		return 'M'
	case 'c', 'e':
		return 'E'
	case 'K':
		return 'h'
	case 'k':
		return 'H'
	}
	return c
}

func isPatternLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// compatibleWidths keeps numeric and text renditions in their own class:
// widths 1-2 are numeric, 3+ are text.
func compatibleWidths(have, want int) bool {
	return (have <= 2) == (want <= 2)
}

// composePart builds a pattern for a field set with no available-formats
// entry. The arrangement is deterministic and driven by the bundle's field
// order preferences.
func composePart(bundle *CalendarBundle, runs []skeletonRun) string {
	fields := make(map[byte]int, len(runs))
	for _, run := range runs {
		fields[normalizePatternChar(run.char)] = run.width
	}

	if _, ok := fields['h']; ok || hasKey(fields, 'H') {
		return composeTimePart(bundle, fields)
	}
	return composeDatePart(bundle, fields)
}

func hasKey(fields map[byte]int, c byte) bool {
	_, ok := fields[c]
	return ok
}

func repeatField(c byte, width int) string {
	if width < 1 {
		width = 1
	}
	return strings.Repeat(string(c), width)
}

func composeDatePart(bundle *CalendarBundle, fields map[byte]int) string {
	var core string
	monthWidth, hasMonth := fields['M']
	dayWidth, hasDay := fields['d']
	yearWidth, hasYear := fields['y']

	switch {
	case hasMonth && monthWidth >= 3:
		month := repeatField('M', monthWidth)
		switch {
		case hasDay && bundle.DayFirst:
			core = repeatField('d', dayWidth) + " " + month
		case hasDay:
			core = month + " " + repeatField('d', dayWidth)
		default:
			core = month
		}
		if hasYear {
			if bundle.DayFirst || !hasDay {
				core += " " + repeatField('y', yearWidth)
			} else {
				core += ", " + repeatField('y', yearWidth)
			}
		}
	case hasMonth || hasDay || hasYear:
		sep := bundle.NumericDateSep
		if sep == "" {
			sep = "/"
		}
		var parts []string
		if bundle.DayFirst {
			if hasDay {
				parts = append(parts, repeatField('d', dayWidth))
			}
			if hasMonth {
				parts = append(parts, repeatField('M', monthWidth))
			}
		} else {
			if hasMonth {
				parts = append(parts, repeatField('M', monthWidth))
			}
			if hasDay {
				parts = append(parts, repeatField('d', dayWidth))
			}
		}
		if hasYear {
			parts = append(parts, repeatField('y', yearWidth))
		}
		core = strings.Join(parts, sep)
	}

	if width, ok := fields['D']; ok {
		if core != "" {
			core += " (" + repeatField('D', width) + ")"
		} else {
			core = repeatField('D', width)
		}
	}
	if width, ok := fields['w']; ok {
		if core != "" {
			core += " 'W'" + repeatField('w', width)
		} else {
			core = "'W'" + repeatField('w', width)
		}
	}
	if width, ok := fields['Q']; ok {
		if core != "" {
			core = repeatField('Q', width) + " " + core
		} else {
			core = repeatField('Q', width)
		}
	}
	if width, ok := fields['E']; ok {
		symbol := repeatField('E', width)
		if width <= 2 {
			symbol = repeatField('E', 3)
		}
		if core != "" {
			core = symbol + ", " + core
		} else {
			core = symbol
		}
	}
	if width, ok := fields['G']; ok {
		if core != "" {
			core += " " + repeatField('G', width)
		} else {
			core = repeatField('G', width)
		}
	}
	return core
}

func composeTimePart(bundle *CalendarBundle, fields map[byte]int) string {
	var b strings.Builder
	twelve := hasKey(fields, 'h')
	if twelve {
		b.WriteString(repeatField('h', fields['h']))
	} else {
		b.WriteString(repeatField('H', fields['H']))
	}
	if width, ok := fields['m']; ok {
		b.WriteString(":")
		b.WriteString(repeatField('m', max(width, 2)))
	}
	if width, ok := fields['s']; ok {
		b.WriteString(":")
		b.WriteString(repeatField('s', max(width, 2)))
	}
	if width, ok := fields['S']; ok {
		b.WriteString(".")
		b.WriteString(repeatField('S', width))
	}
	if twelve || hasKey(fields, 'a') {
		b.WriteString(" ")
		b.WriteString(repeatField('a', fields['a']))
	}
	if width, ok := fields['z']; ok {
		b.WriteString(" ")
		b.WriteString(repeatField('z', width))
	}
	return b.String()
}

// TimeSkeleton returns the locale's duration time skeleton for "hm", "hms"
// or "ms".
func (e *XTextEngine) TimeSkeleton(locale, fields string) (string, Status) {
	bundle := e.bundleFor(locale)
	if bundle != nil {
		if skeleton, ok := bundle.DurationSkeletons[fields]; ok {
			return skeleton, StatusOK
		}
	}
	switch fields {
	case "hm":
		return "h:mm", StatusOK
	case "hms":
		return "h:mm:ss", StatusOK
	case "ms":
		return "m:ss", StatusOK
	default:
		return "", StatusIllegalArg
	}
}

func (e *XTextEngine) openCommon(sig Signature) (language.Tag, *CalendarBundle, *time.Location, Status) {
	if sig.Calendar != "" && sig.Calendar != "gregorian" {
		return language.Tag{}, nil, nil, StatusUnsupported
	}
	tag, err := language.Parse(sig.Locale)
	if err != nil {
		return language.Tag{}, nil, nil, StatusIllegalArg
	}

	// A nil location means "leave times in their own zone".
	var loc *time.Location
	if sig.TimeZone != "" {
		loc, err = time.LoadLocation(sig.TimeZone)
		if err != nil {
			return language.Tag{}, nil, nil, StatusInvalidFormat
		}
	}
	return tag, e.bundleFor(sig.Locale), loc, StatusOK
}

// OpenDateFormatter configures one date formatter handle. The handle is
// read-only after construction; per-call state lives on the stack.
func (e *XTextEngine) OpenDateFormatter(sig Signature) (DateEngineHandle, Status) {
	tag, bundle, loc, status := e.openCommon(sig)
	if status.Failure() {
		return nil, status
	}
	if sig.Pattern == "" {
		return nil, StatusIllegalArg
	}
	cutoff := sig.TwoDigitYearCutoff
	if cutoff == 0 {
		cutoff = DefaultTwoDigitYearCutoff
	}
	return &xtextDateHandle{
		pattern: sig.Pattern,
		bundle:  bundle,
		loc:     loc,
		lenient: sig.Lenient,
		cutoff:  cutoff,
		caser:   capCaser(tag, sig.Capitalization),
	}, StatusOK
}

// OpenNumberFormatter configures one number formatter handle; the signature's
// Pattern field carries the compiled number skeleton.
func (e *XTextEngine) OpenNumberFormatter(sig Signature) (NumberEngineHandle, Status) {
	tag, bundle, _, status := e.openCommon(sig)
	if status.Failure() {
		return nil, status
	}
	settings, ok := parseNumberSkeleton(sig.Pattern)
	if !ok {
		return nil, StatusIllegalArg
	}
	return newXTextNumberHandle(tag, bundle, settings, sig.Lenient), StatusOK
}

// OpenListFormatter configures one list formatter handle.
func (e *XTextEngine) OpenListFormatter(sig Signature) (ListEngineHandle, Status) {
	_, bundle, _, status := e.openCommon(sig)
	if status.Failure() {
		return nil, status
	}
	return &xtextListHandle{bundle: bundle}, StatusOK
}

// OpenRelativeFormatter configures one relative-date formatter handle.
func (e *XTextEngine) OpenRelativeFormatter(sig Signature) (RelativeEngineHandle, Status) {
	tag, bundle, _, status := e.openCommon(sig)
	if status.Failure() {
		return nil, status
	}
	return &xtextRelativeHandle{
		bundle: bundle,
		caser:  capCaser(tag, sig.Capitalization),
	}, StatusOK
}

// capCaser returns the first-letter caser for the capitalization context, or
// nil when the context leaves output untouched.
func capCaser(tag language.Tag, capitalization Capitalization) *cases.Caser {
	switch capitalization {
	case CapitalizationBeginningOfSentence, CapitalizationStandalone:
		caser := cases.Upper(tag)
		return &caser
	default:
		return nil
	}
}

func capitalizeFirst(caser *cases.Caser, text string) string {
	if caser == nil || text == "" {
		return text
	}
	for i, r := range text {
		if r == ' ' {
			continue
		}
		end := i + len(string(r))
		return text[:i] + caser.String(text[i:end]) + text[end:]
	}
	return text
}

// utf16Output accumulates formatted output as UTF-16 code units so the
// engine can report required lengths and field positions in code-unit
// indices.
type utf16Output struct {
	units     []uint16
	positions []FieldPosition
}

func (o *utf16Output) writeString(s string) {
	o.units = append(o.units, utf16.Encode([]rune(s))...)
}

func (o *utf16Output) writeField(field int, s string) {
	begin := len(o.units)
	o.writeString(s)
	o.positions = append(o.positions, FieldPosition{Field: field, Begin: begin, End: len(o.units)})
}

// flush copies the accumulated output into the caller's buffer, honoring the
// engine's overflow convention: when buf is too small nothing is copied and
// the required length comes back with StatusBufferOverflow.
func (o *utf16Output) flush(buf []uint16, iter *FieldIterator) (int, Status) {
	n := len(o.units)
	if n > len(buf) {
		return n, StatusBufferOverflow
	}
	copy(buf, o.units)
	if iter != nil {
		for _, p := range o.positions {
			iter.add(p.Field, p.Begin, p.End)
		}
	}
	return n, StatusOK
}

func (o *utf16Output) text() string {
	return string(utf16.Decode(o.units))
}

func (o *utf16Output) applyCapitalization(caser *cases.Caser) {
	if caser == nil || len(o.units) == 0 {
		return
	}
	capped := capitalizeFirst(caser, o.text())
	recapped := utf16.Encode([]rune(capped))
	if len(recapped) == len(o.units) {
		o.units = recapped
	}
}

// xtextListHandle joins items with the locale's list patterns.
type xtextListHandle struct {
	bundle *CalendarBundle
}

func (h *xtextListHandle) Format(items []string, buf []uint16, iter *FieldIterator) (int, Status) {
	var out utf16Output
	out.writeString(joinList(h.bundle.List, items))
	return out.flush(buf, iter)
}

func (h *xtextListHandle) Close() {}

func joinList(patterns ListPatterns, items []string) string {
	pair := patterns.Pair
	start := patterns.Start
	middle := patterns.Middle
	end := patterns.End
	if end == "" {
		end = pair
	}

	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return applyJoinPattern(pair, items[0], items[1])
	default:
		if start == "" || middle == "" {
			head := strings.Join(items[:len(items)-1], ", ")
			return applyJoinPattern(end, head, items[len(items)-1])
		}
		result := applyJoinPattern(start, items[0], items[1])
		for i := 2; i < len(items)-1; i++ {
			result = applyJoinPattern(middle, result, items[i])
		}
		return applyJoinPattern(end, result, items[len(items)-1])
	}
}

func applyJoinPattern(pattern, head, tail string) string {
	result := strings.ReplaceAll(pattern, "{0}", head)
	return strings.ReplaceAll(result, "{1}", tail)
}

// xtextRelativeHandle renders relative-date vocabulary.
type xtextRelativeHandle struct {
	bundle *CalendarBundle
	caser  *cases.Caser
}

func (h *xtextRelativeHandle) Format(component RelativeComponent, value int, named bool, buf []uint16, iter *FieldIterator) (int, Status) {
	vocab, ok := h.bundle.Relative[component.name()]
	if !ok {
		return 0, StatusUnsupported
	}

	var text string
	if named {
		if idiom, ok := vocab.Named[value]; ok {
			text = idiom
		}
	}
	if text == "" {
		text = numericRelative(vocab, value)
	}

	var out utf16Output
	out.writeString(text)
	out.applyCapitalization(h.caser)
	return out.flush(buf, iter)
}

func (h *xtextRelativeHandle) Close() {}

func numericRelative(vocab RelativeVocab, value int) string {
	template := vocab.Future
	magnitude := value
	if value < 0 {
		template = vocab.Past
		magnitude = -value
	}
	if magnitude == 1 {
		if value < 0 && vocab.PastOne != "" {
			template = vocab.PastOne
		} else if value > 0 && vocab.FutureOne != "" {
			template = vocab.FutureOne
		}
	}
	return strings.ReplaceAll(template, "{0}", strconv.Itoa(magnitude))
}
