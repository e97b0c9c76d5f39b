package formatstyle

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// xtextDateHandle interprets one compiled date pattern. The handle is
// immutable after open; Format and Parse keep per-call state on the stack so
// a handle is safe for concurrent use.
type xtextDateHandle struct {
	pattern string
	bundle  *CalendarBundle
	loc     *time.Location
	lenient bool
	cutoff  int
	caser   *cases.Caser
}

func (h *xtextDateHandle) Close() {}

func (h *xtextDateHandle) Format(t time.Time, buf []uint16, iter *FieldIterator) (int, Status) {
	if h.loc != nil {
		t = t.In(h.loc)
	}
	var out utf16Output

	for i := 0; i < len(h.pattern); {
		c := h.pattern[i]
		if c == '\'' {
			literal, next, ok := readQuoted(h.pattern, i)
			if !ok {
				return 0, StatusInvalidFormat
			}
			out.writeString(literal)
			i = next
			continue
		}
		if !isPatternLetter(c) {
			j := i
			for j < len(h.pattern) && !isPatternLetter(h.pattern[j]) && h.pattern[j] != '\'' {
				j++
			}
			out.writeString(h.pattern[i:j])
			i = j
			continue
		}
		j := i
		for j < len(h.pattern) && h.pattern[j] == c {
			j++
		}
		text, field, status := h.formatField(t, c, j-i)
		if status.Failure() {
			return 0, status
		}
		out.writeField(field, text)
		i = j
	}

	out.applyCapitalization(h.caser)
	return out.flush(buf, iter)
}

// readQuoted consumes a quoted literal starting at the opening quote. A
// doubled quote inside (or the bare pair '') yields a literal apostrophe.
func readQuoted(pattern string, start int) (string, int, bool) {
	if start+1 < len(pattern) && pattern[start+1] == '\'' {
		return "'", start + 2, true
	}
	var b strings.Builder
	i := start + 1
	for i < len(pattern) {
		if pattern[i] == '\'' {
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			return b.String(), i + 1, true
		}
		b.WriteByte(pattern[i])
		i++
	}
	return "", 0, false
}

func padNumber(v, width int) string {
	if v < 0 {
		v = -v
	}
	return fmt.Sprintf("%0*d", width, v)
}

func (h *xtextDateHandle) formatField(t time.Time, c byte, width int) (string, int, Status) {
	switch c {
	case 'G':
		names := h.bundle.Eras
		if width >= 4 && len(h.bundle.ErasWide) == 2 {
			names = h.bundle.ErasWide
		}
		idx := 1
		if t.Year() <= 0 {
			idx = 0
		}
		if len(names) != 2 {
			return "", 0, StatusInternal
		}
		return names[idx], engFieldEra, StatusOK
	case 'y':
		year := t.Year()
		if year <= 0 {
			year = 1 - year
		}
		if width == 2 {
			return padNumber(year%100, 2), engFieldYear, StatusOK
		}
		return padNumber(year, width), engFieldYear, StatusOK
	case 'u':
		return padNumber(t.Year(), width), engFieldYear, StatusOK
	case 'r':
		return padNumber(t.Year(), width), engFieldRelated, StatusOK
	case 'Q':
		q := (int(t.Month())-1)/3 + 1
		switch {
		case width <= 2:
			return padNumber(q, width), engFieldQuarter, StatusOK
		case width == 3:
			return indexName(h.bundle.QuartersAbbrev, q-1, "Q"+padNumber(q, 1)), engFieldQuarter, StatusOK
		default:
			return indexName(h.bundle.QuartersWide, q-1, "Q"+padNumber(q, 1)), engFieldQuarter, StatusOK
		}
	case 'M', 'L':
		m := int(t.Month())
		switch {
		case width <= 2:
			return padNumber(m, width), engFieldMonth, StatusOK
		case width == 3:
			return indexName(h.bundle.MonthsAbbrev, m-1, padNumber(m, 1)), engFieldMonth, StatusOK
		case width == 4:
			return indexName(h.bundle.MonthsWide, m-1, padNumber(m, 1)), engFieldMonth, StatusOK
		default:
			return indexName(h.bundle.MonthsNarrow, m-1, padNumber(m, 1)), engFieldMonth, StatusOK
		}
	case 'w':
		_, week := t.ISOWeek()
		return padNumber(week, width), engFieldWeekOfYear, StatusOK
	case 'W':
		return padNumber((t.Day()-1)/7+1, width), engFieldWeekOfYear, StatusOK
	case 'd':
		return padNumber(t.Day(), width), engFieldDate, StatusOK
	case 'D':
		return padNumber(t.YearDay(), width), engFieldDayOfYear, StatusOK
	case 'E', 'c', 'e':
		wd := int(t.Weekday())
		if (c == 'e' || c == 'c') && width <= 2 {
			return padNumber(wd+1, width), engFieldDayOfWeek, StatusOK
		}
		switch {
		case width <= 3:
			return indexName(h.bundle.WeekdaysAbbrev, wd, t.Weekday().String()[:3]), engFieldDayOfWeek, StatusOK
		case width == 4:
			return indexName(h.bundle.WeekdaysWide, wd, t.Weekday().String()), engFieldDayOfWeek, StatusOK
		case width == 5:
			return indexName(h.bundle.WeekdaysNarrow, wd, t.Weekday().String()[:1]), engFieldDayOfWeek, StatusOK
		default:
			return indexName(h.bundle.WeekdaysAbbrev, wd, t.Weekday().String()[:3]), engFieldDayOfWeek, StatusOK
		}
	case 'a':
		periods := h.bundle.DayPeriods
		if len(periods) != 2 {
			periods = []string{"AM", "PM"}
		}
		if t.Hour() < 12 {
			return periods[0], engFieldAMPM, StatusOK
		}
		return periods[1], engFieldAMPM, StatusOK
	case 'h':
		hr := t.Hour() % 12
		if hr == 0 {
			hr = 12
		}
		return padNumber(hr, width), engFieldHour1, StatusOK
	case 'H':
		return padNumber(t.Hour(), width), engFieldHourOfDay0, StatusOK
	case 'K':
		return padNumber(t.Hour()%12, width), engFieldHour0, StatusOK
	case 'k':
		hr := t.Hour()
		if hr == 0 {
			hr = 24
		}
		return padNumber(hr, width), engFieldHourOfDay1, StatusOK
	case 'm':
		return padNumber(t.Minute(), width), engFieldMinute, StatusOK
	case 's':
		return padNumber(t.Second(), width), engFieldSecond, StatusOK
	case 'S':
		frac := t.Nanosecond()
		text := fmt.Sprintf("%09d", frac)
		if width > 9 {
			width = 9
		}
		return text[:width], engFieldFraction, StatusOK
	case 'z', 'v':
		if width < 4 {
			name, _ := t.Zone()
			if name != "" && name[0] != '+' && name[0] != '-' {
				return name, engFieldTimeZone, StatusOK
			}
		}
		return gmtOffsetName(t, true), engFieldTimeZone, StatusOK
	case 'V':
		if width == 2 {
			return t.Location().String(), engFieldTimeZone, StatusOK
		}
		return gmtOffsetName(t, true), engFieldTimeZone, StatusOK
	case 'O':
		return gmtOffsetName(t, width >= 4), engFieldTimeZone, StatusOK
	case 'x', 'X':
		return isoOffsetName(t, width, c == 'X'), engFieldTimeZone, StatusOK
	case 'Z':
		if width >= 4 {
			return gmtOffsetName(t, true), engFieldTimeZone, StatusOK
		}
		return isoOffsetName(t, 1, false), engFieldTimeZone, StatusOK
	default:
		return "", 0, StatusInvalidFormat
	}
}

func indexName(names []string, idx int, fallback string) string {
	if idx >= 0 && idx < len(names) {
		return names[idx]
	}
	return fallback
}

func gmtOffsetName(t time.Time, long bool) string {
	_, offset := t.Zone()
	if offset == 0 {
		return "GMT"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	if !long && minutes == 0 {
		return fmt.Sprintf("GMT%s%d", sign, hours)
	}
	return fmt.Sprintf("GMT%s%02d:%02d", sign, hours, minutes)
}

func isoOffsetName(t time.Time, width int, zForZero bool) string {
	_, offset := t.Zone()
	if offset == 0 && zForZero {
		return "Z"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	switch width {
	case 1:
		if minutes == 0 {
			return fmt.Sprintf("%s%02d", sign, hours)
		}
		return fmt.Sprintf("%s%02d%02d", sign, hours, minutes)
	case 2, 4:
		return fmt.Sprintf("%s%02d%02d", sign, hours, minutes)
	default:
		return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
	}
}

// parsedDate accumulates fields while walking the pattern during parse.
type parsedDate struct {
	year      int
	hasYear   bool
	twoDigit  bool
	era       int
	hasEra    bool
	month     int
	hasMonth  bool
	day       int
	hasDay    bool
	dayOfYear int
	hasDoy    bool
	hour      int
	hour12    bool
	pm        bool
	hasPeriod bool
	minute    int
	second    int
	nanos     int
	loc       *time.Location
}

func (h *xtextDateHandle) Parse(text string, pos *int) (time.Time, Status) {
	start := *pos
	p := parsedDate{year: 1970, month: 1, day: 1, loc: h.loc}
	if p.loc == nil {
		p.loc = time.UTC
	}
	cursor := start

	for i := 0; i < len(h.pattern); {
		c := h.pattern[i]
		if c == '\'' {
			literal, next, ok := readQuoted(h.pattern, i)
			if !ok || !h.consumeLiteral(text, &cursor, literal) {
				*pos = start
				return time.Time{}, StatusParse
			}
			i = next
			continue
		}
		if !isPatternLetter(c) {
			j := i
			for j < len(h.pattern) && !isPatternLetter(h.pattern[j]) && h.pattern[j] != '\'' {
				j++
			}
			if !h.consumeLiteral(text, &cursor, h.pattern[i:j]) {
				*pos = start
				return time.Time{}, StatusParse
			}
			i = j
			continue
		}
		j := i
		for j < len(h.pattern) && h.pattern[j] == c {
			j++
		}
		if !h.parseField(text, &cursor, &p, c, j-i) {
			*pos = start
			return time.Time{}, StatusParse
		}
		i = j
	}

	result, ok := p.resolve(h.cutoff)
	if !ok || cursor == start {
		*pos = start
		return time.Time{}, StatusParse
	}
	*pos = cursor
	return result, StatusOK
}

// consumeLiteral matches literal pattern text. Lenient parsing treats any
// whitespace run as equivalent and tolerates a missing trailing space.
func (h *xtextDateHandle) consumeLiteral(text string, cursor *int, literal string) bool {
	for k := 0; k < len(literal); k++ {
		if literal[k] == ' ' {
			if h.lenient {
				for *cursor < len(text) && text[*cursor] == ' ' {
					*cursor++
				}
				continue
			}
		}
		if *cursor >= len(text) || text[*cursor] != literal[k] {
			if h.lenient && (literal[k] == ',' || literal[k] == '.') {
				continue
			}
			return false
		}
		*cursor++
	}
	return true
}

func parseDigits(text string, cursor *int, maxDigits int) (int, bool) {
	startAt := *cursor
	v := 0
	for *cursor < len(text) && *cursor-startAt < maxDigits {
		c := text[*cursor]
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int(c-'0')
		*cursor++
	}
	return v, *cursor > startAt
}

// matchName finds the longest candidate matching at cursor. Lenient parsing
// compares case-insensitively.
func (h *xtextDateHandle) matchName(text string, cursor *int, candidates []string) (int, bool) {
	best, bestLen := -1, 0
	rest := text[*cursor:]
	for idx, candidate := range candidates {
		if candidate == "" || len(candidate) < bestLen {
			continue
		}
		if len(rest) < len(candidate) {
			continue
		}
		head := rest[:len(candidate)]
		if head == candidate || (h.lenient && strings.EqualFold(head, candidate)) {
			best, bestLen = idx, len(candidate)
		}
	}
	if best < 0 {
		return 0, false
	}
	*cursor += bestLen
	return best, true
}

func (h *xtextDateHandle) parseField(text string, cursor *int, p *parsedDate, c byte, width int) bool {
	switch c {
	case 'G':
		names := h.bundle.Eras
		if width >= 4 && len(h.bundle.ErasWide) == 2 {
			names = h.bundle.ErasWide
		}
		idx, ok := h.matchName(text, cursor, names)
		if !ok && h.lenient {
			idx, ok = h.matchName(text, cursor, h.bundle.ErasWide)
		}
		if !ok {
			return false
		}
		p.era, p.hasEra = idx, true
		return true
	case 'y', 'u', 'r':
		maxDigits := 4
		if width > 4 {
			maxDigits = width
		}
		if c == 'y' && width == 2 && !h.lenient {
			maxDigits = 2
		}
		v, ok := parseDigits(text, cursor, maxDigits)
		if !ok {
			return false
		}
		p.year, p.hasYear = v, true
		p.twoDigit = c == 'y' && width == 2 && v < 100
		return true
	case 'Q':
		if width <= 2 {
			_, ok := parseDigits(text, cursor, 2)
			return ok
		}
		names := h.bundle.QuartersAbbrev
		if width >= 4 {
			names = h.bundle.QuartersWide
		}
		_, ok := h.matchName(text, cursor, names)
		return ok
	case 'M', 'L':
		if width <= 2 {
			v, ok := parseDigits(text, cursor, 2)
			if !ok || v < 1 || v > 12 {
				return false
			}
			p.month, p.hasMonth = v, true
			return true
		}
		names := h.bundle.MonthsAbbrev
		switch {
		case width == 4:
			names = h.bundle.MonthsWide
		case width >= 5:
			names = h.bundle.MonthsNarrow
		}
		idx, ok := h.matchName(text, cursor, names)
		if !ok && h.lenient {
			idx, ok = h.matchName(text, cursor, h.bundle.MonthsWide)
		}
		if !ok {
			return false
		}
		p.month, p.hasMonth = idx+1, true
		return true
	case 'w', 'W':
		_, ok := parseDigits(text, cursor, 2)
		return ok
	case 'd':
		v, ok := parseDigits(text, cursor, 2)
		if !ok || v < 1 || v > 31 {
			return false
		}
		p.day, p.hasDay = v, true
		return true
	case 'D':
		v, ok := parseDigits(text, cursor, 3)
		if !ok || v < 1 || v > 366 {
			return false
		}
		p.dayOfYear, p.hasDoy = v, true
		return true
	case 'E', 'c', 'e':
		if (c == 'e' || c == 'c') && width <= 2 {
			_, ok := parseDigits(text, cursor, 2)
			return ok
		}
		names := h.bundle.WeekdaysAbbrev
		switch {
		case width == 4:
			names = h.bundle.WeekdaysWide
		case width == 5:
			names = h.bundle.WeekdaysNarrow
		}
		_, ok := h.matchName(text, cursor, names)
		if !ok && h.lenient {
			_, ok = h.matchName(text, cursor, h.bundle.WeekdaysWide)
		}
		return ok
	case 'a':
		periods := h.bundle.DayPeriods
		if len(periods) != 2 {
			periods = []string{"AM", "PM"}
		}
		idx, ok := h.matchName(text, cursor, periods)
		if !ok && h.lenient {
			idx, ok = h.matchName(text, cursor, []string{"AM", "PM"})
		}
		if !ok {
			return false
		}
		p.pm, p.hasPeriod = idx == 1, true
		return true
	case 'h', 'K':
		v, ok := parseDigits(text, cursor, 2)
		if !ok || v > 12 {
			return false
		}
		p.hour, p.hour12 = v, true
		return true
	case 'H', 'k':
		v, ok := parseDigits(text, cursor, 2)
		if !ok || v > 24 {
			return false
		}
		if v == 24 {
			v = 0
		}
		p.hour, p.hour12 = v, false
		return true
	case 'm':
		v, ok := parseDigits(text, cursor, 2)
		if !ok || v > 59 {
			return false
		}
		p.minute = v
		return true
	case 's':
		v, ok := parseDigits(text, cursor, 2)
		if !ok || v > 60 {
			return false
		}
		p.second = v
		return true
	case 'S':
		startAt := *cursor
		v, ok := parseDigits(text, cursor, 9)
		if !ok {
			return false
		}
		digits := *cursor - startAt
		for digits < 9 {
			v *= 10
			digits++
		}
		p.nanos = v
		return true
	case 'z', 'v', 'V', 'O', 'x', 'X', 'Z':
		return h.parseZone(text, cursor, p)
	default:
		return false
	}
}

// parseZone accepts Z, GMT, GMT+h[:mm], +hh[:mm][ss] and a zone abbreviation
// matching the handle's configured location.
func (h *xtextDateHandle) parseZone(text string, cursor *int, p *parsedDate) bool {
	rest := text[*cursor:]
	if strings.HasPrefix(rest, "Z") {
		p.loc = time.UTC
		*cursor++
		return true
	}
	if h.loc != nil {
		if name, _ := time.Now().In(h.loc).Zone(); name != "" && strings.HasPrefix(rest, name) {
			*cursor += len(name)
			return true
		}
	}
	if strings.HasPrefix(rest, "GMT") || strings.HasPrefix(rest, "UTC") {
		*cursor += 3
		rest = text[*cursor:]
		if len(rest) == 0 || (rest[0] != '+' && rest[0] != '-') {
			p.loc = time.UTC
			return true
		}
	}
	if len(rest) == 0 || (rest[0] != '+' && rest[0] != '-') {
		return false
	}
	sign := 1
	if rest[0] == '-' {
		sign = -1
	}
	*cursor++
	hours, ok := parseDigits(text, cursor, 2)
	if !ok || hours > 14 {
		return false
	}
	minutes := 0
	if *cursor < len(text) && text[*cursor] == ':' {
		*cursor++
		minutes, ok = parseDigits(text, cursor, 2)
		if !ok {
			return false
		}
	} else if *cursor+1 < len(text) && isDigit(text[*cursor]) && isDigit(text[*cursor+1]) {
		minutes, _ = parseDigits(text, cursor, 2)
	}
	offset := sign * (hours*3600 + minutes*60)
	p.loc = time.FixedZone(gmtOffsetLabel(offset), offset)
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func gmtOffsetLabel(offset int) string {
	sign := "+"
	v := offset
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("GMT%s%02d:%02d", sign, v/3600, (v%3600)/60)
}

// resolve assembles the parsed fields into a concrete time. Two-digit years
// map into the century window starting at the cutoff; day-of-year wins over
// month and day when both were captured.
func (p *parsedDate) resolve(cutoff int) (time.Time, bool) {
	year := p.year
	if p.twoDigit {
		year = cutoff - cutoff%100 + p.year
		if year < cutoff {
			year += 100
		}
	}
	if p.hasEra && p.era == 0 {
		year = 1 - year
	}

	hour := p.hour
	if p.hour12 {
		if hour == 12 {
			hour = 0
		}
		if p.hasPeriod && p.pm {
			hour += 12
		}
	}

	if p.hasDoy && !p.hasMonth {
		base := time.Date(year, 1, 1, hour, p.minute, p.second, p.nanos, p.loc)
		return base.AddDate(0, 0, p.dayOfYear-1), true
	}

	result := time.Date(year, time.Month(p.month), p.day, hour, p.minute, p.second, p.nanos, p.loc)
	// Reject field overflow normalization (Feb 30 rolling into March).
	if p.hasDay && result.Day() != p.day {
		return time.Time{}, false
	}
	return result, true
}
