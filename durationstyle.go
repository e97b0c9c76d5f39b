package formatstyle

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DurationTimeFormatStyle renders durations in the locale's clock-like
// arrangement ("1:30:05"). The arrangement comes from the engine's duration
// time skeleton; the style only substitutes values.
type DurationTimeFormatStyle struct {
	locale     string
	fields     string
	padHour    int
	fracDigits int
	rounding   RoundingRule
	engine     Engine
}

// DurationHourMinute shows hours and minutes, rounding seconds away.
func DurationHourMinute() DurationTimeFormatStyle {
	return DurationTimeFormatStyle{locale: "en", fields: "hm", fracDigits: -1, engine: DefaultEngine()}
}

// DurationHourMinuteSecond shows hours, minutes and seconds.
func DurationHourMinuteSecond() DurationTimeFormatStyle {
	return DurationTimeFormatStyle{locale: "en", fields: "hms", fracDigits: 0, engine: DefaultEngine()}
}

// DurationMinuteSecond shows minutes and seconds, hours folded into minutes.
func DurationMinuteSecond() DurationTimeFormatStyle {
	return DurationTimeFormatStyle{locale: "en", fields: "ms", fracDigits: 0, engine: DefaultEngine()}
}

func (s DurationTimeFormatStyle) Locale(tag language.Tag) DurationTimeFormatStyle {
	s.locale = tag.String()
	return s
}

func (s DurationTimeFormatStyle) PadHourToLength(n int) DurationTimeFormatStyle {
	s.padHour = n
	return s
}

func (s DurationTimeFormatStyle) FractionalSecondsLength(n int) DurationTimeFormatStyle {
	s.fracDigits = n
	return s
}

func (s DurationTimeFormatStyle) Rounded(rule RoundingRule) DurationTimeFormatStyle {
	s.rounding = rule
	return s
}

func (s DurationTimeFormatStyle) WithEngine(engine Engine) DurationTimeFormatStyle {
	if engine != nil {
		s.engine = engine
	}
	return s
}

func (s DurationTimeFormatStyle) units() []DurationUnit {
	switch s.fields {
	case "hm":
		return []DurationUnit{UnitHours, UnitMinutes}
	case "ms":
		return []DurationUnit{UnitMinutes, UnitSeconds}
	default:
		return []DurationUnit{UnitHours, UnitMinutes, UnitSeconds}
	}
}

// Format renders d. The display path never fails; when the engine has no
// skeleton for the locale the style falls back to the plain colon
// arrangement.
func (s DurationTimeFormatStyle) Format(d time.Duration) string {
	engine := s.engine
	if engine == nil {
		engine = DefaultEngine()
	}
	skeleton, status := engine.TimeSkeleton(s.locale, s.fields)
	if status.Failure() || skeleton == "" {
		switch s.fields {
		case "hm":
			skeleton = "h:mm"
		case "ms":
			skeleton = "m:ss"
		default:
			skeleton = "h:mm:ss"
		}
	}

	negative := d < 0
	if negative {
		d = -d
	}
	fracDigits := s.fracDigits
	if fracDigits < 0 {
		fracDigits = 0
	}
	values := decomposeDuration(d, s.units(), fracDigits, s.rounding)

	text := s.renderSkeleton(skeleton, values, fracDigits)
	if negative && strings.Trim(text, "0:.,") != "" {
		return "-" + text
	}
	return text
}

// renderSkeleton walks the time skeleton substituting hour, minute and
// second runs; quoted sections pass through as literals.
func (s DurationTimeFormatStyle) renderSkeleton(skeleton string, values []float64, fracDigits int) string {
	units := s.units()
	byUnit := make(map[DurationUnit]float64, len(units))
	for i, unit := range units {
		byUnit[unit] = values[i]
	}

	var b strings.Builder
	for i := 0; i < len(skeleton); {
		c := skeleton[i]
		if c == '\'' {
			literal, next, ok := readQuoted(skeleton, i)
			if !ok {
				b.WriteString(skeleton[i:])
				break
			}
			b.WriteString(literal)
			i = next
			continue
		}
		if !isPatternLetter(c) {
			b.WriteByte(c)
			i++
			continue
		}
		j := i
		for j < len(skeleton) && skeleton[j] == c {
			j++
		}
		width := j - i
		switch c {
		case 'h', 'H', 'k', 'K':
			if width < s.padHour {
				width = s.padHour
			}
			b.WriteString(padNumber(int(byUnit[UnitHours]), width))
		case 'm':
			b.WriteString(padNumber(int(byUnit[UnitMinutes]), width))
		case 's':
			b.WriteString(renderSeconds(byUnit[UnitSeconds], width, fracDigits))
		}
		i = j
	}
	return b.String()
}

func renderSeconds(v float64, width, fracDigits int) string {
	text := strconv.FormatFloat(v, 'f', fracDigits, 64)
	intLen := len(text)
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		intLen = dot
	}
	for intLen < width {
		text = "0" + text
		intLen++
	}
	return text
}

// DurationUnitWidth selects the unit-name rendition.
type DurationUnitWidth int

const (
	UnitWidthWide DurationUnitWidth = iota
	UnitWidthAbbreviated
	UnitWidthNarrow
)

// DurationUnitsFormatStyle renders durations as named unit quantities
// ("1 hour, 30 minutes").
type DurationUnitsFormatStyle struct {
	locale        string
	allowed       []DurationUnit
	width         DurationUnitWidth
	maxUnits      int
	showZeroUnits bool
	fracDigits    int
	rounding      RoundingRule
	engine        Engine
}

func DurationUnits(allowed ...DurationUnit) DurationUnitsFormatStyle {
	if len(allowed) == 0 {
		allowed = []DurationUnit{UnitHours, UnitMinutes, UnitSeconds}
	}
	return DurationUnitsFormatStyle{
		locale:  "en",
		allowed: allowed,
		engine:  DefaultEngine(),
	}
}

func (s DurationUnitsFormatStyle) Locale(tag language.Tag) DurationUnitsFormatStyle {
	s.locale = tag.String()
	return s
}

func (s DurationUnitsFormatStyle) Width(w DurationUnitWidth) DurationUnitsFormatStyle {
	s.width = w
	return s
}

func (s DurationUnitsFormatStyle) MaximumUnitCount(n int) DurationUnitsFormatStyle {
	s.maxUnits = n
	return s
}

func (s DurationUnitsFormatStyle) ShowingZeroUnits() DurationUnitsFormatStyle {
	s.showZeroUnits = true
	return s
}

func (s DurationUnitsFormatStyle) FractionalPart(digits int) DurationUnitsFormatStyle {
	s.fracDigits = digits
	return s
}

func (s DurationUnitsFormatStyle) Rounded(rule RoundingRule) DurationUnitsFormatStyle {
	s.rounding = rule
	return s
}

func (s DurationUnitsFormatStyle) WithEngine(engine Engine) DurationUnitsFormatStyle {
	if engine != nil {
		s.engine = engine
	}
	return s
}

// Format renders d across the allowed units, largest first. Zero-valued
// leading units drop unless the style shows them; the smallest allowed unit
// always appears so a zero duration still renders.
func (s DurationUnitsFormatStyle) Format(d time.Duration) string {
	negative := d < 0
	if negative {
		d = -d
	}

	values := decomposeDuration(d, s.allowed, s.fracDigits, s.rounding)

	type part struct {
		unit  DurationUnit
		value float64
	}
	var parts []part
	for i, unit := range s.allowed {
		if !s.showZeroUnits && values[i] == 0 && !(i == len(s.allowed)-1 && len(parts) == 0) {
			continue
		}
		parts = append(parts, part{unit: unit, value: values[i]})
	}
	if s.maxUnits > 0 && len(parts) > s.maxUnits {
		// Re-decompose over the kept units so the truncated tail folds into
		// the last shown unit instead of vanishing.
		kept := make([]DurationUnit, s.maxUnits)
		for i := range kept {
			kept[i] = parts[i].unit
		}
		reValues := decomposeDuration(d, kept, s.fracDigits, s.rounding)
		parts = parts[:s.maxUnits]
		for i := range parts {
			parts[i].value = reValues[i]
		}
	}

	bundle := s.bundle()
	rendered := make([]string, len(parts))
	for i, p := range parts {
		rendered[i] = s.renderUnit(bundle, p.value, p.unit)
	}

	var text string
	if s.width == UnitWidthNarrow {
		text = strings.Join(rendered, " ")
	} else {
		text = strings.Join(rendered, ", ")
	}
	if negative && text != "" {
		text = "-" + text
	}
	return text
}

func (s DurationUnitsFormatStyle) bundle() *CalendarBundle {
	if xe, ok := s.engine.(*XTextEngine); ok && xe != nil {
		return xe.bundleFor(s.locale)
	}
	return defaultEngineInstance.bundleFor(s.locale)
}

func (s DurationUnitsFormatStyle) renderUnit(bundle *CalendarBundle, v float64, unit DurationUnit) string {
	value := strconv.FormatFloat(v, 'f', s.fracDigits, 64)

	var names UnitNames
	if bundle != nil {
		names = bundle.Units[unit.name()]
	}
	if names.Other == "" {
		names = UnitNames{One: unit.name(), Other: unit.name() + "s", Abbrev: unit.name()[:1]}
	}

	switch s.width {
	case UnitWidthNarrow:
		return value + names.Abbrev
	case UnitWidthAbbreviated:
		return fmt.Sprintf("%s %s", value, names.Abbrev)
	default:
		name := names.Other
		if v == 1 && names.One != "" {
			name = names.One
		}
		return fmt.Sprintf("%s %s", value, name)
	}
}
