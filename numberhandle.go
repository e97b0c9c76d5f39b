package formatstyle

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type numberStyle int

const (
	styleDecimal numberStyle = iota
	stylePercent
	styleCurrency
)

type numberNotation int

const (
	notationPlain numberNotation = iota
	notationScientific
	notationCompact
)

type signMode int

const (
	signAuto signMode = iota
	signNever
	signAlways
	signExceptZero
	signAccounting
	signAccountingAlways
)

// numberSettings is the decoded form of a number skeleton.
type numberSettings struct {
	style        numberStyle
	currencyCode string
	notation     numberNotation
	presentation CurrencyPresentation

	scale    float64
	hasScale bool

	minInt  int
	minFrac int
	maxFrac int
	hasFrac bool

	minSig int
	maxSig int
	useSig bool

	increment    float64
	incScale     int
	hasIncrement bool

	grouping      bool
	sign          signMode
	decimalAlways bool
	rounding      RoundingRule
}

// parseNumberSkeleton decodes the space-separated token grammar the
// collection compiler and the style layer emit. Unknown tokens reject the
// whole skeleton; a silent skip would format with the wrong semantics.
func parseNumberSkeleton(skeleton string) (numberSettings, bool) {
	settings := numberSettings{
		minInt:       1,
		grouping:     true,
		presentation: PresentationStandard,
		rounding:     RoundToNearestOrEven,
	}

	for _, token := range strings.Fields(skeleton) {
		switch {
		case token == "percent":
			settings.style = stylePercent
		case strings.HasPrefix(token, "currency/"):
			code := strings.TrimPrefix(token, "currency/")
			if len(code) != 3 {
				return settings, false
			}
			settings.style = styleCurrency
			settings.currencyCode = strings.ToUpper(code)
		case token == "scientific":
			settings.notation = notationScientific
		case token == "compact-short":
			settings.notation = notationCompact
		case token == "unit-width-narrow":
			settings.presentation = PresentationNarrow
		case token == "unit-width-iso-code":
			settings.presentation = PresentationISOCode
		case token == "unit-width-full-name":
			settings.presentation = PresentationFullName
		case strings.HasPrefix(token, "scale/"):
			v, err := strconv.ParseFloat(strings.TrimPrefix(token, "scale/"), 64)
			if err != nil {
				return settings, false
			}
			settings.scale, settings.hasScale = v, true
		case strings.HasPrefix(token, "precision-increment/"):
			text := strings.TrimPrefix(token, "precision-increment/")
			v, err := strconv.ParseFloat(text, 64)
			if err != nil || v <= 0 {
				return settings, false
			}
			settings.increment = v
			settings.hasIncrement = true
			if dot := strings.IndexByte(text, '.'); dot >= 0 {
				settings.incScale = len(text) - dot - 1
			}
		case strings.HasPrefix(token, "integer-width/+"):
			zeros := strings.TrimPrefix(token, "integer-width/+")
			if strings.Trim(zeros, "0") != "" {
				return settings, false
			}
			settings.minInt = len(zeros)
			if settings.minInt == 0 {
				settings.minInt = 1
			}
		case token[0] == '.':
			body := token[1:]
			zeros := len(body) - len(strings.TrimLeft(body, "0"))
			hashes := len(body) - zeros
			if strings.TrimLeft(body[zeros:], "#") != "" {
				return settings, false
			}
			settings.minFrac = zeros
			settings.maxFrac = zeros + hashes
			settings.hasFrac = true
		case token[0] == '@':
			ats := len(token) - len(strings.TrimLeft(token, "@"))
			if strings.TrimLeft(token[ats:], "#") != "" {
				return settings, false
			}
			settings.minSig = ats
			settings.maxSig = len(token)
			settings.useSig = true
		case token == "group-off":
			settings.grouping = false
		case token == "sign-never":
			settings.sign = signNever
		case token == "sign-always":
			settings.sign = signAlways
		case token == "sign-except-zero":
			settings.sign = signExceptZero
		case token == "sign-accounting":
			settings.sign = signAccounting
		case token == "sign-accounting-always":
			settings.sign = signAccountingAlways
		case token == "decimal-always":
			settings.decimalAlways = true
		case token == "rounding-mode-half-even":
			settings.rounding = RoundToNearestOrEven
		case token == "rounding-mode-half-up":
			settings.rounding = RoundToNearestOrAwayFromZero
		case token == "rounding-mode-ceiling":
			settings.rounding = RoundUp
		case token == "rounding-mode-floor":
			settings.rounding = RoundDown
		case token == "rounding-mode-down":
			settings.rounding = RoundTowardZero
		case token == "rounding-mode-up":
			settings.rounding = RoundAwayFromZero
		default:
			return settings, false
		}
	}
	return settings, true
}

var defaultNumberSymbols = NumberSymbols{
	Decimal: ".", Group: ",", Minus: "-", Plus: "+", Percent: "%", Exponent: "E",
}

// xtextNumberHandle assembles digits itself from the bundle's symbols so
// field positions stay exact; currency display falls back to the x/text
// currency tables when the bundle has no symbol for the code.
type xtextNumberHandle struct {
	bundle   *CalendarBundle
	settings numberSettings
	symbols  NumberSymbols
	lenient  bool
	printer  *message.Printer
}

func newXTextNumberHandle(tag language.Tag, bundle *CalendarBundle, settings numberSettings, lenient bool) *xtextNumberHandle {
	symbols := defaultNumberSymbols
	if bundle != nil && bundle.Numbers != (NumberSymbols{}) {
		symbols = bundle.Numbers
		if symbols.Exponent == "" {
			symbols.Exponent = "E"
		}
		if symbols.Plus == "" {
			symbols.Plus = "+"
		}
	}
	return &xtextNumberHandle{
		bundle:   bundle,
		settings: settings,
		symbols:  symbols,
		lenient:  lenient,
		printer:  message.NewPrinter(tag),
	}
}

func (h *xtextNumberHandle) Close() {}

func (h *xtextNumberHandle) FormatFloat(v float64, buf []uint16, iter *FieldIterator) (int, Status) {
	return h.format(v, false, buf, iter)
}

func (h *xtextNumberHandle) FormatInt(v int64, buf []uint16, iter *FieldIterator) (int, Status) {
	s := h.settings
	// float64 loses integer precision past 2^53, so whenever no float-domain
	// transform applies the digits come straight from the decimal rendition.
	if !s.hasScale && s.style != stylePercent && s.notation == notationPlain &&
		!s.hasIncrement && !s.useSig {
		negative := v < 0
		text := strconv.FormatInt(v, 10)
		if negative {
			text = text[1:]
		}
		for len(text) < s.minInt {
			text = "0" + text
		}
		fracPart := ""
		if s.hasFrac && s.minFrac > 0 {
			fracPart = strings.Repeat("0", s.minFrac)
		}
		return h.assemble(text, fracPart, negative, 0, "", buf, iter)
	}
	return h.format(float64(v), true, buf, iter)
}

func (h *xtextNumberHandle) format(v float64, integral bool, buf []uint16, iter *FieldIterator) (int, Status) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, StatusIllegalArg
	}
	s := h.settings

	if s.hasScale {
		v *= s.scale
	}
	if s.style == stylePercent {
		v *= 100
	}

	exponent := 0
	compactSuffix := ""
	switch s.notation {
	case notationScientific:
		if v != 0 {
			exponent = int(math.Floor(math.Log10(math.Abs(v))))
			v /= math.Pow(10, float64(exponent))
		}
	case notationCompact:
		suffixes := h.compactSuffixes()
		for idx := 0; math.Abs(v) >= 1000 && idx < len(suffixes); idx++ {
			v /= 1000
			compactSuffix = suffixes[idx]
		}
	}

	intPart, fracPart, negative := h.renderDigits(v, integral, compactSuffix != "")
	return h.assemble(intPart, fracPart, negative, exponent, compactSuffix, buf, iter)
}

// assemble writes the affixes and digit groups around already-rendered digit
// strings, tagging every field position.
func (h *xtextNumberHandle) assemble(intPart, fracPart string, negative bool, exponent int, compactSuffix string, buf []uint16, iter *FieldIterator) (int, Status) {
	s := h.settings
	var out utf16Output
	zero := isZeroDigits(intPart, fracPart)
	accounting := s.sign == signAccounting || s.sign == signAccountingAlways
	parens := accounting && negative

	if parens {
		out.writeField(engFieldSign, "(")
	}
	if h.wantsPlus(negative, zero) {
		out.writeField(engFieldSign, h.symbols.Plus)
	} else if negative && !parens && s.sign != signNever {
		out.writeField(engFieldSign, h.symbols.Minus)
	}

	currencyText := ""
	currencyBefore := false
	if s.style == styleCurrency {
		currencyText, currencyBefore = h.currencyAffix()
		if currencyBefore {
			out.writeField(engFieldCurrency, currencyText)
			if s.presentation == PresentationISOCode {
				out.writeString(" ")
			}
		}
	}

	h.writeGroupedInteger(&out, intPart)
	if len(fracPart) > 0 || s.decimalAlways {
		out.writeField(engFieldDecimalSeparator, h.symbols.Decimal)
	}
	if len(fracPart) > 0 {
		out.writeField(engFieldNumberFraction, fracPart)
	}

	if s.notation == notationScientific {
		out.writeField(engFieldExponent, h.symbols.Exponent+strconv.Itoa(exponent))
	}
	if compactSuffix != "" {
		out.writeField(engFieldCompact, compactSuffix)
	}
	if s.style == stylePercent {
		out.writeField(engFieldPercent, h.symbols.Percent)
	}
	if s.style == styleCurrency && !currencyBefore {
		out.writeString(" ")
		out.writeField(engFieldCurrency, currencyText)
	}
	if parens {
		out.writeField(engFieldSign, ")")
	}
	return out.flush(buf, iter)
}

func (h *xtextNumberHandle) compactSuffixes() []string {
	if h.bundle != nil && len(h.bundle.CompactSuffixes) > 0 {
		return h.bundle.CompactSuffixes
	}
	return []string{"K", "M", "B", "T"}
}

func (h *xtextNumberHandle) wantsPlus(negative, zero bool) bool {
	if negative {
		return false
	}
	switch h.settings.sign {
	case signAlways, signAccountingAlways:
		return true
	case signExceptZero:
		return !zero
	default:
		return false
	}
}

func isZeroDigits(intPart, fracPart string) bool {
	return strings.Trim(intPart, "0") == "" && strings.Trim(fracPart, "0") == ""
}

// renderDigits rounds the value and splits it into integer and fraction
// digit strings, honoring increments, significant digits and min/max
// lengths. Fraction trimming stops at the minimum length.
func (h *xtextNumberHandle) renderDigits(v float64, integral, compacted bool) (string, string, bool) {
	s := h.settings
	negative := v < 0 || math.Signbit(v)
	v = math.Abs(v)

	fracDigits := 0
	trimTo := 0
	switch {
	case s.hasIncrement:
		v = roundToIncrement(v, s.increment, s.rounding)
		fracDigits, trimTo = s.incScale, s.incScale
	case s.useSig:
		intDigits := 1
		if v >= 1 {
			intDigits = int(math.Floor(math.Log10(v))) + 1
		}
		fracDigits = s.maxSig - intDigits
		if fracDigits < 0 {
			fracDigits = 0
			// Whole-number rounding above the significant width still has
			// to zero the trailing places.
			scale := math.Pow(10, float64(intDigits-s.maxSig))
			v = roundToIncrement(v, scale, s.rounding)
		}
		trimTo = s.minSig - intDigits
		if trimTo < 0 {
			trimTo = 0
		}
	case s.hasFrac:
		fracDigits, trimTo = s.maxFrac, s.minFrac
	case integral && !compacted && s.notation == notationPlain:
		fracDigits, trimTo = 0, 0
	case s.notation == notationCompact:
		fracDigits, trimTo = 1, 0
	default:
		fracDigits, trimTo = 3, 0
	}

	if s.rounding != RoundToNearestOrEven && !s.hasIncrement {
		v = roundToIncrement(v, math.Pow(10, -float64(fracDigits)), s.rounding)
	}
	text := strconv.FormatFloat(v, 'f', fracDigits, 64)

	intPart, fracPart := text, ""
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		intPart, fracPart = text[:dot], text[dot+1:]
	}
	for len(fracPart) > trimTo && strings.HasSuffix(fracPart, "0") {
		fracPart = fracPart[:len(fracPart)-1]
	}
	for len(intPart) < s.minInt {
		intPart = "0" + intPart
	}
	if negative && strings.Trim(intPart, "0") == "" && strings.Trim(fracPart, "0") == "" {
		negative = false
	}
	return intPart, fracPart, negative
}

func (h *xtextNumberHandle) writeGroupedInteger(out *utf16Output, intPart string) {
	if !h.settings.grouping || len(intPart) <= 3 {
		out.writeField(engFieldInteger, intPart)
		return
	}
	first := len(intPart) % 3
	if first == 0 {
		first = 3
	}
	out.writeField(engFieldInteger, intPart[:first])
	for i := first; i < len(intPart); i += 3 {
		out.writeField(engFieldGroupingSeparator, h.symbols.Group)
		out.writeField(engFieldInteger, intPart[i:i+3])
	}
}

// currencyAffix resolves the currency display text and whether it leads the
// number. The bundle's tables win; unknown codes fall back to the x/text
// currency data, then to the raw code.
func (h *xtextNumberHandle) currencyAffix() (string, bool) {
	s := h.settings
	before := h.bundle != nil && h.bundle.CurrencyBefore

	switch s.presentation {
	case PresentationISOCode:
		return s.currencyCode, before
	case PresentationFullName:
		if h.bundle != nil {
			if name, ok := h.bundle.CurrencyNames[s.currencyCode]; ok {
				return name, false
			}
		}
		return s.currencyCode, false
	default:
		if h.bundle != nil {
			if symbol, ok := h.bundle.CurrencySymbols[s.currencyCode]; ok {
				return symbol, before
			}
		}
		if unit, err := currency.ParseISO(s.currencyCode); err == nil {
			return h.printer.Sprint(currency.Symbol(unit)), before
		}
		return s.currencyCode, before
	}
}

// Parse reads one number at *pos. Lenient parsing additionally accepts the
// ASCII fallback symbols and stray grouping; strict parsing insists on the
// locale's own symbols.
func (h *xtextNumberHandle) Parse(text string, pos *int) (float64, Status) {
	start := *pos
	i := start
	s := h.settings

	skipSpaces(text, &i)

	parens := false
	if i < len(text) && text[i] == '(' {
		parens = true
		i++
	}

	if affix, before := h.parseCurrencyText(); before && affix != "" {
		consumeAffix(text, &i, affix)
		skipSpaces(text, &i)
	}

	negative := false
	switch {
	case consumeSymbol(text, &i, h.symbols.Minus) || (h.lenient && consumeSymbol(text, &i, "-")):
		negative = true
	case consumeSymbol(text, &i, h.symbols.Plus) || (h.lenient && consumeSymbol(text, &i, "+")):
	}

	var digits strings.Builder
	sawDigit := false
	for i < len(text) {
		c := text[i]
		if isDigit(c) {
			digits.WriteByte(c)
			sawDigit = true
			i++
			continue
		}
		if sawDigit && h.consumeGroup(text, &i) {
			continue
		}
		break
	}

	if consumeSymbol(text, &i, h.symbols.Decimal) || (h.lenient && consumeSymbol(text, &i, ".")) {
		digits.WriteByte('.')
		for i < len(text) && isDigit(text[i]) {
			digits.WriteByte(text[i])
			sawDigit = true
			i++
		}
	}

	if !sawDigit {
		*pos = start
		return 0, StatusParse
	}

	value, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		*pos = start
		return 0, StatusParse
	}

	if consumeSymbol(text, &i, h.symbols.Exponent) || (h.lenient && (consumeSymbol(text, &i, "E") || consumeSymbol(text, &i, "e"))) {
		expNeg := consumeSymbol(text, &i, "-")
		if !expNeg {
			consumeSymbol(text, &i, "+")
		}
		exp, ok := parseDigits(text, &i, 4)
		if !ok {
			*pos = start
			return 0, StatusParse
		}
		if expNeg {
			exp = -exp
		}
		value *= math.Pow(10, float64(exp))
	}

	for idx, suffix := range h.compactSuffixes() {
		if consumeSymbol(text, &i, suffix) {
			value *= math.Pow(1000, float64(idx+1))
			break
		}
	}

	percentSeen := false
	skipSpaces(text, &i)
	if consumeSymbol(text, &i, strings.TrimSpace(h.symbols.Percent)) || (h.lenient && consumeSymbol(text, &i, "%")) {
		percentSeen = true
	}

	if affix, before := h.parseCurrencyText(); !before && affix != "" {
		skipSpaces(text, &i)
		consumeAffix(text, &i, affix)
	}

	if parens {
		skipSpaces(text, &i)
		if i >= len(text) || text[i] != ')' {
			*pos = start
			return 0, StatusParse
		}
		i++
		negative = true
	}

	if negative {
		value = -value
	}
	if s.style == stylePercent || percentSeen {
		value /= 100
	}
	if s.hasScale && s.scale != 0 {
		value /= s.scale
	}
	*pos = i
	return value, StatusOK
}

func (h *xtextNumberHandle) parseCurrencyText() (string, bool) {
	if h.settings.style != styleCurrency {
		return "", false
	}
	return h.currencyAffix()
}

func (h *xtextNumberHandle) consumeGroup(text string, i *int) bool {
	if consumeSymbol(text, i, h.symbols.Group) {
		return true
	}
	return h.lenient && consumeSymbol(text, i, ",")
}

func skipSpaces(text string, i *int) {
	for *i < len(text) && text[*i] == ' ' {
		*i++
	}
}

func consumeSymbol(text string, i *int, symbol string) bool {
	if symbol == "" {
		return false
	}
	if strings.HasPrefix(text[*i:], symbol) {
		*i += len(symbol)
		return true
	}
	return false
}

func consumeAffix(text string, i *int, affix string) bool {
	return consumeSymbol(text, i, affix)
}
