package formatstyle

// Engine-valid bounds for precision requests. Requests outside these ranges
// are clamped at construction, never rejected.
const (
	minSignificantDigits = 1
	maxSignificantDigits = 999
	minDigitLength       = 0
	maxDigitLength       = 999
)

// RoundingRule selects how values are rounded before display.
type RoundingRule int

const (
	RoundToNearestOrEven RoundingRule = iota
	RoundToNearestOrAwayFromZero
	RoundUp
	RoundDown
	RoundTowardZero
	RoundAwayFromZero
)

// Grouping controls the use of locale grouping separators.
type Grouping int

const (
	GroupingAutomatic Grouping = iota
	GroupingNever
)

// DecimalSeparatorDisplay controls when the decimal separator is shown.
type DecimalSeparatorDisplay int

const (
	SeparatorAutomatic DecimalSeparatorDisplay = iota
	SeparatorAlways
)

// Notation selects the overall number rendition. The variants are mutually
// exclusive; a collection holds at most one.
type Notation int

const (
	NotationAutomatic Notation = iota
	NotationScientific
	NotationCompactName
)

// CurrencyPresentation is the display-width axis for currency output.
type CurrencyPresentation int

const (
	PresentationStandard CurrencyPresentation = iota
	PresentationNarrow
	PresentationISOCode
	PresentationFullName
)

type precisionKind int

const (
	precisionSignificant precisionKind = iota
	precisionLengths
)

// Precision describes either a significant-digit range or independent
// integer/fraction digit-count ranges. Which one applies is decided by the
// constructor used; applying a second precision to a collection replaces the
// first entirely (last write wins).
type Precision struct {
	Kind           precisionKind `json:"kind"`
	MinSignificant int           `json:"min_significant,omitempty"`
	MaxSignificant int           `json:"max_significant,omitempty"`
	MinInteger     int           `json:"min_integer,omitempty"`
	MaxInteger     int           `json:"max_integer,omitempty"`
	MinFraction    int           `json:"min_fraction,omitempty"`
	MaxFraction    int           `json:"max_fraction,omitempty"`
	HasInteger     bool          `json:"has_integer,omitempty"`
	HasFraction    bool          `json:"has_fraction,omitempty"`
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SignificantDigits requests between min and max significant digits, clamped
// into the engine-valid [1, 999] range.
func SignificantDigits(min, max int) Precision {
	min = clamp(min, minSignificantDigits, maxSignificantDigits)
	max = clamp(max, minSignificantDigits, maxSignificantDigits)
	if max < min {
		max = min
	}
	return Precision{Kind: precisionSignificant, MinSignificant: min, MaxSignificant: max}
}

// IntegerAndFractionLength requests independent integer-part and
// fraction-part digit ranges, clamped into [0, 999].
func IntegerAndFractionLength(minInt, maxInt, minFrac, maxFrac int) Precision {
	p := Precision{Kind: precisionLengths, HasInteger: true, HasFraction: true}
	p.MinInteger = clamp(minInt, minDigitLength, maxDigitLength)
	p.MaxInteger = clamp(maxInt, minDigitLength, maxDigitLength)
	if p.MaxInteger < p.MinInteger {
		p.MaxInteger = p.MinInteger
	}
	p.MinFraction = clamp(minFrac, minDigitLength, maxDigitLength)
	p.MaxFraction = clamp(maxFrac, minDigitLength, maxDigitLength)
	if p.MaxFraction < p.MinFraction {
		p.MaxFraction = p.MinFraction
	}
	return p
}

// FractionLength constrains only the fraction part.
func FractionLength(min, max int) Precision {
	p := IntegerAndFractionLength(0, 0, min, max)
	p.HasInteger = false
	p.MinInteger = 0
	p.MaxInteger = 0
	return p
}

// IntegerLength constrains only the integer part.
func IntegerLength(min, max int) Precision {
	p := IntegerAndFractionLength(min, max, 0, 0)
	p.HasFraction = false
	p.MinFraction = 0
	p.MaxFraction = 0
	return p
}

// SignDisplayStrategy configures sign presence independently for negative,
// positive and zero values. Accounting wraps negative currency amounts in
// parentheses and is mutually exclusive with plain sign display in the
// compiled skeleton.
type SignDisplayStrategy struct {
	Negative   bool `json:"negative"`
	Positive   bool `json:"positive"`
	Zero       bool `json:"zero"`
	Accounting bool `json:"accounting,omitempty"`
}

// SignAutomatic shows a sign only for negative values.
func SignAutomatic() SignDisplayStrategy {
	return SignDisplayStrategy{Negative: true}
}

// SignNever suppresses the sign for all values.
func SignNever() SignDisplayStrategy {
	return SignDisplayStrategy{}
}

// SignAlways shows the sign on every value, optionally suppressing it for
// exact zero.
func SignAlways(includingZero bool) SignDisplayStrategy {
	return SignDisplayStrategy{Negative: true, Positive: true, Zero: includingZero}
}

// SignAccounting wraps negatives in parentheses (currency only).
func SignAccounting(always bool) SignDisplayStrategy {
	return SignDisplayStrategy{Negative: true, Positive: always, Zero: always, Accounting: true}
}

// RoundingIncrement is the quantum a value is rounded to before display,
// expressed as Whole * 10^-Scale so it renders deterministically (0.05 is
// {Whole: 5, Scale: 2}).
type RoundingIncrement struct {
	Whole int64 `json:"whole"`
	Scale int   `json:"scale"`
}

// Value returns the increment as a float.
func (r RoundingIncrement) Value() float64 {
	v := float64(r.Whole)
	for i := 0; i < r.Scale; i++ {
		v /= 10
	}
	return v
}

func (r RoundingIncrement) valid() bool {
	return r.Whole > 0 && r.Scale >= 0 && r.Scale <= maxDigitLength
}

// NumberFormatCollection is the configuration model for numeric output.
// Absent fields mean "unspecified, engine default applies". Every modifier
// returns a changed copy; collections are never mutated in place.
type NumberFormatCollection struct {
	Precision         *Precision               `json:"precision,omitempty"`
	Group             *Grouping                `json:"group,omitempty"`
	Sign              *SignDisplayStrategy     `json:"sign,omitempty"`
	Notation          *Notation                `json:"notation,omitempty"`
	Scale             *float64                 `json:"scale,omitempty"`
	DecimalSeparator  *DecimalSeparatorDisplay `json:"decimal_separator,omitempty"`
	Rounding          *RoundingRule            `json:"rounding,omitempty"`
	RoundingIncrement *RoundingIncrement       `json:"rounding_increment,omitempty"`
	Presentation      *CurrencyPresentation    `json:"presentation,omitempty"`
}

func (c NumberFormatCollection) withPrecision(p Precision) NumberFormatCollection {
	c.Precision = &p
	// A rounding increment and a precision request are the same skeleton
	// slot; the most recent write owns it.
	c.RoundingIncrement = nil
	return c
}

func (c NumberFormatCollection) withRoundingIncrement(r RoundingIncrement) NumberFormatCollection {
	if !r.valid() {
		return c
	}
	c.RoundingIncrement = &r
	c.Precision = nil
	return c
}

func (c NumberFormatCollection) withGrouping(g Grouping) NumberFormatCollection {
	c.Group = &g
	return c
}

func (c NumberFormatCollection) withSign(s SignDisplayStrategy) NumberFormatCollection {
	c.Sign = &s
	return c
}

func (c NumberFormatCollection) withNotation(n Notation) NumberFormatCollection {
	c.Notation = &n
	return c
}

func (c NumberFormatCollection) withScale(scale float64) NumberFormatCollection {
	c.Scale = &scale
	return c
}

func (c NumberFormatCollection) withDecimalSeparator(d DecimalSeparatorDisplay) NumberFormatCollection {
	c.DecimalSeparator = &d
	return c
}

func (c NumberFormatCollection) withRounding(r RoundingRule) NumberFormatCollection {
	c.Rounding = &r
	return c
}

func (c NumberFormatCollection) withPresentation(p CurrencyPresentation) NumberFormatCollection {
	c.Presentation = &p
	return c
}
