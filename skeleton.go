package formatstyle

import (
	"fmt"
	"strings"
)

// Skeleton compiles the collection into a space-joined ordered token list in
// the engine's number-skeleton grammar. Token order is fixed (notation,
// presentation width, scale, precision-or-increment, grouping, sign, decimal
// separator, rounding mode); nil fields contribute nothing. Reordering tokens changes
// meaning for the engine, so the order here is load-bearing.
func (c NumberFormatCollection) Skeleton() string {
	tokens := []string{
		c.notationToken(),
		c.presentationToken(),
		c.scaleToken(),
		c.precisionToken(),
		c.groupingToken(),
		c.signToken(),
		c.separatorToken(),
		c.roundingToken(),
	}
	return strings.Join(strings.Fields(strings.Join(tokens, " ")), " ")
}

func (c NumberFormatCollection) notationToken() string {
	if c.Notation == nil {
		return ""
	}
	switch *c.Notation {
	case NotationScientific:
		return "scientific"
	case NotationCompactName:
		return "compact-short"
	default:
		return ""
	}
}

func (c NumberFormatCollection) presentationToken() string {
	if c.Presentation == nil {
		return ""
	}
	switch *c.Presentation {
	case PresentationNarrow:
		return "unit-width-narrow"
	case PresentationISOCode:
		return "unit-width-iso-code"
	case PresentationFullName:
		return "unit-width-full-name"
	default:
		return ""
	}
}

func (c NumberFormatCollection) scaleToken() string {
	if c.Scale == nil {
		return ""
	}
	return "scale/" + trimFloat(*c.Scale)
}

// precisionToken renders either the precision request or the rounding
// increment; the collection guarantees at most one is set.
func (c NumberFormatCollection) precisionToken() string {
	if c.RoundingIncrement != nil {
		return "precision-increment/" + c.RoundingIncrement.text()
	}
	if c.Precision == nil {
		return ""
	}
	p := *c.Precision
	if p.Kind == precisionSignificant {
		token := strings.Repeat("@", p.MinSignificant)
		if p.MaxSignificant > p.MinSignificant {
			token += strings.Repeat("#", p.MaxSignificant-p.MinSignificant)
		}
		return token
	}

	var b strings.Builder
	if p.HasInteger {
		fmt.Fprintf(&b, "integer-width/+%s", strings.Repeat("0", p.MinInteger))
	}
	if p.HasFraction {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(".")
		b.WriteString(strings.Repeat("0", p.MinFraction))
		if p.MaxFraction > p.MinFraction {
			b.WriteString(strings.Repeat("#", p.MaxFraction-p.MinFraction))
		}
	}
	return b.String()
}

func (c NumberFormatCollection) groupingToken() string {
	if c.Group == nil {
		return ""
	}
	if *c.Group == GroupingNever {
		return "group-off"
	}
	return ""
}

func (c NumberFormatCollection) signToken() string {
	if c.Sign == nil {
		return ""
	}
	s := *c.Sign
	switch {
	case s.Accounting && s.Positive:
		return "sign-accounting-always"
	case s.Accounting:
		return "sign-accounting"
	case !s.Negative && !s.Positive:
		return "sign-never"
	case s.Positive && s.Zero:
		return "sign-always"
	case s.Positive:
		return "sign-except-zero"
	default:
		// Negative-only is the engine default; an explicit token would be
		// redundant noise in the cache key.
		return ""
	}
}

func (c NumberFormatCollection) separatorToken() string {
	if c.DecimalSeparator == nil {
		return ""
	}
	if *c.DecimalSeparator == SeparatorAlways {
		return "decimal-always"
	}
	return ""
}

func (c NumberFormatCollection) roundingToken() string {
	if c.Rounding == nil {
		return ""
	}
	switch *c.Rounding {
	case RoundToNearestOrAwayFromZero:
		return "rounding-mode-half-up"
	case RoundUp:
		return "rounding-mode-ceiling"
	case RoundDown:
		return "rounding-mode-floor"
	case RoundTowardZero:
		return "rounding-mode-down"
	case RoundAwayFromZero:
		return "rounding-mode-up"
	default:
		return "rounding-mode-half-even"
	}
}

// text renders the increment as a plain decimal, e.g. {5, 2} -> "0.05".
func (r RoundingIncrement) text() string {
	digits := fmt.Sprintf("%d", r.Whole)
	if r.Scale <= 0 {
		return digits
	}
	if len(digits) <= r.Scale {
		digits = strings.Repeat("0", r.Scale-len(digits)+1) + digits
	}
	cut := len(digits) - r.Scale
	return digits[:cut] + "." + digits[cut:]
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%g", v)
	return s
}
