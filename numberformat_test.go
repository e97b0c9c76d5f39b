package formatstyle

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func TestDecimalStyleFormat(t *testing.T) {
	cases := []struct {
		locale string
		value  float64
		want   string
	}{
		{"en", 1234.5, "1,234.5"},
		{"en", 1234567.891, "1,234,567.891"},
		{"en", -42.25, "-42.25"},
		{"en", 0, "0"},
		{"de", 1234.5, "1.234,5"},
		{"es", 1234.5, "1.234,5"},
		{"fr", 1234.5, "1 234,5"},
	}
	for _, tc := range cases {
		style := DecimalStyle().Locale(language.MustParse(tc.locale))
		if got := style.Format(tc.value); got != tc.want {
			t.Fatalf("%s: Format(%v) = %q, want %q", tc.locale, tc.value, got, tc.want)
		}
	}
}

func TestIntegerStyleFormat(t *testing.T) {
	style := IntegerStyle().Locale(language.English)
	if got := style.Format(1234567); got != "1,234,567" {
		t.Fatalf("Format = %q", got)
	}
	if got := style.Format(-5); got != "-5" {
		t.Fatalf("Format = %q", got)
	}

	grouped := style.Grouping(GroupingNever)
	if got := grouped.Format(1234567); got != "1234567" {
		t.Fatalf("Format without grouping = %q", got)
	}
}

func TestIntegerStyleKeepsDigitsBeyondFloatPrecision(t *testing.T) {
	style := IntegerStyle().Locale(language.English).Grouping(GroupingNever)
	if got := style.Format(9007199254740993); got != "9007199254740993" {
		t.Fatalf("Format = %q", got)
	}
	if got := style.Format(-9007199254740993); got != "-9007199254740993" {
		t.Fatalf("Format = %q", got)
	}

	grouped := IntegerStyle().Locale(language.English)
	if got := grouped.Format(9223372036854775807); got != "9,223,372,036,854,775,807" {
		t.Fatalf("grouped Format = %q", got)
	}
	if got := grouped.Format(-9223372036854775808); got != "-9,223,372,036,854,775,808" {
		t.Fatalf("min int64 Format = %q", got)
	}
}

func TestDecimalStylePrecision(t *testing.T) {
	style := DecimalStyle().Locale(language.English)

	if got := style.Precision(FractionLength(2, 2)).Format(3.14159); got != "3.14" {
		t.Fatalf("fraction 2 = %q", got)
	}
	if got := style.Precision(FractionLength(2, 2)).Format(5); got != "5.00" {
		t.Fatalf("min fraction pad = %q", got)
	}
	if got := style.Precision(SignificantDigits(3, 3)).Format(1234.5); got != "1,230" {
		t.Fatalf("significant digits = %q", got)
	}
	if got := style.Precision(SignificantDigits(2, 4)).Format(3.14159); got != "3.142" {
		t.Fatalf("significant range = %q", got)
	}
}

func TestDecimalStyleRoundingIncrement(t *testing.T) {
	style := DecimalStyle().
		Locale(language.English).
		RoundedBy(RoundingIncrement{Whole: 5, Scale: 2})
	if got := style.Format(2.26); got != "2.25" {
		t.Fatalf("Format = %q", got)
	}
	if got := style.Format(2.28); got != "2.30" {
		t.Fatalf("Format = %q", got)
	}
}

func TestDecimalStyleSignDisplay(t *testing.T) {
	style := DecimalStyle().Locale(language.English)

	always := style.Sign(SignAlways(true))
	if got := always.Format(3); got != "+3" {
		t.Fatalf("sign always = %q", got)
	}
	if got := always.Format(0); got != "+0" {
		t.Fatalf("sign always zero = %q", got)
	}

	exceptZero := style.Sign(SignAlways(false))
	if got := exceptZero.Format(0); got != "0" {
		t.Fatalf("except zero = %q", got)
	}
	if got := exceptZero.Format(3); got != "+3" {
		t.Fatalf("except zero positive = %q", got)
	}

	never := style.Sign(SignNever())
	if got := never.Format(-3); got != "3" {
		t.Fatalf("sign never = %q", got)
	}
}

func TestDecimalStyleNotation(t *testing.T) {
	style := DecimalStyle().Locale(language.English)

	if got := style.Notation(NotationScientific).Format(1500); got != "1.5E3" {
		t.Fatalf("scientific = %q", got)
	}
	if got := style.Notation(NotationCompactName).Format(1234567); got != "1.2M" {
		t.Fatalf("compact = %q", got)
	}
	if got := style.Notation(NotationCompactName).Format(950); got != "950" {
		t.Fatalf("compact below threshold = %q", got)
	}

	german := DecimalStyle().Locale(language.German).Notation(NotationCompactName)
	if got := german.Format(2500000); got != "2,5Mio." {
		t.Fatalf("de compact = %q", got)
	}
}

func TestPercentStyleFormat(t *testing.T) {
	en := PercentStyle().Locale(language.English)
	if got := en.Format(0.25); got != "25%" {
		t.Fatalf("en percent = %q", got)
	}

	es := PercentStyle().Locale(language.Spanish)
	if got := es.Format(0.25); got != "25 %" {
		t.Fatalf("es percent = %q", got)
	}
}

func TestCurrencyStyleFormat(t *testing.T) {
	usd := CurrencyStyle("USD").Locale(language.English)
	if got := usd.Format(1234.5); got != "$1,234.50" {
		t.Fatalf("standard = %q", got)
	}
	if got := usd.Presentation(PresentationISOCode).Format(1234.5); got != "USD 1,234.50" {
		t.Fatalf("iso code = %q", got)
	}
	if got := usd.Presentation(PresentationFullName).Format(1234.5); got != "1,234.50 US dollars" {
		t.Fatalf("full name = %q", got)
	}

	eur := CurrencyStyle("EUR").Locale(language.Spanish)
	if got := eur.Format(1234.5); got != "1.234,50 €" {
		t.Fatalf("es euro = %q", got)
	}

	accounting := CurrencyStyle("USD").Locale(language.English).Sign(SignAccounting(false))
	if got := accounting.Format(-1234.5); got != "($1,234.50)" {
		t.Fatalf("accounting = %q", got)
	}
}

func TestNumberStyleParse(t *testing.T) {
	en := DecimalStyle().Locale(language.English)
	cases := []struct {
		input string
		want  float64
	}{
		{"1,234.56", 1234.56},
		{"-12.5", -12.5},
		{"42", 42},
		{"1.2M", 1200000},
	}
	for _, tc := range cases {
		got, err := en.Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}

	fr := DecimalStyle().Locale(language.French)
	got, err := fr.Parse("1 234,5")
	if err != nil {
		t.Fatalf("fr Parse: %v", err)
	}
	if got != 1234.5 {
		t.Fatalf("fr Parse = %v", got)
	}
}

func TestPercentStyleParse(t *testing.T) {
	style := PercentStyle().Locale(language.English)
	got, err := style.Parse("25%")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != 0.25 {
		t.Fatalf("Parse = %v, want 0.25", got)
	}
}

func TestCurrencyStyleParse(t *testing.T) {
	style := CurrencyStyle("USD").Locale(language.English)
	got, err := style.Parse("$1,234.56")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != 1234.56 {
		t.Fatalf("Parse = %v", got)
	}

	got, err = style.Sign(SignAccounting(false)).Parse("($12.50)")
	if err != nil {
		t.Fatalf("accounting Parse: %v", err)
	}
	if got != -12.5 {
		t.Fatalf("accounting Parse = %v", got)
	}
}

func TestNumberStyleParseError(t *testing.T) {
	_, err := DecimalStyle().Locale(language.English).Parse("abc")
	if err == nil {
		t.Fatal("expected an error")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T", err)
	}
	if parseErr.Input != "abc" || parseErr.Example == "" {
		t.Fatalf("ParseError = %+v", parseErr)
	}
}

func TestNumberAttributedFormat(t *testing.T) {
	attributed := DecimalStyle().Locale(language.English).AttributedFormat(1234.5)
	if attributed.Text != "1,234.5" {
		t.Fatalf("Text = %q", attributed.Text)
	}

	wantFields := []Field{
		FieldInteger, FieldGroupingSeparator, FieldInteger,
		FieldDecimalSeparator, FieldFraction,
	}
	if len(attributed.Runs) != len(wantFields) {
		t.Fatalf("runs = %d, want %d", len(attributed.Runs), len(wantFields))
	}
	prevEnd := 0
	for i, run := range attributed.Runs {
		if run.Field != wantFields[i] {
			t.Fatalf("run %d field = %v, want %v", i, run.Field, wantFields[i])
		}
		if run.Begin < prevEnd {
			t.Fatalf("run %d overlaps predecessor", i)
		}
		prevEnd = run.End
	}
}

func TestNumberMinimumIntegerDigits(t *testing.T) {
	style := IntegerStyle().
		Locale(language.English).
		Precision(IntegerLength(3, 3)).
		Grouping(GroupingNever)
	if got := style.Format(5); got != "005" {
		t.Fatalf("Format = %q", got)
	}
}
