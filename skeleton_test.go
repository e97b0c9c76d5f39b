package formatstyle

import "testing"

func TestNumberSkeletonTokens(t *testing.T) {
	cases := []struct {
		name       string
		collection NumberFormatCollection
		want       string
	}{
		{
			name:       "empty collection",
			collection: NumberFormatCollection{},
			want:       "",
		},
		{
			name:       "fraction length",
			collection: NumberFormatCollection{}.withPrecision(FractionLength(2, 4)),
			want:       ".00##",
		},
		{
			name:       "significant digits",
			collection: NumberFormatCollection{}.withPrecision(SignificantDigits(2, 4)),
			want:       "@@##",
		},
		{
			name:       "integer and fraction",
			collection: NumberFormatCollection{}.withPrecision(IntegerAndFractionLength(3, 3, 1, 1)),
			want:       "integer-width/+000 .0",
		},
		{
			name:       "rounding increment",
			collection: NumberFormatCollection{}.withRoundingIncrement(RoundingIncrement{Whole: 5, Scale: 2}),
			want:       "precision-increment/0.05",
		},
		{
			name:       "grouping off",
			collection: NumberFormatCollection{}.withGrouping(GroupingNever),
			want:       "group-off",
		},
		{
			name:       "sign always",
			collection: NumberFormatCollection{}.withSign(SignAlways(true)),
			want:       "sign-always",
		},
		{
			name:       "sign except zero",
			collection: NumberFormatCollection{}.withSign(SignAlways(false)),
			want:       "sign-except-zero",
		},
		{
			name:       "accounting",
			collection: NumberFormatCollection{}.withSign(SignAccounting(false)),
			want:       "sign-accounting",
		},
		{
			name:       "scientific",
			collection: NumberFormatCollection{}.withNotation(NotationScientific),
			want:       "scientific",
		},
		{
			name:       "compact",
			collection: NumberFormatCollection{}.withNotation(NotationCompactName),
			want:       "compact-short",
		},
		{
			name: "combined order is fixed",
			collection: NumberFormatCollection{}.
				withRounding(RoundUp).
				withGrouping(GroupingNever).
				withPrecision(FractionLength(1, 1)),
			want: ".0 group-off rounding-mode-ceiling",
		},
	}

	for _, tc := range cases {
		if got := tc.collection.Skeleton(); got != tc.want {
			t.Fatalf("%s: Skeleton() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestSkeletonOrderIndependence(t *testing.T) {
	a := NumberFormatCollection{}.
		withPrecision(FractionLength(2, 2)).
		withGrouping(GroupingNever).
		withSign(SignAlways(true))
	b := NumberFormatCollection{}.
		withSign(SignAlways(true)).
		withGrouping(GroupingNever).
		withPrecision(FractionLength(2, 2))

	if a.Skeleton() != b.Skeleton() {
		t.Fatalf("skeletons differ: %q vs %q", a.Skeleton(), b.Skeleton())
	}
}

func TestPrecisionIncrementLastWriteWins(t *testing.T) {
	c := NumberFormatCollection{}.
		withPrecision(FractionLength(2, 2)).
		withRoundingIncrement(RoundingIncrement{Whole: 5, Scale: 2})
	if c.Precision != nil {
		t.Fatal("rounding increment should clear precision")
	}
	if c.Skeleton() != "precision-increment/0.05" {
		t.Fatalf("Skeleton() = %q", c.Skeleton())
	}

	c = c.withPrecision(SignificantDigits(3, 3))
	if c.RoundingIncrement != nil {
		t.Fatal("precision should clear rounding increment")
	}
	if c.Skeleton() != "@@@" {
		t.Fatalf("Skeleton() = %q", c.Skeleton())
	}
}

func TestPrecisionClamping(t *testing.T) {
	p := SignificantDigits(0, 2000)
	if p.MinSignificant != 1 || p.MaxSignificant != 999 {
		t.Fatalf("SignificantDigits clamped to [%d,%d]", p.MinSignificant, p.MaxSignificant)
	}

	p = SignificantDigits(5, 2)
	if p.MaxSignificant != 5 {
		t.Fatalf("max below min should rise to min, got %d", p.MaxSignificant)
	}

	p = FractionLength(-3, 4)
	if p.MinFraction != 0 || p.MaxFraction != 4 {
		t.Fatalf("FractionLength clamped to [%d,%d]", p.MinFraction, p.MaxFraction)
	}
}

func TestParseNumberSkeletonRoundTrip(t *testing.T) {
	c := NumberFormatCollection{}.
		withPrecision(FractionLength(2, 2)).
		withGrouping(GroupingNever).
		withSign(SignAlways(true)).
		withRounding(RoundDown)

	settings, ok := parseNumberSkeleton(c.Skeleton())
	if !ok {
		t.Fatalf("parseNumberSkeleton(%q) failed", c.Skeleton())
	}
	if settings.minFrac != 2 || settings.maxFrac != 2 {
		t.Fatalf("fraction = [%d,%d]", settings.minFrac, settings.maxFrac)
	}
	if settings.grouping {
		t.Fatal("grouping should be off")
	}
	if settings.sign != signAlways {
		t.Fatalf("sign = %d", settings.sign)
	}
	if settings.rounding != RoundDown {
		t.Fatalf("rounding = %d", settings.rounding)
	}
}

func TestParseNumberSkeletonRejectsUnknownToken(t *testing.T) {
	if _, ok := parseNumberSkeleton("no-such-token"); ok {
		t.Fatal("unknown token should reject the skeleton")
	}
}
