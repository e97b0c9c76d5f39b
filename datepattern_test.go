package formatstyle

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDateSkeletonCanonicalOrder(t *testing.T) {
	c := DateFieldCollection{
		Day:     sym(DayDefaultDigits),
		Year:    sym(YearDefaultDigits),
		Month:   sym(MonthAbbreviated),
		Weekday: sym(WeekdayWide),
	}
	if got := c.Skeleton(language.MustParse("en-GB")); got != "yMMMdEEEE" {
		t.Fatalf("Skeleton = %q, want %q", got, "yMMMdEEEE")
	}
}

func TestDateSkeletonHourResolution(t *testing.T) {
	cases := []struct {
		locale string
		want   string
	}{
		{"en", "ahmm"},
		{"en-US", "ahmm"},
		{"en-GB", "Hmm"},
		{"de", "Hmm"},
		{"en-u-hc-h23", "Hmm"},
		{"de-u-hc-h12", "ahmm"},
	}

	c := DateFieldCollection{
		Hour:   sym(HourDefaultDigits),
		Minute: sym(MinuteTwoDigits),
	}
	for _, tc := range cases {
		got := c.Skeleton(language.MustParse(tc.locale))
		if got != tc.want {
			t.Fatalf("Skeleton(%s) = %q, want %q", tc.locale, got, tc.want)
		}
	}
}

func TestDateSkeletonForcedHourCycle(t *testing.T) {
	c := DateFieldCollection{Hour: sym(HourDefaultDigitsClock24), Minute: sym(MinuteTwoDigits)}
	if got := c.Skeleton(language.MustParse("en")); got != "Hmm" {
		t.Fatalf("forced 24h Skeleton = %q", got)
	}

	c = DateFieldCollection{Hour: sym(HourDefaultDigitsClock12), Minute: sym(MinuteTwoDigits)}
	if got := c.Skeleton(language.MustParse("de")); got != "ahmm" {
		t.Fatalf("forced 12h Skeleton = %q", got)
	}
}

func TestFieldCollectionAdd(t *testing.T) {
	base := CollectionDate(DateStyleAbbreviated)
	layered := base.Add(DateFieldCollection{Month: sym(MonthWide)})

	if layered.Month == nil || *layered.Month != MonthWide {
		t.Fatal("later month should win")
	}
	if layered.Year == nil || *layered.Year != YearDefaultDigits {
		t.Fatal("unset fields should keep the base value")
	}
	if base.Month == nil || *base.Month != MonthAbbreviated {
		t.Fatal("Add must not mutate the receiver")
	}
}

func TestBestPatternAvailableFormats(t *testing.T) {
	engine := NewXTextEngine()
	cases := []struct {
		locale   string
		skeleton string
		want     string
	}{
		{"en", "yMMMd", "MMM d, y"},
		{"en", "yMd", "M/d/y"},
		{"en-GB", "yMMMd", "d MMM y"},
		{"de", "yMd", "d.M.y"},
		{"en", "ahmmss", "h:mm:ss a"},
		{"de", "Hmm", "HH:mm"},
	}
	for _, tc := range cases {
		got, status := engine.BestPattern(tc.locale, "gregorian", tc.skeleton)
		if status != StatusOK {
			t.Fatalf("BestPattern(%s, %s) status = %d", tc.locale, tc.skeleton, status)
		}
		if got != tc.want {
			t.Fatalf("BestPattern(%s, %s) = %q, want %q", tc.locale, tc.skeleton, got, tc.want)
		}
	}
}

func TestBestPatternOrderInsensitiveLookup(t *testing.T) {
	engine := NewXTextEngine()
	// The compiler emits weekday after day; the table keys it before month.
	got, status := engine.BestPattern("en", "gregorian", "yMMMMdEEEE")
	if status != StatusOK {
		t.Fatalf("status = %d", status)
	}
	if got != "EEEE, MMMM d, y" {
		t.Fatalf("BestPattern = %q", got)
	}
}

func TestBestPatternWidthAdjustment(t *testing.T) {
	engine := NewXTextEngine()
	got, status := engine.BestPattern("en", "gregorian", "yyMd")
	if status != StatusOK {
		t.Fatalf("status = %d", status)
	}
	if got != "M/d/yy" {
		t.Fatalf("BestPattern = %q", got)
	}
}

func TestBestPatternComposeFallback(t *testing.T) {
	engine := NewXTextEngine()
	// No table entry holds era+year+month+day+weekday together with a week.
	got, status := engine.BestPattern("en", "gregorian", "yMMMdw")
	if status != StatusOK {
		t.Fatalf("status = %d", status)
	}
	if got == "" {
		t.Fatal("compose fallback produced nothing")
	}
}

func TestBestPatternRejectsUnsupportedCalendar(t *testing.T) {
	engine := NewXTextEngine()
	if _, status := engine.BestPattern("en", "buddhist", "yMd"); status != StatusUnsupported {
		t.Fatalf("status = %d, want %d", status, StatusUnsupported)
	}
	if _, status := engine.BestPattern("en", "gregorian", ""); status != StatusIllegalArg {
		t.Fatalf("empty skeleton status = %d, want %d", status, StatusIllegalArg)
	}
}

func TestResolveDatePatternMemoized(t *testing.T) {
	engine := NewXTextEngine()
	fields := CollectionDate(DateStyleAbbreviated)

	first, err := ResolveDatePattern(engine, language.MustParse("en"), "gregorian", fields)
	if err != nil {
		t.Fatalf("ResolveDatePattern: %v", err)
	}
	second, err := ResolveDatePattern(engine, language.MustParse("en"), "gregorian", fields)
	if err != nil {
		t.Fatalf("ResolveDatePattern: %v", err)
	}
	if first != second || first != "MMM d, y" {
		t.Fatalf("patterns = %q, %q", first, second)
	}
}
