package formatstyle

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestAlignedComponent(t *testing.T) {
	reference := time.Date(2023, time.October, 21, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name        string
		destination time.Time
		component   RelativeComponent
		value       int
	}{
		{"next year", reference.AddDate(1, 0, 0), ComponentYear, 1},
		{"two months", reference.AddDate(0, 2, 0), ComponentMonth, 2},
		{"eight days is a week", reference.AddDate(0, 0, 8), ComponentWeek, 1},
		{"three days", reference.AddDate(0, 0, 3), ComponentDay, 3},
		{"two days back", reference.AddDate(0, 0, -2), ComponentDay, -2},
		{"five hours", reference.Add(5 * time.Hour), ComponentHour, 5},
		{"thirty minutes stays minutes", reference.Add(30 * time.Minute), ComponentMinute, 30},
		{"ninety minutes rounds up to even hours", reference.Add(90 * time.Minute), ComponentHour, 2},
		{"forty seconds", reference.Add(40 * time.Second), ComponentSecond, 40},
	}
	for _, tc := range cases {
		component, value := alignedComponent(tc.destination, reference)
		if component != tc.component || value != tc.value {
			t.Fatalf("%s: alignedComponent = (%v, %d), want (%v, %d)",
				tc.name, component, value, tc.component, tc.value)
		}
	}
}

func TestAlignedComponentDayBoundary(t *testing.T) {
	// Two hours across midnight is one calendar day, not zero.
	reference := time.Date(2023, time.October, 21, 23, 30, 0, 0, time.UTC)
	destination := reference.Add(2 * time.Hour)

	component, value := alignedComponent(destination, reference)
	if component != ComponentDay || value != 1 {
		t.Fatalf("alignedComponent = (%v, %d), want (day, 1)", component, value)
	}
}

func TestAlignedComponentFullDayWithinSameDate(t *testing.T) {
	// The last second of the day is still the same calendar date, but
	// rounding must report one day rather than 24 hours.
	reference := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	destination := time.Date(2024, time.January, 1, 23, 59, 59, 0, time.UTC)

	component, value := alignedComponent(destination, reference)
	if component != ComponentDay || value != 1 {
		t.Fatalf("alignedComponent = (%v, %d), want (day, 1)", component, value)
	}

	component, value = alignedComponent(reference, destination)
	if component != ComponentDay || value != -1 {
		t.Fatalf("reverse alignedComponent = (%v, %d), want (day, -1)", component, value)
	}

	if got := RelativeStyle().Format(destination, reference); got != "in 1 day" {
		t.Fatalf("Format = %q", got)
	}
}

func TestAlignedComponentRoundsSubSecondJitter(t *testing.T) {
	reference := time.Date(2023, time.October, 21, 12, 0, 0, 0, time.UTC)
	destination := reference.Add(999 * time.Millisecond)

	component, value := alignedComponent(destination, reference)
	if component != ComponentSecond || value != 1 {
		t.Fatalf("alignedComponent = (%v, %d), want (second, 1)", component, value)
	}
}

func TestRelativeStyleNumeric(t *testing.T) {
	reference := time.Date(2023, time.October, 21, 12, 0, 0, 0, time.UTC)
	style := RelativeStyle()

	cases := []struct {
		destination time.Time
		want        string
	}{
		{reference.AddDate(0, 0, 1), "in 1 day"},
		{reference.AddDate(0, 0, 3), "in 3 days"},
		{reference.AddDate(0, 0, -1), "1 day ago"},
		{reference.AddDate(0, 0, -2), "2 days ago"},
		{reference.Add(5 * time.Hour), "in 5 hours"},
		{reference.Add(-30 * time.Minute), "30 minutes ago"},
	}
	for _, tc := range cases {
		if got := style.Format(tc.destination, reference); got != tc.want {
			t.Fatalf("Format(%v) = %q, want %q", tc.destination, got, tc.want)
		}
	}
}

func TestRelativeStyleNamed(t *testing.T) {
	reference := time.Date(2023, time.October, 21, 23, 30, 0, 0, time.UTC)
	style := RelativeStyle().Presentation(PresentationNamed)

	if got := style.Format(reference.Add(2*time.Hour), reference); got != "tomorrow" {
		t.Fatalf("Format = %q", got)
	}
	if got := style.Format(reference.AddDate(0, 0, -1), reference); got != "yesterday" {
		t.Fatalf("Format = %q", got)
	}
	// No idiom for three days out; named presentation falls back to numeric.
	if got := style.Format(reference.AddDate(0, 0, 3), reference); got != "in 3 days" {
		t.Fatalf("Format = %q", got)
	}
}

func TestRelativeStyleLocalized(t *testing.T) {
	reference := time.Date(2023, time.October, 21, 12, 0, 0, 0, time.UTC)
	style := RelativeStyle().Locale(language.Spanish).Presentation(PresentationNamed)

	if got := style.Format(reference.AddDate(0, 0, 1), reference); got != "mañana" {
		t.Fatalf("es Format = %q", got)
	}
	numeric := RelativeStyle().Locale(language.Spanish)
	if got := numeric.Format(reference.AddDate(0, 0, 3), reference); got != "dentro de 3 días" {
		t.Fatalf("es numeric Format = %q", got)
	}
}

func TestRelativeStyleCapitalized(t *testing.T) {
	reference := time.Date(2023, time.October, 21, 12, 0, 0, 0, time.UTC)
	style := RelativeStyle().
		Presentation(PresentationNamed).
		Capitalized(CapitalizationBeginningOfSentence)

	if got := style.Format(reference.AddDate(0, 0, 1), reference); got != "Tomorrow" {
		t.Fatalf("Format = %q", got)
	}
}
