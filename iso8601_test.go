package formatstyle

import (
	"testing"
	"time"
)

func TestISO8601Format(t *testing.T) {
	style := ISO8601()

	if got := style.Format(time.Unix(0, 0).UTC()); got != "1970-01-01T00:00:00Z" {
		t.Fatalf("epoch = %q", got)
	}
	if got := style.Format(sampleMoment); got != "2023-10-21T14:30:05Z" {
		t.Fatalf("Format = %q", got)
	}

	offset := sampleMoment.In(time.FixedZone("", -4*3600))
	if got := style.Format(offset); got != "2023-10-21T10:30:05-04:00" {
		t.Fatalf("offset Format = %q", got)
	}
}

func TestISO8601FractionalSeconds(t *testing.T) {
	style := ISO8601().WithFractionalSeconds()
	moment := sampleMoment.Add(250 * time.Millisecond)
	if got := style.Format(moment); got != "2023-10-21T14:30:05.250Z" {
		t.Fatalf("Format = %q", got)
	}
}

func TestISO8601WeekDate(t *testing.T) {
	style := ISO8601().WithWeekOfYear()
	// 2023-10-21 is Saturday of ISO week 42.
	if got := style.Format(sampleMoment); got != "2023-W42-06T14:30:05Z" {
		t.Fatalf("Format = %q", got)
	}

	parsed, err := style.Parse("2023-W42-06T14:30:05Z")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !parsed.Equal(sampleMoment) {
		t.Fatalf("Parse = %v, want %v", parsed, sampleMoment)
	}
}

func TestISO8601OrdinalDay(t *testing.T) {
	style := ISO8601FormatStyle{
		Year: true, Day: true,
		DateSeparator: "-",
	}
	if got := style.Format(sampleMoment); got != "2023-294" {
		t.Fatalf("Format = %q", got)
	}

	parsed, err := style.Parse("2023-294")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Month() != time.October || parsed.Day() != 21 {
		t.Fatalf("Parse = %v", parsed)
	}
}

func TestISO8601ParseRoundTrip(t *testing.T) {
	style := ISO8601()
	cases := []string{
		"1970-01-01T00:00:00Z",
		"2023-10-21T14:30:05Z",
		"2023-10-21T10:30:05-04:00",
		"2023-10-21T19:30:05+05:00",
	}
	for _, text := range cases {
		parsed, err := style.Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if got := style.Format(parsed); got != text {
			t.Fatalf("round trip %q -> %q", text, got)
		}
	}
}

func TestISO8601CustomSeparators(t *testing.T) {
	style := ISO8601().
		WithDateSeparator("").
		WithTimeSeparator("").
		WithDateTimeSeparator(" ")
	if got := style.Format(sampleMoment); got != "20231021 143005Z" {
		t.Fatalf("Format = %q", got)
	}
}

func TestISO8601ParseErrors(t *testing.T) {
	style := ISO8601()
	bad := []string{
		"",
		"2023-13-01T00:00:00Z",
		"2023-10-21",
		"2023-10-21T25:00:00Z",
		"2023-10-21T14:30:05Z extra",
	}
	for _, text := range bad {
		if _, err := style.Parse(text); err == nil {
			t.Fatalf("Parse(%q) should fail", text)
		}
	}
}
