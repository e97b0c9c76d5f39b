package formatstyle

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNumberFormatCollectionJSONRoundTrip(t *testing.T) {
	precise := SignificantDigits(2, 4)
	cases := []struct {
		name string
		c    NumberFormatCollection
	}{
		{"all absent", NumberFormatCollection{}},
		{
			"every field with precision",
			NumberFormatCollection{
				Precision:        &precise,
				Group:            sym(GroupingNever),
				Sign:             sym(SignAccounting(true)),
				Notation:         sym(NotationScientific),
				Scale:            sym(0.01),
				DecimalSeparator: sym(SeparatorAlways),
				Rounding:         sym(RoundUp),
				Presentation:     sym(PresentationFullName),
			},
		},
		{
			"rounding increment instead of precision",
			NumberFormatCollection{
				RoundingIncrement: sym(RoundingIncrement{Whole: 5, Scale: 2}),
				Sign:              sym(SignAlways(false)),
			},
		},
	}
	for _, tc := range cases {
		data, err := json.Marshal(tc.c)
		if err != nil {
			t.Fatalf("%s: Marshal: %v", tc.name, err)
		}
		var decoded NumberFormatCollection
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("%s: Unmarshal: %v", tc.name, err)
		}
		if !reflect.DeepEqual(decoded, tc.c) {
			t.Fatalf("%s: round trip = %+v, want %+v", tc.name, decoded, tc.c)
		}
	}

	if data, _ := json.Marshal(NumberFormatCollection{}); string(data) != "{}" {
		t.Fatalf("empty collection = %s", data)
	}
}

func TestDateFieldCollectionJSONRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		c    DateFieldCollection
	}{
		{"all absent", DateFieldCollection{}},
		{
			"every field",
			DateFieldCollection{
				Era:            sym(EraWide),
				Year:           sym(YearPadded),
				Quarter:        sym(QuarterAbbreviated),
				Month:          sym(MonthWide),
				Week:           sym(WeekTwoDigits),
				Day:            sym(DayTwoDigits),
				DayOfYear:      sym(DayOfYearThreeDigits),
				Weekday:        sym(WeekdayWide),
				DayPeriod:      sym(DayPeriodStandard),
				Hour:           sym(HourTwoDigits),
				Minute:         sym(MinuteTwoDigits),
				Second:         sym(SecondTwoDigits),
				SecondFraction: sym(SecondFraction2),
				TimeZone:       sym(TimeZoneSpecificShort),
			},
		},
	}
	for _, tc := range cases {
		data, err := json.Marshal(tc.c)
		if err != nil {
			t.Fatalf("%s: Marshal: %v", tc.name, err)
		}
		var decoded DateFieldCollection
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("%s: Unmarshal: %v", tc.name, err)
		}
		if !reflect.DeepEqual(decoded, tc.c) {
			t.Fatalf("%s: round trip = %+v, want %+v", tc.name, decoded, tc.c)
		}
	}
}

func TestSignatureJSONRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		s    Signature
	}{
		{"zero value", Signature{}},
		{
			"every field",
			Signature{
				Locale:             "en-GB",
				Calendar:           "gregorian",
				TimeZone:           "Europe/London",
				Pattern:            "d MMM y",
				Lenient:            true,
				Capitalization:     CapitalizationBeginningOfSentence,
				FirstWeekday:       2,
				MinDaysInFirstWeek: 4,
				TwoDigitYearCutoff: 1970,
			},
		},
	}
	for _, tc := range cases {
		data, err := json.Marshal(tc.s)
		if err != nil {
			t.Fatalf("%s: Marshal: %v", tc.name, err)
		}
		var decoded Signature
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("%s: Unmarshal: %v", tc.name, err)
		}
		if decoded != tc.s {
			t.Fatalf("%s: round trip = %+v, want %+v", tc.name, decoded, tc.s)
		}
	}
}
