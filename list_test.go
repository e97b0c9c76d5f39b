package formatstyle

import (
	"testing"

	"golang.org/x/text/language"
)

func TestListStyleFormat(t *testing.T) {
	style := ListStyle()
	cases := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"apples"}, "apples"},
		{[]string{"apples", "pears"}, "apples and pears"},
		{[]string{"apples", "pears", "plums"}, "apples, pears, and plums"},
		{[]string{"a", "b", "c", "d"}, "a, b, c, and d"},
	}
	for _, tc := range cases {
		if got := style.Format(tc.items); got != tc.want {
			t.Fatalf("Format(%v) = %q, want %q", tc.items, got, tc.want)
		}
	}
}

func TestListStyleLocalized(t *testing.T) {
	items := []string{"uno", "dos", "tres"}

	es := ListStyle().Locale(language.Spanish)
	if got := es.Format(items); got != "uno, dos y tres" {
		t.Fatalf("es Format = %q", got)
	}

	de := ListStyle().Locale(language.German)
	if got := de.Format([]string{"eins", "zwei"}); got != "eins und zwei" {
		t.Fatalf("de Format = %q", got)
	}
}
