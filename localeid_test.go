package formatstyle

import "testing"

func TestLocaleComponentsIdentifier(t *testing.T) {
	cases := []struct {
		name string
		c    LocaleComponents
		want string
	}{
		{
			name: "bare language",
			c:    LocaleComponents{Language: "en"},
			want: "en",
		},
		{
			name: "empty components",
			c:    LocaleComponents{},
			want: "und",
		},
		{
			name: "full base tag",
			c:    LocaleComponents{Language: "zh", Script: "Hant", Region: "TW"},
			want: "zh-Hant-TW",
		},
		{
			name: "extension keywords in fixed order",
			c: LocaleComponents{
				Language:        "en",
				Region:          "GB",
				Calendar:        "gregorian",
				HourCycle:       "h23",
				NumberingSystem: "latn",
			},
			want: "en-GB-u-ca-gregorian-hc-h23-nu-latn",
		},
		{
			name: "currency lowercased",
			c:    LocaleComponents{Language: "en", Currency: "USD"},
			want: "en-u-cu-usd",
		},
		{
			name: "order ignores struct population order",
			c: LocaleComponents{
				Language:        "de",
				NumberingSystem: "latn",
				Calendar:        "gregorian",
			},
			want: "de-u-ca-gregorian-nu-latn",
		},
	}
	for _, tc := range cases {
		if got := tc.c.Identifier(); got != tc.want {
			t.Fatalf("%s: Identifier() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestLocaleComponentsTag(t *testing.T) {
	c := LocaleComponents{Language: "en", Region: "GB", HourCycle: "h12"}
	tag := c.Tag()
	if tag.String() == "" {
		t.Fatal("empty tag")
	}

	// A raw zone name is not a valid -tz- value; Tag falls back to the base
	// components instead of failing.
	withZone := LocaleComponents{Language: "en", TimeZone: "America/New_York"}
	if got := withZone.Tag(); got.String() != "en" {
		t.Fatalf("Tag() = %q, want en", got)
	}
}
