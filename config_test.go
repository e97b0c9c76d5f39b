package formatstyle

import (
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.Engine() == nil {
		t.Fatal("no engine configured")
	}
	if got := cfg.DefaultLocale().String(); got != "en" {
		t.Fatalf("DefaultLocale = %q", got)
	}
	if cfg.Bundles() == nil {
		t.Fatal("default engine must expose its bundle provider")
	}
}

func TestNewConfigInvalidLocale(t *testing.T) {
	if _, err := New(WithDefaultLocale("not a locale!")); err == nil {
		t.Fatal("invalid locale must fail")
	}
	if _, err := New(WithDefaultLocale("")); err == nil {
		t.Fatal("empty locale must fail")
	}
}

func TestNewConfigSupportedLocales(t *testing.T) {
	cfg, err := New(WithDefaultLocale("es"), WithSupportedLocales("es", "en_GB", "fr"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !cfg.Supports("es") || !cfg.Supports("fr") {
		t.Fatal("listed locales must be supported")
	}
	if !cfg.Supports("en_GB") || !cfg.Supports("es-MX") {
		t.Fatal("normalized and child locales must be supported")
	}
	if cfg.Supports("de") {
		t.Fatal("unlisted locale must not be supported")
	}
	if got := len(cfg.SupportedLocales()); got != 3 {
		t.Fatalf("SupportedLocales = %v", cfg.SupportedLocales())
	}

	if _, err := New(WithDefaultLocale("de"), WithSupportedLocales("es")); err == nil {
		t.Fatal("unsupported default locale must fail")
	}
	if _, err := New(WithSupportedLocales("   ")); err == nil {
		t.Fatal("blank supported set must fail")
	}
}

func TestNewConfigBoundStyles(t *testing.T) {
	cfg, err := New(WithDefaultLocale("de"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := cfg.DecimalStyle().Format(1234.5); got != "1.234,5" {
		t.Fatalf("bound decimal = %q", got)
	}

	date := cfg.DateTimeStyle(DateStyleNumeric, TimeStyleOmitted)
	moment := time.Date(2023, time.October, 21, 0, 0, 0, 0, time.UTC)
	if got := date.Format(moment); got != "21.10.2023" {
		t.Fatalf("bound date = %q", got)
	}
}

func TestNewConfigBundleOverlay(t *testing.T) {
	path := writeBundleFile(t, "au.yaml", `
locale: en-AU
day_first: true
twelve_hour: true
currency_before: true
numeric_date_sep: "/"
available_formats:
  yMd: d/M/y
`)

	cfg, err := New(WithDefaultLocale("en-AU"), WithBundlePaths(path))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	bundle := cfg.Bundles().Get("en-AU")
	if bundle == nil || !bundle.DayFirst {
		t.Fatalf("overlay not registered: %+v", bundle)
	}
	if bundle.MonthsWide[0] != "January" {
		t.Fatal("overlay must still inherit parent month names")
	}

	moment := time.Date(2023, time.October, 21, 0, 0, 0, 0, time.UTC)
	style := cfg.DateTimeStyle(DateStyleNumeric, TimeStyleOmitted)
	if got := style.Format(moment); got != "21/10/2023" {
		t.Fatalf("overlay date = %q", got)
	}
}

func TestNewConfigBadBundlePath(t *testing.T) {
	if _, err := New(WithBundlePaths("/missing/overlay.yaml")); err == nil {
		t.Fatal("unreadable bundle path must fail")
	}
}

func TestNewConfigCustomEngine(t *testing.T) {
	engine := &fakeEngine{}
	cfg, err := New(WithEngine(engine))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.Engine() != engine {
		t.Fatal("custom engine not used")
	}
	if cfg.Bundles() != nil {
		t.Fatal("custom engines own their data; no provider expected")
	}
}
