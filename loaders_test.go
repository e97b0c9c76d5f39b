package formatstyle

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBundleFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestBundleLoaderYAML(t *testing.T) {
	path := writeBundleFile(t, "overlay.yaml", `
locale: en-AU
day_first: true
available_formats:
  yMd: d/M/y
numbers:
  decimal: "."
  group: ","
`)

	bundles, err := NewBundleLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(bundles) != 1 {
		t.Fatalf("bundles = %d", len(bundles))
	}
	b := bundles[0]
	if b.Locale != "en-AU" || !b.DayFirst {
		t.Fatalf("bundle = %+v", b)
	}
	if b.AvailableFormats["yMd"] != "d/M/y" {
		t.Fatalf("formats = %v", b.AvailableFormats)
	}
}

func TestBundleLoaderYAMLList(t *testing.T) {
	path := writeBundleFile(t, "overlays.yml", `
- locale: en-AU
  day_first: true
- locale: en-NZ
  day_first: true
`)

	bundles, err := NewBundleLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(bundles) != 2 || bundles[1].Locale != "en-NZ" {
		t.Fatalf("bundles = %+v", bundles)
	}
}

func TestBundleLoaderJSON(t *testing.T) {
	path := writeBundleFile(t, "overlay.json", `{
  "locale": "en-CA",
  "available_formats": {"yMd": "y-MM-dd"}
}`)

	bundles, err := NewBundleLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if bundles[0].Locale != "en-CA" || bundles[0].AvailableFormats["yMd"] != "y-MM-dd" {
		t.Fatalf("bundle = %+v", bundles[0])
	}
}

func TestBundleLoaderRejectsMissingLocale(t *testing.T) {
	path := writeBundleFile(t, "bad.yaml", "day_first: true\n")
	if _, err := NewBundleLoader(path).Load(); err == nil {
		t.Fatal("bundle without locale must fail")
	}
}

func TestBundleLoaderValidatesNameCounts(t *testing.T) {
	path := writeBundleFile(t, "short.yaml", `
locale: en-AU
months_wide: [Jan, Feb, Mar]
`)
	if _, err := NewBundleLoader(path).Load(); err == nil {
		t.Fatal("three month names must fail validation")
	}
}

func TestBundleLoaderRejectsUnknownExtension(t *testing.T) {
	path := writeBundleFile(t, "overlay.toml", "locale = \"en\"\n")
	if _, err := NewBundleLoader(path).Load(); err == nil {
		t.Fatal("unsupported extension must fail")
	}
}

func TestBundleLoaderMissingFile(t *testing.T) {
	if _, err := NewBundleLoader("/does/not/exist.yaml").Load(); err == nil {
		t.Fatal("missing file must fail")
	}
}

func TestBundleLoaderNoPaths(t *testing.T) {
	if _, err := NewBundleLoader().Load(); err == nil {
		t.Fatal("a loader without paths must fail")
	}
}
