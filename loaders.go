package formatstyle

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// BundleLoader reads calendar-bundle overlay files. Overlays extend or
// override the built-in engine data; a partial bundle is fine, only non-empty
// fields replace the base.
type BundleLoader struct {
	paths []string
}

func NewBundleLoader(paths ...string) *BundleLoader {
	return &BundleLoader{paths: append([]string(nil), paths...)}
}

func (l *BundleLoader) Load() ([]*CalendarBundle, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("formatstyle: no bundle paths configured")
	}

	var bundles []*CalendarBundle
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("formatstyle: read %s: %w", path, err)
		}

		decoded, err := decodeBundleFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("formatstyle: decode %s: %w", path, err)
		}
		bundles = append(bundles, decoded...)
	}
	return bundles, nil
}

func decodeBundleFile(path string, data []byte) ([]*CalendarBundle, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return decodeBundlesJSON(data)
	case ".yaml", ".yml":
		return decodeBundlesYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

// Bundle files hold either one bundle document or a list of bundles.
func decodeBundlesYAML(data []byte) ([]*CalendarBundle, error) {
	var many []*CalendarBundle
	if err := yaml.Unmarshal(data, &many); err == nil {
		return validateBundles(many)
	}

	var one CalendarBundle
	if err := yaml.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}
	return validateBundles([]*CalendarBundle{&one})
}

func decodeBundlesJSON(data []byte) ([]*CalendarBundle, error) {
	var many []*CalendarBundle
	if err := json.Unmarshal(data, &many); err == nil {
		return validateBundles(many)
	}

	var one CalendarBundle
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, err
	}
	return validateBundles([]*CalendarBundle{&one})
}

func validateBundles(bundles []*CalendarBundle) ([]*CalendarBundle, error) {
	result := make([]*CalendarBundle, 0, len(bundles))
	for _, bundle := range bundles {
		if bundle == nil {
			continue
		}
		if bundle.Locale == "" {
			return nil, errors.New("bundle without locale")
		}
		if err := validateBundleNames(bundle); err != nil {
			return nil, fmt.Errorf("%s: %w", bundle.Locale, err)
		}
		result = append(result, bundle)
	}
	if len(result) == 0 {
		return nil, errors.New("empty bundle document")
	}
	return result, nil
}

func validateBundleNames(bundle *CalendarBundle) error {
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"months_wide", len(bundle.MonthsWide), 12},
		{"months_abbrev", len(bundle.MonthsAbbrev), 12},
		{"months_narrow", len(bundle.MonthsNarrow), 12},
		{"weekdays_wide", len(bundle.WeekdaysWide), 7},
		{"weekdays_abbrev", len(bundle.WeekdaysAbbrev), 7},
		{"weekdays_narrow", len(bundle.WeekdaysNarrow), 7},
		{"eras", len(bundle.Eras), 2},
		{"day_periods", len(bundle.DayPeriods), 2},
		{"quarters_abbrev", len(bundle.QuartersAbbrev), 4},
	}
	for _, check := range checks {
		if check.got != 0 && check.got != check.want {
			return fmt.Errorf("%s needs %d entries, got %d", check.name, check.want, check.got)
		}
	}
	return nil
}
