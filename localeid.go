package formatstyle

import (
	"strings"

	"golang.org/x/text/language"
)

// LocaleComponents is a structured locale description. Identifier composes
// the full engine locale identifier from it; the timezone travels separately
// in the Signature because the engine configures it on the formatter rather
// than the locale.
type LocaleComponents struct {
	Language string `json:"language,omitempty"`
	Script   string `json:"script,omitempty"`
	Region   string `json:"region,omitempty"`
	Variant  string `json:"variant,omitempty"`

	Calendar          string `json:"calendar,omitempty"`
	Collation         string `json:"collation,omitempty"`
	Currency          string `json:"currency,omitempty"`
	FirstWeekday      string `json:"first_weekday,omitempty"`
	HourCycle         string `json:"hour_cycle,omitempty"`
	MeasurementSystem string `json:"measurement_system,omitempty"`
	NumberingSystem   string `json:"numbering_system,omitempty"`
	RegionOverride    string `json:"region_override,omitempty"`
	Subdivision       string `json:"subdivision,omitempty"`
	TimeZone          string `json:"time_zone,omitempty"`
}

// unicodeExtensionKeys is the fixed append order for -u- extension keywords.
// Absent components are skipped entirely; an empty keyword is never emitted.
var unicodeExtensionKeys = []struct {
	key   string
	value func(LocaleComponents) string
}{
	{"ca", func(c LocaleComponents) string { return c.Calendar }},
	{"co", func(c LocaleComponents) string { return c.Collation }},
	{"cu", func(c LocaleComponents) string { return strings.ToLower(c.Currency) }},
	{"fw", func(c LocaleComponents) string { return c.FirstWeekday }},
	{"hc", func(c LocaleComponents) string { return c.HourCycle }},
	{"ms", func(c LocaleComponents) string { return c.MeasurementSystem }},
	{"nu", func(c LocaleComponents) string { return c.NumberingSystem }},
	{"rg", func(c LocaleComponents) string { return c.RegionOverride }},
	{"sd", func(c LocaleComponents) string { return c.Subdivision }},
	{"tz", func(c LocaleComponents) string { return c.TimeZone }},
}

// Identifier renders the full engine locale identifier: base tag, then one
// keyword per resolved extension component in fixed key order.
func (c LocaleComponents) Identifier() string {
	var base strings.Builder
	if c.Language == "" {
		base.WriteString("und")
	} else {
		base.WriteString(c.Language)
	}
	if c.Script != "" {
		base.WriteString("-")
		base.WriteString(c.Script)
	}
	if c.Region != "" {
		base.WriteString("-")
		base.WriteString(c.Region)
	}
	if c.Variant != "" {
		base.WriteString("-")
		base.WriteString(c.Variant)
	}

	var ext strings.Builder
	for _, entry := range unicodeExtensionKeys {
		value := entry.value(c)
		if value == "" {
			continue
		}
		ext.WriteString("-")
		ext.WriteString(entry.key)
		ext.WriteString("-")
		ext.WriteString(value)
	}
	if ext.Len() == 0 {
		return base.String()
	}
	return base.String() + "-u" + ext.String()
}

// Tag parses the composed identifier into a language tag, falling back to
// the base components when the full identifier does not parse.
func (c LocaleComponents) Tag() language.Tag {
	if tag, err := language.Parse(c.Identifier()); err == nil {
		return tag
	}
	ext := c
	ext.TimeZone = ""
	ext.Subdivision = ""
	if tag, err := language.Parse(ext.Identifier()); err == nil {
		return tag
	}
	return language.Make(c.Language)
}
