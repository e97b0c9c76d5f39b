package formatstyle

import "sync"

// NumberSymbols are the locale's numeric affixes and separators.
type NumberSymbols struct {
	Decimal  string `yaml:"decimal" json:"decimal"`
	Group    string `yaml:"group" json:"group"`
	Minus    string `yaml:"minus" json:"minus"`
	Plus     string `yaml:"plus" json:"plus"`
	Percent  string `yaml:"percent" json:"percent"`
	Exponent string `yaml:"exponent" json:"exponent"`
}

// ListPatterns hold the {0}/{1} join templates for list output.
type ListPatterns struct {
	Pair   string `yaml:"pair" json:"pair"`
	Start  string `yaml:"start" json:"start"`
	Middle string `yaml:"middle" json:"middle"`
	End    string `yaml:"end" json:"end"`
}

// RelativeVocab is the per-component relative-date vocabulary. Named holds
// idiomatic forms keyed by offset (-1, 0, 1: "yesterday", "today",
// "tomorrow"); numeric output uses the Past/Future templates with a {0}
// placeholder.
type RelativeVocab struct {
	Past      string         `yaml:"past" json:"past"`
	PastOne   string         `yaml:"past_one" json:"past_one"`
	Future    string         `yaml:"future" json:"future"`
	FutureOne string         `yaml:"future_one" json:"future_one"`
	Named     map[int]string `yaml:"named" json:"named"`
}

// UnitNames are the spelled-out and abbreviated names of a duration unit.
type UnitNames struct {
	One    string `yaml:"one" json:"one"`
	Other  string `yaml:"other" json:"other"`
	Abbrev string `yaml:"abbrev" json:"abbrev"`
}

// CalendarBundle is one locale's engine data: calendar names, standard
// patterns, an available-formats skeleton map, number symbols, list patterns
// and relative vocabulary. Bundles may be partial; lookup merges a locale's
// bundle over its parent chain, and YAML overlays merge over both.
type CalendarBundle struct {
	Locale string `yaml:"locale" json:"locale"`

	MonthsWide     []string `yaml:"months_wide,omitempty" json:"months_wide,omitempty"`
	MonthsAbbrev   []string `yaml:"months_abbrev,omitempty" json:"months_abbrev,omitempty"`
	MonthsNarrow   []string `yaml:"months_narrow,omitempty" json:"months_narrow,omitempty"`
	WeekdaysWide   []string `yaml:"weekdays_wide,omitempty" json:"weekdays_wide,omitempty"`
	WeekdaysAbbrev []string `yaml:"weekdays_abbrev,omitempty" json:"weekdays_abbrev,omitempty"`
	WeekdaysNarrow []string `yaml:"weekdays_narrow,omitempty" json:"weekdays_narrow,omitempty"`
	Eras           []string `yaml:"eras,omitempty" json:"eras,omitempty"`
	ErasWide       []string `yaml:"eras_wide,omitempty" json:"eras_wide,omitempty"`
	DayPeriods     []string `yaml:"day_periods,omitempty" json:"day_periods,omitempty"`
	QuartersAbbrev []string `yaml:"quarters_abbrev,omitempty" json:"quarters_abbrev,omitempty"`
	QuartersWide   []string `yaml:"quarters_wide,omitempty" json:"quarters_wide,omitempty"`

	AvailableFormats map[string]string `yaml:"available_formats,omitempty" json:"available_formats,omitempty"`
	DayFirst         bool              `yaml:"day_first" json:"day_first"`
	TwelveHour       bool              `yaml:"twelve_hour" json:"twelve_hour"`
	NumericDateSep   string            `yaml:"numeric_date_sep,omitempty" json:"numeric_date_sep,omitempty"`
	FirstWeekday     int               `yaml:"first_weekday,omitempty" json:"first_weekday,omitempty"`
	MinDays          int               `yaml:"min_days,omitempty" json:"min_days,omitempty"`

	Numbers           NumberSymbols            `yaml:"numbers,omitempty" json:"numbers,omitempty"`
	CurrencyBefore    bool                     `yaml:"currency_before" json:"currency_before"`
	CurrencySymbols   map[string]string        `yaml:"currency_symbols,omitempty" json:"currency_symbols,omitempty"`
	CurrencyNames     map[string]string        `yaml:"currency_names,omitempty" json:"currency_names,omitempty"`
	List              ListPatterns             `yaml:"list,omitempty" json:"list,omitempty"`
	Relative          map[string]RelativeVocab `yaml:"relative,omitempty" json:"relative,omitempty"`
	DurationSkeletons map[string]string        `yaml:"duration_skeletons,omitempty" json:"duration_skeletons,omitempty"`
	CompactSuffixes   []string                 `yaml:"compact_suffixes,omitempty" json:"compact_suffixes,omitempty"`
	Units             map[string]UnitNames     `yaml:"units,omitempty" json:"units,omitempty"`
}

// merge overlays non-empty fields of other onto a copy of b.
func (b CalendarBundle) merge(other *CalendarBundle) CalendarBundle {
	if other == nil {
		return b
	}
	if len(other.MonthsWide) > 0 {
		b.MonthsWide = other.MonthsWide
	}
	if len(other.MonthsAbbrev) > 0 {
		b.MonthsAbbrev = other.MonthsAbbrev
	}
	if len(other.MonthsNarrow) > 0 {
		b.MonthsNarrow = other.MonthsNarrow
	}
	if len(other.WeekdaysWide) > 0 {
		b.WeekdaysWide = other.WeekdaysWide
	}
	if len(other.WeekdaysAbbrev) > 0 {
		b.WeekdaysAbbrev = other.WeekdaysAbbrev
	}
	if len(other.WeekdaysNarrow) > 0 {
		b.WeekdaysNarrow = other.WeekdaysNarrow
	}
	if len(other.Eras) > 0 {
		b.Eras = other.Eras
	}
	if len(other.ErasWide) > 0 {
		b.ErasWide = other.ErasWide
	}
	if len(other.DayPeriods) > 0 {
		b.DayPeriods = other.DayPeriods
	}
	if len(other.QuartersAbbrev) > 0 {
		b.QuartersAbbrev = other.QuartersAbbrev
	}
	if len(other.QuartersWide) > 0 {
		b.QuartersWide = other.QuartersWide
	}
	if len(other.AvailableFormats) > 0 {
		merged := make(map[string]string, len(b.AvailableFormats)+len(other.AvailableFormats))
		for k, v := range b.AvailableFormats {
			merged[k] = v
		}
		for k, v := range other.AvailableFormats {
			merged[k] = v
		}
		b.AvailableFormats = merged
	}
	b.DayFirst = other.DayFirst
	b.TwelveHour = other.TwelveHour
	if other.NumericDateSep != "" {
		b.NumericDateSep = other.NumericDateSep
	}
	if other.FirstWeekday != 0 {
		b.FirstWeekday = other.FirstWeekday
	}
	if other.MinDays != 0 {
		b.MinDays = other.MinDays
	}
	if other.Numbers != (NumberSymbols{}) {
		b.Numbers = other.Numbers
	}
	b.CurrencyBefore = other.CurrencyBefore
	if len(other.CurrencySymbols) > 0 {
		b.CurrencySymbols = other.CurrencySymbols
	}
	if len(other.CurrencyNames) > 0 {
		b.CurrencyNames = other.CurrencyNames
	}
	if other.List != (ListPatterns{}) {
		b.List = other.List
	}
	if len(other.Relative) > 0 {
		b.Relative = other.Relative
	}
	if len(other.DurationSkeletons) > 0 {
		b.DurationSkeletons = other.DurationSkeletons
	}
	if len(other.CompactSuffixes) > 0 {
		b.CompactSuffixes = other.CompactSuffixes
	}
	if len(other.Units) > 0 {
		b.Units = other.Units
	}
	b.Locale = other.Locale
	return b
}

// BundleProvider resolves locale bundles with parent-chain fallback and
// caches resolved results.
type BundleProvider struct {
	mu       sync.RWMutex
	bundles  map[string]*CalendarBundle
	resolved map[string]*CalendarBundle
	resolver FallbackResolver
}

// NewBundleProvider seeds a provider with the built-in bundles.
func NewBundleProvider(resolver FallbackResolver) *BundleProvider {
	if resolver == nil {
		resolver = ParentChainResolver{}
	}
	bundles := make(map[string]*CalendarBundle, len(builtinBundles))
	for locale, bundle := range builtinBundles {
		bundles[locale] = bundle
	}
	return &BundleProvider{
		bundles:  bundles,
		resolved: make(map[string]*CalendarBundle),
		resolver: resolver,
	}
}

// Register adds or overlays a bundle for its locale.
func (p *BundleProvider) Register(bundle *CalendarBundle) {
	if p == nil || bundle == nil || bundle.Locale == "" {
		return
	}
	locale := normalizeLocale(bundle.Locale)

	p.mu.Lock()
	defer p.mu.Unlock()
	if existing, ok := p.bundles[locale]; ok {
		merged := existing.merge(bundle)
		p.bundles[locale] = &merged
	} else {
		p.bundles[locale] = bundle
	}
	p.resolved = make(map[string]*CalendarBundle)
}

// Get resolves the bundle for locale, merging the locale's own bundle over
// its parent chain (root-most first). Returns nil when no bundle along the
// chain exists.
func (p *BundleProvider) Get(locale string) *CalendarBundle {
	if p == nil {
		return nil
	}
	locale = normalizeLocale(locale)

	p.mu.RLock()
	if cached, ok := p.resolved[locale]; ok {
		p.mu.RUnlock()
		return cached
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if cached, ok := p.resolved[locale]; ok {
		return cached
	}

	chain := append([]string{locale}, p.resolver.Resolve(locale)...)
	var result *CalendarBundle
	// Walk root-most first so nearer locales overwrite.
	for i := len(chain) - 1; i >= 0; i-- {
		bundle, ok := p.bundles[chain[i]]
		if !ok {
			continue
		}
		if result == nil {
			copied := *bundle
			result = &copied
			continue
		}
		merged := result.merge(bundle)
		result = &merged
	}

	p.resolved[locale] = result
	return result
}
