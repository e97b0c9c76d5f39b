package formatstyle

import (
	"fmt"

	"golang.org/x/text/language"
)

// Config wires an engine, a fallback resolver and bundle overlays into one
// reusable entry point. Styles created through a Config inherit its engine
// and default locale.
type Config struct {
	defaultLocale    string
	supportedLocales []string
	bundlePaths      []string
	resolver         FallbackResolver
	provider         *BundleProvider
	engine           Engine
}

// Option mutates a Config during construction.
type Option func(*Config) error

// WithDefaultLocale sets the locale styles start from.
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		if locale == "" {
			return fmt.Errorf("formatstyle: default locale cannot be empty")
		}
		if _, err := language.Parse(locale); err != nil {
			return fmt.Errorf("formatstyle: invalid default locale %q: %w", locale, err)
		}
		c.defaultLocale = normalizeLocale(locale)
		return nil
	}
}

// WithBundlePaths registers calendar-bundle overlay files to load.
func WithBundlePaths(paths ...string) Option {
	return func(c *Config) error {
		c.bundlePaths = append(c.bundlePaths, paths...)
		return nil
	}
}

// WithSupportedLocales restricts the locale set the Config reports as
// supported. Locales are normalized and deduplicated; an empty set after
// normalization is a configuration error.
func WithSupportedLocales(locales ...string) Option {
	return func(c *Config) error {
		normalized := normalizeLocales(locales)
		if len(normalized) == 0 {
			return fmt.Errorf("formatstyle: supported locales cannot be empty")
		}
		for _, locale := range normalized {
			if _, err := language.Parse(locale); err != nil {
				return fmt.Errorf("formatstyle: invalid supported locale %q: %w", locale, err)
			}
		}
		c.supportedLocales = normalized
		return nil
	}
}

// WithFallbackResolver swaps the locale fallback strategy.
func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		if resolver == nil {
			return fmt.Errorf("formatstyle: fallback resolver cannot be nil")
		}
		c.resolver = resolver
		return nil
	}
}

// WithEngine replaces the default engine entirely. Bundle paths are ignored
// when a custom engine is supplied; the engine owns its own data.
func WithEngine(engine Engine) Option {
	return func(c *Config) error {
		if engine == nil {
			return fmt.Errorf("formatstyle: engine cannot be nil")
		}
		c.engine = engine
		return nil
	}
}

// New builds a Config, loading any overlay bundles into a fresh provider.
func New(opts ...Option) (*Config, error) {
	c := &Config{defaultLocale: "en"}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if len(c.supportedLocales) > 0 && !c.Supports(c.defaultLocale) {
		return nil, fmt.Errorf("formatstyle: default locale %q is not in the supported set", c.defaultLocale)
	}

	if c.engine == nil {
		c.provider = NewBundleProvider(c.resolver)
		if len(c.bundlePaths) > 0 {
			bundles, err := NewBundleLoader(c.bundlePaths...).Load()
			if err != nil {
				return nil, err
			}
			for _, bundle := range bundles {
				c.provider.Register(bundle)
			}
		}
		c.engine = NewXTextEngine(WithBundleProvider(c.provider))
	}
	return c, nil
}

// Engine returns the configured engine.
func (c *Config) Engine() Engine {
	return c.engine
}

// DefaultLocale returns the configured default locale tag.
func (c *Config) DefaultLocale() language.Tag {
	return language.Make(c.defaultLocale)
}

// SupportedLocales returns the normalized supported set, or nil when the
// Config accepts any locale.
func (c *Config) SupportedLocales() []string {
	return c.supportedLocales
}

// Supports reports whether a locale is in the supported set, either exactly
// or through one of its parents. An unrestricted Config supports everything.
func (c *Config) Supports(locale string) bool {
	if len(c.supportedLocales) == 0 {
		return true
	}
	locale = normalizeLocale(locale)
	candidates := append([]string{locale}, localeParentChain(locale)...)
	for _, candidate := range candidates {
		for _, supported := range c.supportedLocales {
			if candidate == supported {
				return true
			}
		}
	}
	return false
}

// Bundles returns the provider backing the default engine, or nil when a
// custom engine was supplied.
func (c *Config) Bundles() *BundleProvider {
	return c.provider
}

// DateTimeStyle returns a date style bound to this Config.
func (c *Config) DateTimeStyle(date DateStyle, timeStyle TimeStyle) DateFormatStyle {
	return DateTimeStyle(date, timeStyle).Locale(c.DefaultLocale()).WithEngine(c.engine)
}

// DecimalStyle returns a float style bound to this Config.
func (c *Config) DecimalStyle() FloatFormatStyle {
	return DecimalStyle().Locale(c.DefaultLocale()).WithEngine(c.engine)
}

// IntegerStyle returns an integer style bound to this Config.
func (c *Config) IntegerStyle() IntegerFormatStyle {
	return IntegerStyle().Locale(c.DefaultLocale()).WithEngine(c.engine)
}

// PercentStyle returns a percent style bound to this Config.
func (c *Config) PercentStyle() PercentFormatStyle {
	return PercentStyle().Locale(c.DefaultLocale()).WithEngine(c.engine)
}

// CurrencyStyle returns a currency style bound to this Config.
func (c *Config) CurrencyStyle(code string) CurrencyFormatStyle {
	return CurrencyStyle(code).Locale(c.DefaultLocale()).WithEngine(c.engine)
}

// ListStyle returns a list style bound to this Config.
func (c *Config) ListStyle() ListFormatStyle {
	return ListStyle().Locale(c.DefaultLocale()).WithEngine(c.engine)
}

// RelativeStyle returns a relative-date style bound to this Config.
func (c *Config) RelativeStyle() RelativeDateFormatStyle {
	return RelativeStyle().Locale(c.DefaultLocale()).WithEngine(c.engine)
}
