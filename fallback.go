package formatstyle

// FallbackResolver resolves fallback locale chains for bundle lookup.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver keeps an explicit locale -> parents table and can be
// seeded from CLDR-style parent chains.
type StaticFallbackResolver struct {
	chains map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil || s.chains == nil {
		return nil
	}
	return s.chains[normalizeLocale(locale)]
}

func (s *StaticFallbackResolver) Set(locale string, parents ...string) {
	if s == nil || locale == "" {
		return
	}
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	s.chains[normalizeLocale(locale)] = parents
}

// ParentChainResolver derives fallbacks from the locale tag itself.
type ParentChainResolver struct{}

func (ParentChainResolver) Resolve(locale string) []string {
	return localeParentChain(locale)
}
