package formatstyle

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// localeParentTag returns the next fallback for a locale: the CLDR parent
// when the tag parses, the hyphen-truncated prefix otherwise.
func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	if tag, err := language.Parse(locale); err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		if value := parent.String(); value != "" && value != "und" {
			return value
		}
		return ""
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}
	return ""
}

func localeParentChain(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}

	var chain []string
	seen := map[string]struct{}{locale: {}}
	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			break
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}
	return chain
}

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

func normalizeLocales(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locales))
	result := make([]string, 0, len(locales))
	for _, locale := range locales {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	sort.Strings(result)
	return result
}
