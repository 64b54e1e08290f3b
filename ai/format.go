package ai

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// genericNameSuffix strips trailing filler words models like to append.
var genericNameSuffix = regexp.MustCompile(`(?i)\s+(Intent|Service|System|Platform|Tool|Solution)$`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// FormatName rewrites a model-generated name into readable form. CamelCase
// names get spaces inserted at word boundaries while acronyms stay intact
// ("SPFAuthenticationSetup" becomes "SPF Authentication Setup"), runs of
// whitespace collapse, and a generic trailing word such as "Intent" or
// "Platform" is removed.
func FormatName(name string) string {
	if name == "" {
		return name
	}

	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 8)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev):
				// New word after lowercase.
				b.WriteRune(' ')
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				// New word starting at the end of an acronym.
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}

	formatted := whitespaceRun.ReplaceAllString(b.String(), " ")
	formatted = genericNameSuffix.ReplaceAllString(formatted, "")
	return strings.TrimSpace(formatted)
}

// FallbackNames returns the placeholder names used when a model response
// carries no usable NAME lines.
func FallbackNames(topic string) []string {
	return []string{
		fmt.Sprintf("%s Option 1", topic),
		fmt.Sprintf("%s Option 2", topic),
		fmt.Sprintf("%s Option 3", topic),
	}
}
