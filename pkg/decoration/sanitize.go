package decoration

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	helpPolicyOnce sync.Once
	helpPolicy     *bluemonday.Policy
)

// SanitizeHelp strips markup from help and description text before it
// reaches the terminal. Field descriptors frequently originate from schema
// documents whose descriptions may embed HTML.
func SanitizeHelp(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := helpSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func helpSanitizer() *bluemonday.Policy {
	helpPolicyOnce.Do(func() {
		helpPolicy = bluemonday.StrictPolicy()
	})
	return helpPolicy
}
