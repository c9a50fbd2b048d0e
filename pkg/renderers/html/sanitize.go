package html

import (
	stdhtml "html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// plainText strips every tag from raw. The event title comes from the
// template file and is shown in the page title, header and banner.
func plainText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	// The policy escapes entities; templates escape again on output.
	return strings.TrimSpace(stdhtml.UnescapeString(textPolicy.Sanitize(trimmed)))
}
