package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	richPolicy   *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// strictPolicy strips ALL HTML, returns plain text.
		strictPolicy = bluemonday.StrictPolicy()

		// richPolicy allows the formatting vocabulary of rich-text
		// form fields: paragraphs, emphasis, lists, quotes, code,
		// headings and links.
		richPolicy = bluemonday.NewPolicy()
		richPolicy.AllowStandardURLs()
		richPolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
			"h1", "h2", "h3", "h4",
		)
		richPolicy.AllowAttrs("href", "title", "target").OnElements("a")
		richPolicy.RequireNoFollowOnLinks(true)
	})
}

// StripHTML removes all markup and returns plain text. Use for
// single-line and plain text fields where markup is never legitimate.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeHTML keeps safe formatting tags (p, a, strong, em, lists,
// code, blockquote, h1-h4) and strips everything dangerous: scripts,
// event handlers and javascript: URLs. Use for rich-text fields.
func SanitizeHTML(s string) string {
	initPolicies()
	return richPolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
