package forms

// Kind identifies the representation and validation semantics of a field.
// The set is closed: the validation pipeline switches exhaustively over it,
// so adding a kind forces every call site to handle it.
type Kind int

const (
	// ShortText is a single-line text value with no shape requirements.
	ShortText Kind = iota
	// LongText is a multi-line text value (textarea semantics).
	LongText
	// RichText is user-authored HTML, sanitized with the rich policy
	// instead of being stripped to plain text.
	RichText
	// Email requires an RFC-shaped address.
	Email
	// Password is write-only: the cleaned value is a one-way hash,
	// the plaintext is never retained after validation.
	Password
	// URL requires an absolute http(s) URL.
	URL
	// Slug requires lowercase letters, digits and single hyphens.
	Slug
	// Integer parses to int64.
	Integer
	// Float parses to float64; a comma decimal separator is accepted.
	Float
	// Boolean cleans to true for "true", "1" and "on"; everything
	// else, including empty input, cleans to false without error.
	Boolean
	// Date parses "YYYY-MM-DD".
	Date
	// DateTime parses "YYYY-MM-DDTHH:MM" (datetime-local) or RFC 3339.
	DateTime
	// IPAddress requires a valid IPv4 or IPv6 address.
	IPAddress
	// JSON requires syntactically valid JSON.
	JSON
)

var kindNames = [...]string{
	ShortText: "short_text",
	LongText:  "long_text",
	RichText:  "rich_text",
	Email:     "email",
	Password:  "password",
	URL:       "url",
	Slug:      "slug",
	Integer:   "integer",
	Float:     "float",
	Boolean:   "boolean",
	Date:      "date",
	DateTime:  "datetime",
	IPAddress: "ip_address",
	JSON:      "json",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindFromName resolves a kind by its wire name (the String form).
// Returns ShortText and false for unrecognized names.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return ShortText, false
}

// textual reports whether the kind carries free-form text that should
// pass through the HTML sanitizer before validation.
func (k Kind) textual() bool {
	switch k {
	case ShortText, LongText, RichText:
		return true
	default:
		return false
	}
}
