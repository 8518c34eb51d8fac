package modelform

import (
	"strings"

	"github.com/dmitrymomot/formkit/pkg/forms"
)

// TypeHint is the declared type of a model field, as reported by the
// entity-mapping layer. Matching is case-insensitive; a leading "*"
// marks a nullable type and recurses into the inner hint.
type TypeHint string

// longTextMarkers are name fragments that promote a textual field to a
// multi-line kind.
var longTextMarkers = []string{"description", "bio", "content", "message"}

// Infer maps a model field's name and declared type to a field kind
// and whether the field is required. Name-based heuristics win over
// type-based ones; an unrecognized type falls back to ShortText rather
// than failing, so form generation never blocks on an unknown column
// type.
func Infer(name string, hint TypeHint) (kind forms.Kind, required bool) {
	required = true
	h := strings.ToLower(strings.TrimSpace(string(hint)))
	if inner, ok := strings.CutPrefix(h, "*"); ok {
		h = inner
		required = false
	}

	lower := strings.ToLower(name)

	// Name-based heuristics, in priority order.
	switch {
	case strings.Contains(lower, "email"):
		return forms.Email, required
	case strings.Contains(lower, "password"), strings.Contains(lower, "pwd"):
		return forms.Password, required
	case strings.Contains(lower, "url"), strings.Contains(lower, "link"), strings.Contains(lower, "website"):
		return forms.URL, required
	case lower == "slug":
		return forms.Slug, required
	}
	if textualHint(h) {
		for _, marker := range longTextMarkers {
			if strings.Contains(lower, marker) {
				return forms.LongText, required
			}
		}
	}

	// Type-based heuristics.
	switch {
	case textualHint(h):
		return forms.ShortText, required
	case integerHint(h):
		return forms.Integer, required
	case floatHint(h):
		return forms.Float, required
	case h == "bool", h == "boolean":
		return forms.Boolean, required
	case h == "date":
		return forms.Date, required
	case h == "datetime", h == "time.time", strings.HasPrefix(h, "timestamp"):
		return forms.DateTime, required
	case h == "inet", h == "ip", h == "ipaddr", h == "net.ip":
		return forms.IPAddress, required
	case h == "json", h == "jsonb":
		return forms.JSON, required
	}

	// Unknown type: default to ShortText so generation never blocks.
	return forms.ShortText, required
}

func textualHint(h string) bool {
	switch {
	case h == "string", h == "text":
		return true
	case strings.HasPrefix(h, "varchar"), strings.HasPrefix(h, "char"):
		return true
	default:
		return false
	}
}

func integerHint(h string) bool {
	switch h {
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64",
		"smallint", "integer", "bigint", "serial", "bigserial":
		return true
	default:
		return false
	}
}

func floatHint(h string) bool {
	switch h {
	case "float", "float32", "float64", "double", "double precision",
		"real", "numeric", "decimal":
		return true
	default:
		return false
	}
}
