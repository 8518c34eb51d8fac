package modelform

import (
	"github.com/dmitrymomot/formkit/pkg/forms"
)

// unset is the type of the Unset sentinel.
type unset struct{}

// Unset marks an optional field whose cleaned value is absent. It is
// placed in the payload explicitly so the persistence layer can tell
// "leave this column alone" apart from "set it to the zero value".
var Unset unset

// IsUnset reports whether a payload value is the Unset marker.
func IsUnset(v any) bool {
	_, ok := v.(unset)
	return ok
}

// Payload converts the form's cleaned values back to the model's
// native representation, keyed by column name. Conversion is
// type-directed from the plan:
//
//   - text kinds pass through as strings (Password as its hash);
//   - Integer and Float parse with a zero fallback on failure
//     (documented lenient policy, never an error);
//   - Boolean applies the truthy-token set;
//   - Date and DateTime yield time.Time;
//   - an optional field with no cleaned value maps to Unset, not a
//     failure. Absence is judged on the cleaned value, so an optional
//     Boolean cleaned to false from an unchecked checkbox is carried
//     as false, never as Unset.
//
// Excluded fields are skipped entirely; timestamps and keys are the
// persistence layer's business.
func (p *Plan) Payload(f *forms.Form) map[string]any {
	payload := make(map[string]any, len(p.Fields))
	for _, fp := range p.Fields {
		if fp.Excluded {
			continue
		}
		if !fp.Required {
			if field, ok := f.Lookup(fp.Name); !ok || field.Cleaned == nil {
				payload[fp.Name] = Unset
				continue
			}
		}
		switch fp.Kind {
		case forms.Integer:
			payload[fp.Name] = f.Int64(fp.Name)
		case forms.Float:
			payload[fp.Name] = f.Float64(fp.Name)
		case forms.Boolean:
			payload[fp.Name] = f.Bool(fp.Name)
		case forms.Date, forms.DateTime:
			payload[fp.Name] = f.Time(fp.Name)
		default:
			payload[fp.Name] = f.String(fp.Name)
		}
	}
	return payload
}
