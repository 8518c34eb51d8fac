package forms

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// CleanFunc is the whole-form validation hook. It runs only after every
// per-field check passed and may perform cross-field or database-backed
// checks, recording failures via AddError and AddGlobalError. A non-nil
// return is treated as a global failure.
type CleanFunc func(ctx context.Context, f *Form) error

// GlobalErrorsKey is the key Errors uses for joined form-scoped
// errors. The double-underscore shape keeps it out of the space of
// real field names.
const GlobalErrorsKey = "__all__"

// Form is an ordered registry of fields plus form-scoped errors.
// A Form is built per request and must not be shared across requests.
type Form struct {
	fields       []*Field
	index        map[string]*Field
	globalErrors []string
	clean        CleanFunc
	strict       bool
	validated    bool
	valid        bool
}

// Option configures a Form.
type Option func(*Form)

// WithClean installs the whole-form validation hook.
func WithClean(fn CleanFunc) Option {
	return func(f *Form) { f.clean = fn }
}

// WithStrictBooleans makes Boolean fields reject tokens outside
// {true,1,on,false,0,off} instead of silently cleaning them to false.
// The default keeps the lenient fallback for compatibility.
func WithStrictBooleans() Option {
	return func(f *Form) { f.strict = true }
}

// New creates an empty form.
func New(opts ...Option) *Form {
	f := &Form{index: make(map[string]*Field)}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Declare registers a field. Declaration order is display order and is
// preserved; redeclaring an existing name replaces the field in place.
func (f *Form) Declare(name string, kind Kind, opts ...FieldOption) *Field {
	field := &Field{Name: name, Kind: kind, Label: labelFromName(name)}
	for _, opt := range opts {
		opt(field)
	}
	if existing, ok := f.index[name]; ok {
		*existing = *field
		f.index[name] = existing
		return existing
	}
	f.fields = append(f.fields, field)
	f.index[name] = field
	return field
}

// Lookup returns the field with the given name.
func (f *Form) Lookup(name string) (*Field, bool) {
	field, ok := f.index[name]
	return field, ok
}

// Fields returns the fields in declaration order. The slice is shared;
// callers must not reorder it.
func (f *Form) Fields() []*Field {
	return f.fields
}

// Bind fills raw values from already-decoded request data. Text fields
// pass through the HTML sanitizer unless the field name carries a
// sensitive marker, so secrets are never altered. Binding resets any
// previous validation outcome.
func (f *Form) Bind(data map[string]string) {
	f.validated = false
	f.valid = false
	for _, field := range f.fields {
		value, ok := data[field.Name]
		if !ok {
			continue
		}
		if field.Kind.textual() && !sensitiveName(field.Name) {
			if field.Kind == RichText {
				value = sanitizer.SanitizeHTML(value)
			} else {
				value = sanitizer.StripHTML(value)
			}
		}
		field.Value = value
	}
}

// Set assigns a raw value to a single field, bypassing sanitization.
// Unknown names are ignored.
func (f *Form) Set(name, value string) {
	if field, ok := f.index[name]; ok {
		field.Value = value
	}
}

// AddError attaches a validation error to a named field. Errors against
// unknown names are recorded as global errors so they are never lost.
func (f *Form) AddError(name, msg string) {
	if field, ok := f.index[name]; ok {
		field.SetError(msg)
	} else {
		f.globalErrors = append(f.globalErrors, msg)
	}
	f.valid = false
}

// AddGlobalError records a form-scoped error.
func (f *Form) AddGlobalError(msg string) {
	f.globalErrors = append(f.globalErrors, msg)
	f.valid = false
}

// GlobalErrors returns the form-scoped errors.
func (f *Form) GlobalErrors() []string {
	return f.globalErrors
}

// HasErrors reports whether any field or global error is present.
func (f *Form) HasErrors() bool {
	if len(f.globalErrors) > 0 {
		return true
	}
	for _, field := range f.fields {
		if field.Error != "" {
			return true
		}
	}
	return false
}

// Errors collects field errors keyed by field name. Global errors are
// joined under the GlobalErrorsKey, which is not a valid field name,
// so a declared field can never be shadowed by them.
func (f *Form) Errors() map[string]string {
	errs := make(map[string]string)
	for _, field := range f.fields {
		if field.Error != "" {
			errs[field.Name] = field.Error
		}
	}
	if len(f.globalErrors) > 0 {
		errs[GlobalErrorsKey] = strings.Join(f.globalErrors, " | ")
	}
	return errs
}

// Validated reports whether IsValid has run since the last Bind.
func (f *Form) Validated() bool {
	return f.validated
}

// Valid reports the outcome of the last IsValid run. It is false until
// IsValid has been called.
func (f *Form) Valid() bool {
	return f.validated && f.valid
}

// labelFromName turns a snake_case field name into a display label.
func labelFromName(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// sensitiveName reports whether the field name marks a secret-bearing
// value that must never be rewritten by the sanitizer.
func sensitiveName(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range []string{"password", "token", "secret", "key"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Typed getters. They prefer the cleaned value and fall back to parsing
// the raw value with a documented zero fallback, so payload building
// never fails on malformed input.

// String returns the field value as a string. For Password fields this
// is the hash once validation has run, never the plaintext.
func (f *Form) String(name string) string {
	field, ok := f.index[name]
	if !ok {
		return ""
	}
	if s, ok := field.Cleaned.(string); ok {
		return s
	}
	return field.Value
}

// OptionalString returns the value and false when the field is absent
// or blank.
func (f *Form) OptionalString(name string) (string, bool) {
	v := strings.TrimSpace(f.String(name))
	if v == "" {
		return "", false
	}
	return v, true
}

// Int64 returns the field value as int64, or 0 when unparsable.
func (f *Form) Int64(name string) int64 {
	field, ok := f.index[name]
	if !ok {
		return 0
	}
	if n, ok := field.Cleaned.(int64); ok {
		return n
	}
	n, err := strconv.ParseInt(strings.TrimSpace(field.Value), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Int returns the field value as int, or 0 when unparsable.
func (f *Form) Int(name string) int {
	return int(f.Int64(name))
}

// Float64 returns the field value as float64, or 0 when unparsable.
// A comma decimal separator is accepted.
func (f *Form) Float64(name string) float64 {
	field, ok := f.index[name]
	if !ok {
		return 0
	}
	if n, ok := field.Cleaned.(float64); ok {
		return n
	}
	n, err := strconv.ParseFloat(normalizeDecimal(field.Value), 64)
	if err != nil {
		return 0
	}
	return n
}

// Bool returns true when the field value is one of the truthy tokens
// "true", "1" or "on". Any other value, including empty, is false.
func (f *Form) Bool(name string) bool {
	field, ok := f.index[name]
	if !ok {
		return false
	}
	if b, ok := field.Cleaned.(bool); ok {
		return b
	}
	return truthy(field.Value)
}

// Time returns the field value as time.Time, or the zero time when the
// value is absent or unparsable.
func (f *Form) Time(name string) time.Time {
	field, ok := f.index[name]
	if !ok {
		return time.Time{}
	}
	if t, ok := field.Cleaned.(time.Time); ok {
		return t
	}
	t, err := parseDate(field.Value)
	if err != nil {
		if t, err = parseDateTime(field.Value); err != nil {
			return time.Time{}
		}
	}
	return t
}

// OptionalTime returns the value and false when absent or unparsable.
func (f *Form) OptionalTime(name string) (time.Time, bool) {
	t := f.Time(name)
	return t, !t.IsZero()
}
