package forms

// Attr is a single HTML attribute. Attributes are kept as a slice so
// renderers see them in declaration order.
type Attr struct {
	Key   string
	Value string
}

// Field describes one form field: its kind, constraints, the raw value
// as received and the cleaned value after validation.
//
// Invariant: Cleaned is non-nil iff the field passed its own checks;
// Error is non-empty iff Cleaned is nil or a later whole-form rule
// rejected the field.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Value    string // raw value as received
	Cleaned  any    // typed value, nil until validation passes
	Error    string
	Attrs    []Attr
	MinLen   int // 0 = no minimum
	MaxLen   int // 0 = no maximum
	Required bool
}

// FieldOption configures a declared field.
type FieldOption func(*Field)

// Required marks the field as mandatory.
func Required() FieldOption {
	return func(f *Field) { f.Required = true }
}

// Optional marks the field as not mandatory. Fields are optional by
// default; this exists to override plans that inferred Required.
func Optional() FieldOption {
	return func(f *Field) { f.Required = false }
}

// MinLength sets the minimum raw value length in runes.
func MinLength(n int) FieldOption {
	return func(f *Field) { f.MinLen = n }
}

// MaxLength sets the maximum raw value length in runes.
func MaxLength(n int) FieldOption {
	return func(f *Field) { f.MaxLen = n }
}

// WithLabel overrides the display label derived from the field name.
func WithLabel(label string) FieldOption {
	return func(f *Field) { f.Label = label }
}

// WithAttr appends an HTML attribute for the renderer.
func WithAttr(key, value string) FieldOption {
	return func(f *Field) { f.Attrs = append(f.Attrs, Attr{Key: key, Value: value}) }
}

// Placeholder is sugar for WithAttr("placeholder", value).
func Placeholder(value string) FieldOption {
	return WithAttr("placeholder", value)
}

// SetError records a validation error and drops any cleaned value so
// the descriptor invariant holds.
func (f *Field) SetError(msg string) {
	f.Error = msg
	f.Cleaned = nil
}

// Valid reports whether the field has a cleaned value and no error.
func (f *Field) Valid() bool {
	return f.Error == "" && f.Cleaned != nil
}
