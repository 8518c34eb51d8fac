// Package forms binds untrusted request data to typed, validated form
// values and collects field-level and form-level errors for redisplay.
//
// A Form is an ordered registry of field descriptors. Fields are
// declared with a closed Kind enum, bound from an already-decoded
// map of string values, and validated in declaration order:
//
//	f := forms.New(forms.WithClean(checkPasswordsMatch))
//	f.Declare("username", forms.ShortText, forms.Required(), forms.MinLength(3))
//	f.Declare("email", forms.Email, forms.Required())
//	f.Declare("password", forms.Password, forms.Required(), forms.MinLength(8))
//
//	f.Bind(requestData)
//	if !f.IsValid(ctx) {
//		render(f.Errors())
//		return
//	}
//
// Per-field validation is synchronous and short-circuits on the first
// failure per field: required check, length constraints, then a
// kind-specific shape check. On success the typed cleaned value is
// stored on the field; Password fields replace the plaintext with a
// bcrypt hash and never retain it.
//
// The optional whole-form clean hook runs only when every field passed
// and receives a context, so it may perform database-backed checks
// such as uniqueness lookups.
//
// Text fields are passed through an HTML sanitizer on Bind unless the
// field name contains a sensitive marker (password, token, secret,
// key), which would corrupt opaque values.
//
// DatabaseError translates persistence failures back into field
// errors: unique violations are detected structurally for PostgreSQL
// (pgconn error code 23505) with a free-text fallback covering SQLite
// and MySQL driver messages. Raw database error text never reaches the
// user.
//
// Forms can also be built from a declarative YAML schema with
// FromSchema; see the function documentation for the format.
package forms
