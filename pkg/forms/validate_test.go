package forms_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/forms"
)

// validateOne declares a single field of the given kind, binds the raw
// value and runs validation.
func validateOne(t *testing.T, kind forms.Kind, raw string, opts ...forms.FieldOption) (*forms.Form, *forms.Field) {
	t.Helper()
	f := forms.New()
	f.Declare("field", kind, opts...)
	f.Bind(map[string]string{"field": raw})
	f.IsValid(context.Background())
	field, ok := f.Lookup("field")
	require.True(t, ok)
	return f, field
}

func TestEmailValidation(t *testing.T) {
	t.Parallel()

	t.Run("rejects malformed address", func(t *testing.T) {
		t.Parallel()
		_, field := validateOne(t, forms.Email, "not-an-email")
		assert.NotEmpty(t, field.Error)
		assert.Nil(t, field.Cleaned)
	})

	t.Run("accepts valid address unchanged", func(t *testing.T) {
		t.Parallel()
		_, field := validateOne(t, forms.Email, "user@example.com")
		assert.Empty(t, field.Error)
		assert.Equal(t, "user@example.com", field.Cleaned)
	})
}

func TestBooleanTruthyTokens(t *testing.T) {
	t.Parallel()

	// Documented policy: only "true", "1" and "on" clean to true;
	// everything else, including empty and garbage, cleans to false
	// without raising an error.
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"1", true},
		{"on", true},
		{"false", false},
		{"0", false},
		{"off", false},
		{"", false},
		{"yes", false},
		{"TRUE", false},
		{"banana", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run("raw="+tt.raw, func(t *testing.T) {
			t.Parallel()
			f, field := validateOne(t, forms.Boolean, tt.raw)
			assert.True(t, f.Valid())
			assert.Empty(t, field.Error)
			assert.Equal(t, tt.want, field.Cleaned)
		})
	}
}

func TestStrictBooleans(t *testing.T) {
	t.Parallel()

	f := forms.New(forms.WithStrictBooleans())
	f.Declare("flag", forms.Boolean)
	f.Bind(map[string]string{"flag": "banana"})

	assert.False(t, f.IsValid(context.Background()))
	flag, _ := f.Lookup("flag")
	assert.NotEmpty(t, flag.Error)
}

func TestLengthConstraints(t *testing.T) {
	t.Parallel()

	t.Run("too short", func(t *testing.T) {
		t.Parallel()
		_, field := validateOne(t, forms.ShortText, "ab", forms.MinLength(3))
		assert.NotEmpty(t, field.Error)
	})

	t.Run("too long", func(t *testing.T) {
		t.Parallel()
		_, field := validateOne(t, forms.ShortText, "abcdef", forms.MaxLength(5))
		assert.NotEmpty(t, field.Error)
	})

	t.Run("length counts runes", func(t *testing.T) {
		t.Parallel()
		f, _ := validateOne(t, forms.ShortText, "héllo", forms.MaxLength(5))
		assert.True(t, f.Valid())
	})

	t.Run("required wins over length", func(t *testing.T) {
		t.Parallel()
		_, field := validateOne(t, forms.ShortText, "", forms.Required(), forms.MinLength(3))
		assert.Equal(t, "This field is required.", field.Error)
	})
}

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	f, field := validateOne(t, forms.Password, "hunter2-but-longer")
	require.True(t, f.Valid())

	hash, ok := field.Cleaned.(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(hash, "$2"), "cleaned value must be a bcrypt hash")
	assert.Empty(t, field.Value, "plaintext must not be retained")
	assert.True(t, forms.VerifyPassword("hunter2-but-longer", hash))
	assert.False(t, forms.VerifyPassword("wrong", hash))
}

func TestPasswordHashNotDoubleHashed(t *testing.T) {
	t.Parallel()

	_, first := validateOne(t, forms.Password, "original-password")
	hash := first.Cleaned.(string)

	_, second := validateOne(t, forms.Password, hash)
	assert.Equal(t, hash, second.Cleaned, "an existing hash must pass through unchanged")

	// The passthrough is shape-based, so a bcrypt-shaped string bound
	// straight from a client is also stored verbatim.
	submitted := "$2a$10$0123456789012345678901uVWXYZabcdefghijklmnopqrstuvwxyz012"
	_, third := validateOne(t, forms.Password, submitted)
	assert.Equal(t, submitted, third.Cleaned)
}

func TestURLValidation(t *testing.T) {
	t.Parallel()

	valid := []string{"https://example.com", "http://example.com/path?q=1"}
	invalid := []string{"example.com", "ftp://example.com", "https://", "not a url"}

	for _, raw := range valid {
		f, _ := validateOne(t, forms.URL, raw)
		assert.True(t, f.Valid(), "expected %q to validate", raw)
	}
	for _, raw := range invalid {
		f, _ := validateOne(t, forms.URL, raw)
		assert.False(t, f.Valid(), "expected %q to fail", raw)
	}
}

func TestSlugValidation(t *testing.T) {
	t.Parallel()

	valid := []string{"hello", "hello-world", "a1-b2-c3"}
	invalid := []string{"Hello", "hello_world", "-hello", "hello-", "héllo"}

	for _, raw := range valid {
		f, _ := validateOne(t, forms.Slug, raw)
		assert.True(t, f.Valid(), "expected %q to validate", raw)
	}
	for _, raw := range invalid {
		f, _ := validateOne(t, forms.Slug, raw)
		assert.False(t, f.Valid(), "expected %q to fail", raw)
	}
}

func TestNumericValidation(t *testing.T) {
	t.Parallel()

	t.Run("integer", func(t *testing.T) {
		t.Parallel()
		_, field := validateOne(t, forms.Integer, "-17")
		assert.Equal(t, int64(-17), field.Cleaned)

		_, field = validateOne(t, forms.Integer, "17.5")
		assert.NotEmpty(t, field.Error)
	})

	t.Run("float accepts comma separator", func(t *testing.T) {
		t.Parallel()
		_, field := validateOne(t, forms.Float, "3,14")
		assert.InDelta(t, 3.14, field.Cleaned, 0.0001)
	})

	t.Run("float rejects garbage", func(t *testing.T) {
		t.Parallel()
		_, field := validateOne(t, forms.Float, "pi")
		assert.NotEmpty(t, field.Error)
	})
}

func TestDateTimeValidation(t *testing.T) {
	t.Parallel()

	t.Run("date", func(t *testing.T) {
		t.Parallel()
		_, field := validateOne(t, forms.Date, "2025-06-01")
		cleaned, ok := field.Cleaned.(time.Time)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), cleaned)

		_, field = validateOne(t, forms.Date, "01/06/2025")
		assert.NotEmpty(t, field.Error)
	})

	t.Run("datetime-local format", func(t *testing.T) {
		t.Parallel()
		_, field := validateOne(t, forms.DateTime, "2025-06-01T14:30")
		cleaned, ok := field.Cleaned.(time.Time)
		require.True(t, ok)
		assert.Equal(t, 14, cleaned.Hour())
	})

	t.Run("rfc3339 fallback", func(t *testing.T) {
		t.Parallel()
		f, _ := validateOne(t, forms.DateTime, "2025-06-01T14:30:00Z")
		assert.True(t, f.Valid())
	})
}

func TestIPAddressValidation(t *testing.T) {
	t.Parallel()

	valid := []string{"192.168.1.1", "::1", "2001:db8::68"}
	invalid := []string{"999.1.1.1", "localhost", "192.168.1"}

	for _, raw := range valid {
		f, _ := validateOne(t, forms.IPAddress, raw)
		assert.True(t, f.Valid(), "expected %q to validate", raw)
	}
	for _, raw := range invalid {
		f, _ := validateOne(t, forms.IPAddress, raw)
		assert.False(t, f.Valid(), "expected %q to fail", raw)
	}
}

func TestJSONValidation(t *testing.T) {
	t.Parallel()

	f, field := validateOne(t, forms.JSON, `{"a": [1, 2, 3]}`)
	assert.True(t, f.Valid())
	assert.Equal(t, `{"a": [1, 2, 3]}`, field.Cleaned)

	f, _ = validateOne(t, forms.JSON, `{"a": `)
	assert.False(t, f.Valid())
}

func TestOptionalFieldAbsent(t *testing.T) {
	t.Parallel()

	f := forms.New()
	f.Declare("nickname", forms.ShortText)
	f.Declare("age", forms.Integer)
	f.Bind(map[string]string{})

	assert.True(t, f.IsValid(context.Background()))
	nickname, _ := f.Lookup("nickname")
	assert.Nil(t, nickname.Cleaned)
	assert.Empty(t, nickname.Error)
}
