package modelform_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/modelform"
)

func TestPayloadConversion(t *testing.T) {
	t.Parallel()

	m := &fakeModel{
		table: "payload_articles",
		fields: []modelform.ModelField{
			{Name: "id", Type: "int64", PrimaryKey: true},
			{Name: "title", Type: "string"},
			{Name: "views", Type: "int64"},
			{Name: "rating", Type: "float64"},
			{Name: "published", Type: "bool"},
			{Name: "published_on", Type: "date"},
			{Name: "subtitle", Type: "*string"},
		},
	}
	plan := modelform.PlanFor(m)
	f := plan.NewForm()
	f.Bind(map[string]string{
		"title":        "Hello",
		"views":        "99",
		"rating":       "4,5",
		"published":    "on",
		"published_on": "2025-06-01",
	})
	require.True(t, f.IsValid(context.Background()))

	payload := plan.Payload(f)
	assert.Equal(t, "Hello", payload["title"])
	assert.Equal(t, int64(99), payload["views"])
	assert.InDelta(t, 4.5, payload["rating"], 0.0001)
	assert.Equal(t, true, payload["published"])
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), payload["published_on"])

	// Optional field with no value maps to the explicit Unset marker.
	assert.True(t, modelform.IsUnset(payload["subtitle"]))

	// Housekeeping columns never appear in the payload.
	assert.NotContains(t, payload, "id")
}

func TestPayloadOptionalBoolean(t *testing.T) {
	t.Parallel()

	// An unchecked checkbox submits nothing, but validation cleans an
	// absent optional Boolean to false. The payload must carry that
	// false so persistence can clear the column; Unset is reserved for
	// fields with no cleaned value at all.
	m := &fakeModel{
		table: "payload_flags",
		fields: []modelform.ModelField{
			{Name: "title", Type: "string"},
			{Name: "archived", Type: "*bool"},
			{Name: "subtitle", Type: "*string"},
		},
	}
	plan := modelform.PlanFor(m)
	f := plan.NewForm()
	f.Bind(map[string]string{"title": "Hello"})
	require.True(t, f.IsValid(context.Background()))

	payload := plan.Payload(f)
	assert.Equal(t, false, payload["archived"])
	assert.False(t, modelform.IsUnset(payload["archived"]))
	assert.True(t, modelform.IsUnset(payload["subtitle"]))
}

func TestPayloadZeroFallback(t *testing.T) {
	t.Parallel()

	// Documented lenient policy: payload building never fails; numeric
	// garbage becomes the zero value.
	m := &fakeModel{
		table: "payload_counters",
		fields: []modelform.ModelField{
			{Name: "first", Type: "int64"},
			{Name: "second", Type: "int64"},
		},
	}
	plan := modelform.PlanFor(m)
	f := plan.NewForm()
	f.Bind(map[string]string{"first": "not-a-number", "second": "also nope"})

	var payload map[string]any
	assert.NotPanics(t, func() { payload = plan.Payload(f) })
	assert.Equal(t, int64(0), payload["first"])
	assert.Equal(t, int64(0), payload["second"])
}

func TestPayloadPasswordIsHash(t *testing.T) {
	t.Parallel()

	m := &fakeModel{
		table: "payload_accounts",
		fields: []modelform.ModelField{
			{Name: "email", Type: "string"},
			{Name: "password", Type: "string"},
		},
	}
	plan := modelform.PlanFor(m)
	f := plan.NewForm()
	f.Bind(map[string]string{
		"email":    "ann@example.com",
		"password": "correct horse battery staple",
	})
	require.True(t, f.IsValid(context.Background()))

	payload := plan.Payload(f)
	assert.NotEqual(t, "correct horse battery staple", payload["password"])
	assert.Contains(t, payload["password"], "$2")
}
