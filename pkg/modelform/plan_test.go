package modelform_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/forms"
	"github.com/dmitrymomot/formkit/pkg/modelform"
)

// fakeModel implements modelform.Model in-memory for tests.
type fakeModel struct {
	table  string
	fields []modelform.ModelField

	mu      sync.Mutex
	inserts []map[string]any
	insert  func(payload map[string]any) (map[string]any, error)
}

func (m *fakeModel) TableName() string                      { return m.table }
func (m *fakeModel) ModelFields() []modelform.ModelField    { return m.fields }
func (m *fakeModel) Insert(_ context.Context, payload map[string]any) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserts = append(m.inserts, payload)
	if m.insert != nil {
		return m.insert(payload)
	}
	return payload, nil
}

func userModel(table string) *fakeModel {
	return &fakeModel{
		table: table,
		fields: []modelform.ModelField{
			{Name: "id", Type: "int64", PrimaryKey: true},
			{Name: "username", Type: "string"},
			{Name: "email", Type: "string"},
			{Name: "password", Type: "string"},
			{Name: "bio", Type: "*text"},
			{Name: "age", Type: "*int32"},
			{Name: "created_at", Type: "timestamp"},
			{Name: "updated_at", Type: "timestamp"},
		},
	}
}

func TestPlanExcludesHousekeeping(t *testing.T) {
	t.Parallel()

	plan := modelform.PlanFor(userModel("plan_users"))

	byName := make(map[string]modelform.FieldPlan)
	for _, fp := range plan.Fields {
		byName[fp.Name] = fp
	}

	assert.True(t, byName["id"].Excluded, "primary key must be excluded")
	assert.True(t, byName["created_at"].Excluded)
	assert.True(t, byName["updated_at"].Excluded)
	assert.False(t, byName["username"].Excluded)
	assert.Equal(t, forms.Email, byName["email"].Kind)
	assert.Equal(t, forms.Password, byName["password"].Kind)
	assert.Equal(t, forms.LongText, byName["bio"].Kind)
	assert.False(t, byName["bio"].Required, "nullable column must be optional")
	assert.False(t, byName["age"].Required)
}

func TestPlanCachedPerModelType(t *testing.T) {
	t.Parallel()

	m := userModel("plan_cache_users")
	first := modelform.PlanFor(m)
	second := modelform.PlanFor(m)
	assert.Same(t, first, second, "plan must be computed once and cached")
}

func TestPlanNewForm(t *testing.T) {
	t.Parallel()

	plan := modelform.PlanFor(userModel("plan_form_users"))
	f := plan.NewForm()

	names := make([]string, 0)
	for _, field := range f.Fields() {
		names = append(names, field.Name)
	}
	// Model order, housekeeping columns gone.
	assert.Equal(t, []string{"username", "email", "password", "bio", "age"}, names)

	username, ok := f.Lookup("username")
	require.True(t, ok)
	assert.True(t, username.Required)
	assert.Equal(t, "Username", username.Label)

	bio, _ := f.Lookup("bio")
	assert.False(t, bio.Required)
	assert.Equal(t, "Bio", bio.Label)
}

func TestPlanNeverInspectsValues(t *testing.T) {
	t.Parallel()

	// Two forms from the same plan are independent request-scoped
	// instances: binding one leaves the other untouched.
	plan := modelform.PlanFor(userModel("plan_iso_users"))
	a := plan.NewForm()
	b := plan.NewForm()

	a.Bind(map[string]string{"username": "ann"})
	fieldB, _ := b.Lookup("username")
	assert.Empty(t, fieldB.Value)
}
