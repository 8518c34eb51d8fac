package modelform

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit/pkg/forms"
)

// ModelField is one column of the entity model: its name, declared
// type and whether it is the primary key.
type ModelField struct {
	Name       string
	Type       TypeHint
	PrimaryKey bool
}

// Model is the entity-mapping collaborator: an ordered field list for
// form generation plus an insert operation for Save.
type Model interface {
	// TableName identifies the model; it keys the plan cache.
	TableName() string

	// ModelFields returns the column definitions in declaration order.
	ModelFields() []ModelField

	// Insert persists the payload, returning the stored record or a
	// structured error (ideally a *pgconn.PgError) for translation.
	Insert(ctx context.Context, payload map[string]any) (map[string]any, error)
}

// housekeepingNames are columns that never appear on a generated form:
// identifiers, audit timestamps, soft-delete markers, the CSRF field
// and the nested-form marker.
var housekeepingNames = map[string]struct{}{
	"id":          {},
	"csrf_token":  {},
	"_csrf_token": {},
	"form":        {},
	"created_at":  {},
	"updated_at":  {},
	"deleted_at":  {},
	"is_active":   {},
}

// FieldPlan is the derived blueprint of one model field. Excluded
// fields stay in the plan (payload building still needs to know about
// them) but never appear on the generated form.
type FieldPlan struct {
	Name     string
	Kind     forms.Kind
	Required bool
	Excluded bool
}

// Plan is the definition-time blueprint for a model-bound form type.
// It is pure metadata derived from field names and declared types;
// values are never inspected, so one plan serves all requests and is
// safe for concurrent reads.
type Plan struct {
	Model  string
	Fields []FieldPlan
}

var (
	planCache sync.Map // model name -> *Plan
	planGroup singleflight.Group
)

// PlanFor returns the cached plan for a model, computing it once per
// model type across all goroutines.
func PlanFor(m Model) *Plan {
	name := m.TableName()
	if cached, ok := planCache.Load(name); ok {
		return cached.(*Plan)
	}
	plan, _, _ := planGroup.Do(name, func() (any, error) {
		p := buildPlan(m)
		planCache.Store(name, p)
		return p, nil
	})
	return plan.(*Plan)
}

func buildPlan(m Model) *Plan {
	modelFields := m.ModelFields()
	plan := &Plan{
		Model:  m.TableName(),
		Fields: make([]FieldPlan, 0, len(modelFields)),
	}
	for _, mf := range modelFields {
		fp := FieldPlan{Name: mf.Name}
		if _, housekeeping := housekeepingNames[mf.Name]; housekeeping || mf.PrimaryKey {
			fp.Excluded = true
			plan.Fields = append(plan.Fields, fp)
			continue
		}
		fp.Kind, fp.Required = Infer(mf.Name, mf.Type)
		plan.Fields = append(plan.Fields, fp)
	}
	return plan
}

// NewForm builds a request-scoped form from the plan, declaring the
// non-excluded fields in model order with labels derived from the
// column names.
func (p *Plan) NewForm(opts ...forms.Option) *forms.Form {
	f := forms.New(opts...)
	for _, fp := range p.Fields {
		if fp.Excluded {
			continue
		}
		fieldOpts := []forms.FieldOption{forms.WithLabel(fieldLabel(fp.Name))}
		if fp.Required {
			fieldOpts = append(fieldOpts, forms.Required())
		}
		f.Declare(fp.Name, fp.Kind, fieldOpts...)
	}
	return f
}

var labelCaser = cases.Title(language.English, cases.NoLower)

// fieldLabel turns a snake_case column name into a display label,
// e.g. "first_name" -> "First Name".
func fieldLabel(name string) string {
	return labelCaser.String(strings.ReplaceAll(name, "_", " "))
}
