package formkit

import (
	"github.com/dmitrymomot/formkit/pkg/csrf"
	"github.com/dmitrymomot/formkit/pkg/forms"
	"github.com/dmitrymomot/formkit/pkg/modelform"
)

// Type aliases - public API
type (
	// Form is an ordered registry of fields plus form-scoped errors.
	Form = forms.Form

	// Field describes one form field's kind, constraints and values.
	Field = forms.Field

	// Kind identifies a field's representation and validation rules.
	Kind = forms.Kind

	// CleanFunc is the whole-form validation hook.
	CleanFunc = forms.CleanFunc

	// Model is the entity-mapping collaborator for model-bound forms.
	Model = modelform.Model

	// ModelField is one column of the entity model.
	ModelField = modelform.ModelField

	// Plan is the cached blueprint of a model-bound form type.
	Plan = modelform.Plan

	// CSRFService issues, masks and verifies anti-forgery tokens.
	CSRFService = csrf.Service

	// SecretStore persists per-session CSRF secrets.
	SecretStore = csrf.SecretStore
)

// Field kinds.
const (
	ShortText = forms.ShortText
	LongText  = forms.LongText
	RichText  = forms.RichText
	Email     = forms.Email
	Password  = forms.Password
	URL       = forms.URL
	Slug      = forms.Slug
	Integer   = forms.Integer
	Float     = forms.Float
	Boolean   = forms.Boolean
	Date      = forms.Date
	DateTime  = forms.DateTime
	IPAddress = forms.IPAddress
	JSON      = forms.JSON
)

// Constructors and helpers re-exported for the common path.
var (
	// NewForm creates an empty form.
	NewForm = forms.New

	// FromSchema builds a form from a declarative YAML schema.
	FromSchema = forms.FromSchema

	// PlanFor returns the cached plan for a model.
	PlanFor = modelform.PlanFor

	// Save persists a validated model-bound form.
	Save = modelform.Save

	// NewCSRF creates a CSRF token service.
	NewCSRF = csrf.New
)
