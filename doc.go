// Package formkit binds untrusted HTTP request data to typed,
// validated forms and protects state-changing requests against
// cross-site request forgery.
//
// Formkit is deliberately narrow: it produces validated typed values,
// field-level errors and a save-ready persistence payload, plus CSRF
// accept/reject decisions. Routing, template rendering, session
// storage and the entity-mapping layer are collaborators behind small
// interfaces, never dependencies of this core.
//
// # Forms
//
// Declare fields explicitly, bind decoded request data, validate:
//
//	f := formkit.NewForm()
//	f.Declare("username", formkit.ShortText, forms.Required())
//	f.Declare("email", formkit.Email, forms.Required())
//
//	f.Bind(data)
//	if !f.IsValid(ctx) {
//	    render(f.Errors())
//	    return
//	}
//
// Or derive the field set from an entity model:
//
//	plan := formkit.PlanFor(userModel)
//	f := plan.NewForm()
//
// The plan is computed once per model type from field names and
// declared types and cached process-wide.
//
// # CSRF
//
// The token engine derives a per-session secret with a keyed hash and
// re-masks it with a fresh random pad on every render, so transmitted
// token bytes never repeat (BREACH mitigation). The middleware in
// [github.com/dmitrymomot/formkit/middlewares] rejects unverified
// mutating requests before any form binding runs:
//
//	store := csrf.NewMemoryStore()
//	svc, _ := formkit.NewCSRF(secretKey, store)
//	r.Use(middlewares.CSRF(svc))
//
// See the package documentation of pkg/forms, pkg/modelform and
// pkg/csrf for the full contracts.
package formkit
