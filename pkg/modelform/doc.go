// Package modelform generates forms from entity-model field lists.
//
// A Model exposes its ordered columns as (name, declared type,
// primary-key flag) triples. PlanFor derives a Plan from them once per
// model type: housekeeping columns (id, timestamps, soft-delete and
// CSRF markers) are excluded, and every remaining column gets a field
// kind from name and type heuristics: "email" columns become Email
// fields, "*string" columns become optional ShortText, and so on.
// Unrecognized types silently fall back to ShortText so generation
// never blocks on an exotic column.
//
// The plan is pure metadata: it is computed from names and types only,
// cached process-wide, and safe for concurrent reads.
//
//	plan := modelform.PlanFor(userModel)
//	f := plan.NewForm()
//	f.Bind(requestData)
//	if f.IsValid(ctx) {
//		record, err := modelform.Save(ctx, f, userModel)
//		...
//	}
//
// Save converts cleaned values back to the model's native
// representation (Payload) and delegates the insert. Uniqueness
// violations come back as field errors on the form, not as raw
// database errors.
package modelform
