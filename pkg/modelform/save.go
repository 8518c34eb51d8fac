package modelform

import (
	"context"
	"errors"

	"github.com/dmitrymomot/formkit/pkg/forms"
)

var (
	// ErrNotValidated is returned by Save when the form has not passed
	// validation. Save is the single side-effecting operation and must
	// only run after a successful IsValid, giving an at-most-once-write
	// guarantee per validation pass.
	ErrNotValidated = errors.New("modelform: form must pass validation before save")

	// ErrNotSaved is returned when the insert failed and the failure
	// was translated into form errors for redisplay. The caller should
	// re-render the form rather than treat this as a hard failure.
	ErrNotSaved = errors.New("modelform: record not saved")
)

// Save builds the persistence payload and delegates insertion to the
// model. Constraint violations and other recoverable persistence
// failures are translated into the form's error map and reported as
// ErrNotSaved; only translator-unhandled errors are joined in so the
// host can surface a generic failure page.
func Save(ctx context.Context, f *forms.Form, m Model) (map[string]any, error) {
	if !f.Valid() {
		return nil, ErrNotValidated
	}

	plan := PlanFor(m)
	record, err := m.Insert(ctx, plan.Payload(f))
	if err != nil {
		f.DatabaseError(err)
		if _, _, translated := forms.TranslateDBError(err); translated {
			return nil, ErrNotSaved
		}
		return nil, errors.Join(ErrNotSaved, err)
	}
	return record, nil
}
