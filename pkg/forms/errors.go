package forms

import "errors"

// ErrInvalidSchema is returned when a YAML form schema cannot be
// parsed or references an unknown field kind.
var ErrInvalidSchema = errors.New("forms: invalid form schema")

// Default user-facing messages. They are plain strings so callers can
// swap them for translated variants at declaration time.
const (
	msgRequired  = "This field is required."
	msgTooShort  = "This value is too short."
	msgTooLong   = "This value is too long."
	msgBadEmail  = "Enter a valid email address."
	msgBadURL    = "Enter a valid URL."
	msgBadSlug   = "Enter a valid slug (lowercase letters, digits and hyphens)."
	msgBadInt    = "Enter a whole number."
	msgBadFloat  = "Enter a number."
	msgBadBool   = "Select a valid choice."
	msgBadDate   = "Enter a valid date."
	msgBadTime   = "Enter a valid date and time."
	msgBadIP     = "Enter a valid IP address."
	msgBadJSON   = "Enter valid JSON."
	msgHashFail  = "This value could not be processed."
	msgDuplicate = "This value is already in use."
	msgDupGlobal = "A value in this form is already in use."
	msgSaveFail  = "The form could not be saved. Please try again."
)
