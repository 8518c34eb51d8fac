package forms

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Patterns for pulling a column name out of free-text driver errors.
// Covers PostgreSQL constraint names and key details, SQLite
// "UNIQUE constraint failed: table.column" and MySQL "for key
// 'table.column'". Free-text parsing is a fallback; the structured
// pgconn path below is preferred.
var (
	constraintRe = regexp.MustCompile(`constraint\s+"?([a-zA-Z0-9_]+)"?`)
	keyDetailRe  = regexp.MustCompile(`Key\s+\(([^)]+)\)`)
	sqliteRe     = regexp.MustCompile(`failed:\s+[a-zA-Z0-9_]+\.([a-zA-Z0-9_]+)`)
	mysqlKeyRe   = regexp.MustCompile(`for\s+key\s+'[^.']+\.([^']+)'`)
)

const uniqueViolationCode = "23505"

// TranslateDBError maps a persistence error to a field name and a
// user-facing message. The returned field is empty when a uniqueness
// violation was detected but no column could be extracted; ok is false
// when the error is not a uniqueness violation at all.
func TranslateDBError(err error) (field, message string, ok bool) {
	if err == nil {
		return "", "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != uniqueViolationCode {
			return "", "", false
		}
		if pgErr.ColumnName != "" {
			return pgErr.ColumnName, msgDuplicate, true
		}
		if f := fieldFromConstraint(pgErr.ConstraintName); f != "" {
			return f, msgDuplicate, true
		}
		if m := keyDetailRe.FindStringSubmatch(pgErr.Detail); m != nil {
			return m[1], msgDuplicate, true
		}
		return "", msgDupGlobal, true
	}

	msg := err.Error()
	if !strings.Contains(msg, "unique") && !strings.Contains(msg, "UNIQUE") &&
		!strings.Contains(msg, "Duplicate") {
		return "", "", false
	}
	if f := extractFieldName(msg); f != "" {
		return f, msgDuplicate, true
	}
	return "", msgDupGlobal, true
}

// DatabaseError translates a persistence error into the form's error
// map. Uniqueness violations land on the offending field when it can
// be identified, otherwise as a global duplicate message; every other
// error becomes a generic global failure. The raw error text is never
// surfaced to the user.
func (f *Form) DatabaseError(err error) {
	if err == nil {
		return
	}
	field, message, ok := TranslateDBError(err)
	if !ok {
		f.AddGlobalError(msgSaveFail)
		return
	}
	if field == "" {
		f.AddGlobalError(message)
		return
	}
	f.AddError(field, message)
}

func extractFieldName(msg string) string {
	if m := constraintRe.FindStringSubmatch(msg); m != nil {
		if f := fieldFromConstraint(m[1]); f != "" {
			return f
		}
	}
	if m := keyDetailRe.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	if m := sqliteRe.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	if m := mysqlKeyRe.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	return ""
}

// fieldFromConstraint parses conventional constraint names of the form
// table_column_key (or _idx), keeping the middle segments as the column.
func fieldFromConstraint(constraint string) string {
	parts := strings.Split(constraint, "_")
	if len(parts) < 3 {
		return ""
	}
	return strings.Join(parts[1:len(parts)-1], "_")
}
