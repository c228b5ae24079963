package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

const dateLayout = "2006-01-02"

// nullableStringToValue converts a *string to a value suitable for SQLite
// storage. Returns nil (SQL NULL) if the pointer is nil.
func nullableStringToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// nullableStringFromColumn converts a scanned sql.NullString back to *string.
func nullableStringFromColumn(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// marshalJSONColumn serializes a slice value for a TEXT column holding JSON.
func marshalJSONColumn(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshalling json column: %w", err)
	}
	return string(raw), nil
}

// unmarshalJSONColumn deserializes a TEXT column holding JSON into dest.
func unmarshalJSONColumn(raw string, dest any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("unmarshalling json column: %w", err)
	}
	return nil
}
