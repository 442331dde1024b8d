package application

import "github.com/google/uuid"

// validID reports whether id is a syntactically valid entity identifier.
// Malformed ids are rejected before touching storage.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
