package readmodel

import (
	"github.com/google/uuid"
)

// AuthorizedUser is the authenticated-user view exposed past the auth layer.
type AuthorizedUser struct {
	ID    uuid.UUID
	Email string
	Name  string
}
