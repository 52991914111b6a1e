// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated identity issued by the session layer.
// Every owned entity in the marketplace references it; entity modules never mutate it.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the identity.
	Email     string    // The login email, unique across identities.
	Name      string    // Optional display name supplied at sign-up.
	CreatedAt time.Time // Timestamp of when this identity was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
