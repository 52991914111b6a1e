package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the public-facing details of an identity. Its ID equals the identity ID.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	AvatarURL *string   `json:"avatar_url"`
	Phone     *string   `json:"phone"`
	Location  *string   `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdate carries the fields a user may change. Nil fields are left untouched.
type ProfileUpdate struct {
	FullName  *string
	AvatarURL *string
	Phone     *string
	Location  *string
}

// IsEmpty reports whether the update changes nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.FullName == nil && u.AvatarURL == nil && u.Phone == nil && u.Location == nil
}

// DefaultProfile builds the row inserted on first access.
func DefaultProfile(user *User) *Profile {
	p := &Profile{
		ID:    user.ID,
		Email: user.Email,
	}
	if user.Name != "" {
		name := user.Name
		p.FullName = &name
	}

	return p
}
