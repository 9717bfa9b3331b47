package entity

import (
	"github.com/google/uuid"
)

type UserRole string

const (
	RoleTraveler UserRole = "traveler"
	RoleProvider UserRole = "provider"
)

type Profile struct {
	Base
	UserID      uuid.UUID `db:"user_id"`
	Role        *UserRole `db:"role"`
	DisplayName *string   `db:"display_name"`
	State       *string   `db:"state"`
	AvatarURL   *string   `db:"avatar_url"`
}
