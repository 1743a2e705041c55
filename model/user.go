package model

import (
	"time"

	"github.com/muhammadheryan/storefront/constant"
)

// UserEntity represents the users table entity
type UserEntity struct {
	ID           uint64              `db:"id" json:"id"`
	Name         string              `db:"name" json:"name"`
	Email        string              `db:"email" json:"email"`
	Phone        string              `db:"phone" json:"phone"`
	PasswordHash string              `db:"password_hash" json:"-"`
	Role         constant.Role       `db:"role" json:"role"`
	Status       constant.UserStatus `db:"status" json:"status"`
	RegionID     uint64              `db:"region_id" json:"region_id"`
	Year         int                 `db:"year" json:"year"`
	Image        string              `db:"image" json:"image"`
	CreatedAt    time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time          `db:"updated_at" json:"updated_at,omitempty"`
}

// UserDetail is a user joined with its region name
type UserDetail struct {
	UserEntity
	RegionName string `db:"region_name" json:"region_name"`
}

// UserFilter for querying users
type UserFilter struct {
	ID       uint64
	Email    string
	Phone    string
	RegionID uint64
}

// CreateUserRequest is used by admins to create active accounts directly
type CreateUserRequest struct {
	Name     string        `json:"name" validate:"required"`
	Email    string        `json:"email" validate:"required,email"`
	Phone    string        `json:"phone" validate:"required"`
	Password string        `json:"password" validate:"required,min=6"`
	Role     constant.Role `json:"role" validate:"omitempty,oneof=admin seller buyer"`
	Year     int           `json:"year" validate:"required,gt=0"`
	RegionID uint64        `json:"region_id" validate:"required"`
	Image    string        `json:"image" validate:"max=255"`
}

// UpdateUserRequest lists every field an admin may change. Nil means keep.
type UpdateUserRequest struct {
	Name     *string              `json:"name" validate:"omitempty,min=1"`
	Email    *string              `json:"email" validate:"omitempty,email"`
	Phone    *string              `json:"phone" validate:"omitempty,min=1"`
	Password *string              `json:"password" validate:"omitempty,min=6"`
	Role     *constant.Role       `json:"role" validate:"omitempty,oneof=admin seller buyer"`
	Status   *constant.UserStatus `json:"status" validate:"omitempty,oneof=pending active"`
	RegionID *uint64              `json:"region_id" validate:"omitempty,gt=0"`
	Year     *int                 `json:"year" validate:"omitempty,gt=0"`
	Image    *string              `json:"image" validate:"omitempty,max=255"`
}
