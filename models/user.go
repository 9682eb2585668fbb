// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the access level of a user account.
type Role string

const (
	// RoleUser is assigned to every account on signup.
	RoleUser Role = "user"
	// RoleAdmin grants access to user management and role assignment.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// DefaultAvatar is stored for accounts that never uploaded an avatar.
const DefaultAvatar = "avatar.jpg"

// User represents an account entity used for authentication, authorization
// and profile storage.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the immutable identifier (UUID) assigned at creation.
	ID string `json:"id"`

	// Email is unique across all records, soft-deleted ones included,
	// and serves as the login identifier.
	Email string `json:"email"`

	// Password holds the argon2id hash in PHC form once persisted.
	// It is empty unless the record was loaded with FindOptions.WithPassword
	// or a new password is being set. Never serialized.
	Password string `json:"-"`

	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`

	// Phone is unique when present.
	Phone  *string `json:"phone,omitempty"`
	Bio    *string `json:"bio,omitempty"`
	Avatar string  `json:"avatar"`

	Role Role `json:"role"`

	// TMDBKey and TraktKey override the process-wide provider credentials
	// for catalog requests made by this user.
	TMDBKey  *string `json:"tmdbKey,omitempty"`
	TraktKey *string `json:"traktKey,omitempty"`

	LastLoginAt *time.Time  `json:"lastLoginAt,omitempty"`
	Preferences Preferences `json:"preferences"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// DeletedAt is set by a soft delete and cleared on recovery.
	DeletedAt *time.Time `json:"deletedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsDeleted reports whether the record is soft-deleted.
func (u User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// Identity returns the identity projection of the user.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Role: u.Role}
}

// FindOptions controls which columns and rows a user lookup may return.
type FindOptions struct {
	// WithPassword includes the password hash in the result.
	WithPassword bool
	// WithDeleted includes soft-deleted records.
	WithDeleted bool
}

// UserPatch is a partial profile update. Nil fields are left untouched.
type UserPatch struct {
	Avatar      *string      `json:"avatar,omitempty" validate:"omitempty,max=255"`
	FirstName   *string      `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName    *string      `json:"lastName,omitempty" validate:"omitempty,max=100"`
	Phone       *string      `json:"phone,omitempty" validate:"omitempty,e164"`
	Bio         *string      `json:"bio,omitempty" validate:"omitempty,max=1000"`
	TMDBKey     *string      `json:"tmdbKey,omitempty" validate:"omitempty,max=255"`
	TraktKey    *string      `json:"traktKey,omitempty" validate:"omitempty,max=255"`
	Preferences *Preferences `json:"preferences,omitempty"`
}
