package models

import "time"

// User is the signed-in church member. It is a plain value: copying it
// yields an independent record.
type User struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone,omitempty"`
	Address    string      `json:"address,omitempty"`
	Role       Role        `json:"role"`
	Ministries MinistrySet `json:"ministries"`
}

// ProfilePatch carries the profile fields a user may edit. Nil fields are
// left as they are.
type ProfilePatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// Empty reports whether the patch changes nothing.
func (p ProfilePatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Address == nil
}

// Apply returns u with the patch's non-nil fields overwritten.
func (p ProfilePatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	return u
}

// Account is a self-registered login kept in the local database.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash []byte
	CreatedAt    time.Time
}
