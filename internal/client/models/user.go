// Package models defines the account domain types exchanged with the server
// and the session state snapshot shared between the store and the screens.
package models

import "time"

// Gender is the fixed enumeration accepted by the server.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether g is one of the accepted values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// User is the account record as returned by the server. BirthDate is kept
// as the server sends it (a date string); it is never parsed beyond
// validation at form submission time.
type User struct {
	ID          string    `json:"_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	BirthDate   string    `json:"birthDate"`
	Gender      Gender    `json:"gender"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AuthState is a snapshot of the session.
//
// Invariant: IsAuthenticated == (User != nil && Token != "").
type AuthState struct {
	User            *User
	Token           string
	IsLoading       bool
	IsAuthenticated bool
}
