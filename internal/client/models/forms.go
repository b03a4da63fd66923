package models

import (
	"net/mail"
	"sort"
	"strings"
	"time"
)

// FieldErrors maps a form field name to a human-readable validation message.
// It implements error so that screens can treat a failed validation like any
// other submission failure.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for name := range f {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, name := range fields {
		parts = append(parts, name+": "+f[name])
	}
	return strings.Join(parts, "; ")
}

// LoginData is the login form payload.
type LoginData struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that both fields are present.
func (d LoginData) Validate() error {
	errs := FieldErrors{}
	if d.Username == "" {
		errs["username"] = "Username is required"
	}
	if d.Password == "" {
		errs["password"] = "Password is required"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SignupData is the registration payload sent to the server.
type SignupData struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	BirthDate   string `json:"birthDate"`
	Gender      Gender `json:"gender"`
	Description string `json:"description,omitempty"`
}

// Validate applies the signup form rules. All checks run so the result
// carries one message per offending field.
func (d SignupData) Validate() error {
	errs := FieldErrors{}
	if msg := validateUsername(d.Username); msg != "" {
		errs["username"] = msg
	}
	if msg := validateEmail(d.Email); msg != "" {
		errs["email"] = msg
	}
	if len(d.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	if msg := validateName(d.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := validateBirthDate(d.BirthDate); msg != "" {
		errs["birthDate"] = msg
	}
	if !d.Gender.Valid() {
		errs["gender"] = "Gender must be one of male, female or other"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateProfileData is a partial profile update. Nil fields are omitted from
// the request body so the server leaves them untouched.
type UpdateProfileData struct {
	Username    *string `json:"username,omitempty"`
	Email       *string `json:"email,omitempty"`
	Name        *string `json:"name,omitempty"`
	BirthDate   *string `json:"birthDate,omitempty"`
	Gender      *Gender `json:"gender,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Empty reports whether no field is set.
func (d UpdateProfileData) Empty() bool {
	return d.Username == nil && d.Email == nil && d.Name == nil &&
		d.BirthDate == nil && d.Gender == nil && d.Description == nil
}

// Validate applies the same rules as signup, but only to the supplied fields.
func (d UpdateProfileData) Validate() error {
	errs := FieldErrors{}
	if d.Username != nil {
		if msg := validateUsername(*d.Username); msg != "" {
			errs["username"] = msg
		}
	}
	if d.Email != nil {
		if msg := validateEmail(*d.Email); msg != "" {
			errs["email"] = msg
		}
	}
	if d.Name != nil {
		if msg := validateName(*d.Name); msg != "" {
			errs["name"] = msg
		}
	}
	if d.BirthDate != nil && *d.BirthDate != "" {
		if msg := validateBirthDate(*d.BirthDate); msg != "" {
			errs["birthDate"] = msg
		}
	}
	if d.Gender != nil && !d.Gender.Valid() {
		errs["gender"] = "Gender must be one of male, female or other"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateUsername(s string) string {
	if len(s) < 3 {
		return "Username must be at least 3 characters"
	}
	return ""
}

func validateEmail(s string) string {
	if _, err := mail.ParseAddress(s); err != nil {
		return "Invalid email address"
	}
	return ""
}

func validateName(s string) string {
	if len(s) < 2 {
		return "Name must be at least 2 characters"
	}
	return ""
}

var birthDateLayouts = []string{"2006-01-02", time.RFC3339}

func validateBirthDate(s string) string {
	for _, layout := range birthDateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return ""
		}
	}
	return "Invalid date"
}
