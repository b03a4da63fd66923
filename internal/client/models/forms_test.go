package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginData_Validate(t *testing.T) {
	require.NoError(t, LoginData{Username: "alice", Password: "secret"}.Validate())

	err := LoginData{}.Validate()
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "Username is required", fe["username"])
	require.Equal(t, "Password is required", fe["password"])
}

func validSignup() SignupData {
	return SignupData{
		Username:  "alice",
		Email:     "alice@example.org",
		Password:  "secret1",
		Name:      "Alice",
		BirthDate: "1990-05-01",
		Gender:    GenderFemale,
	}
}

func TestSignupData_Validate(t *testing.T) {
	require.NoError(t, validSignup().Validate())

	tests := []struct {
		name   string
		mutate func(*SignupData)
		field  string
	}{
		{"short username", func(d *SignupData) { d.Username = "al" }, "username"},
		{"bad email", func(d *SignupData) { d.Email = "not-an-email" }, "email"},
		{"short password", func(d *SignupData) { d.Password = "12345" }, "password"},
		{"short name", func(d *SignupData) { d.Name = "A" }, "name"},
		{"bad birth date", func(d *SignupData) { d.BirthDate = "yesterday" }, "birthDate"},
		{"bad gender", func(d *SignupData) { d.Gender = "robot" }, "gender"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := validSignup()
			tc.mutate(&d)
			var fe FieldErrors
			require.ErrorAs(t, d.Validate(), &fe)
			require.Contains(t, fe, tc.field)
		})
	}
}

func TestSignupData_Validate_CollectsAllFields(t *testing.T) {
	var fe FieldErrors
	require.ErrorAs(t, SignupData{}.Validate(), &fe)
	require.Len(t, fe, 6)
}

func TestUpdateProfileData_Validate(t *testing.T) {
	require.NoError(t, UpdateProfileData{}.Validate(), "empty update has nothing to complain about")

	name := "Al"
	require.NoError(t, UpdateProfileData{Name: &name}.Validate())

	bad := "A"
	var fe FieldErrors
	require.ErrorAs(t, UpdateProfileData{Name: &bad}.Validate(), &fe)
	require.Contains(t, fe, "name")
}

func TestUpdateProfileData_OmitsUnsetFields(t *testing.T) {
	name := "New Name"
	data, err := json.Marshal(UpdateProfileData{Name: &name})
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"New Name"}`, string(data))
}

func TestUpdateProfileData_Empty(t *testing.T) {
	require.True(t, UpdateProfileData{}.Empty())
	g := GenderOther
	require.False(t, UpdateProfileData{Gender: &g}.Empty())
}

func TestFieldErrors_ErrorIsStable(t *testing.T) {
	fe := FieldErrors{"b": "two", "a": "one"}
	require.Equal(t, "a: one; b: two", fe.Error())
	require.True(t, errors.As(error(fe), &FieldErrors{}))
}
