package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/common"
)

var genderOptions = []string{
	string(models.GenderMale),
	string(models.GenderFemale),
	string(models.GenderOther),
}

// SignupScreen collects the registration form and submits it. The account is
// not logged in afterwards; on success the screen follows the store's intent
// to the login screen.
func (a *App) SignupScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "--- Sign Up ---")

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	birthDate, err := getSimpleText(a.reader, "Enter birth date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	gender, err := getSelect(a.reader, "Select gender", genderOptions, false, a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		return err
	}

	data := models.SignupData{
		Username:    username,
		Email:       email,
		Password:    string(password),
		Name:        name,
		BirthDate:   birthDate,
		Gender:      models.Gender(gender),
		Description: description,
	}
	if err := data.Validate(); err != nil {
		printFieldErrors(a.out, err)
		return nil
	}

	route, err := a.session.Signup(ctx, data)
	if err != nil {
		fmt.Fprintln(a.out, toastMessage(err, "Signup failed. Please try again."))
		return nil
	}

	fmt.Fprintln(a.out, "Account created! Please log in.")
	a.Navigate(ctx, route)
	return nil
}
