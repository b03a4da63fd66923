package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountcli/internal/client/models"
)

// ProfileScreen shows the current profile and collects a partial update.
// Each field starts from the server's copy; entering nothing keeps it, so
// only touched fields end up in the request.
func (a *App) ProfileScreen(ctx context.Context) error {
	st := a.session.Current()
	if st.User == nil {
		// The auth-only guard keeps this from happening in normal flow.
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintln(a.out, "--- Edit Profile ---")
	printUser(a.out, st.User)
	fmt.Fprintln(a.out, "Press Enter to keep the current value.")

	data, err := a.collectProfileChanges(st.User)
	if err != nil {
		return err
	}

	if data.Empty() {
		fmt.Fprintln(a.out, "Nothing to update.")
		return nil
	}
	if err := data.Validate(); err != nil {
		printFieldErrors(a.out, err)
		return nil
	}

	if err := a.session.UpdateProfile(ctx, data); err != nil {
		fmt.Fprintln(a.out, toastMessage(err, "Failed to update profile"))
		return nil
	}

	fmt.Fprintln(a.out, "Profile updated successfully!")
	return nil
}

func (a *App) collectProfileChanges(current *models.User) (models.UpdateProfileData, error) {
	var data models.UpdateProfileData

	username, err := getSimpleText(a.reader, fmt.Sprintf("Username [%s]", current.Username), a.out)
	if err != nil {
		return data, err
	}
	if username != "" {
		data.Username = &username
	}

	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", current.Email), a.out)
	if err != nil {
		return data, err
	}
	if email != "" {
		data.Email = &email
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", current.Name), a.out)
	if err != nil {
		return data, err
	}
	if name != "" {
		data.Name = &name
	}

	birthDate, err := getSimpleText(a.reader, fmt.Sprintf("Birth date [%s]", current.BirthDate), a.out)
	if err != nil {
		return data, err
	}
	if birthDate != "" {
		data.BirthDate = &birthDate
	}

	gender, err := getSelect(a.reader, fmt.Sprintf("Gender [%s]", current.Gender), genderOptions, true, a.out)
	if err != nil {
		return data, err
	}
	if gender != "" {
		g := models.Gender(gender)
		data.Gender = &g
	}

	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return data, err
	}
	if description != "" {
		data.Description = &description
	}

	return data, nil
}

// Whoami prints a short summary of the logged-in user.
func (a *App) Whoami() {
	st := a.session.Current()
	if !st.IsAuthenticated {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	printUser(a.out, st.User)
}
