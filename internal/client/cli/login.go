package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/common"
)

// getSimpleText, getPassword and getSelect are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getSelect = GetSelect

// LoginScreen prompts for credentials and attempts to authenticate.
//
// Field validation failures are reported per field and nothing is sent to
// the server. A rejected login leaves the session untouched; on success the
// screen follows the navigation intent returned by the store. The password
// byte slice is wiped before returning. Only I/O errors are returned.
func (a *App) LoginScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "--- Log In ---")

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	data := models.LoginData{Username: username, Password: string(password)}
	if err := data.Validate(); err != nil {
		printFieldErrors(a.out, err)
		return nil
	}

	route, err := a.session.Login(ctx, data)
	if err != nil {
		fmt.Fprintln(a.out, toastMessage(err, "Invalid credentials"))
		return nil
	}

	fmt.Fprintln(a.out, "Login successful!")
	a.Navigate(ctx, route)
	return nil
}
