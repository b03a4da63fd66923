package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/dmitrijs2005/accountcli/internal/client/api"
	"github.com/dmitrijs2005/accountcli/internal/client/models"
)

// toastMessage picks the server-provided message when there is one,
// otherwise the screen's own fallback wording.
func toastMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// printFieldErrors reports validation failures per field and returns true
// when err actually was a validation failure.
func printFieldErrors(w io.Writer, err error) bool {
	var fe models.FieldErrors
	if !errors.As(err, &fe) {
		return false
	}

	fields := make([]string, 0, len(fe))
	for name := range fe {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	for _, name := range fields {
		fmt.Fprintf(w, "  %s: %s\n", name, fe[name])
	}
	return true
}

func printUser(w io.Writer, u *models.User) {
	fmt.Fprintf(w, "Username:    %s\n", u.Username)
	fmt.Fprintf(w, "Email:       %s\n", u.Email)
	fmt.Fprintf(w, "Name:        %s\n", u.Name)
	fmt.Fprintf(w, "Birth date:  %s\n", u.BirthDate)
	fmt.Fprintf(w, "Gender:      %s\n", u.Gender)
	if u.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", u.Description)
	}
}
