// Package cli implements the interactive terminal UI of the account client:
// the login, signup and profile screens, plus the router that decides which
// screen the user may reach given the current session state.
package cli
