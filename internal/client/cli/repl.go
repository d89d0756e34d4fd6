package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Search(ctx context.Context) error
	Locations(ctx context.Context) error
	TripDetails(ctx context.Context, arg string) error
	Buy(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the boletera CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current session status (from statusFn) and accepts:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - register       — create an account
//	  - forgot         — request a password-recovery email
//	  - reset          — set a new password with a recovery token
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - search         — search available trips
//	  - locations      — list available locations
//	  - trip <id>      — show the seat map of a trip
//	  - buy            — purchase seats (PayPal checkout)
//	  - profile        — show the current profile
//	  - edit           — update the profile
//	  - passwd         — change the password
//	  - whoami         — show session details
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Errors returned by command handlers are printed as-is: the handlers
// propagate the backend's human-readable message.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("boletera> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: search, locations, trip <id>, buy, profile, edit, passwd, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, register, forgot, reset, exit")
			}

		case "login":
			err = a.Login(ctx)

		case "register":
			err = a.Register(ctx)

		case "forgot":
			err = a.ForgotPassword(ctx)

		case "reset":
			err = a.ResetPassword(ctx)

		case "search":
			err = a.Search(ctx)

		case "locations":
			err = a.Locations(ctx)

		case "trip":
			if len(parts) < 2 {
				printlnFn("Usage: trip <id>")
				continue
			}
			err = a.TripDetails(ctx, parts[1])

		case "buy":
			err = a.Buy(ctx)

		case "profile":
			err = a.Profile(ctx)

		case "edit":
			err = a.EditProfile(ctx)

		case "passwd":
			err = a.ChangePassword(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
