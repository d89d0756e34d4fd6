// Package cli implements the interactive terminal front end of the boletera
// client: a small REPL over the session manager and the domain services.
// Command handlers prompt for their input, call the services, and print the
// backend's human-readable messages on failure.
package cli
