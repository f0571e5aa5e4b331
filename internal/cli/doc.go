// Package cli implements the interactive Vitality shell: a small REPL that
// stands in for the dashboard's view layer and exercises the session
// manager's public contract (current user, pending flag, last error, and the
// sign-in/sign-up/sign-out operations).
package cli
