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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Home(ctx context.Context) error
	Statement(ctx context.Context) error
	Transfer(ctx context.Context) error
	Keys(ctx context.Context) error
	NewKey(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the vbank CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - home           — account summary and recent transactions
//	  - statement      — full transaction statement
//	  - transfer       — PIX transfer (interactive)
//	  - keys           — list registered PIX keys
//	  - newkey         — register a PIX key (interactive)
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; the workflows
// render their own notices. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	requireLogin := func(fn func(context.Context) error) {
		if !a.isLoggedIn() {
			printlnFn("Please login first")
			return
		}
		_ = fn(ctx)
	}

	for {
		printlnFn(fmt.Sprintf("vbank %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, statement, transfer, keys, newkey, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "home":
			requireLogin(a.Home)

		case "statement":
			requireLogin(a.Statement)

		case "transfer":
			requireLogin(a.Transfer)

		case "keys":
			requireLogin(a.Keys)

		case "newkey":
			requireLogin(a.NewKey)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
