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
	Whoami(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Grades(ctx context.Context) error
	UpdateScore(ctx context.Context) error
	AddGoal(ctx context.Context) error
	Goals(ctx context.Context) error
	EditGoal(ctx context.Context) error
	CompleteGoal(ctx context.Context) error
	DeleteGoal(ctx context.Context) error
	AddItem(ctx context.Context) error
	Portfolio(ctx context.Context) error
	DeleteItem(ctx context.Context) error
}

// runREPL starts a read-eval-print loop over the persistence layer.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("college> %s", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: register, login, exit")
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: whoami, grades, updatescore, addgoal, goals, editgoal, complete, deletegoal, additem, portfolio, deleteitem, deleteaccount, logout, exit")

		case "whoami":
			_ = a.Whoami(ctx)

		case "grades":
			_ = a.Grades(ctx)

		case "updatescore":
			_ = a.UpdateScore(ctx)

		case "addgoal":
			_ = a.AddGoal(ctx)

		case "goals":
			_ = a.Goals(ctx)

		case "editgoal":
			_ = a.EditGoal(ctx)

		case "complete":
			_ = a.CompleteGoal(ctx)

		case "deletegoal":
			_ = a.DeleteGoal(ctx)

		case "additem":
			_ = a.AddItem(ctx)

		case "portfolio":
			_ = a.Portfolio(ctx)

		case "deleteitem":
			_ = a.DeleteItem(ctx)

		case "deleteaccount":
			_ = a.DeleteAccount(ctx)

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
