package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL needs. *App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ShowAnnouncement(ctx context.Context) error
	DismissAnnouncement(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
//
//	Not logged in:
//	  - register       create an account
//	  - login          authenticate
//	Logged in:
//	  - whoami         show the current identity
//	  - logout         end the session
//	Always:
//	  - announcement   show the server announcement
//	  - dismiss        hide the server announcement
//	  - help
//	  - exit | quit
//
// Handler errors are not reported here; handlers print their own messages.
// The loop ends on EOF, on exit/quit, or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("track %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, announcement, dismiss, logout, exit")
			} else {
				printlnFn("Available commands: login, register, announcement, dismiss, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "announcement":
			_ = a.ShowAnnouncement(ctx)

		case "dismiss":
			_ = a.DismissAnnouncement(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
