package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	pollUpdates(ctx context.Context)
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Link(ctx context.Context, link string) error
	Go(ctx context.Context, fragment string) error
	Show(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Ask(ctx context.Context, question string) error
	Chat(ctx context.Context) error
}

const (
	helpLoggedOut = "Comandos: login, register, link <url>, exit"
	helpLoggedIn  = "Comandos: go <vista>, show, add, edit <id>, delete <id>, ask <pregunta>, chat, whoami, logout, exit\n" +
		"Vistas: resumen, cuentas, ingresos, ingresos-programados, servicios, pagos-servicios, prestamos, pagos-prestamos"
)

// runREPL starts the read–eval–print loop of the findash client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Before each prompt it lets 'a'
// re-render if the view or the session changed. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
//	Not logged in:
//	  - help            show available commands
//	  - login           authenticate with email and password
//	  - register        create an account and log in
//	  - link <url>      finish an external sign-in ("#token=...")
//	  - exit | quit     leave the program
//
//	Logged in:
//	  - go <view>       open a view, e.g. "go cuentas" or "go #/prestamos"
//	  - show | refresh  reload the current view
//	  - add             create a record in the current list
//	  - edit <id>       change a record
//	  - delete <id>     remove a record
//	  - ask <question>  ask the assistant about what is on screen
//	  - chat            open the chat overlay
//	  - whoami          show the identity and credential lifetime
//	  - logout          log out
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		a.pollUpdates(ctx)

		printlnFn(fmt.Sprintf("findash %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "link":
			if rest == "" {
				printlnFn("Usage: link <url>")
				continue
			}
			_ = a.Link(ctx, rest)

		case "exit", "quit":
			printlnFn("¡Hasta luego!")
			return

		default:
			if !a.isLoggedIn() {
				printlnFn("Unknown command:", cmd, "(inicia sesión con 'login')")
				continue
			}
			dispatchLoggedIn(ctx, a, cmd, rest)
		}
	}
}

func dispatchLoggedIn(ctx context.Context, a execIface, cmd, rest string) {
	switch cmd {
	case "go":
		if rest == "" {
			printlnFn("Usage: go <vista>")
			return
		}
		_ = a.Go(ctx, rest)

	case "show", "refresh":
		_ = a.Show(ctx)

	case "add":
		_ = a.Add(ctx)

	case "edit", "delete":
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil || id <= 0 {
			printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
			return
		}
		if cmd == "edit" {
			_ = a.Edit(ctx, id)
		} else {
			_ = a.Delete(ctx, id)
		}

	case "ask":
		if rest == "" {
			printlnFn("Usage: ask <pregunta>")
			return
		}
		_ = a.Ask(ctx, rest)

	case "chat":
		_ = a.Chat(ctx)

	case "whoami":
		_ = a.WhoAmI(ctx)

	case "logout":
		_ = a.Logout(ctx)

	default:
		printlnFn("Unknown command:", cmd)
	}
}
