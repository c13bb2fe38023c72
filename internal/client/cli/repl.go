package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/vltrn/datav/internal/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	takeSessionExpired() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Forget(ctx context.Context) error
	Me(ctx context.Context) error
	Plans(ctx context.Context) error
	Projects(ctx context.Context) error
	Project(ctx context.Context, args []string) error
	NewProject(ctx context.Context) error
	RemoveProject(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	Files(ctx context.Context, args []string) error
	Status(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Health(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, plans, health, forget, exit"
	helpLoggedIn  = "Available commands: me, plans, projects, project <id>, newproject, rmproject <id>, " +
		"upload <project-id> <path>, files <project-id>, status <file-id>, stats, health, logout, forget, exit"
)

var tracer = observability.Tracer("github.com/vltrn/datav/internal/client/cli")

// runREPL starts a read–eval–print loop for the DataV CLI.
//
// It reads a line from reader, parses the first token as the command and
// the rest as arguments, and dispatches to methods on a. Command errors are
// printed and the loop continues. After every command, a session expired
// during it sends the user through login again. The loop exits on EOF or
// when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("datav %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if err := dispatch(ctx, a, cmd, args); err != nil {
			printlnFn("Error:", err)
		}

		if a.takeSessionExpired() {
			printlnFn("Session expired. Please log in again.")
			if err := dispatch(ctx, a, "login", nil); err != nil {
				printlnFn("Error:", err)
			}
			// a rejected re-login must not prompt again on the next command
			a.takeSessionExpired()
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	ctx, span := tracer.Start(ctx, "command "+cmd)
	defer span.End()
	span.SetAttributes(attribute.Int("cli.args", len(args)))

	err := run(ctx, a, cmd, args)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func run(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn(ctx) {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return nil
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "forget":
		return a.Forget(ctx)
	case "me":
		return a.Me(ctx)
	case "plans":
		return a.Plans(ctx)
	case "projects":
		return a.Projects(ctx)
	case "project":
		return a.Project(ctx, args)
	case "newproject":
		return a.NewProject(ctx)
	case "rmproject":
		return a.RemoveProject(ctx, args)
	case "upload":
		return a.Upload(ctx, args)
	case "files":
		return a.Files(ctx, args)
	case "status":
		return a.Status(ctx, args)
	case "stats":
		return a.Stats(ctx)
	case "health":
		return a.Health(ctx)
	}
	printlnFn("Unknown command:", cmd)
	return nil
}
