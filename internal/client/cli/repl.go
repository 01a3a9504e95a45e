package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/churchhub/internal/client/navigation"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	authenticated() bool
	Login(ctx context.Context) error
	Guest(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Open(ctx context.Context, r navigation.Route, p navigation.Params) error
	Back(ctx context.Context) error
	Give(ctx context.Context) error
	CheckIn(ctx context.Context) error
	EditProfile(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: login, guest, register, exit"
	helpSignedIn  = "Available commands: home, give, events, event <id>, checkin, more, groups, " +
		"worship, schedule <id>, kids, devotional, profile, edit, back, logout, exit"
)

// screenCommands maps argument-less commands to the route they open.
var screenCommands = map[string]navigation.Route{
	"home":       navigation.RouteHome,
	"events":     navigation.RouteEvents,
	"more":       navigation.RouteMore,
	"groups":     navigation.RouteGroups,
	"worship":    navigation.RouteWorship,
	"kids":       navigation.RouteKids,
	"devotional": navigation.RouteDevotional,
	"profile":    navigation.RouteProfile,
}

// runREPL starts a simple read–eval–print loop.
//
// It prints a prompt with the current status (from statusFn) to w, reads a
// line from reader, parses the first token as the command and dispatches to
// a. The loop exits on EOF, on "exit"/"quit", or when ctx is done.
//
// Which commands are accepted depends on a.authenticated(); see helpSignedOut
// and helpSignedIn. Errors returned by command handlers are ignored here:
// handlers report their own errors to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "church (%s)> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(w, "Bye!")
			return
		}

		if !a.authenticated() {
			switch cmd {
			case "help":
				fmt.Fprintln(w, helpSignedOut)
			case "login":
				_ = a.Login(ctx)
			case "guest":
				_ = a.Guest(ctx)
			case "register":
				_ = a.Register(ctx)
			default:
				fmt.Fprintln(w, "Unknown command:", cmd, "(sign in first, type 'help')")
			}
			continue
		}

		if r, ok := screenCommands[cmd]; ok {
			_ = a.Open(ctx, r, nil)
			continue
		}

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpSignedIn)
		case "event":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: event <id>")
				continue
			}
			_ = a.Open(ctx, navigation.RouteEventDetails, navigation.Params{navigation.ParamEventID: args[0]})
		case "schedule":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: schedule <id>")
				continue
			}
			_ = a.Open(ctx, navigation.RouteScheduleDetail, navigation.Params{navigation.ParamScheduleID: args[0]})
		case "give":
			_ = a.Give(ctx)
		case "checkin", "check-in":
			_ = a.CheckIn(ctx)
		case "edit":
			_ = a.EditProfile(ctx)
		case "back":
			_ = a.Back(ctx)
		case "logout":
			_ = a.Logout(ctx)
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
