package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/churchhub/internal/client/navigation"
)

type fakeExec struct {
	loggedIn bool

	calls  []string
	routes []navigation.Route
	params []navigation.Params
}

func (f *fakeExec) authenticated() bool { return f.loggedIn }
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Guest(context.Context) error {
	f.calls = append(f.calls, "guest")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Open(_ context.Context, r navigation.Route, p navigation.Params) error {
	f.calls = append(f.calls, "open")
	f.routes = append(f.routes, r)
	f.params = append(f.params, p)
	return nil
}
func (f *fakeExec) Back(context.Context) error { f.calls = append(f.calls, "back"); return nil }
func (f *fakeExec) Give(context.Context) error { f.calls = append(f.calls, "give"); return nil }
func (f *fakeExec) CheckIn(context.Context) error {
	f.calls = append(f.calls, "checkin")
	return nil
}
func (f *fakeExec) EditProfile(context.Context) error {
	f.calls = append(f.calls, "edit")
	return nil
}

func repl(t *testing.T, exec *fakeExec, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, reader, &out)
	return out.String()
}

func TestRunREPL_SignedOutAcceptsOnlyAuthCommands(t *testing.T) {
	exec := &fakeExec{}
	out := repl(t, exec, "help", "events", "register", "give", "exit")

	assert.Equal(t, []string{"register"}, exec.calls)
	assert.Contains(t, out, helpSignedOut)
	assert.Contains(t, out, "Unknown command: events")
	assert.Contains(t, out, "church (status)> ")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_DispatchesScreenCommands(t *testing.T) {
	exec := &fakeExec{}
	out := repl(t, exec,
		"guest",
		"help",
		"events",
		"event 3",
		"event",
		"schedule 2",
		"WORSHIP",
		"give",
		"check-in",
		"edit",
		"back",
		"dance",
		"logout",
		"events",
		"quit",
		"never reached",
	)

	assert.Equal(t, []string{"guest", "open", "open", "open", "open", "give", "checkin", "edit", "back", "logout"}, exec.calls)
	assert.Equal(t, []navigation.Route{
		navigation.RouteEvents, navigation.RouteEventDetails, navigation.RouteScheduleDetail, navigation.RouteWorship,
	}, exec.routes)
	assert.Equal(t, "3", exec.params[1][navigation.ParamEventID])
	assert.Equal(t, "2", exec.params[2][navigation.ParamScheduleID])

	assert.Contains(t, out, helpSignedIn)
	assert.Contains(t, out, "Usage: event <id>")
	assert.Contains(t, out, "Unknown command: dance")
	assert.Contains(t, out, "sign in first")
}

func TestRunREPL_StopsOnEOFAndCancelledContext(t *testing.T) {
	exec := &fakeExec{}
	repl(t, exec, "login")
	assert.Equal(t, []string{"login"}, exec.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec = &fakeExec{}
	var out bytes.Buffer
	runREPL(ctx, exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("login\n")), &out)
	assert.Empty(t, exec.calls)
	assert.Empty(t, out.String())
}
