package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/browser"

	"github.com/dmitrijs2005/churchhub/internal/client/forms"
	"github.com/dmitrijs2005/churchhub/internal/client/models"
	"github.com/dmitrijs2005/churchhub/internal/client/navigation"
	"github.com/dmitrijs2005/churchhub/internal/logging"
)

// Session is what the screens need from the session context.
type Session interface {
	navigation.SessionView
	WaitReady(ctx context.Context) error
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, name, email, password string) error
	SignOut(ctx context.Context)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch)
	HasPermission(p models.Permission) bool
}

// Options configures an App. Zero values fall back to stdin/stdout, the
// system browser, the wall clock and English headings.
type Options struct {
	GivingURL    string
	CheckInDelay time.Duration
	Locale       string

	In     io.Reader
	Out    io.Writer
	Logger logging.Logger

	// OpenURL opens the giving page.
	OpenURL func(url string) error
	Now     func() time.Time
}

type App struct {
	session   Session
	gate      *navigation.Gate
	nav       *navigation.Navigator
	validator *forms.Validator
	log       logging.Logger

	reader *bufio.Reader
	out    io.Writer
	text   headings

	givingURL    string
	checkInDelay time.Duration
	openURL      func(string) error
	now          func() time.Time
}

func NewApp(s Session, opts Options) *App {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop{}
	}
	open := opts.OpenURL
	if open == nil {
		open = browser.OpenURL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	gate := navigation.NewGate(s)
	return &App{
		session:      s,
		gate:         gate,
		nav:          navigation.NewNavigator(gate),
		validator:    forms.New(),
		log:          log.With("component", "cli"),
		reader:       bufio.NewReader(in),
		out:          out,
		text:         headingsFor(opts.Locale),
		givingURL:    opts.GivingURL,
		checkInDelay: opts.CheckInDelay,
		openURL:      open,
		now:          now,
	}
}

// Run waits for the session to load, then serves commands until the user
// exits, input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.session.Loading() {
		a.println("Loading...")
	}
	if err := a.session.WaitReady(ctx); err != nil {
		return err
	}
	a.nav.Sync()

	a.printf("%s! (type 'help' for commands)\n", a.text.Welcome)
	a.showCurrent(ctx)

	runREPL(ctx, a, a.status, a.reader, a.out)
	return nil
}

func (a *App) authenticated() bool {
	return a.nav.State() == navigation.StateAuthenticated
}

func (a *App) status() string {
	u, ok := a.session.User()
	if !ok {
		return "signed out"
	}
	loc, _ := a.nav.Current()
	return fmt.Sprintf("%s @ %s", u.Name, loc.Route)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// fail reports err to the user and returns it.
func (a *App) fail(err error) error {
	a.printf("Error: %v\n", err)
	return err
}

func (a *App) heading(title string) {
	a.println()
	a.println("== " + title + " ==")
}
