package navigation

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/churchhub/internal/client/models"
)

// State is the gate's view of the session.
type State int

const (
	StateBooting State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateBooting:
		return "booting"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// SessionView is what the gate reads from the session.
type SessionView interface {
	Loading() bool
	User() (models.User, bool)
	HasMinistryAccess(m models.Ministry) bool
}

// Gate mounts a route graph according to the session. It holds no state of
// its own.
type Gate struct {
	session SessionView
}

func NewGate(s SessionView) *Gate {
	return &Gate{session: s}
}

func (g *Gate) State() State {
	if g.session.Loading() {
		return StateBooting
	}
	if _, ok := g.session.User(); !ok {
		return StateUnauthenticated
	}
	return StateAuthenticated
}

// Routes lists the mounted routes; nil while booting.
func (g *Gate) Routes() []Route {
	return mountedRoutes(g.State())
}

func (g *Gate) Mounted(r Route) bool {
	return slices.Contains(g.Routes(), r)
}

// Tabs lists the tab navigator's routes, or nil when it is not mounted.
func (g *Gate) Tabs() []Route {
	if g.State() != StateAuthenticated {
		return nil
	}
	return slices.Clone(tabRoutes)
}

// MenuItem is one entry of the More screen.
type MenuItem struct {
	Route    Route
	Title    string
	Subtitle string
}

// MoreMenu returns the More entries visible to the current user. Worship and
// Kids require membership of the respective ministry.
func (g *Gate) MoreMenu() []MenuItem {
	if g.State() != StateAuthenticated {
		return nil
	}
	items := []MenuItem{
		{Route: RouteDevotional, Title: "Daily Devotional", Subtitle: "Read daily spiritual messages"},
		{Route: RouteGroups, Title: "Groups", Subtitle: "Join small groups and ministries"},
	}
	if g.session.HasMinistryAccess(models.MinistryWorship) {
		items = append(items, MenuItem{Route: RouteWorship, Title: "Worship Schedule", Subtitle: "View songs and rehearsal materials"})
	}
	if g.session.HasMinistryAccess(models.MinistryKids) {
		items = append(items, MenuItem{Route: RouteKids, Title: "Kids Ministry", Subtitle: "Teaching schedules and materials"})
	}
	items = append(items, MenuItem{Route: RouteProfile, Title: "Profile", Subtitle: "Your details and ministries"})
	return items
}

func mountedRoutes(s State) []Route {
	switch s {
	case StateUnauthenticated:
		return []Route{RouteLogin}
	case StateAuthenticated:
		out := make([]Route, 0, 1+len(tabRoutes)+len(stackRoutes))
		out = append(out, RouteMainTabs)
		out = append(out, tabRoutes...)
		return append(out, stackRoutes...)
	}
	return nil
}

func rootLocation(s State) []Location {
	switch s {
	case StateUnauthenticated:
		return []Location{{Route: RouteLogin}}
	case StateAuthenticated:
		return []Location{{Route: RouteHome}}
	}
	return nil
}
