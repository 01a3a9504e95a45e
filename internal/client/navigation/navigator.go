package navigation

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Navigator keeps the history of visited locations within the mounted graph.
type Navigator struct {
	gate *Gate

	mu    sync.Mutex
	state State
	stack []Location
}

func NewNavigator(g *Gate) *Navigator {
	n := &Navigator{gate: g}
	n.state = g.State()
	n.stack = rootLocation(n.state)
	return n
}

// sync resets the stack when the gate state changed since the last call.
// It reports whether a reset happened. Callers hold n.mu.
func (n *Navigator) sync() bool {
	st := n.gate.State()
	if st == n.state {
		return false
	}
	n.state = st
	n.stack = rootLocation(st)
	return true
}

// Sync picks up a gate state change and reports whether the stack was reset.
func (n *Navigator) Sync() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sync()
}

func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sync()
	return n.state
}

// Current returns the top of the stack; false while booting.
func (n *Navigator) Current() (Location, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sync()
	if len(n.stack) == 0 {
		return Location{}, false
	}
	return n.stack[len(n.stack)-1], true
}

// Depth is the number of locations on the stack.
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sync()
	return len(n.stack)
}

// Navigate opens r. Tabs (and MainTabs, which lands on Home) replace the
// history; other routes are pushed.
func (n *Navigator) Navigate(r Route, p Params) (Location, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sync()

	if !slices.Contains(mountedRoutes(n.state), r) {
		return Location{}, fmt.Errorf("%w: %s (%s)", ErrRouteNotMounted, r, n.state)
	}
	if key, ok := requiredParams[r]; ok && p[key] == "" {
		return Location{}, fmt.Errorf("%w: %s needs %s", ErrMissingParam, r, key)
	}

	loc := Location{Route: r, Params: maps.Clone(p)}
	switch {
	case r == RouteMainTabs:
		loc = Location{Route: RouteHome}
		n.stack = []Location{loc}
	case slices.Contains(tabRoutes, r):
		n.stack = []Location{loc}
	default:
		n.stack = append(n.stack, loc)
	}
	return loc, nil
}

// Back pops the current location and returns the new top. At the root it
// does nothing.
func (n *Navigator) Back() (Location, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sync()

	if len(n.stack) == 0 {
		return Location{}, false
	}
	if len(n.stack) > 1 {
		n.stack = n.stack[:len(n.stack)-1]
	}
	return n.stack[len(n.stack)-1], true
}
