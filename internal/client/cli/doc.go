// Package cli is the interactive churchhub terminal client.
//
// Every screen of the app is a REPL command. What can be typed depends on
// the navigation gate: signed out, only login, guest and register work;
// signed in, the tab screens (home, give, events, checkin, more) and the
// screens stacked on top of them (groups, worship, schedule <id>, kids,
// devotional, profile, event <id>) are available.
//
// The REPL is started via App.Run(ctx), which waits for the session to
// finish loading and blocks until the user exits or ctx is cancelled.
package cli
