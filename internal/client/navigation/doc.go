// Package navigation decides which screens are reachable.
//
// The Gate derives one of three states from the session on every call
// (Booting, Unauthenticated, Authenticated) and mounts the matching route
// graph. The Navigator keeps a history stack of locations inside the mounted
// graph and resets it to the graph's root whenever the gate state changes.
//
// The More menu hides Worship and Kids from users outside those ministries.
// That is presentation only: a mounted route stays reachable by name.
package navigation
