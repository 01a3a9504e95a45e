// Package session holds the signed-in user for the lifetime of the client.
//
// # Lifecycle
//
// A Session starts in the loading state with no user. Bootstrap reads the
// persisted user once and ends loading for good; Ready is closed at that
// point. If SignIn, SignUp, SignOut or UpdateProfile ran before the stored
// value arrived, the result of the mutation is kept and the stored value is
// dropped.
//
// # Write-through
//
// Every mutation updates memory first and then mirrors the user to the Store.
// Store failures are logged and never returned; the in-memory change stands.
//
// # Concurrency
//
// All methods are safe for concurrent use. Mutations are serialized with
// each other; queries never wait for storage I/O.
package session
