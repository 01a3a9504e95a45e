// Package metadata is the client's local key/value store: a single SQLite
// table of opaque byte values addressed by string keys.
//
// Get on an absent key returns (nil, nil) so callers can tell "nothing
// stored" from a read failure. Set is an upsert and Delete of an absent key
// succeeds.
package metadata
