// Package models defines the client-side data types: the signed-in User with
// its Role and ministry affiliations, the closed set of Permissions derived
// from them, registered Accounts, and the read-only catalog records shown by
// the feature screens.
package models
