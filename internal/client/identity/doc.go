// Package identity stands in for an external identity provider.
//
// MockProvider signs users in by email keyword (guest, kids, worship,
// pastor) the way the demo app always has, and additionally accepts accounts
// created with Register, whose passwords are checked against a bcrypt hash.
// Successful sign-ins yield an HS256 ID token; Verify turns a token back into
// a models.User.
package identity
