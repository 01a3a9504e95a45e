package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRole is returned when text does not name a Role.
var ErrUnknownRole = errors.New("unknown role")

// Role is a ranked tier. Declaration order is rank order.
type Role uint8

const (
	RoleMember Role = iota + 1
	RoleLeader
	RolePastor
)

var roleNames = map[Role]string{
	RoleMember: "member",
	RoleLeader: "leader",
	RolePastor: "pastor",
}

var roleAliases = map[string]Role{
	"member":          RoleMember,
	"leader":          RoleLeader,
	"ministry_leader": RoleLeader,
	"pastor":          RolePastor,
	"admin":           RolePastor,
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r >= RoleMember && r <= RolePastor
}

// AtLeast reports whether r ranks at or above other. Invalid roles never
// satisfy and never grant anything.
func (r Role) AtLeast(other Role) bool {
	return r.Valid() && other.Valid() && r >= other
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// ParseRole accepts the canonical names plus the "ministry_leader" and
// "admin" aliases, case-insensitively.
func ParseRole(s string) (Role, error) {
	if r, ok := roleAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

func (r Role) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, uint8(r))
	}
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
