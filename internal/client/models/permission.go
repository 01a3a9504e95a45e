package models

import "fmt"

// Permission is a capability derived from a user's role and ministries.
// The set is closed: there is no lookup by name.
type Permission uint8

const (
	PermPostDevotional Permission = iota + 1
	PermManageWorship
	PermManageKids
	PermManageEvents
	PermViewAnalytics
)

func (p Permission) String() string {
	switch p {
	case PermPostDevotional:
		return "post_devotional"
	case PermManageWorship:
		return "manage_worship"
	case PermManageKids:
		return "manage_kids"
	case PermManageEvents:
		return "manage_events"
	case PermViewAnalytics:
		return "view_analytics"
	}
	return fmt.Sprintf("Permission(%d)", uint8(p))
}

// GrantedTo reports whether u holds p. A nil user and an undeclared
// permission are both denied.
func (p Permission) GrantedTo(u *User) bool {
	if u == nil {
		return false
	}
	switch p {
	case PermPostDevotional, PermViewAnalytics:
		return u.Role.AtLeast(RolePastor)
	case PermManageWorship:
		return u.Ministries.Has(MinistryWorship) || u.Role.AtLeast(RolePastor)
	case PermManageKids:
		return u.Ministries.Has(MinistryKids) || u.Role.AtLeast(RolePastor)
	case PermManageEvents:
		return u.Role.AtLeast(RoleLeader)
	}
	return false
}
