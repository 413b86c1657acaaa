package domain

import "sort"

// Role is a role a user can book time as.
type Role struct {
	ID       string
	ParentID string
	FullName string
}

// UserInfo is what Zebra knows about the authenticated user.
type UserInfo struct {
	Roles        map[string]Role
	Vacation     Vacation
	HoursBalance float64
}

// Vacation is expressed in hours.
type Vacation struct {
	TotalAvailable float64
	Planned        float64
	Used           float64
}

// Left returns the vacation hours still available.
func (v Vacation) Left() float64 { return v.TotalAvailable - v.Planned - v.Used }

// SortedRoles returns the user roles ordered by id, numerically when possible.
func (u UserInfo) SortedRoles() []Role {
	out := make([]Role, 0, len(u.Roles))
	for _, r := range u.Roles {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].ID, out[j].ID
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
	return out
}
