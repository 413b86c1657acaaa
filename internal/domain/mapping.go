package domain

import (
	"strings"

	"github.com/go-faster/errors"
)

// NeverSaveRoleID marks an alias whose user asked never to be offered to
// save a role. It is never sent to Zebra.
const NeverSaveRoleID = "0"

// Mapping is what an alias points to.
type Mapping struct {
	Backend    string
	ProjectID  string
	ActivityID string
	RoleID     string // empty when the alias carries no role
}

// ParseMapping parses the "project/activity[/role]" form used in the
// configuration file.
func ParseMapping(backend, s string) (Mapping, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) < 2 || len(parts) > 3 {
		return Mapping{}, errors.Errorf("invalid mapping %q, expected project/activity[/role]", s)
	}
	for _, p := range parts {
		if p == "" {
			return Mapping{}, errors.Errorf("invalid mapping %q, empty component", s)
		}
	}
	m := Mapping{Backend: backend, ProjectID: parts[0], ActivityID: parts[1]}
	if len(parts) == 3 {
		m.RoleID = parts[2]
	}
	return m, nil
}

// String returns the "project/activity[/role]" form of the mapping.
func (m Mapping) String() string {
	if m.RoleID == "" {
		return m.ProjectID + "/" + m.ActivityID
	}
	return m.ProjectID + "/" + m.ActivityID + "/" + m.RoleID
}

// WithRole returns a copy of the mapping pointing to roleID.
func (m Mapping) WithRole(roleID string) Mapping {
	m.RoleID = roleID
	return m
}

// NeverSaveRole reports whether the alias asked never to save a role.
func (m Mapping) NeverSaveRole() bool { return m.RoleID == NeverSaveRoleID }

// PushRoleID is the role to send with a push, empty for none.
func (m Mapping) PushRoleID() string {
	if m.NeverSaveRole() {
		return ""
	}
	return m.RoleID
}
