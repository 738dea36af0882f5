// Package identity describes who is viewing the admin screens.
package identity

// Identity is the viewer a render is performed for.
type Identity struct {
	ID    int64    `json:"id"`
	Roles []string `json:"roles"`
}

// PrimaryRole returns the first role, which is the one role-scoped settings
// are resolved against.
func (i Identity) PrimaryRole() (string, bool) {
	if len(i.Roles) == 0 || i.Roles[0] == "" {
		return "", false
	}
	return i.Roles[0], true
}

// HasRoles reports whether the identity carries at least one usable role.
func (i Identity) HasRoles() bool {
	_, ok := i.PrimaryRole()
	return ok
}
