package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Tab discriminates which engine a setting belongs to.
type Tab string

const (
	TabMenu    Tab = "menu-items"
	TabToolbar Tab = "admin-bar"
)

var (
	ErrUnknownTab   = errors.New("unknown tab")
	ErrInvalidScope = errors.New("invalid scope")
)

// ParseTab validates a tab discriminator. An empty value selects the menu tab.
func ParseTab(s string) (Tab, error) {
	switch Tab(strings.TrimSpace(s)) {
	case "", TabMenu:
		return TabMenu, nil
	case TabToolbar:
		return TabToolbar, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Kind says whether a scope targets a role or a single user.
type Kind string

const (
	KindRole Kind = "role"
	KindUser Kind = "user"
)

// Scope selects one exclusion set: a tab plus a role slug or a user id.
type Scope struct {
	Tab     Tab    `json:"tab"`
	Kind    Kind   `json:"kind"`
	Subject string `json:"subject"`
}

func RoleScope(tab Tab, role string) Scope {
	return Scope{Tab: tab, Kind: KindRole, Subject: role}
}

func UserScope(tab Tab, userID int64) Scope {
	return Scope{Tab: tab, Kind: KindUser, Subject: strconv.FormatInt(userID, 10)}
}

// ScopeFrom builds a scope from transport fields. Exactly one of role and
// user must be set; user must be a positive integer id.
func ScopeFrom(tab Tab, role, user string) (Scope, error) {
	role, user = strings.TrimSpace(role), strings.TrimSpace(user)
	switch {
	case role != "" && user != "":
		return Scope{}, fmt.Errorf("%w: role and user are mutually exclusive", ErrInvalidScope)
	case role != "":
		return RoleScope(tab, role), nil
	case user != "":
		id, err := strconv.ParseInt(user, 10, 64)
		if err != nil || id <= 0 {
			return Scope{}, fmt.Errorf("%w: user id %q is not a positive integer", ErrInvalidScope, user)
		}
		return UserScope(tab, id), nil
	}
	return Scope{}, fmt.Errorf("%w: role is required", ErrInvalidScope)
}

// Key composes the store key for the scope, e.g. "simpad_admin-bar_role_editor".
func (s Scope) Key(prefix string) string {
	return prefix + "_" + string(s.Tab) + "_" + string(s.Kind) + "_" + s.Subject
}

func (s Scope) String() string {
	return string(s.Tab) + "/" + string(s.Kind) + "/" + s.Subject
}
