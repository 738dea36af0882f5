package settings

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gyaneshwarpardhi/simplifyadmin/internal/identity"
)

// DefaultPrefix is the key prefix used when none is configured.
const DefaultPrefix = "simpad"

// Manager reads and writes scoped exclusion sets and resolves the effective
// set for a viewer.
type Manager struct {
	store  Store
	prefix string
}

func NewManager(store Store, prefix string) *Manager {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Manager{store: store, prefix: prefix}
}

// Store returns the underlying store.
func (m *Manager) Store() Store { return m.store }

// Load returns the stored set for scope. Absent and corrupt values both
// load as an empty set; corrupt values are logged.
func (m *Manager) Load(ctx context.Context, scope Scope) (Exclusions, error) {
	key := scope.Key(m.prefix)
	ex, err := m.store.Get(ctx, key)
	if errors.Is(err, ErrCorrupt) {
		slog.Warn("ignoring corrupt settings", "key", key, "err", err)
		return Exclusions{}, nil
	}
	if err != nil {
		return nil, err
	}
	if ex == nil {
		ex = Exclusions{}
	}
	return ex, nil
}

// Save replaces the stored set for scope.
func (m *Manager) Save(ctx context.Context, scope Scope, ex Exclusions) error {
	return m.store.Set(ctx, scope.Key(m.prefix), ex)
}

// Reset removes the stored set for scope.
func (m *Manager) Reset(ctx context.Context, scope Scope) error {
	return m.store.Delete(ctx, scope.Key(m.prefix))
}

// Effective resolves the set that applies to who on tab. A non-empty
// per-user set wins; otherwise the primary role's set applies. The returned
// kind is empty when nothing applies (no roles, or no stored settings).
func (m *Manager) Effective(ctx context.Context, tab Tab, who identity.Identity) (Exclusions, Kind, error) {
	role, ok := who.PrimaryRole()
	if !ok {
		return nil, "", nil
	}

	if who.ID > 0 {
		ex, err := m.Load(ctx, UserScope(tab, who.ID))
		if err != nil {
			return nil, "", err
		}
		if !ex.Empty() {
			return ex, KindUser, nil
		}
	}

	ex, err := m.Load(ctx, RoleScope(tab, role))
	if err != nil {
		return nil, "", err
	}
	if ex.Empty() {
		return nil, "", nil
	}
	return ex, KindRole, nil
}
