package permission

import (
	"github.com/MrEthical07/flagset"
)

/*
====================================
REGISTER ROLE
====================================
*/

// RegisterRole declares roleName as the union of the given permissions and
// roles. Members may be registered later; they are resolved by
// [Registry.Freeze], which also rejects roles that include each other.
func (r *Registry) RegisterRole(roleName string, members ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrFrozen
	}
	if err := r.builder.Alias(roleName, members...).Err(); err != nil {
		return err
	}
	r.roles = append(r.roles, roleName)
	return nil
}

/*
====================================
GET MASK FOR ROLE
====================================
*/

// RoleMask returns the granted set of a role. It returns false for unknown
// roles and before [Registry.Freeze].
func (r *Registry) RoleMask(roleName string) (flagset.Value, bool) {
	s, err := r.compiled()
	if err != nil {
		return flagset.Value{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, role := range r.roles {
		if role == roleName {
			v, err := s.Get(roleName)
			return v, err == nil
		}
	}
	return flagset.Value{}, false
}

/*
====================================
ROLES
====================================
*/

// Roles returns the registered role names in registration order.
func (r *Registry) Roles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.roles...)
}
