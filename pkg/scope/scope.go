// Package scope models the role-based data restriction threaded into every
// repository read. A scope is a capability handed to the data layer by the
// caller, never ambient state looked up by the core.
package scope

// Scope restricts reads to a single organization ("lotação"). The zero value
// is unrestricted and corresponds to the admin role.
type Scope struct {
	Organization string
}

// Admin returns an unrestricted scope.
func Admin() Scope {
	return Scope{}
}

// ForOrganization returns a scope restricted to one organization.
func ForOrganization(name string) Scope {
	return Scope{Organization: name}
}

// Restricted reports whether the scope limits reads to one organization.
func (s Scope) Restricted() bool {
	return s.Organization != ""
}

// Allows reports whether a record belonging to org is visible under s.
func (s Scope) Allows(org string) bool {
	return !s.Restricted() || s.Organization == org
}
