package entity

import "slices"

// Role grants access to parts of the storefront.
type Role string

const (
	// RoleReader is granted to every signed-in account.
	RoleReader Role = "reader"
	// RoleAdmin may publish products to the catalog.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the storefront roles.
func (r Role) IsValid() bool {
	return r == RoleReader || r == RoleAdmin
}

// Roles is the role set carried by a session and its access token.
type Roles []Role

// AccountRoles returns the roles of a signed-in account; admins also keep the reader role.
func AccountRoles(admin bool) Roles {
	if admin {
		return Roles{RoleReader, RoleAdmin}
	}

	return Roles{RoleReader}
}

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for the JWT roles claim.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings reads the JWT roles claim, dropping unknown and repeated roles.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() && !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result
}
