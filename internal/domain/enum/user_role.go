package enum

// UserRole gates access to route groups: admins manage the back-office,
// cashiers run the register, sellers only record sales.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleCaixa    UserRole = "CAIXA"
	RoleVendedor UserRole = "VENDEDOR"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleCaixa, RoleVendedor:
		return true
	}
	return false
}
