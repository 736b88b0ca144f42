package domain

// Role is the function a user performs in the pharmacy.
type Role string

const (
	RoleSalesperson Role = "salesperson"
	RoleCustomer    Role = "customer"
)

// Session identifies the user operating the point of sale.
type Session struct {
	UserID      string
	DisplayName string
	Role        Role
}

// IsSalesperson reports whether the session may sell and restock.
func (s Session) IsSalesperson() bool {
	return s.Role == RoleSalesperson
}

// RequireSalesperson returns ErrNotSalesperson unless the session belongs to
// a salesperson.
func (s Session) RequireSalesperson() error {
	if !s.IsSalesperson() {
		return ErrNotSalesperson
	}
	return nil
}
