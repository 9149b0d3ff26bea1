package domain

// Role is the back-office permission level carried in the caller's token.
type Role string

const (
	RoleStaff      Role = "staff"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

var roleRank = map[Role]int{
	RoleStaff:      1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r grants every permission of min. Unknown roles grant nothing.
func (r Role) AtLeast(min Role) bool {
	rank, ok := roleRank[r]
	return ok && rank >= roleRank[min]
}

// Principal is the authorization context of a request. It is passed explicitly to every
// operation that makes a permission decision or calls the Ledger API on the user's behalf.
type Principal struct {
	UserID      string
	Role        Role
	AccessToken string
}

// IsAdmin reports whether the principal has at least admin rights.
func (p Principal) IsAdmin() bool {
	return p.Role.AtLeast(RoleAdmin)
}
