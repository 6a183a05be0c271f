package model

const (
	RoleAdmin   = "ADMIN"
	RoleAnalyst = "ANALYST"
	RoleViewer  = "VIEWER"
)

var roleRanks = map[string]int{
	RoleViewer:  1,
	RoleAnalyst: 2,
	RoleAdmin:   3,
}

// RoleRank returns the position of a role in the total order
// admin > analyst > viewer. Unknown roles rank below viewer.
func RoleRank(role string) int {
	return roleRanks[role]
}

// Scope identifies the authenticated actor of a request.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"` // ADMIN, ANALYST, or VIEWER
}

// IsAdmin checks if the scope has admin role
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// IsAnalyst checks if the scope has analyst role
func (s Scope) IsAnalyst() bool {
	return s.Role == RoleAnalyst
}

// IsViewer checks if the scope has viewer role
func (s Scope) IsViewer() bool {
	return s.Role == RoleViewer
}
