package calendar

// Role determines which calendar affordances a user is offered.
type Role string

const (
	RoleAdvisor   Role = "advisor"
	RoleFirmAdmin Role = "firm_admin"
)

// Identity is the viewing user, supplied by the identity provider at
// the application boundary.
type Identity struct {
	UserID string
	Role   Role
}

// DefaultAdvisorID is the advisor id mutations are attributed to and
// fetches are scoped to by default.
func (i Identity) DefaultAdvisorID() string {
	return i.UserID
}

// CanViewAdditionalAdvisors reports whether the advisor multi-select is
// offered at all. Only firm admins aggregate other advisors' calendars.
func (i Identity) CanViewAdditionalAdvisors() bool {
	return i.Role == RoleFirmAdmin
}
