package auth

// Landing routes users are sent to immediately after a successful login.
const (
	LandingAdmin    = "/admin"
	LandingEmployee = "/employee"
	LandingHome     = "/"
)

// landingPriority is the fixed post-login landing policy: first match wins.
// The order is deliberate and documented because a user may legitimately
// hold more than one role — ADMIN always outranks EMPLOYEE regardless of the
// order roles were assigned in.
var landingPriority = []struct {
	role  Role
	route string
}{
	{RoleAdmin, LandingAdmin},
	{RoleHR, LandingAdmin},
	{RoleWebsiteManager, LandingAdmin},
	{RoleManager, LandingAdmin},
	{RoleEmployee, LandingEmployee},
}

// LandingRoute maps a user's role set to the initial landing route.
// Users holding none of the recognized roles land on the public home page.
func LandingRoute(roles []Role) string {
	sess := Session{Roles: roles}
	for _, entry := range landingPriority {
		if sess.HasRole(entry.role) {
			return entry.route
		}
	}
	return LandingHome
}
