package shell

// Decision is the route guard's verdict for a page.
type Decision int

const (
	// DecisionAllow lets the navigation stand. Unknown pages and unchecked
	// sessions also land here: the guard never acts before the session
	// restore finished, which is what prevents a flash-redirect on load.
	DecisionAllow Decision = iota
	// DecisionLogin redirects to the login page, recording the requested
	// page so it can be returned to after authentication.
	DecisionLogin
	// DecisionHome silently downgrades a role-restricted navigation.
	DecisionHome
)

// Decide evaluates the route table entry for page against the current user.
// It is a pure function of its inputs.
func Decide(routes map[string]Route, page string, user *User, sessionChecked bool) Decision {
	if !sessionChecked {
		return DecisionAllow
	}
	route, ok := routes[page]
	if !ok {
		return DecisionAllow
	}
	if !route.RequiresAuth {
		return DecisionAllow
	}
	if user == nil {
		return DecisionLogin
	}
	if len(route.AllowedRoles) == 0 {
		return DecisionAllow
	}
	for _, role := range route.AllowedRoles {
		if role == user.Role {
			return DecisionAllow
		}
	}
	return DecisionHome
}
