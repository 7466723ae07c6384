package client

// Decision is the outcome of evaluating a navigation guard.
type Decision int

const (
	// Allow renders the requested view.
	Allow Decision = iota
	// RedirectLogin sends the user to the login entry point.
	RedirectLogin
	// RedirectDashboard sends the user to the default landing route. Used
	// when a user exists but lacks the required role.
	RedirectDashboard
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectDashboard:
		return "redirect-dashboard"
	default:
		return "unknown"
	}
}

// AuthGuard permits navigation only when a token and a user record are
// both present.
func AuthGuard(s *Session) Decision {
	if !s.IsAuthenticated() {
		return RedirectLogin
	}
	return Allow
}

// RoleGuard permits navigation only for the required role. A missing user
// goes to login; a present user with the wrong role goes to the default
// landing route, never to login.
func RoleGuard(s *Session, requiredRole string) Decision {
	user := s.User()
	if user == nil {
		return RedirectLogin
	}
	if user.Role != requiredRole {
		return RedirectDashboard
	}
	return Allow
}
