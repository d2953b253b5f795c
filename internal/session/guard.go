package session

import "onboarding_system/internal/domain"

// Decision is the route guard's verdict for a protected screen.
type Decision int

// Decisions
const (
	Wait               Decision = iota // Session still restoring, show a neutral indicator
	Render                             // Caller may show the protected content
	RedirectLogin                      // No authenticated identity
	RedirectAdminLogin                 // Authenticated but not admin on an admin-only screen
)

// String renders the decision for logs and CLI output.
func (d Decision) String() string {
	switch d {
	case Wait:
		return "wait"
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect:login"
	case RedirectAdminLogin:
		return "redirect:admin-login"
	}
	return "unknown"
}

// Decide is a pure function of the session state and the screen's admin
// requirement. The identity check runs before the role check, so an
// anonymous visitor to an admin screen is sent to the regular login.
func Decide(state Snapshot, requireAdmin bool) Decision {
	if state.Loading {
		return Wait
	}
	if state.Identity == nil {
		return RedirectLogin
	}
	if requireAdmin && state.Role != domain.RoleAdmin {
		return RedirectAdminLogin
	}
	return Render
}
