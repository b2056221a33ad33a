package application

import "github.com/bnema/pharmacy-intel-cli/internal/domain"

// RouteGuard gates protected views on the current session state. It holds
// no state of its own; Admit is re-evaluated on every entry so a logout
// while a view is open denies the next interaction.
type RouteGuard struct {
	sessions *SessionStore
}

func NewRouteGuard(sessions *SessionStore) RouteGuard {
	return RouteGuard{sessions: sessions}
}

func (g RouteGuard) Admit() error {
	if g.sessions.Current().Authenticated() {
		return nil
	}
	return domain.ErrLoginRequired
}
