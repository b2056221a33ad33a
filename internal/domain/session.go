package domain

type SessionState string

const (
	SessionLoading       SessionState = "loading"
	SessionAnonymous     SessionState = "anonymous"
	SessionAuthenticated SessionState = "authenticated"
)

type Identity struct {
	ID    int
	Email string
	Name  string
}

type Session struct {
	State    SessionState
	Identity *Identity
	Token    string
}

func (s Session) Authenticated() bool {
	return s.State == SessionAuthenticated
}
