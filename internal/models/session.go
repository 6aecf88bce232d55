// ABOUTME: Session and profile models for the signed-in operator
// ABOUTME: Session is the snapshot persisted between runs

package models

// Profile describes the operator who is signed in (not a managed UserRecord)
type Profile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// Session is the logged-in/out state. IsLoggedIn is true iff User is non-nil.
type Session struct {
	IsLoggedIn bool     `json:"isLoggedIn"`
	User       *Profile `json:"user"`
}

// LoggedIn returns a session holding p
func LoggedIn(p Profile) Session {
	return Session{IsLoggedIn: true, User: &p}
}

// Valid reports whether the session satisfies its invariant
func (s Session) Valid() bool {
	return s.IsLoggedIn == (s.User != nil)
}
