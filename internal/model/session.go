package model

// UserProfile is the identity portion of the login response. Name doubles
// as the audit actor tag on every mutating upstream call.
type UserProfile struct {
	UserID int    `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
}

// LoginData is the payload of a successful /api/Auth/Login call: the
// profile fields plus the role's permission grants.
type LoginData struct {
	UserProfile
	Permission []ActivityPermission `json:"permission"`
}

// Session is the record persisted per browser session. It replaces the
// SPA's two localStorage keys (UserInfo, permissions).
type Session struct {
	User        *UserProfile         `json:"user"`
	Permissions []ActivityPermission `json:"permissions"`
}

// Authenticated reports whether the session carries an identity.
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil
}
