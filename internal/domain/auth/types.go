// Package auth contains domain-level types for requester identity and sessions.
// It is pure and free of framework/adapter concerns.
package auth

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below; the singular lowercase
// spelling is the contract and no alternate spellings are accepted.
type Role string

const (
	// RoleParent is a parent who authors care/tutoring requests.
	RoleParent Role = "parent"
	// RoleTutor is a tutor who discovers and serves requests.
	RoleTutor Role = "tutor"
	// RoleAdmin is an operator with unrestricted read access.
	RoleAdmin Role = "admin"
)

// Valid returns true if the role is one of the recognized roles.
func (r Role) Valid() bool {
	return r == RoleParent || r == RoleTutor || r == RoleAdmin
}

// Requester is the authenticated principal a listing request runs as.
// It is owned by the calling context (the authentication layer); this
// core only reads it and never persists it.
type Requester struct {
	// ID is the member identity of the caller. For tutors, translation
	// to a tutor-profile identity happens inside the region directory.
	ID   string
	Role Role
}

// Session is the server-side record persisted for an authenticated member.
// ID is an opaque session identifier (e.g., random URL-safe string).
type Session struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"member_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Requester derives the request principal from the session.
func (s Session) Requester() Requester {
	return Requester{ID: s.MemberID, Role: s.Role}
}
