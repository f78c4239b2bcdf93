package entities

import "time"

// User is a registered account. Questions and answers embed a by-value copy
// of their author taken at creation time; later profile updates do not
// rewrite those embedded copies.
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Avatar     string    `json:"avatar,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	Reputation int       `json:"reputation"`
	JoinedAt   time.Time `json:"joinedAt"`
}

// Clone returns a copy of the user.
func (u User) Clone() User {
	return u
}

// UserPatch carries optional profile fields for a partial update. Nil fields
// are left unchanged.
type UserPatch struct {
	Username *string
	Email    *string
	Avatar   *string
	Bio      *string
}

// Apply merges the patch into a copy of the user and returns it.
func (p UserPatch) Apply(u User) User {
	merged := u.Clone()
	if p.Username != nil {
		merged.Username = *p.Username
	}
	if p.Email != nil {
		merged.Email = *p.Email
	}
	if p.Avatar != nil {
		merged.Avatar = *p.Avatar
	}
	if p.Bio != nil {
		merged.Bio = *p.Bio
	}
	return merged
}

// Credential is the persisted registration record: the public user profile
// plus the password hash. The hash never leaves the credential list; the
// current-user record persists only the embedded User.
type Credential struct {
	User         User   `json:"user"`
	PasswordHash string `json:"passwordHash"`
}
