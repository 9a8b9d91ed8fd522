package auth

import "strconv"

// UserIdentity adapts a User into the Identity interface for token issuance.
type UserIdentity struct {
	user *User
}

// NewIdentityFromUser returns an Identity adapter for the provided user.
func NewIdentityFromUser(user *User) Identity {
	if user == nil {
		return nil
	}
	return UserIdentity{user: user}
}

// ID returns the user's numeric id as a decimal string, the form it takes in
// the token's sub claim.
func (u UserIdentity) ID() string {
	if u.user == nil {
		return ""
	}
	return strconv.FormatInt(u.user.ID, 10)
}

// Login returns the user's unique login.
func (u UserIdentity) Login() string {
	if u.user == nil {
		return ""
	}
	return u.user.Login
}

// Email returns the user's email address.
func (u UserIdentity) Email() string {
	if u.user == nil {
		return ""
	}
	return u.user.Email
}

// Role returns the user's role as a string.
func (u UserIdentity) Role() string {
	if u.user == nil {
		return ""
	}
	return string(u.user.Role)
}

var _ Identity = UserIdentity{}
