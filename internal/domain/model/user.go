package model

// User is a stored user record. It is the source of truth for login.
//
// The password is stored in plaintext: hardening credential storage is an
// explicit non-goal of this demonstration system.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}
