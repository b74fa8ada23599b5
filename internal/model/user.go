package model

// User is a provisioned dashboard account. Accounts are created by the
// provisioning CLI only; no HTTP endpoint reads or writes them.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash, never serialized
}
