package models

// User is the ephemeral session identity. IsAdmin is derived from the
// configured administrator email at login, it is not a credential.
type User struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	IsAdmin bool   `json:"isAdmin"`
}
