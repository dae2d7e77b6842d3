package domain

// Credential is a reference login record for a role. The demo ships exactly
// two of these; a real deployment would back them with an identity store.
type Credential struct {
	Role         Role
	Email        string
	PasswordHash string // bcrypt encoded
}
