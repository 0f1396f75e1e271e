package entities

// User is a credential-store record. PasswordHash holds a bcrypt digest;
// the clear secret is never stored or returned.
type User struct {
	ID           uint
	Username     string
	PasswordHash string
	Role         string
}
