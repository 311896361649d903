package auth

import "crypto/subtle"

// Verifier checks a username/password pair. The token issuer only depends
// on this capability, so the fixed pair below can be swapped for a real
// account store without touching any token logic.
type Verifier interface {
	Verify(username, password string) bool
}

// StaticCredentials is the single operator account.
type StaticCredentials struct {
	Username string
	Password string
}

func NewStaticCredentials() StaticCredentials {
	return StaticCredentials{
		Username: "admin@gmail.com",
		Password: "password123",
	}
}

func (c StaticCredentials) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	return userOK && passOK
}
