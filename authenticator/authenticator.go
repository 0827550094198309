package authenticator

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/civicgo/complaint-portal/config"
)

// Verifier checks an administrator credential pair.
type Verifier interface {
	Verify(username, password string) bool
}

// StaticVerifier compares against a fixed username/password pair.
// Intended as the default/test credential backend.
type StaticVerifier struct {
	Username string
	Password string
}

// Verify compares both values in constant time
func (v *StaticVerifier) Verify(username, password string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(v.Username)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(v.Password)) == 1
	return userMatch && passMatch
}

// BcryptVerifier compares the password against a bcrypt hash.
type BcryptVerifier struct {
	Username     string
	PasswordHash string
}

// Verify checks the username and the bcrypt password hash
func (v *BcryptVerifier) Verify(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(v.Username)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(v.PasswordHash), []byte(password)) == nil
}

// NewVerifier builds the credential verifier from config. A configured
// bcrypt hash takes precedence over the plaintext password.
func NewVerifier(cfg *config.Config) Verifier {
	if cfg.AdminPasswordHash != "" {
		return &BcryptVerifier{
			Username:     cfg.AdminUsername,
			PasswordHash: cfg.AdminPasswordHash,
		}
	}
	return &StaticVerifier{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	}
}
