package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	PasswordSchemeBcrypt    = "bcrypt"
	PasswordSchemePlaintext = "plaintext"
)

// CredentialVerifier turns a password into its stored form and checks candidates against it.
type CredentialVerifier interface {
	Hash(password string) (string, error)
	Matches(stored, candidate string) bool
}

// NewCredentialVerifier returns the verifier for the given scheme.
func NewCredentialVerifier(scheme string) (CredentialVerifier, error) {
	switch scheme {
	case "", PasswordSchemeBcrypt:
		return BcryptVerifier{Cost: bcrypt.DefaultCost}, nil
	case PasswordSchemePlaintext:
		return PlaintextVerifier{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// BcryptVerifier bcrypts a SHA-256 digest of the password, so passwords of any
// length are accepted and bytes past bcrypt's 72-byte input limit still count.
type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(prehash(password), v.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (v BcryptVerifier) Matches(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), prehash(candidate)) == nil
}

// prehash returns the base64 SHA-256 digest of password (44 bytes, no NULs).
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// PlaintextVerifier stores passwords as given. Kept for databases populated
// before hashing was introduced.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Hash(password string) (string, error) {
	return password, nil
}

func (PlaintextVerifier) Matches(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
