package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher is the default password hasher: salted and deliberately slow.
type BcryptHasher struct {
	// Cost of 0 falls back to DefaultBcryptCost.
	Cost int
}

// DefaultBcryptCost trades ~1s of hashing time for resistance to offline
// cracking.
var DefaultBcryptCost = 14

var _ PasswordHasher = BcryptHasher{}

// Hash will generate a password hash
func (h BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	cost := h.Cost
	if cost == 0 {
		cost = DefaultBcryptCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(digest), err
}

// Compare will validate the given cleartext password matches the hashed
// password
func (h BcryptHasher) Compare(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatchedLoginPassword
		}
		return err
	}
	return nil
}

// SHA256Hasher reproduces the legacy platform digests: an unsalted hex
// SHA-256 of the plaintext. Deterministic, so the same input always yields a
// byte-identical digest. Fast unsalted hashes are a known weakness; use it
// only where bit-for-bit parity with existing records is required and migrate
// rows to bcrypt as users log in.
type SHA256Hasher struct{}

var _ PasswordHasher = SHA256Hasher{}

func (SHA256Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Compare(password, hash string) error {
	digest, err := h.Hash(password)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(digest), []byte(hash)) != 1 {
		return ErrMismatchedLoginPassword
	}
	return nil
}

// HashPassword hashes with the default bcrypt hasher.
func HashPassword(password string) (string, error) {
	return BcryptHasher{}.Hash(password)
}

// ComparePasswordAndHash compares with the default bcrypt hasher.
func ComparePasswordAndHash(password, hash string) error {
	return BcryptHasher{}.Compare(password, hash)
}

// RandomPasswordHash is a temporary password
func RandomPasswordHash() string {
	pwd := uuid.New()

	h, err := HashPassword(pwd.String())
	if err != nil {
		return RandomPasswordHash()
	}

	return h
}
