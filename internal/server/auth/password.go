// Package auth contains the cryptographic building blocks of the auth flow:
// bcrypt password hashing and HS256 token issuing/verification.
package auth

import "golang.org/x/crypto/bcrypt"

// BcryptCost is the work factor for password digests. Deliberately expensive
// to slow down offline brute force.
const BcryptCost = 10

// HashPassword produces a salted bcrypt digest of the plaintext. The salt is
// embedded in the digest, so two calls with the same input yield different
// digests.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = BcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored digest.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
