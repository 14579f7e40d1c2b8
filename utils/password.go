package utils

import "golang.org/x/crypto/bcrypt"

// Registration is interactive, so the hash cost stays at bcrypt's default
// rather than something that makes the register form feel slow.
const passwordHashCost = bcrypt.DefaultCost

// HashPassword derives the stored credential for a new or changed password.
// Only the hash ever reaches the users table.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the submitted password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
