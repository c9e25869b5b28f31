package utils

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// HashPassword returns the bcrypt hash of password using cost rounds.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches hash. Malformed hashes never match.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var dummyHashes sync.Map

// DummyHash returns a hash of a random secret at the given cost, computed once per cost.
// Comparing against it takes as long as comparing against a real hash and never matches.
func DummyHash(cost int) string {
	if hash, ok := dummyHashes.Load(cost); ok {
		return hash.(string)
	}
	hash, err := HashPassword(uuid.NewString(), cost)
	if err != nil {
		return ""
	}
	actual, _ := dummyHashes.LoadOrStore(cost, hash)
	return actual.(string)
}
