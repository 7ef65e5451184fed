package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is compared against when a username is unknown so that both
// login failure paths spend one bcrypt comparison.
var dummyHash = mustHash("not-a-real-password")

func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	return string(b), err
}

func VerifyPassword(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

// BurnCompare runs a comparison whose result is discarded.
func BurnCompare(plain string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plain))
}

func mustHash(p string) []byte {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return b
}
