// Package service defines interfaces for stateless domain logic.
package service

// SecretHasher hashes account passwords and question flags.
// Implementations must salt every call, so equal plaintexts hash differently.
type SecretHasher interface {
	// Hash generates a salted one-way hash of plaintext.
	Hash(plaintext string) (string, error)

	// Check reports whether plaintext matches hash.
	Check(plaintext, hash string) bool
}
