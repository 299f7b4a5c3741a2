// Package hash produces the one-way password digests stored on user records.
//
// Digests are the lowercase hex encoding of a BLAKE2b-256 sum, so every
// stored password is exactly DigestLen characters long.
package hash

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// DigestLen is the length of a hex-encoded digest.
const DigestLen = blake2b.Size256 * 2

// Digest returns the hex digest of password.
func Digest(password string) string {
	sum := blake2b.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Matches reports whether password hashes to digest.
func Matches(password, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(Digest(password)), []byte(digest)) == 1
}
