package common

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// HashString returns the lowercase-hex SHA3-256 digest of s. This is the
// single hash primitive used across Address, Transaction and Block.
func HashString(s string) string {
	sum := sha3.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SatisfiesDifficulty reports whether hash begins with at least
// `difficulty` leading hex '0' characters (leading zero nibbles).
func SatisfiesDifficulty(hash string, difficulty int) bool {
	if difficulty <= 0 {
		return true
	}
	if len(hash) < difficulty {
		return false
	}
	return strings.Count(hash[:difficulty], "0") == difficulty
}
