// Package id generates the opaque public identifiers the API exposes.
// Clients, properties and rentals each carry one alongside their numeric
// primary key so database row IDs never appear in URLs.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns 16 random bytes as a 32-character lowercase hex string,
// with no separators or prefix.
func NewID32() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
