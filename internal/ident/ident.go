// Package ident generates random identifiers for unique naming.
//
// Ownership boundary:
// - entropy-backed identifier generation
//
// Identifiers carry no structure and no ordering; uniqueness is
// probabilistic, there is no registry of issued values.
package ident

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

const (
	// RawLen is the number of random bytes behind one identifier.
	RawLen = 16
	// EncodedLen is the length of a generated identifier string.
	EncodedLen = 2 * RawLen
)

var ErrEntropyUnavailable = errors.New("ident: entropy source unavailable")

// Generate returns a fresh identifier: RawLen bytes from the OS entropy
// source, lowercase hex, no separators. There is no weaker fallback; if
// the source cannot be read the caller gets ErrEntropyUnavailable.
func Generate() (string, error) {
	var raw [RawLen]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return hex.EncodeToString(raw[:]), nil
}
