// Package id provides the numeric record identifier shared by all collections.
// Identifiers are minted by the store from a per-collection counter starting at 1.
package id

import (
	"fmt"
	"strconv"
)

// ID is a record identifier, unique within its collection.
type ID = int64

// First is the identifier assigned to the first record of every collection.
const First ID = 1

// Parse converts string to ID with validation.
// Only positive identifiers are valid.
func Parse(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse id %q: %w", s, err)
	}
	if v < First {
		return 0, fmt.Errorf("parse id %q: must be positive", s)
	}
	return v, nil
}

// IsNil checks if ID is zero-value (not yet assigned by the store).
func IsNil(v ID) bool {
	return v == 0
}
