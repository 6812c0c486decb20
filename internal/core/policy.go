package core

import (
	"fmt"
	"strings"
)

// MissingPolicy decides what Save* does when the record's ID is unknown.
type MissingPolicy string

// Supported policies.
const (
	// MissingIgnore leaves the store untouched and reports found=false.
	MissingIgnore MissingPolicy = "ignore"
	// MissingError fails with domain.ErrNotFound.
	MissingError MissingPolicy = "error"
	// MissingInsert creates the record.
	MissingInsert MissingPolicy = "insert"
)

// ParseMissingPolicy converts a configuration value into a MissingPolicy.
// Empty input selects MissingIgnore.
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch p := MissingPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return MissingIgnore, nil
	case MissingIgnore, MissingError, MissingInsert:
		return p, nil
	default:
		return "", fmt.Errorf("unknown missing-record policy %q", s)
	}
}
