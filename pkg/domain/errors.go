package domain

import "fmt"

// ErrNotFound is returned when a record referenced by ID does not exist.
type ErrNotFound struct {
	Entity EntityType
	ID     string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// ErrAlreadyExists is returned when a create would overwrite an existing ID.
type ErrAlreadyExists struct {
	Entity EntityType
	ID     string
}

func (e ErrAlreadyExists) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Entity, e.ID)
}

// RuleViolationError is returned when blocking violations are present.
type RuleViolationError struct {
	Result Result
}

func (e RuleViolationError) Error() string {
	for _, v := range e.Result.Violations {
		if v.Severity == SeverityBlock {
			return fmt.Sprintf("transaction blocked by rules: %s: %s", v.Rule, v.Message)
		}
	}
	return "transaction blocked by rules"
}
