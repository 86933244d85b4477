package domain

import (
	"errors"
	"strings"
)

var (
	ErrConflict         = errors.New("record already exists")
	ErrNotFound         = errors.New("entry not found")
	ErrValidation       = errors.New("invalid registration data")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// DuplicateError is a Conflict carrying one reason per violated rule.
type DuplicateError struct {
	Reasons []string
}

func NewDuplicateError(rules ...UniqueRule) *DuplicateError {
	reasons := make([]string, 0, len(rules))
	for _, rule := range rules {
		reasons = append(reasons, rule.Reason())
	}
	return &DuplicateError{Reasons: reasons}
}

func (e *DuplicateError) Error() string {
	if len(e.Reasons) == 0 {
		return ErrConflict.Error()
	}
	return strings.Join(e.Reasons, ", ")
}

func (e *DuplicateError) Unwrap() error {
	return ErrConflict
}

type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
