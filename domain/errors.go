package domain

import "errors"

// Store failures never cross the repository boundary in their native form;
// they are re-raised as one of these kinds with the driver detail kept in
// the log only.
var (
	ErrRetrievalFailed = errors.New("failed to retrieve students")
	ErrCreationFailed  = errors.New("failed to create student")
	ErrUpdateFailed    = errors.New("failed to update student")
	ErrDeletionFailed  = errors.New("failed to delete student")

	ErrDuplicatePhoneNumber = errors.New("phone number already registered")
	ErrInvalidPhoneNumber   = errors.New("invalid phone number")
)
