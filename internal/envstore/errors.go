package envstore

import "errors"

var (
	// ErrEmptyKey is returned when a key is empty after trimming.
	ErrEmptyKey = errors.New("key cannot be empty")

	// ErrKeyExists is returned by Add for a key that is already present.
	ErrKeyExists = errors.New("key already exists")

	// ErrKeyNotFound is returned by Edit and Delete for an unknown key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrDeleteCancelled is returned by Delete when the confirmation token is not "y".
	ErrDeleteCancelled = errors.New("deletion cancelled")
)

// IsUserError reports whether err is a recoverable input error that leaves the mapping untouched.
func IsUserError(err error) bool {
	return errors.Is(err, ErrEmptyKey) ||
		errors.Is(err, ErrKeyExists) ||
		errors.Is(err, ErrKeyNotFound) ||
		errors.Is(err, ErrDeleteCancelled)
}
