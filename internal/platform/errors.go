package platform

import (
	"errors"
)

var (
	// ErrSearchNotFound is returned when saved search with provided ID doesn't exist.
	ErrSearchNotFound = errors.New("search not found")
	// ErrListingNotFound is returned when listing with provided external ID doesn't exist.
	ErrListingNotFound = errors.New("listing not found")
	// ErrRunNotFound is returned when search has no runs yet.
	ErrRunNotFound = errors.New("run not found")
)
