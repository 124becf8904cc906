package scheduler

import "errors"

var (
	// ErrQueueFull is returned when too many manual runs are waiting.
	ErrQueueFull = errors.New("run queue is full")
	// ErrAlreadyQueued is returned when manual run of search is already waiting.
	ErrAlreadyQueued = errors.New("search run is already queued")
	// ErrInvalidSearchID is returned when search ID is not positive.
	ErrInvalidSearchID = errors.New("invalid search ID")
)
