package fetcher

import "errors"

var (
	// ErrFetchExhausted is returned when page couldn't be fetched within allowed attempts.
	ErrFetchExhausted = errors.New("fetch attempts exhausted")
	// ErrRateLimited is returned when marketplace responded with 429 Too Many Requests.
	ErrRateLimited = errors.New("rate limited")
	// ErrStatusNotOK is returned when http response had status different than 200 OK.
	ErrStatusNotOK = errors.New("response status is not 200 OK")
)
