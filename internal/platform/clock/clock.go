package clock

import "time"

// System provides current UTC time.
type System struct{}

// Now returns current UTC time.
func (System) Now() time.Time {
	return time.Now().UTC()
}
