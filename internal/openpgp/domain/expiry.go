package domain

import "time"

// NeverExpires is the expires value that disables expiration.
const NeverExpires int64 = 0

// ExpiryFromSeconds computes the absolute expiration of a validity window
// of secs seconds starting at from. Zero or negative means no expiration;
// negative values are rejected by parameter validation before this runs.
func ExpiryFromSeconds(from time.Time, secs int64) *time.Time {
	if secs <= 0 {
		return nil
	}
	t := from.Add(time.Duration(secs) * time.Second)
	return &t
}
