// Package tz resolves IANA timezone names to locations. Date buckets and the
// reporting window are computed relative to the configured location, so "start
// of today" matches what the operator's users see.
package tz

import "time"

// Load returns the location for name. An empty name means UTC.
func Load(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}
