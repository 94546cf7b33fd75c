package utils

import (
	"log"
	"time"
)

// LoadLocation resolves a time zone name, falling back to UTC for an empty name.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Fatal("Failed to load location", err)
	}
	return loc
}

// NowIn returns a clock reporting the current time in loc.
func NowIn(loc *time.Location) func() time.Time {
	return func() time.Time {
		return time.Now().In(loc)
	}
}
