package models

import "errors"

var (
	// ErrEmptyPool is returned when no eligible candidate is left to draw.
	ErrEmptyPool = errors.New("no eligible participants left to draw")
	// ErrInvalidGroupSize is returned when the requested group size is below 1.
	ErrInvalidGroupSize = errors.New("group size must be at least 1")
	// ErrNamingService is returned when the team naming service fails or
	// answers with something that cannot be used.
	ErrNamingService = errors.New("team naming service failed")
	// ErrNamingInFlight is returned when a naming request is already running
	// for the session.
	ErrNamingInFlight = errors.New("team naming already in progress")
	// ErrNamingUnavailable is returned when no naming service is configured.
	ErrNamingUnavailable = errors.New("team naming is not configured")
	// ErrStaleGroups is returned when the groups were regenerated while a
	// naming request was running.
	ErrStaleGroups = errors.New("groups changed while naming was in progress")
	// ErrNoGroups is returned when an operation needs groups but none exist.
	ErrNoGroups = errors.New("no groups have been generated")
)
