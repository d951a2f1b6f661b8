package services

import "time"

// Option configures a ToolboxService.
type Option func(*ToolboxService)

// WithRandomizer sets the randomness source shared by draws and partitions.
// rnd is shared by all sessions and must be safe for concurrent use when
// sessions are served concurrently.
func WithRandomizer(rnd Randomizer) Option {
	return func(s *ToolboxService) {
		if rnd != nil {
			s.rnd = rnd
		}
	}
}

// WithIDFunc sets the id generator for participants and groups.
func WithIDFunc(newID IDFunc) Option {
	return func(s *ToolboxService) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithClock sets the time source used for activity tracking and draw times.
func WithClock(now func() time.Time) Option {
	return func(s *ToolboxService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithNamer enables AI team naming through namer.
func WithNamer(namer GroupNamer) Option {
	return func(s *ToolboxService) {
		s.namer = namer
	}
}

// WithSessionTTL sets how long an idle session survives CleanUpInactiveSessions.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *ToolboxService) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithNamingTimeout bounds each naming request.
func WithNamingTimeout(timeout time.Duration) Option {
	return func(s *ToolboxService) {
		if timeout > 0 {
			s.namingTimeout = timeout
		}
	}
}
