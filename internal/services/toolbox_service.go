package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/logger"
	"hrtoolbox/internal/models"
)

const (
	defaultSessionTTL    = time.Hour
	defaultNamingTimeout = 30 * time.Second
)

// ToolboxSession holds the data for a single user/tenant.
// mu serializes every operation on the session.
type ToolboxSession struct {
	mu sync.Mutex

	Registry *Registry
	Draw     *DrawEngine
	Groups   []models.Group

	// generation increments every time Groups is replaced by a partition.
	generation uint64
	naming     bool

	LastActivity time.Time
}

// SessionSnapshot is a consistent, caller-owned copy of a session's state.
type SessionSnapshot struct {
	Participants  []models.Participant
	NameCounts    map[string]int
	HasDuplicates bool
	Winners       []models.WinnerRecord
	AllowRepeats  bool
	Remaining     int
	Groups        []models.Group
	Naming        bool
}

// ToolboxService manages multiple toolbox sessions.
type ToolboxService struct {
	mu       sync.RWMutex
	sessions map[string]*ToolboxSession // Key: tenantID

	rnd           Randomizer
	newID         IDFunc
	now           func() time.Time
	namer         GroupNamer
	sessionTTL    time.Duration
	namingTimeout time.Duration
}

// NewToolboxService creates and initializes a new ToolboxService.
func NewToolboxService(opts ...Option) *ToolboxService {
	s := &ToolboxService{
		sessions:      make(map[string]*ToolboxSession),
		rnd:           SystemRandom(),
		newID:         NewUUID,
		now:           time.Now,
		sessionTTL:    defaultSessionTTL,
		namingTimeout: defaultNamingTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// getSession returns a session for a tenant, creating one if it doesn't exist.
func (s *ToolboxService) getSession(tenantID string) *ToolboxSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[tenantID]
	if !exists {
		session = &ToolboxSession{
			Registry: NewRegistry(s.newID),
			Draw:     NewDrawEngine(s.rnd, s.now),
			Groups:   make([]models.Group, 0),
		}
		s.sessions[tenantID] = session
	}
	session.LastActivity = s.now()
	return session
}

func (s *ToolboxService) withSession(tenantID string, fn func(*ToolboxSession)) {
	session := s.getSession(tenantID)
	session.mu.Lock()
	defer session.mu.Unlock()
	fn(session)
}

// NamingEnabled reports whether a GroupNamer is configured.
func (s *ToolboxService) NamingEnabled() bool {
	return s.namer != nil
}

// Snapshot returns a copy of everything the pages display for a tenant.
func (s *ToolboxService) Snapshot(tenantID string) SessionSnapshot {
	var snap SessionSnapshot
	s.withSession(tenantID, func(session *ToolboxSession) {
		participants := session.Registry.Participants()
		snap = SessionSnapshot{
			Participants:  participants,
			NameCounts:    session.Registry.DuplicateNameCounts(),
			HasDuplicates: session.Registry.HasDuplicates(),
			Winners:       session.Draw.Winners(),
			AllowRepeats:  session.Draw.AllowRepeats(),
			Remaining:     len(session.Draw.Candidates(participants)),
			Groups:        copyGroups(session.Groups),
			Naming:        session.naming,
		}
	})
	return snap
}

// GetParticipants returns the participants for a specific tenant.
func (s *ToolboxService) GetParticipants(tenantID string) []models.Participant {
	var out []models.Participant
	s.withSession(tenantID, func(session *ToolboxSession) {
		out = session.Registry.Participants()
	})
	return out
}

// AddParticipants adds one participant per non-blank name.
func (s *ToolboxService) AddParticipants(tenantID string, names []string) []models.Participant {
	var added []models.Participant
	s.withSession(tenantID, func(session *ToolboxSession) {
		added = session.Registry.Add(names)
	})
	return added
}

// ImportText adds names pasted as newline- or comma-separated text.
func (s *ToolboxService) ImportText(tenantID, text string) ImportResult {
	names, dropped := ParseBulkText(text)
	return s.importNames(tenantID, names, dropped)
}

// ImportFile adds names from uploaded file content, one per line.
func (s *ToolboxService) ImportFile(tenantID, text string) ImportResult {
	names, dropped := ParseFileText(text)
	return s.importNames(tenantID, names, dropped)
}

// LoadDemo appends the demo roster.
func (s *ToolboxService) LoadDemo(tenantID string) ImportResult {
	return s.importNames(tenantID, DemoRoster, 0)
}

func (s *ToolboxService) importNames(tenantID string, names []string, dropped int) ImportResult {
	if dropped > 0 {
		logger.Infof("Skipping %d whitespace-only import records for tenant: %s", dropped, tenantID)
	}
	return ImportResult{
		Added:   s.AddParticipants(tenantID, names),
		Dropped: dropped,
	}
}

// RemoveParticipant removes a participant by id. Unknown ids are ignored.
func (s *ToolboxService) RemoveParticipant(tenantID, id string) {
	s.withSession(tenantID, func(session *ToolboxSession) {
		session.Registry.Remove(id)
	})
}

// ClearParticipants empties the roster.
func (s *ToolboxService) ClearParticipants(tenantID string) {
	s.withSession(tenantID, func(session *ToolboxSession) {
		session.Registry.Clear()
	})
}

// Deduplicate keeps the first participant of every name and returns how
// many were removed.
func (s *ToolboxService) Deduplicate(tenantID string) int {
	var removed int
	s.withSession(tenantID, func(session *ToolboxSession) {
		removed = session.Registry.Deduplicate()
	})
	return removed
}

// DuplicateNameCounts returns how often each name occurs on the roster.
func (s *ToolboxService) DuplicateNameCounts(tenantID string) map[string]int {
	var counts map[string]int
	s.withSession(tenantID, func(session *ToolboxSession) {
		counts = session.Registry.DuplicateNameCounts()
	})
	return counts
}

// Draw performs one lucky draw for a specific tenant.
func (s *ToolboxService) Draw(tenantID string) (models.WinnerRecord, error) {
	var (
		record models.WinnerRecord
		err    error
	)
	s.withSession(tenantID, func(session *ToolboxSession) {
		record, err = session.Draw.Draw(session.Registry.Participants())
	})
	return record, err
}

// GetEligibleParticipants returns the participants that can win the next draw.
func (s *ToolboxService) GetEligibleParticipants(tenantID string) []models.Participant {
	var out []models.Participant
	s.withSession(tenantID, func(session *ToolboxSession) {
		out = session.Draw.Candidates(session.Registry.Participants())
	})
	return out
}

// GetWinners returns the winner history, most recent first.
func (s *ToolboxService) GetWinners(tenantID string) []models.WinnerRecord {
	var out []models.WinnerRecord
	s.withSession(tenantID, func(session *ToolboxSession) {
		out = session.Draw.Winners()
	})
	return out
}

// SetAllowRepeats toggles whether previous winners stay eligible.
func (s *ToolboxService) SetAllowRepeats(tenantID string, allow bool) {
	s.withSession(tenantID, func(session *ToolboxSession) {
		session.Draw.SetAllowRepeats(allow)
	})
}

// ResetWinners clears the winner history.
func (s *ToolboxService) ResetWinners(tenantID string) {
	s.withSession(tenantID, func(session *ToolboxSession) {
		session.Draw.Reset()
	})
}

// GenerateGroups replaces the tenant's groups with a fresh random partition.
// On error the previous groups are kept.
func (s *ToolboxService) GenerateGroups(tenantID string, groupSize int) ([]models.Group, error) {
	var (
		groups []models.Group
		err    error
	)
	s.withSession(tenantID, func(session *ToolboxSession) {
		p := NewPartitioner(s.rnd, s.newID)
		groups, err = p.Partition(session.Registry.Participants(), groupSize)
		if err != nil {
			return
		}
		session.Groups = groups
		session.generation++
		groups = copyGroups(groups)
	})
	return groups, err
}

// GetGroups returns the tenant's current groups.
func (s *ToolboxService) GetGroups(tenantID string) []models.Group {
	var out []models.Group
	s.withSession(tenantID, func(session *ToolboxSession) {
		out = copyGroups(session.Groups)
	})
	return out
}

// NameGroups asks the configured GroupNamer for team names and applies
// them. Only one request per tenant runs at a time. On any failure the
// groups are left as they were.
func (s *ToolboxService) NameGroups(ctx context.Context, tenantID string) ([]models.Group, error) {
	if s.namer == nil {
		return nil, models.ErrNamingUnavailable
	}

	session := s.getSession(tenantID)
	session.mu.Lock()
	if len(session.Groups) == 0 {
		session.mu.Unlock()
		return nil, models.ErrNoGroups
	}
	if session.naming {
		session.mu.Unlock()
		return nil, models.ErrNamingInFlight
	}
	session.naming = true
	groups := copyGroups(session.Groups)
	generation := session.generation
	session.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.namingTimeout)
	defer cancel()

	named, err := s.suggest(ctx, groups)

	session.mu.Lock()
	defer session.mu.Unlock()
	session.naming = false
	if err != nil {
		logger.Errorf("Team naming failed for tenant %s: %v", tenantID, err)
		return nil, err
	}
	if session.generation != generation {
		return nil, models.ErrStaleGroups
	}
	session.Groups = named
	return copyGroups(named), nil
}

func (s *ToolboxService) suggest(ctx context.Context, groups []models.Group) ([]models.Group, error) {
	names, err := s.namer.SuggestNames(ctx, NewNamingRequest(groups))
	if err != nil {
		if errors.Is(err, models.ErrNamingService) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", models.ErrNamingService, err)
	}
	named, err := ApplyTeamNames(groups, names)
	if err != nil {
		return nil, err
	}
	return named, nil
}

// ExportGroupsCSV writes the tenant's groups as CSV.
func (s *ToolboxService) ExportGroupsCSV(tenantID string, w io.Writer) error {
	return WriteGroupsCSV(w, s.GetGroups(tenantID))
}

// GroupsText returns the tenant's groups formatted for the clipboard.
func (s *ToolboxService) GroupsText(tenantID string) string {
	return ClipboardText(s.GetGroups(tenantID))
}

// CleanUpInactiveSessions removes sessions that have been idle longer than
// the session TTL.
func (s *ToolboxService) CleanUpInactiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := s.now()
	for tenantID, session := range s.sessions {
		if now.Sub(session.LastActivity) > s.sessionTTL {
			logger.Infof("Removing inactive session for tenant: %s", tenantID)
			delete(s.sessions, tenantID)
			removed++
		}
	}
	return removed
}

// ClearSession removes all data associated with a specific tenant.
func (s *ToolboxService) ClearSession(tenantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tenantID)
	logger.Infof("Cleared session for tenant: %s", tenantID)
}

// SessionCount returns the number of live sessions.
func (s *ToolboxService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func copyGroups(groups []models.Group) []models.Group {
	out := make([]models.Group, len(groups))
	for i, g := range groups {
		members := make([]models.Participant, len(g.Members))
		copy(members, g.Members)
		g.Members = members
		out[i] = g
	}
	return out
}
