package logic

import (
	"sort"
	"strings"
	"sync"

	"courtside/internal/domain"
)

// MemoryTeamStore is an in-memory implementation of TeamStore
type MemoryTeamStore struct {
	mu    sync.RWMutex
	teams map[int]*domain.Team
}

// NewMemoryTeamStore creates a new memory-based team store
func NewMemoryTeamStore() *MemoryTeamStore {
	return &MemoryTeamStore{
		teams: make(map[int]*domain.Team),
	}
}

func (s *MemoryTeamStore) GetTeam(id int) *domain.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.teams[id]
}

func (s *MemoryTeamStore) GetAllTeams() map[int]*domain.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[int]*domain.Team, len(s.teams))
	for k, v := range s.teams {
		result[k] = v
	}
	return result
}

// ByConference returns the teams of one conference sorted by name
func (s *MemoryTeamStore) ByConference(conference domain.Conference) []*domain.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Team
	for _, t := range s.teams {
		if t.Conference == conference {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].FullName) < strings.ToLower(result[j].FullName)
	})
	return result
}

// ReplaceAll swaps the stored teams for a fresh list
func (s *MemoryTeamStore) ReplaceAll(teams []domain.Team) {
	fresh := make(map[int]*domain.Team, len(teams))
	for i := range teams {
		t := teams[i]
		fresh[t.ID] = &t
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = fresh
}

func (s *MemoryTeamStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.teams)
}
