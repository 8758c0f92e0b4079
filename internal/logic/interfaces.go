package logic

import "courtside/internal/domain"

// TeamStore provides access to team data
type TeamStore interface {
	GetTeam(id int) *domain.Team
	GetAllTeams() map[int]*domain.Team
	ByConference(conference domain.Conference) []*domain.Team
	ReplaceAll(teams []domain.Team)
	Len() int
}
