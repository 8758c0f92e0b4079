package state

import (
	"courtside/internal/domain"
	"courtside/internal/ui/input/types"
)

// PlayerRef identifies the player a prediction is requested for
type PlayerRef struct {
	ID   int
	Name string
}

// AppState contains the UI state that is not owned by a loader
type AppState struct {
	// Navigation
	Screen types.Screen

	// Players screen
	SearchQuery    string     // query the players list is filtered by
	SelectedPlayer *PlayerRef // row under the cursor

	// Teams screen
	Conference domain.Conference

	// Prediction screens
	GameID        string     // game of the outcome prediction
	PlayerGameID  string     // game of the player prediction
	PredictedFor  *PlayerRef // player the current matrix belongs to
	HomeName      string
	AwayName      string
	ShowPositions bool

	// Status bar
	StatusMessage string
	StatusIsError bool
	LastFailure   string // "<view>: <error>" of the most recent failure
	FailureCount  int
}

// NewAppState creates a new application state
func NewAppState(conference domain.Conference) *AppState {
	if conference != domain.ConferenceWest {
		conference = domain.ConferenceEast
	}
	return &AppState{
		Screen:        types.ScreenPlayers,
		Conference:    conference,
		HomeName:      "Home Team",
		AwayName:      "Away Team",
		ShowPositions: true,
	}
}

// StepScreen moves step screens forward (or back when negative), wrapping around
func (s *AppState) StepScreen(step int) {
	n := len(types.Screens)
	idx := (int(s.Screen) + step) % n
	if idx < 0 {
		idx += n
	}
	s.Screen = types.Screens[idx]
}

// SetStatus shows an informational message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// RecordFailure shows a failure in the status bar and remembers it
func (s *AppState) RecordFailure(view string, err error) {
	s.FailureCount++
	s.LastFailure = view + ": " + err.Error()
	s.StatusMessage = s.LastFailure
	s.StatusIsError = true
}

// ClearStatus clears the status message but keeps the last failure
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
