package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeGameID
	ModePlayerGameID
)

// Screen is one of the top-level views
type Screen int

const (
	ScreenPlayers Screen = iota
	ScreenTeams
	ScreenGame
	ScreenPlayer
)

// Screens lists every screen in tab order
var Screens = []Screen{ScreenPlayers, ScreenTeams, ScreenGame, ScreenPlayer}

func (s Screen) String() string {
	switch s {
	case ScreenPlayers:
		return "Players"
	case ScreenTeams:
		return "Teams"
	case ScreenGame:
		return "Game"
	case ScreenPlayer:
		return "Player"
	default:
		return "Unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentScreen() Screen
	HasSelectedPlayer() bool
	PlayersLoading() bool
	SearchQuery() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
