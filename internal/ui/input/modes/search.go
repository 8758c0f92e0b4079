package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"courtside/internal/ui/input/types"
)

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search players: ", ti),
	}
}

// GameIDMode asks for the game a prediction is about
type GameIDMode struct {
	TextInputMode
}

func NewGameIDMode(ti *textinput.Model) *GameIDMode {
	return &GameIDMode{
		TextInputMode: NewTextInputMode(types.ModeGameID, "game", "Game ID: ", ti),
	}
}

func NewPlayerGameIDMode(ti *textinput.Model) *GameIDMode {
	return &GameIDMode{
		TextInputMode: NewTextInputMode(types.ModePlayerGameID, "player-game", "Game ID for player: ", ti),
	}
}
