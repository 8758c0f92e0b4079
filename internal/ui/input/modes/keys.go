package modes

import (
	"github.com/charmbracelet/bubbles/key"

	"courtside/internal/ui/input/types"
)

// KeyMap holds the normal-mode bindings. It also feeds the footer help.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	NextScreen key.Binding
	PrevScreen key.Binding
	Players    key.Binding
	Teams      key.Binding
	Game       key.Binding
	Player     key.Binding
	LoadMore   key.Binding
	Search     key.Binding
	East       key.Binding
	West       key.Binding
	Reload     key.Binding
	GameID     key.Binding
	Predict    key.Binding
	Clear      key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Top:        key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "top")),
		Bottom:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "bottom")),
		NextScreen: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next screen")),
		PrevScreen: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous screen")),
		Players:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "players")),
		Teams:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "teams")),
		Game:       key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "game")),
		Player:     key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "player")),
		LoadMore:   key.NewBinding(key.WithKeys("m", "enter"), key.WithHelp("m", "load more")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		East:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "eastern")),
		West:       key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "western")),
		Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		GameID:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "game id")),
		Predict:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "predict player")),
		Clear:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextScreen, k.LoadMore, k.Search, k.GameID, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.NextScreen, k.PrevScreen, k.Players, k.Teams, k.Game, k.Player},
		{k.LoadMore, k.Search, k.Predict},
		{k.East, k.West, k.Reload},
		{k.GameID, k.Clear},
		{k.Help, k.Quit},
	}
}

// ScreenHelp returns the bindings worth showing in the footer of a screen
func (k KeyMap) ScreenHelp(screen types.Screen) []key.Binding {
	switch screen {
	case types.ScreenPlayers:
		return []key.Binding{k.LoadMore, k.Search, k.Predict, k.NextScreen, k.Help, k.Quit}
	case types.ScreenTeams:
		return []key.Binding{k.East, k.West, k.Reload, k.NextScreen, k.Help, k.Quit}
	default:
		return []key.Binding{k.GameID, k.Clear, k.NextScreen, k.Help, k.Quit}
	}
}
