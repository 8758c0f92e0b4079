package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"courtside/internal/domain"
	"courtside/internal/ui/input/types"
)

type NormalMode struct {
	keys KeyMap
}

func NewNormalMode(keys KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys

	// Global keys first
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, k.NextScreen):
		return []types.Action{types.SwitchScreenAction{Step: 1}}, true
	case key.Matches(msg, k.PrevScreen):
		return []types.Action{types.SwitchScreenAction{Step: -1}}, true
	case key.Matches(msg, k.Players):
		return []types.Action{types.SwitchScreenAction{Screen: types.ScreenPlayers}}, true
	case key.Matches(msg, k.Teams):
		return []types.Action{types.SwitchScreenAction{Screen: types.ScreenTeams}}, true
	case key.Matches(msg, k.Game):
		return []types.Action{types.SwitchScreenAction{Screen: types.ScreenGame}}, true
	case key.Matches(msg, k.Player):
		return []types.Action{types.SwitchScreenAction{Screen: types.ScreenPlayer}}, true
	}

	switch ctx.CurrentScreen() {
	case types.ScreenPlayers:
		return m.handlePlayers(msg, ctx)
	case types.ScreenTeams:
		return m.handleTeams(msg)
	case types.ScreenGame:
		return m.handleGame(msg)
	case types.ScreenPlayer:
		return m.handlePlayer(msg, ctx)
	}

	return nil, false
}

func (m *NormalMode) handlePlayers(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, k.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, k.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case key.Matches(msg, k.LoadMore):
		// the loader drops the trigger while a page is in flight; consume the key either way
		return []types.Action{types.LoadMoreAction{}}, true
	case key.Matches(msg, k.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchQuery()}}, true
	case key.Matches(msg, k.Predict):
		if ctx.HasSelectedPlayer() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModePlayerGameID}}, true
		}
		return nil, true
	}
	return nil, false
}

func (m *NormalMode) handleTeams(msg tea.KeyMsg) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.East):
		return []types.Action{types.ShowConferenceAction{Conference: domain.ConferenceEast}}, true
	case key.Matches(msg, k.West):
		return []types.Action{types.ShowConferenceAction{Conference: domain.ConferenceWest}}, true
	case key.Matches(msg, k.Reload):
		return []types.Action{types.ReloadTeamsAction{}}, true
	}
	return nil, false
}

func (m *NormalMode) handleGame(msg tea.KeyMsg) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.GameID):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGameID}}, true
	case key.Matches(msg, k.Clear):
		return []types.Action{types.ClearPredictionAction{}}, true
	}
	return nil, false
}

func (m *NormalMode) handlePlayer(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.GameID), key.Matches(msg, k.Predict):
		if ctx.HasSelectedPlayer() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModePlayerGameID}}, true
		}
		return nil, true
	case key.Matches(msg, k.Clear):
		return []types.Action{types.ClearPredictionAction{}}, true
	}
	return nil, false
}
