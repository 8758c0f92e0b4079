package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/internal/domain"
	"courtside/internal/ui/input/types"
	"courtside/internal/ui/state"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newContext(screen types.Screen) *ModelContext {
	st := state.NewAppState(domain.ConferenceEast)
	st.Screen = screen
	return &ModelContext{State: st}
}

func TestNormalModeScreenKeys(t *testing.T) {
	h := New()
	ctx := newContext(types.ScreenPlayers)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want types.Action
	}{
		{"next screen", tea.KeyMsg{Type: tea.KeyTab}, types.SwitchScreenAction{Step: 1}},
		{"previous screen", tea.KeyMsg{Type: tea.KeyShiftTab}, types.SwitchScreenAction{Step: -1}},
		{"teams", runes("2"), types.SwitchScreenAction{Screen: types.ScreenTeams}},
		{"player", runes("4"), types.SwitchScreenAction{Screen: types.ScreenPlayer}},
		{"load more", runes("m"), types.LoadMoreAction{}},
		{"down", runes("j"), types.NavigateAction{Direction: "down"}},
		{"bottom", runes("G"), types.NavigateAction{Direction: "end"}},
		{"help", runes("?"), types.ToggleHelpAction{}},
		{"quit", runes("q"), types.QuitAction{}},
		{"force quit", tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, _ := h.HandleKey(tt.msg, ctx)
			require.Len(t, actions, 1)
			assert.Equal(t, tt.want, actions[0])
			assert.Equal(t, types.ModeNormal, h.CurrentMode())
		})
	}
}

func TestScreenSpecificKeysAreIgnoredElsewhere(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(runes("w"), newContext(types.ScreenPlayers))
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(runes("w"), newContext(types.ScreenTeams))
	require.Len(t, actions, 1)
	assert.Equal(t, types.ShowConferenceAction{Conference: domain.ConferenceWest}, actions[0])

	actions, _ = h.HandleKey(runes("m"), newContext(types.ScreenGame))
	assert.Empty(t, actions)
}

func TestSearchModeSubmitsText(t *testing.T) {
	h := New()
	ctx := newContext(types.ScreenPlayers)
	ctx.State.SearchQuery = "ta"

	_, cmd := h.HandleKey(runes("/"), ctx)
	assert.NotNil(t, cmd, "text modes start the cursor blink")
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.Equal(t, "Search players: ", h.Prompt())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "ta", h.TextInput().Value(), "search starts from the active query")

	actions, _ := h.HandleKey(runes("t"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "tat"}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.NotEmpty(t, actions)
	assert.Equal(t, types.SubmitTextAction{Text: "tat", Mode: types.ModeSearch}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
	assert.Empty(t, h.Prompt())
}

func TestTextModeTreatsCommandKeysAsText(t *testing.T) {
	h := New()
	ctx := newContext(types.ScreenGame)

	h.HandleKey(runes("g"), ctx)
	require.Equal(t, types.ModeGameID, h.CurrentMode())

	actions, _ := h.HandleKey(runes("q"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "q"}, actions[0])
	assert.Equal(t, types.ModeGameID, h.CurrentMode())
}

func TestEscCancelsTextMode(t *testing.T) {
	h := New()
	ctx := newContext(types.ScreenGame)

	h.HandleKey(runes("g"), ctx)
	h.HandleKey(runes("1"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.NotEmpty(t, actions)
	assert.Equal(t, types.CancelTextAction{}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestPredictNeedsSelectedPlayer(t *testing.T) {
	h := New()
	ctx := newContext(types.ScreenPlayers)

	actions, _ := h.HandleKey(runes("p"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())

	ctx.State.SelectedPlayer = &state.PlayerRef{ID: 7, Name: "Player 7"}
	h.HandleKey(runes("p"), ctx)
	assert.Equal(t, types.ModePlayerGameID, h.CurrentMode())
	assert.Equal(t, "Game ID for player: ", h.Prompt())

	h.Reset()
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}
