package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"courtside/internal/domain"
	"courtside/internal/ui/input/modes"
	"courtside/internal/ui/input/types"
)

// ReadyMarker is printed once the first full frame is drawn in test mode
const ReadyMarker = "__READY__"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width   int
	Height  int
	Screen  types.Screen
	Spinner string // current spinner frame
	Busy    bool

	// Players screen
	PlayersTable   string
	PlayersLabel   string
	PlayersCount   int
	PlayersLoading bool
	SearchQuery    string

	// Teams screen
	Conference   domain.Conference
	Teams        []*domain.Team
	TeamsLoading bool
	TeamsError   string

	// Game prediction screen
	GameID      string
	HomeName    string
	AwayName    string
	Game        *domain.GamePrediction
	GameLoading bool
	GameError   string

	// Player prediction screen
	PredictedFor     string
	PlayerGameID     string
	PlayerPrediction *domain.PlayerPrediction
	PlayerLoading    bool
	PlayerError      string

	// Chrome
	InputPrompt   string
	InputView     string
	StatusMessage string
	StatusIsError bool
	HelpModel     help.Model
	Keys          modes.KeyMap
	ShowReady     bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the styles, for components that render themselves
func (r *Renderer) Styles() *Styles { return r.styles }

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")
	content.WriteString(r.renderTabs(state.Screen))
	content.WriteString("\n\n")

	if state.InputPrompt != "" {
		content.WriteString(r.styles.Prompt.Render(state.InputPrompt) + state.InputView)
		content.WriteString("\n\n")
	}

	switch state.Screen {
	case types.ScreenPlayers:
		content.WriteString(r.renderPlayers(state))
	case types.ScreenTeams:
		content.WriteString(r.renderTeams(state))
	case types.ScreenGame:
		content.WriteString(r.renderGame(state))
	case types.ScreenPlayer:
		content.WriteString(r.renderPlayerPrediction(state))
	}

	footer := r.renderFooter(state)

	// Push the footer to the bottom of the terminal
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2 // container padding
	if availableLines <= 0 {
		availableLines = 22
	}
	footerLines := strings.Count(footer, "\n") + 1
	if pad := availableLines - currentLines - footerLines; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	return r.styles.Main.MaxHeight(max(state.Height, 1)).Render(content.String())
}

// renderTitle draws the app name with the busy indicator right-aligned
func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("courtside")
	if !state.Busy {
		return logo
	}

	right := r.styles.Loading.Render(strings.TrimSpace(state.Spinner + " Loading"))
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	available := termWidth - 4 // main container padding
	padding := available - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding > 0 {
		return fmt.Sprintf("%s%s%s", logo, strings.Repeat(" ", padding), right)
	}
	return fmt.Sprintf("%s  %s", logo, right)
}

func (r *Renderer) renderTabs(active types.Screen) string {
	tabs := make([]string, 0, len(types.Screens))
	for i, s := range types.Screens {
		label := fmt.Sprintf("%d %s", i+1, s)
		if s == active {
			tabs = append(tabs, r.styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, r.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (r *Renderer) renderFooter(state ViewState) string {
	var lines []string
	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		lines = append(lines, style.Render(state.StatusMessage))
	}
	var helpLine string
	if state.HelpModel.ShowAll {
		helpLine = state.HelpModel.FullHelpView(state.Keys.FullHelp())
	} else {
		helpLine = state.HelpModel.ShortHelpView(state.Keys.ScreenHelp(state.Screen))
	}
	if helpLine == "" {
		helpLine = "Press ? for help"
	}
	lines = append(lines, r.styles.Help.Render(helpLine))
	if state.ShowReady {
		lines = append(lines, ReadyMarker)
	}
	return strings.Join(lines, "\n")
}
