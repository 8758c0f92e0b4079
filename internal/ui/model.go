package ui

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"courtside/internal/config"
	"courtside/internal/domain"
	"courtside/internal/eventbus"
	"courtside/internal/logic"
	"courtside/internal/ui/commands"
	"courtside/internal/ui/input"
	inputtypes "courtside/internal/ui/input/types"
	"courtside/internal/ui/state"
	"courtside/internal/ui/views"
)

// statusTimeout is how long a status message stays up
const statusTimeout = 5 * time.Second

// Model represents the UI state
type Model struct {
	config *config.Config
	state  *state.AppState // centralized state
	logger *slog.Logger

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	table       table.Model
	spinner     spinner.Model
	spinning    bool // a spinner tick loop is running
	statusSeq   int  // bumps on every status message so stale clears are ignored
	inPagerMode bool // tracks if we're currently in pager mode
	e2e         bool // print the ready marker for the PTY tests

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	teams        logic.TeamStore
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model around an executor that already holds
// the seeded players
func NewModel(cfg *config.Config, exec *commands.Executor, logger *slog.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	appState := state.NewAppState(domain.Conference(cfg.UISettings.DefaultConference))
	appState.SearchQuery = exec.Players().State().Query
	appState.ShowPositions = cfg.UISettings.ShowPositions

	m := &Model{
		config:       cfg,
		state:        appState,
		logger:       logger,
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		renderer:     views.NewRenderer(),
		teams:        logic.NewMemoryTeamStore(),
		cmdExecutor:  exec,
		inputHandler: input.New(),
		e2e:          os.Getenv("COURTSIDE_E2E_TEST") == "1",
	}
	m.helpRenderer = NewHelpRenderer(m.inputHandler.Keys())
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	m.table = table.New(
		table.WithColumns(m.columns()),
		table.WithRows(exec.Rows()),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	m.syncSelection()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// State exposes the UI state, mainly for tests
func (m *Model) State() *state.AppState {
	return m.state
}

func (m *Model) columns() []table.Column {
	posWidth := 10
	if !m.state.ShowPositions {
		posWidth = 0
	}
	return []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Name", Width: 26},
		{Title: "Team", Width: 24},
		{Title: "Position", Width: posWidth},
	}
}

// Init returns an initial command. Teams load when their screen opens so
// a startup players failure stays in the status bar.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateTableHeight()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.inputHandler.Keys().ForceQuit) {
			return m, m.quit()
		}

		ctx := &input.ModelContext{
			State:   m.state,
			Loading: m.cmdExecutor.Players().State().IsLoading,
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	default:
		textCmd := m.inputHandler.Update(msg)
		model, cmd := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(textCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	players := m.cmdExecutor.Players()
	teams := m.cmdExecutor.Teams()
	game := m.cmdExecutor.Game()
	player := m.cmdExecutor.Player()
	gameValue, _ := game.Value()
	playerValue, _ := player.Value()

	vs := views.ViewState{
		Width:   m.width,
		Height:  m.height,
		Screen:  m.state.Screen,
		Spinner: m.spinner.View(),
		Busy:    m.cmdExecutor.Busy(),

		PlayersTable:   m.table.View(),
		PlayersLabel:   players.Label(),
		PlayersCount:   len(m.table.Rows()),
		PlayersLoading: players.State().IsLoading,
		SearchQuery:    m.state.SearchQuery,

		Conference:   m.state.Conference,
		Teams:        m.teams.ByConference(m.state.Conference),
		TeamsLoading: teams.Loading(),
		TeamsError:   teams.ErrorText(),

		GameID:      m.state.GameID,
		HomeName:    m.state.HomeName,
		AwayName:    m.state.AwayName,
		Game:        gameValue,
		GameLoading: game.Loading(),
		GameError:   game.ErrorText(),

		PlayerGameID:     m.state.PlayerGameID,
		PlayerPrediction: playerValue,
		PlayerLoading:    player.Loading(),
		PlayerError:      player.ErrorText(),

		StatusMessage: m.state.StatusMessage,
		StatusIsError: m.state.StatusIsError,
		HelpModel:     m.help,
		Keys:          m.inputHandler.Keys(),
		ShowReady:     m.e2e,
	}

	if m.state.PredictedFor != nil {
		vs.PredictedFor = m.state.PredictedFor.Name
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.InputPrompt = m.inputHandler.Prompt()
		vs.InputView = ti.View()
	}
	return vs
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.SwitchScreenAction:
		if a.Step != 0 {
			m.state.StepScreen(a.Step)
		} else {
			m.state.Screen = a.Screen
		}
		return m.enterScreen()

	case inputtypes.SubmitTextAction:
		return m.submitText(a)

	case inputtypes.LoadMoreAction:
		return m.withSpinner(m.cmdExecutor.LoadMore())

	case inputtypes.ReloadTeamsAction:
		return m.withSpinner(m.cmdExecutor.LoadTeams())

	case inputtypes.ShowConferenceAction:
		m.state.Conference = a.Conference

	case inputtypes.ClearPredictionAction:
		if m.state.Screen == inputtypes.ScreenGame {
			m.cmdExecutor.ClearGame()
			m.state.GameID = ""
		} else {
			m.cmdExecutor.ClearPlayer()
			m.state.PlayerGameID = ""
		}

	case inputtypes.ToggleHelpAction:
		return m.toggleHelp()

	case inputtypes.QuitAction:
		return m.quit()
	}
	return nil
}

// enterScreen runs whatever a screen needs when it becomes visible
func (m *Model) enterScreen() tea.Cmd {
	if m.state.Screen == inputtypes.ScreenTeams && m.teams.Len() == 0 {
		return m.withSpinner(m.cmdExecutor.LoadTeams())
	}
	return nil
}

func (m *Model) submitText(a inputtypes.SubmitTextAction) tea.Cmd {
	text := strings.TrimSpace(a.Text)

	switch a.Mode {
	case inputtypes.ModeSearch:
		m.state.SearchQuery = text
		m.state.Screen = inputtypes.ScreenPlayers
		if len(m.table.Rows()) > 0 {
			m.table.GotoTop()
		}
		cmd := m.cmdExecutor.Search(text)
		m.setRows(m.cmdExecutor.Rows())
		return m.withSpinner(cmd)

	case inputtypes.ModeGameID:
		if text == "" {
			return m.setStatus("Game ID is required", false)
		}
		m.state.Screen = inputtypes.ScreenGame
		cmd := m.cmdExecutor.PredictGame(text)
		if cmd == nil {
			return m.setStatus("A game prediction is already loading", false)
		}
		m.state.GameID = text
		return m.withSpinner(cmd)

	case inputtypes.ModePlayerGameID:
		target := m.state.PredictedFor
		if m.state.Screen == inputtypes.ScreenPlayers || target == nil {
			target = m.state.SelectedPlayer
		}
		if target == nil {
			return m.setStatus("Select a player first", false)
		}
		if text == "" {
			return m.setStatus("Game ID is required", false)
		}
		m.state.Screen = inputtypes.ScreenPlayer
		cmd := m.cmdExecutor.PredictPlayer(target.ID, text)
		if cmd == nil {
			return m.setStatus("A player prediction is already loading", false)
		}
		picked := *target
		m.state.PredictedFor = &picked
		m.state.PlayerGameID = text
		return m.withSpinner(cmd)
	}
	return nil
}

func (m *Model) navigate(direction string) {
	switch direction {
	case "up":
		m.table.MoveUp(1)
	case "down":
		m.table.MoveDown(1)
	case "pageup":
		m.table.MoveUp(max(m.table.Height(), 1))
	case "pagedown":
		m.table.MoveDown(max(m.table.Height(), 1))
	case "home":
		m.table.GotoTop()
	case "end":
		m.table.GotoBottom()
	}
	m.syncSelection()
}

// setRows replaces the table rows, keeping the cursor on a real row
func (m *Model) setRows(rows []table.Row) {
	m.table.SetRows(rows)
	if n := len(rows); n > 0 {
		if c := m.table.Cursor(); c < 0 || c >= n {
			m.table.SetCursor(min(max(c, 0), n-1))
		}
	}
	m.syncSelection()
}

// syncSelection mirrors the row under the cursor into the app state
func (m *Model) syncSelection() {
	row := m.table.SelectedRow()
	id, ok := commands.RowPlayerID(row)
	if !ok {
		m.state.SelectedPlayer = nil
		return
	}
	name := ""
	if len(row) > 1 {
		name = row[1]
	}
	m.state.SelectedPlayer = &state.PlayerRef{ID: id, Name: name}
}

func (m *Model) updateTableHeight() {
	// title, tabs, prompt, footer button, status and help lines
	const chrome = 14
	m.table.SetHeight(max(m.height-chrome, 3))
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commands.PageMsg:
		if m.cmdExecutor.ApplyPage(msg) {
			m.setRows(m.cmdExecutor.Rows())
		}
		return m, nil

	case commands.TeamsMsg:
		if m.cmdExecutor.ApplyTeams(msg) {
			if teams, ok := m.cmdExecutor.Teams().Value(); ok && m.cmdExecutor.Teams().Err() == nil {
				m.teams.ReplaceAll(teams)
			}
		}
		return m, nil

	case commands.GamePredictionMsg:
		m.cmdExecutor.ApplyGamePrediction(msg)
		return m, nil

	case commands.PlayerPredictionMsg:
		m.cmdExecutor.ApplyPlayerPrediction(msg)
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case spinner.TickMsg:
		if !m.cmdExecutor.Busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.ClearStatus()
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Fall back to the inline key list
			m.logger.Debug("help pager failed", "error", msg.err)
			m.help.ShowAll = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		// Other messages are handled elsewhere
		return m, nil
	}
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.LoadFailedEvent:
		m.state.RecordFailure(e.View, e.Err)
		return m.statusTimeout()
	case eventbus.ListExhaustedEvent:
		if e.View == commands.ViewPlayers {
			return m.setStatus("No more players", false)
		}
	case eventbus.PredictionReadyEvent:
		return m.setStatus("Prediction ready", false)
	}
	return nil
}

func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.state.SetStatus(msg)
	m.state.StatusIsError = isError
	return m.statusTimeout()
}

func (m *Model) statusTimeout() tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// withSpinner starts the spinner alongside cmd unless it is already running
func (m *Model) withSpinner(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	if m.spinning {
		return cmd
	}
	m.spinning = true
	return tea.Batch(cmd, m.spinner.Tick)
}

// toggleHelp opens the pager, or the inline key list when no terminal can
// be handed over
func (m *Model) toggleHelp() tea.Cmd {
	if m.program == nil {
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	program := m.program
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := NewHelpOps(program).ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) quit() tea.Cmd {
	m.cmdExecutor.Detach()
	return tea.Quit
}
