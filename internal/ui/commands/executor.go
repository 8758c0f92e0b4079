package commands

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"courtside/internal/domain"
	"courtside/internal/eventbus"
	"courtside/internal/loader"
)

// Options configures an Executor
type Options struct {
	Source DataSource
	Bus    eventbus.EventBus
	// Sink receives every failure; Observers see every applied page
	Sink      loader.Sink
	Observers []loader.Observer
	Timeout   time.Duration

	// Seed are the players already on screen when the view opens
	Seed  []domain.Player
	Query string
}

// Executor turns user intents into tea.Cmds. It owns the players loader and
// the single-flight panels; their synchronous halves run here on the update
// loop and only the fetches leave it.
type Executor struct {
	ctx    context.Context
	source DataSource
	bus    eventbus.EventBus

	rows    *loader.Rows[table.Row]
	players *loader.Loader[domain.Player, table.Row]
	teams   *loader.Panel[[]domain.Team]
	game    *loader.Panel[*domain.GamePrediction]
	player  *loader.Panel[*domain.PlayerPrediction]
}

// NewExecutor creates an executor whose requests live as long as ctx
func NewExecutor(ctx context.Context, opts Options) (*Executor, error) {
	if opts.Source == nil {
		return nil, errors.New("executor: data source is required")
	}

	seedRows := make([]table.Row, 0, len(opts.Seed))
	for _, p := range opts.Seed {
		seedRows = append(seedRows, RenderPlayer(p))
	}
	rows := loader.NewRows(seedRows...)

	players, err := loader.New[domain.Player, table.Row](opts.Source.LoadPlayers, RenderPlayer, rows, loader.Options{
		Name:          ViewPlayers,
		InitialOffset: len(opts.Seed),
		InitialQuery:  opts.Query,
		Timeout:       opts.Timeout,
		Labels:        PlayerLabels,
		Sink:          opts.Sink,
		Observers:     opts.Observers,
	})
	if err != nil {
		return nil, err
	}

	panelOpts := func(name, errorText string) loader.PanelOptions {
		return loader.PanelOptions{
			Name:      name,
			ErrorText: errorText,
			Timeout:   opts.Timeout,
			Sink:      opts.Sink,
			Observers: panelObservers(opts.Observers),
		}
	}

	return &Executor{
		ctx:     ctx,
		source:  opts.Source,
		bus:     opts.Bus,
		rows:    rows,
		players: players,
		teams:   loader.NewPanel[[]domain.Team](panelOpts(ViewTeams, "Could not load teams.")),
		game:    loader.NewPanel[*domain.GamePrediction](panelOpts(ViewGamePrediction, GameErrorText)),
		player:  loader.NewPanel[*domain.PlayerPrediction](panelOpts(ViewPlayerPrediction, PlayerErrorText)),
	}, nil
}

// panelObservers drops observers that treat pages as list events
func panelObservers(observers []loader.Observer) []loader.Observer {
	var out []loader.Observer
	for _, o := range observers {
		if _, ok := o.(*loader.BusSink); ok {
			continue
		}
		out = append(out, o)
	}
	return out
}

// LoadMore requests the next players page. It returns nil when the loader
// suppressed the trigger.
func (e *Executor) LoadMore() tea.Cmd {
	pending, ok := e.players.Begin()
	if !ok {
		return nil
	}
	ctx := e.ctx
	return func() tea.Msg {
		return PageMsg{Result: pending.Run(ctx)}
	}
}

// Search resets the players list to query and loads its first page
func (e *Executor) Search(query string) tea.Cmd {
	e.players.Reset(query)
	if e.bus != nil {
		e.bus.Publish(eventbus.ListResetEvent{View: ViewPlayers, Query: query})
	}
	return e.LoadMore()
}

// ApplyPage applies a players page on the update loop
func (e *Executor) ApplyPage(msg PageMsg) bool {
	return e.players.Complete(msg.Result)
}

// LoadTeams fetches the team list
func (e *Executor) LoadTeams() tea.Cmd {
	pending, ok := e.teams.Begin(e.source.ListTeams)
	if !ok {
		return nil
	}
	ctx := e.ctx
	return func() tea.Msg {
		return TeamsMsg{Result: pending.Run(ctx)}
	}
}

// ApplyTeams stores the team list
func (e *Executor) ApplyTeams(msg TeamsMsg) bool {
	return e.teams.Complete(msg.Result)
}

// PredictGame asks for the outcome of gameID
func (e *Executor) PredictGame(gameID string) tea.Cmd {
	fetch := func(ctx context.Context) (*domain.GamePrediction, error) {
		return e.source.PredictGame(ctx, gameID)
	}
	pending, ok := e.game.Begin(fetch)
	if !ok {
		return nil
	}
	ctx := e.ctx
	return func() tea.Msg {
		return GamePredictionMsg{GameID: gameID, Result: pending.Run(ctx)}
	}
}

// ApplyGamePrediction stores a game prediction
func (e *Executor) ApplyGamePrediction(msg GamePredictionMsg) bool {
	applied := e.game.Complete(msg.Result)
	if applied && e.game.Err() == nil && e.bus != nil {
		e.bus.Publish(eventbus.PredictionReadyEvent{View: ViewGamePrediction})
	}
	return applied
}

// PredictPlayer asks how playerID will do in gameID
func (e *Executor) PredictPlayer(playerID int, gameID string) tea.Cmd {
	fetch := func(ctx context.Context) (*domain.PlayerPrediction, error) {
		return e.source.PredictPlayer(ctx, playerID, gameID)
	}
	pending, ok := e.player.Begin(fetch)
	if !ok {
		return nil
	}
	ctx := e.ctx
	return func() tea.Msg {
		return PlayerPredictionMsg{PlayerID: playerID, GameID: gameID, Result: pending.Run(ctx)}
	}
}

// ApplyPlayerPrediction stores a player prediction
func (e *Executor) ApplyPlayerPrediction(msg PlayerPredictionMsg) bool {
	applied := e.player.Complete(msg.Result)
	if applied && e.player.Err() == nil && e.bus != nil {
		e.bus.Publish(eventbus.PredictionReadyEvent{View: ViewPlayerPrediction})
	}
	return applied
}

// ClearGame empties the game prediction panel
func (e *Executor) ClearGame() { e.game.Clear() }

// ClearPlayer empties the player prediction panel
func (e *Executor) ClearPlayer() { e.player.Clear() }

// Detach drops every request still in flight, for shutdown
func (e *Executor) Detach() {
	e.players.Detach()
	e.teams.Detach()
	e.game.Detach()
	e.player.Detach()
}

// Rows returns the rendered players
func (e *Executor) Rows() []table.Row { return e.rows.Snapshot() }

// Players exposes the players loader for rendering
func (e *Executor) Players() *loader.Loader[domain.Player, table.Row] { return e.players }

// Teams exposes the teams panel
func (e *Executor) Teams() *loader.Panel[[]domain.Team] { return e.teams }

// Game exposes the game prediction panel
func (e *Executor) Game() *loader.Panel[*domain.GamePrediction] { return e.game }

// Player exposes the player prediction panel
func (e *Executor) Player() *loader.Panel[*domain.PlayerPrediction] { return e.player }

// Busy reports whether any request is in flight
func (e *Executor) Busy() bool {
	return e.players.State().IsLoading || e.teams.Loading() || e.game.Loading() || e.player.Loading()
}
