package commands

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"courtside/internal/domain"
	"courtside/internal/loader"
)

// View names used in failure reports, events and metrics
const (
	ViewPlayers          = "players"
	ViewTeams            = "teams"
	ViewGamePrediction   = "game_prediction"
	ViewPlayerPrediction = "player_prediction"
)

// Texts shown in place of a prediction that failed
const (
	GameErrorText   = "Sorry, could not compute probabilities right now."
	PlayerErrorText = "Sorry, could not compute player performance right now."
)

// Footer labels of the players list
var PlayerLabels = loader.Labels{
	Idle:      "Load More Players",
	Loading:   "Loading...",
	Exhausted: "No more players",
}

// DataSource is what the screens read from. *api.Client implements it.
type DataSource interface {
	LoadPlayers(ctx context.Context, offset int, query string) ([]domain.Player, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)
	PredictGame(ctx context.Context, gameID string) (*domain.GamePrediction, error)
	PredictPlayer(ctx context.Context, playerID int, gameID string) (*domain.PlayerPrediction, error)
}

// PageMsg carries a finished players page back to the update loop
type PageMsg struct {
	Result loader.Result[domain.Player]
}

// TeamsMsg carries the team list
type TeamsMsg struct {
	Result loader.PanelResult[[]domain.Team]
}

// GamePredictionMsg carries a game prediction
type GamePredictionMsg struct {
	GameID string
	Result loader.PanelResult[*domain.GamePrediction]
}

// PlayerPredictionMsg carries a player prediction
type PlayerPredictionMsg struct {
	PlayerID int
	GameID   string
	Result   loader.PanelResult[*domain.PlayerPrediction]
}

// RenderPlayer turns a player into a table row: ID, Name, Team, Position
func RenderPlayer(p domain.Player) table.Row {
	return table.Row{strconv.Itoa(p.ID), p.FullName, p.TeamName, p.Position}
}

// RowPlayerID reads the player id back out of a rendered row
func RowPlayerID(row table.Row) (int, bool) {
	if len(row) == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return 0, false
	}
	return id, true
}

// SeedPlayers fetches the first n players of query. They stand in for the
// rows a web page renders before any "load more" click.
func SeedPlayers(ctx context.Context, source DataSource, query string, n int) ([]domain.Player, error) {
	if n <= 0 {
		return nil, nil
	}
	players, err := source.LoadPlayers(ctx, 0, query)
	if err != nil {
		return nil, err
	}
	if len(players) > n {
		players = players[:n]
	}
	return players, nil
}
