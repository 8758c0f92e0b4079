package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"courtside/internal/domain"
)

// LoadPlayers fetches the page of players that follows the first offset
// already shown, filtered by query. An empty slice means the listing is
// exhausted.
func (c *Client) LoadPlayers(ctx context.Context, offset int, query string) ([]domain.Player, error) {
	const op = "load players"
	if offset < 0 {
		return nil, fmt.Errorf("%s: offset must not be negative, got %d", op, offset)
	}

	params := url.Values{}
	params.Set("offset", strconv.Itoa(offset))
	params.Set("q", query)

	var players []domain.Player
	requestID, err := c.getJSON(ctx, op, "/load_players", params, &players)
	if err != nil {
		return nil, err
	}
	// "null" decodes without error but is not a page
	if players == nil {
		return nil, &ParseError{Op: op, RequestID: requestID, Err: errors.New("expected a JSON array, got null")}
	}
	if err := c.validate.Var(players, "dive"); err != nil {
		return nil, &ParseError{Op: op, RequestID: requestID, Err: err}
	}

	return players, nil
}

// ListTeams fetches every team with its conference.
func (c *Client) ListTeams(ctx context.Context) ([]domain.Team, error) {
	const op = "list teams"

	var teams []domain.Team
	requestID, err := c.getJSON(ctx, op, "/api/teams", nil, &teams)
	if err != nil {
		return nil, err
	}
	if teams == nil {
		return nil, &ParseError{Op: op, RequestID: requestID, Err: errors.New("expected a JSON array, got null")}
	}
	if err := c.validate.Var(teams, "dive"); err != nil {
		return nil, &ParseError{Op: op, RequestID: requestID, Err: err}
	}

	return teams, nil
}
