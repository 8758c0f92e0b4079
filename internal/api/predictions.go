package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"courtside/internal/domain"
)

// PredictGame asks the outcome model about one game.
func (c *Client) PredictGame(ctx context.Context, gameID string) (*domain.GamePrediction, error) {
	const op = "predict game"
	if gameID == "" {
		return nil, fmt.Errorf("%s: game id must not be empty", op)
	}

	var pred domain.GamePrediction
	if _, err := c.getJSON(ctx, op, "/api/predict/"+url.PathEscape(gameID), nil, &pred); err != nil {
		return nil, err
	}
	return &pred, nil
}

// PredictPlayer asks for a player's stat-line probabilities in one game.
// A response without any stat columns is a ParseError.
func (c *Client) PredictPlayer(ctx context.Context, playerID int, gameID string) (*domain.PlayerPrediction, error) {
	const op = "predict player"
	if gameID == "" {
		return nil, fmt.Errorf("%s: game id must not be empty", op)
	}

	path := "/api/player_predict/" + strconv.Itoa(playerID) + "/" + url.PathEscape(gameID)

	var pred domain.PlayerPrediction
	requestID, err := c.getJSON(ctx, op, path, nil, &pred)
	if err != nil {
		return nil, err
	}
	if len(pred.Features) == 0 {
		return nil, &ParseError{Op: op, RequestID: requestID, Err: ErrNoFeatures}
	}
	return &pred, nil
}

// IsNoFeatures reports whether err came from an empty player prediction.
func IsNoFeatures(err error) bool {
	return errors.Is(err, ErrNoFeatures)
}
