package input

import (
	"courtside/internal/ui/input/types"
	"courtside/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State   *state.AppState
	Loading bool // a players page is in flight
}

// CurrentScreen returns the visible screen
func (c *ModelContext) CurrentScreen() types.Screen {
	return c.State.Screen
}

// HasSelectedPlayer reports whether a player row is under the cursor
func (c *ModelContext) HasSelectedPlayer() bool {
	return c.State.SelectedPlayer != nil
}

// PlayersLoading reports whether a players page is in flight
func (c *ModelContext) PlayersLoading() bool {
	return c.Loading
}

// SearchQuery returns the query the players list is filtered by
func (c *ModelContext) SearchQuery() string {
	return c.State.SearchQuery
}
