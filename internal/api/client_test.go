package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(ClientConfig{BaseURL: server.URL + "/"})
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(ClientConfig{BaseURL: " http://localhost:5000/ "})
	assert.Equal(t, "http://localhost:5000", c.BaseURL())
	assert.Equal(t, defaultTimeout, c.httpClient.Timeout)

	c = NewClient(ClientConfig{BaseURL: "http://x", Timeout: time.Second})
	assert.Equal(t, time.Second, c.httpClient.Timeout)
}

func TestLoadPlayers(t *testing.T) {
	var gotQuery, gotRequestID, gotAccept string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/load_players", r.URL.Path)
		gotQuery = r.URL.RawQuery
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`[
			{"id": 6, "full_name": "Jalen Brunson", "team_name": "New York Knicks", "position": "G"},
			{"id": 7, "full_name": "Josh Hart", "team_name": "New York Knicks", "position": "G-F"}
		]`))
	})

	players, err := c.LoadPlayers(context.Background(), 5, "new york & co")
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, 6, players[0].ID)
	assert.Equal(t, "Josh Hart", players[1].FullName)

	assert.Equal(t, "offset=5&q=new+york+%26+co", gotQuery)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "application/json", gotAccept)
}

func TestLoadPlayersEmptyPage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	players, err := c.LoadPlayers(context.Background(), 500, "")
	require.NoError(t, err)
	assert.NotNil(t, players)
	assert.Empty(t, players)
}

func TestLoadPlayersErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind string
	}{
		{"server error", http.StatusInternalServerError, "boom", "network"},
		{"not found", http.StatusNotFound, "", "network"},
		{"not json", http.StatusOK, "<html>oops</html>", "parse"},
		{"object instead of array", http.StatusOK, `{"id": 1}`, "parse"},
		{"null body", http.StatusOK, `null`, "parse"},
		{"missing id", http.StatusOK, `[{"full_name": "No Id"}]`, "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			players, err := c.LoadPlayers(context.Background(), 0, "")
			require.Error(t, err)
			assert.Nil(t, players)
			assert.Equal(t, tt.wantKind, Kind(err))
		})
	}
}

func TestNetworkErrorCarriesStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such game", http.StatusNotFound)
	})

	_, err := c.PredictGame(context.Background(), "0022300001")
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusNotFound, netErr.StatusCode)
	assert.True(t, netErr.IsNotFound())
	assert.Equal(t, "no such game", netErr.Message)
	assert.NotEmpty(t, netErr.RequestID)
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient(ClientConfig{BaseURL: url})
	_, err := c.LoadPlayers(context.Background(), 0, "")

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Zero(t, netErr.StatusCode)
	assert.Error(t, netErr.Unwrap())
}

func TestRequestTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	c := NewClient(ClientConfig{BaseURL: server.URL, Timeout: 50 * time.Millisecond})
	_, err := c.LoadPlayers(context.Background(), 0, "")
	assert.Equal(t, "network", Kind(err))
}

func TestLoadPlayersRejectsNegativeOffset(t *testing.T) {
	c := NewClient(ClientConfig{BaseURL: "http://unused"})
	_, err := c.LoadPlayers(context.Background(), -1, "")
	require.Error(t, err)
	assert.Equal(t, "other", Kind(err))
}

func TestListTeams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/teams", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id": 1, "full_name": "Boston Celtics", "abbreviation": "BOS", "conference": "East"},
			{"id": 2, "full_name": "Denver Nuggets", "abbreviation": "DEN", "conference": "West"}
		]`))
	})

	teams, err := c.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, domain.ConferenceWest, teams[1].Conference)
}

func TestListTeamsRejectsUnknownConference(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "full_name": "Somewhere", "conference": "Central"}]`))
	})

	_, err := c.ListTeams(context.Background())
	assert.Equal(t, "parse", Kind(err))
}
