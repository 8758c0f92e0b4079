//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

const fixturePageSize = 5

type fixturePlayer struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	TeamName string `json:"team_name"`
	Position string `json:"position"`
}

// predictionServer answers the endpoints courtside calls with canned data
type predictionServer struct {
	srv *httptest.Server

	mu       sync.Mutex
	roster   []fixturePlayer
	requests []string
}

func newPredictionServer(players int) *predictionServer {
	ps := &predictionServer{}
	for i := 1; i <= players; i++ {
		ps.roster = append(ps.roster, fixturePlayer{
			ID:       1000 + i,
			FullName: fmt.Sprintf("Fixture Player %02d", i),
			TeamName: "Boston Celtics",
			Position: "F",
		})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /load_players", ps.loadPlayers)
	mux.HandleFunc("GET /api/teams", ps.teams)
	mux.HandleFunc("GET /api/predict/{game}", ps.predictGame)
	mux.HandleFunc("GET /api/player_predict/{player}/{game}", ps.predictPlayer)
	ps.srv = httptest.NewServer(ps.record(mux))
	return ps
}

// StartServer starts the fixture server with a roster of twelve players
func (tf *TUITestFramework) StartServer() *predictionServer {
	tf.server = newPredictionServer(12)
	return tf.server
}

// CreateTestWorkspace creates a temporary directory for config and logs
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

func (ps *predictionServer) URL() string { return ps.srv.URL }

func (ps *predictionServer) Close() { ps.srv.Close() }

// Requests returns the paths requested so far
func (ps *predictionServer) Requests() []string {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return append([]string(nil), ps.requests...)
}

func (ps *predictionServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ps.mu.Lock()
		ps.requests = append(ps.requests, r.URL.RequestURI())
		ps.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (ps *predictionServer) loadPlayers(w http.ResponseWriter, r *http.Request) {
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		http.Error(w, "bad offset", http.StatusBadRequest)
		return
	}
	query := strings.ToLower(r.URL.Query().Get("q"))

	matched := []fixturePlayer{}
	for _, p := range ps.roster {
		if strings.Contains(strings.ToLower(p.FullName), query) {
			matched = append(matched, p)
		}
	}
	page := []fixturePlayer{}
	if offset < len(matched) {
		page = matched[offset:min(offset+fixturePageSize, len(matched))]
	}
	writeJSON(w, page)
}

func (ps *predictionServer) teams(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, []map[string]any{
		{"id": 1, "full_name": "Boston Celtics", "abbreviation": "BOS", "conference": "East"},
		{"id": 2, "full_name": "Miami Heat", "abbreviation": "MIA", "conference": "East"},
		{"id": 3, "full_name": "Denver Nuggets", "abbreviation": "DEN", "conference": "West"},
	})
}

func (ps *predictionServer) predictGame(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("game") == "0000000000" {
		http.Error(w, `{"error": "unknown game"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{
		"prediction":    "Boston Celtics win",
		"probabilities": map[string]any{"home": 61.25, "away": 38.75},
		"accuracy":      0.671,
		"explain": map[string]any{
			"h2h_home":       0.5,
			"home_rest_days": 2,
			"away_rest_days": 1,
			"rest_diff":      1,
			"rest_bump":      0.015,
			"weights":        map[string]any{"model": 0.6, "h2h": 0.2, "home_court": 0.1, "rest": 0.1},
		},
	})
}

func (ps *predictionServer) predictPlayer(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{
		"features": map[string]any{
			"PTS": []map[string]any{{"condition": "20+", "prob": 62.5}, {"condition": "25+", "prob": "41"}},
			"REB": []map[string]any{{"condition": "8+", "prob": "No data"}},
		},
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
