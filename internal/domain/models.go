package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Player is one row of the players listing
type Player struct {
	ID       int    `json:"id" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	TeamName string `json:"team_name"`
	Position string `json:"position"`
}

// Key returns the stable identity used for list rows
func (p Player) Key() int { return p.ID }

// Conference is the league half a team plays in
type Conference string

const (
	ConferenceEast Conference = "East"
	ConferenceWest Conference = "West"
)

// Team represents an NBA franchise
type Team struct {
	ID           int        `json:"id" validate:"required"`
	FullName     string     `json:"full_name" validate:"required"`
	Abbreviation string     `json:"abbreviation"`
	Conference   Conference `json:"conference" validate:"oneof=East West"`
}

// GamePrediction is the outcome model's answer for a single game
type GamePrediction struct {
	Prediction    string        `json:"prediction"`
	Probabilities Probabilities `json:"probabilities"`
	Accuracy      *float64      `json:"accuracy,omitempty"`
	Explain       *Explain      `json:"explain,omitempty"`
}

// Probabilities holds win percentages (0-100) for each side
type Probabilities struct {
	Home *float64 `json:"home,omitempty"`
	Away *float64 `json:"away,omitempty"`
}

// Explain breaks the blended prediction into its inputs
type Explain struct {
	H2HHome      *float64 `json:"h2h_home,omitempty"`
	HomeRestDays *int     `json:"home_rest_days,omitempty"`
	AwayRestDays *int     `json:"away_rest_days,omitempty"`
	RestDiff     *int     `json:"rest_diff,omitempty"`
	RestBump     *float64 `json:"rest_bump,omitempty"`
	Weights      Weights  `json:"weights"`
}

// Weights are the blend factors applied to each signal
type Weights struct {
	Model     float64 `json:"model"`
	H2H       float64 `json:"h2h"`
	HomeCourt float64 `json:"home_court"`
	Rest      float64 `json:"rest"`
}

// StatOrder is the column order of the player prediction matrix
var StatOrder = []string{"PTS", "3PM", "REB", "AST", "TOV"}

// PlayerPrediction maps a stat name to its conditional probabilities
type PlayerPrediction struct {
	Features map[string][]FeatureRow `json:"features"`
}

// FeatureRow is one threshold line of a stat column
type FeatureRow struct {
	Condition string `json:"condition"`
	Prob      Prob   `json:"prob"`
}

// NoData is the server's marker for a stat without enough history
const NoData = "No data"

// Prob is either a numeric percentage or the "No data" marker
type Prob struct {
	Value  float64
	NoData bool
	Set    bool
}

// UnmarshalJSON accepts a number, a numeric string, or "No data"
func (p *Prob) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = Prob{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == NoData {
			*p = Prob{NoData: true, Set: true}
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("prob %q is neither a number nor %q", s, NoData)
		}
		*p = Prob{Value: v, Set: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Prob{Value: v, Set: true}
	return nil
}

// MarshalJSON writes the marker back as a string
func (p Prob) MarshalJSON() ([]byte, error) {
	switch {
	case !p.Set:
		return []byte("null"), nil
	case p.NoData:
		return json.Marshal(NoData)
	default:
		return json.Marshal(p.Value)
	}
}
