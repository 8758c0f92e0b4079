package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"courtside/internal/domain"
)

const missing = "—"

// GameReport is a game prediction laid out as display text
type GameReport struct {
	Outcome   string
	Breakdown []string
	Accuracy  string
	Explain   []string
}

// FormatGamePrediction lays out p. Away comes before home in the
// breakdown; fields the server left out produce no line.
func FormatGamePrediction(p *domain.GamePrediction, homeName, awayName string) GameReport {
	var report GameReport
	if p == nil {
		return report
	}

	report.Outcome = p.Prediction
	if report.Outcome == "" {
		report.Outcome = fmt.Sprintf("%s vs %s", homeName, awayName)
	}

	if p.Probabilities.Away != nil {
		report.Breakdown = append(report.Breakdown, fmt.Sprintf("%s: %.2f%%", awayName, *p.Probabilities.Away))
	}
	if p.Probabilities.Home != nil {
		report.Breakdown = append(report.Breakdown, fmt.Sprintf("%s: %.2f%%", homeName, *p.Probabilities.Home))
	}

	if p.Accuracy != nil {
		report.Accuracy = fmt.Sprintf("Model Accuracy: %.2f%%", *p.Accuracy*100)
	}

	if e := p.Explain; e != nil {
		w := e.Weights
		report.Explain = []string{
			fmt.Sprintf("H2H (Home Last 6): %s%%", percent1(e.H2HHome)),
			fmt.Sprintf("Rest Days — Home: %s, Away: %s (Diff %s, Bump %s%%)",
				intOrMissing(e.HomeRestDays), intOrMissing(e.AwayRestDays),
				intOrMissing(e.RestDiff), percent1(e.RestBump)),
			fmt.Sprintf("Weights — Model: %.0f%%, H2H: %.0f%%, Home-Court: %.0f%%, Rest: %.0f%%",
				w.Model*100, w.H2H*100, w.HomeCourt*100, w.Rest*100),
		}
	}
	return report
}

// Lines flattens the report in display order
func (r GameReport) Lines() []string {
	var lines []string
	if r.Outcome != "" {
		lines = append(lines, r.Outcome)
	}
	lines = append(lines, r.Breakdown...)
	if r.Accuracy != "" {
		lines = append(lines, r.Accuracy)
	}
	return append(lines, r.Explain...)
}

func percent1(v *float64) string {
	if v == nil {
		return missing
	}
	return strconv.FormatFloat(*v*100, 'f', 1, 64)
}

func intOrMissing(v *int) string {
	if v == nil {
		return missing
	}
	return strconv.Itoa(*v)
}

// Matrix is the player prediction grid: one column per stat, one row per
// threshold.
type Matrix struct {
	Headers []string
	Rows    [][]string
}

// PlayerMatrix builds the grid for p. Columns follow domain.StatOrder and
// the row count is the longest column; shorter columns pad with blanks.
func PlayerMatrix(p *domain.PlayerPrediction) Matrix {
	m := Matrix{Headers: append([]string(nil), domain.StatOrder...)}
	if p == nil {
		return m
	}

	maxRows := 0
	for _, stat := range domain.StatOrder {
		maxRows = max(maxRows, len(p.Features[stat]))
	}

	for i := 0; i < maxRows; i++ {
		row := make([]string, len(domain.StatOrder))
		for j, stat := range domain.StatOrder {
			col := p.Features[stat]
			if i < len(col) {
				row[j] = matrixCell(col[i])
			}
		}
		m.Rows = append(m.Rows, row)
	}
	return m
}

func matrixCell(f domain.FeatureRow) string {
	switch {
	case f.Prob.NoData:
		return domain.NoData
	case !f.Prob.Set:
		return ""
	default:
		return fmt.Sprintf("%s → %s%%", f.Condition, strconv.FormatFloat(f.Prob.Value, 'f', -1, 64))
	}
}

// renderGame draws the game prediction screen
func (r *Renderer) renderGame(state ViewState) string {
	var b strings.Builder

	id := state.GameID
	if id == "" {
		id = r.styles.Dim.Render("none")
	}
	b.WriteString(fmt.Sprintf("%s %s\n", r.styles.Bold.Render("Game:"), id))
	b.WriteString(r.styles.Dim.Render(fmt.Sprintf("%s (home) vs %s (away)", state.HomeName, state.AwayName)))
	b.WriteString("\n\n")

	switch {
	case state.GameLoading:
		b.WriteString(r.styles.Loading.Render(state.Spinner + " Computing probabilities..."))
	case state.GameError != "":
		b.WriteString(r.styles.Error.Render(state.GameError))
	case state.Game != nil:
		report := FormatGamePrediction(state.Game, state.HomeName, state.AwayName)
		b.WriteString(r.styles.Outcome.Render(report.Outcome))
		b.WriteString("\n\n")
		for _, line := range report.Breakdown {
			b.WriteString(line + "\n")
		}
		if report.Accuracy != "" {
			b.WriteString("\n" + report.Accuracy + "\n")
		}
		if len(report.Explain) > 0 {
			b.WriteString("\n")
			b.WriteString(r.styles.Dim.Render(strings.Join(report.Explain, "\n")))
		}
	default:
		b.WriteString(r.styles.Dim.Render("Press g to enter a game id."))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderPlayerPrediction draws the player prediction screen
func (r *Renderer) renderPlayerPrediction(state ViewState) string {
	var b strings.Builder

	who := state.PredictedFor
	if who == "" {
		who = r.styles.Dim.Render("no player selected")
	}
	game := state.PlayerGameID
	if game == "" {
		game = r.styles.Dim.Render("none")
	}
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n\n", r.styles.Bold.Render("Player:"), who, r.styles.Bold.Render("Game:"), game))

	switch {
	case state.PlayerLoading:
		b.WriteString(r.styles.Loading.Render(state.Spinner + " Computing player performance..."))
	case state.PlayerError != "":
		b.WriteString(r.styles.Error.Render(state.PlayerError))
	case state.PlayerPrediction != nil:
		b.WriteString(r.renderMatrix(PlayerMatrix(state.PlayerPrediction)))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("Probabilities come from the player's recent game log."))
	default:
		b.WriteString(r.styles.Dim.Render("Select a player on the Players screen and press p."))
	}
	return b.String()
}

func (r *Renderer) renderMatrix(m Matrix) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Border).
		Headers(m.Headers...).
		Rows(m.Rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.MatrixHead
			}
			return r.styles.MatrixCell
		})
	return t.Render()
}
