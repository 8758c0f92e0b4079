package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"courtside/internal/domain"
)

const teamColumns = 3

// renderTeams draws the conference toggle and the grid of the active one
func (r *Renderer) renderTeams(state ViewState) string {
	east, west := r.styles.Button, r.styles.Button
	if state.Conference == domain.ConferenceWest {
		west = r.styles.ActiveBtn
	} else {
		east = r.styles.ActiveBtn
	}
	toggle := lipgloss.JoinHorizontal(lipgloss.Top,
		east.Render("Eastern"), " ", west.Render("Western"))

	var body string
	switch {
	case state.TeamsLoading && len(state.Teams) == 0:
		body = r.styles.Loading.Render(strings.TrimSpace(state.Spinner + " Loading teams..."))
	case state.TeamsError != "" && len(state.Teams) == 0:
		body = r.styles.Error.Render(state.TeamsError) + "\n" + r.styles.Dim.Render("Press r to retry.")
	case len(state.Teams) == 0:
		body = r.styles.Dim.Render("No teams in this conference.")
	default:
		body = TeamGrid(state.Teams, teamColumns, 28)
	}
	return toggle + "\n\n" + body
}

// TeamGrid lays team names out row by row in cols columns of width cells
func TeamGrid(teams []*domain.Team, cols, width int) string {
	if cols <= 0 {
		cols = 1
	}
	cell := lipgloss.NewStyle().Width(width)

	var rows []string
	for start := 0; start < len(teams); start += cols {
		end := min(start+cols, len(teams))
		cells := make([]string, 0, cols)
		for _, t := range teams[start:end] {
			name := t.FullName
			if t.Abbreviation != "" {
				name += " (" + t.Abbreviation + ")"
			}
			cells = append(cells, cell.Render(name))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
