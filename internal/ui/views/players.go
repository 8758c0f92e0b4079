package views

import (
	"fmt"
	"strings"
)

// renderPlayers draws the players table with its load-more footer
func (r *Renderer) renderPlayers(state ViewState) string {
	var b strings.Builder

	if state.SearchQuery != "" {
		b.WriteString(r.styles.Highlight.Render(fmt.Sprintf("Search: %s", state.SearchQuery)))
		b.WriteString("\n")
	}

	if state.PlayersCount == 0 && !state.PlayersLoading {
		b.WriteString(r.styles.Dim.Render("No players to show."))
		b.WriteString("\n")
	} else {
		b.WriteString(state.PlayersTable)
		b.WriteString("\n")
	}

	label := state.PlayersLabel
	if state.PlayersLoading {
		label = strings.TrimSpace(state.Spinner + " " + label)
	}
	b.WriteString(r.styles.Button.Render(label))
	b.WriteString(" ")
	b.WriteString(r.styles.Dim.Render(fmt.Sprintf("%d shown", state.PlayersCount)))
	return b.String()
}
