//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPlayersSeededOnStartup(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.True(t, tf.SeePlain("courtside"), "Should show title")
	require.True(t, tf.SeePlain("Fixture Player 05"), "Should show the seeded page")
	require.True(t, tf.SeePlain("Load More Players"), "Should show the load more button")
	require.NotContains(t, tf.SnapshotPlain(), "Fixture Player 06", "Only the first page is seeded")
}

func TestLoadMoreUntilExhausted(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("5 shown"))

	require.NoError(t, tf.LoadMore())
	require.NoError(t, tf.WaitForE(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), "10 shown")
	}, 3*time.Second, "second page never arrived"))
	require.True(t, tf.SeePlain("Fixture Player 10"))

	require.NoError(t, tf.LoadMore())
	require.True(t, tf.SeePlain("12 shown"), "Short page is appended")

	require.NoError(t, tf.LoadMore())
	require.True(t, tf.SeePlain("No more players"), "Empty page exhausts the list")

	// an exhausted list stops asking
	before := len(tf.server.Requests())
	require.NoError(t, tf.LoadMore())
	time.Sleep(300 * time.Millisecond)
	require.Equal(t, before, len(tf.server.Requests()))
}

func TestSearchRestartsFromFirstPage(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.SendKeys("/"))
	require.True(t, tf.SeePlain("Search players:"), "Should show the search prompt")
	require.NoError(t, tf.SendKeys("Player 1"))
	require.NoError(t, tf.Enter())

	require.True(t, tf.SeePlain("Search: Player 1"), "Should show the active query")
	require.True(t, tf.SeePlain("3 shown"), "Should show players 10 through 12")

	var found bool
	for _, r := range tf.server.Requests() {
		if strings.Contains(r, "offset=0&q=Player+1") {
			found = true
		}
	}
	require.True(t, found, "Search should reload from offset 0")
}
