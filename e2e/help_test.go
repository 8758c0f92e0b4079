//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	// --help exits before the UI starts, so no PTY is needed
	cmd := exec.Command(binPath, "--help")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.True(t, strings.Contains(output, "Usage"), "Help should contain usage information")
	require.Contains(t, output, "--server", "Help should describe the server flag")
	require.Contains(t, output, "--offset")
}

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.OpenHelp())
	require.True(t, tf.SeePlain("courtside help"), "Help should open in the pager")
	require.True(t, tf.SeePlain("Navigation"))

	// q leaves the pager and hands the terminal back to the app
	require.NoError(t, tf.Quit())
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, tf.SendKeys("2"))
	require.True(t, tf.SeePlain("Boston Celtics (BOS)"), "App should take keys again after the pager closes")
}
