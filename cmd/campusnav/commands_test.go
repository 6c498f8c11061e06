package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/internal/config"
	"github.com/katalvlaran/campusnav/navigator"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRouteCommand(t *testing.T) {
	out, _, err := execute(t, "", "route", "A", "Z")
	require.NoError(t, err)
	assert.Equal(t,
		"Shortest path from Main Gate to Coffee Hut:\n"+
			"Main Gate -> Main Gate Left Road -> Industrial Dept -> Civil Road -> High Voltage Lab -> "+
			"Transportation Eng/Soil Mechanics -> Structural Eng Dept -> Ocean Management -> Mining Dept -> "+
			"Power System Engineering -> Coffee Hut\n"+
			"Total distance: 822 meters\n",
		out)
}

func TestRouteCommand_Unreachable(t *testing.T) {
	out, _, err := execute(t, "", "route", "M", "L")
	require.NoError(t, err)
	assert.Equal(t, "No path found between Library and RCC.\n", out)
}

func TestRouteCommand_InvalidID(t *testing.T) {
	_, errOut, err := execute(t, "", "route", "A", "ZZ")
	assert.ErrorIs(t, err, navigator.ErrInvalidNodeID)
	assert.Contains(t, errOut, "invalid node ID")
}

func TestRouteCommand_Dijkstra(t *testing.T) {
	out, _, err := execute(t, "", "--algorithm", "dijkstra", "route", "A", "X")
	require.NoError(t, err)
	assert.Contains(t, out, "Total distance: 703 meters\n")
}

func TestNodesCommand(t *testing.T) {
	out, _, err := execute(t, "", "nodes")
	require.NoError(t, err)
	assert.Equal(t, 39, strings.Count(out, "\n"))
	assert.True(t, strings.HasPrefix(out, "A: Main Gate\n"))
}

func TestReachCommand(t *testing.T) {
	out, _, err := execute(t, "", "reach", "L")
	require.NoError(t, err)
	assert.Equal(t, "Reachable from RCC (1):\nM: Library\n", out)

	out, _, err = execute(t, "", "reach", "M")
	require.NoError(t, err)
	assert.Equal(t, "No places reachable from Library.\n", out)
}

func TestDefaultCommandRunsMenu(t *testing.T) {
	out, _, err := execute(t, "2\nI\nH\n4\n")
	require.NoError(t, err)
	assert.Contains(t, out, "--- Campus Navigation System ---")
	assert.Contains(t, out, "Total distance: 50 meters")
	assert.Contains(t, out, "Exiting...")
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campusnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: dijkstra\nlog:\n  level: debug\n  format: json\n"), 0o600))

	_, errOut, err := execute(t, "", "--config", path, "route", "A", "J")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"algorithm":"dijkstra"`)

	_, errOut, err = execute(t, "", "--config", path, "--algorithm", "bellman-ford", "route", "A", "J")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"algorithm":"bellman-ford"`)
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := execute(t, "", "--log-format", "xml", "nodes")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "absent.yaml"), "nodes")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestArgsValidation(t *testing.T) {
	_, _, err := execute(t, "", "route", "A")
	assert.Error(t, err)

	_, _, err = execute(t, "", "serve", "extra")
	assert.Error(t, err)
}
