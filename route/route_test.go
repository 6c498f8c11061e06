package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/route"
)

func TestReconstruct(t *testing.T) {
	prev := map[string]string{"B": "A", "J": "B"}

	path, err := route.Reconstruct(prev, "A", "J", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "J"}, path)
}

func TestReconstruct_SourceEqualsDestination(t *testing.T) {
	path, err := route.Reconstruct(map[string]string{}, "A", "A", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestReconstruct_MissingPredecessor(t *testing.T) {
	// Chain J←B, but B has no predecessor and is not the source.
	_, err := route.Reconstruct(map[string]string{"J": "B"}, "A", "J", 5)
	assert.ErrorIs(t, err, route.ErrBrokenChain)

	// Empty-string predecessors are treated as missing.
	_, err = route.Reconstruct(map[string]string{"J": ""}, "A", "J", 5)
	assert.ErrorIs(t, err, route.ErrBrokenChain)
}

func TestReconstruct_CycleHitsLimit(t *testing.T) {
	// B and C point at each other and never reach A.
	prev := map[string]string{"B": "C", "C": "B"}
	_, err := route.Reconstruct(prev, "A", "B", 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, route.ErrBrokenChain)
	assert.Contains(t, err.Error(), "gave up after 4 steps")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "found", route.Found.String())
	assert.Equal(t, "unreachable", route.Unreachable.String())
	assert.Equal(t, "Status(7)", route.Status(7).String())

	assert.True(t, route.Result{Status: route.Found}.Found())
	assert.False(t, route.Result{}.Found())
}
