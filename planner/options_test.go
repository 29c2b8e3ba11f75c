package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/M-Podi/reeds-shepp-curves/planner"
)

func TestParseMethod(t *testing.T) {
	m, err := planner.ParseMethod("exact")
	require.NoError(t, err)
	require.Equal(t, planner.MethodExact, m)

	m, err = planner.ParseMethod("greedy")
	require.NoError(t, err)
	require.Equal(t, planner.MethodGreedy, m)

	for _, bad := range []string{"", "EXACT", "annealing"} {
		_, err = planner.ParseMethod(bad)
		require.ErrorIs(t, err, planner.ErrUnknownMethod)
	}
}

func TestMethodString(t *testing.T) {
	require.Equal(t, "exact", planner.MethodExact.String())
	require.Equal(t, "greedy", planner.MethodGreedy.String())
	require.Equal(t, "unknown", planner.Method(99).String())
}
