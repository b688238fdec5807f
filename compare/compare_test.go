// SPDX-License-Identifier: MIT

package compare_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/compare"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/matrix"
	"github.com/katalvlaran/spantree/prim_kruskal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() *core.Graph {
	return core.MustGraph(4, []core.Edge{
		{Src: 0, Dst: 1, Weight: 10},
		{Src: 0, Dst: 2, Weight: 6},
		{Src: 0, Dst: 3, Weight: 5},
		{Src: 1, Dst: 3, Weight: 15},
		{Src: 2, Dst: 3, Weight: 4},
	})
}

func TestRun_Connected(t *testing.T) {
	c, err := compare.Run(context.Background(), square())
	require.NoError(t, err)

	assert.Equal(t, 4, c.Vertices)
	assert.Equal(t, 5, c.Edges)
	assert.True(t, c.KruskalRan)
	assert.True(t, c.PrimRan)
	assert.NoError(t, c.PrimErr)
	assert.Equal(t, int64(19), c.Kruskal.Total)
	assert.Equal(t, int64(19), c.Prim.Total)
	assert.True(t, c.Connected())
	assert.True(t, c.WeightsAgree())
	assert.Equal(t, 1, c.Components)
	assert.Nil(t, c.Unreached)
	assert.Contains(t, c.Verdict(), "same total weight")
}

func TestRun_Disconnected(t *testing.T) {
	c, err := compare.Run(context.Background(), core.MustGraph(2, nil))
	require.NoError(t, err, "Prim's disconnection is an outcome, not a run failure")

	assert.ErrorIs(t, c.PrimErr, prim_kruskal.ErrDisconnected)
	assert.Zero(t, c.Kruskal.Len())
	assert.False(t, c.Connected())
	assert.False(t, c.WeightsAgree())
	assert.Equal(t, 2, c.Components)
	assert.Equal(t, []int{1}, c.Unreached)
	assert.Contains(t, c.Verdict(), "not connected")
}

func TestRun_SingleMethod(t *testing.T) {
	c, err := compare.Run(context.Background(), square(), compare.WithMethod(prim_kruskal.MethodPrim), compare.WithRoot(1))
	require.NoError(t, err)
	assert.False(t, c.KruskalRan)
	assert.True(t, c.PrimRan)
	assert.Equal(t, 1, c.Root)
	assert.Equal(t, 1, c.Prim.Edges[0].Src)
	assert.False(t, c.Connected(), "unknown without Kruskal")
	assert.False(t, c.WeightsAgree())
	assert.Equal(t, "Only one algorithm was run.", c.Verdict())

	c, err = compare.Run(context.Background(), square(), compare.WithMethod(prim_kruskal.MethodKruskal))
	require.NoError(t, err)
	assert.True(t, c.KruskalRan)
	assert.False(t, c.PrimRan)
	assert.True(t, c.Connected())
}

func TestRun_ParallelEdgeDisagreement(t *testing.T) {
	g := core.MustGraph(2, []core.Edge{{Src: 0, Dst: 1, Weight: 1}, {Src: 0, Dst: 1, Weight: 4}})
	c, err := compare.Run(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, c.WeightsAgree())
	assert.Contains(t, c.Verdict(), "disagree")
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := compare.Run(ctx, nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, err = compare.Run(ctx, square(), compare.WithMethod("boruvka"))
	assert.ErrorIs(t, err, compare.ErrUnknownMethod)

	_, err = compare.Run(ctx, square(), compare.WithRoot(9))
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)

	reserved := core.MustGraph(2, []core.Edge{{Src: 0, Dst: 1, Weight: matrix.Infinity}})
	_, err = compare.Run(ctx, reserved)
	assert.ErrorIs(t, err, matrix.ErrReservedWeight)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = compare.Run(cancelled, square())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_LogsSolvers(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := compare.Run(context.Background(), square(), compare.WithLogger(logger))
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	solvers := map[interface{}]bool{}
	for _, e := range entries {
		assert.Equal(t, logrus.DebugLevel, e.Level)
		assert.Equal(t, int64(19), e.Data["total"])
		solvers[e.Data["solver"]] = true
	}
	assert.True(t, solvers[prim_kruskal.MethodKruskal])
	assert.True(t, solvers[prim_kruskal.MethodPrim])
}

func TestRun_RootCheckedFirst(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	c, err := compare.Run(context.Background(), square(), compare.WithRoot(9), compare.WithLogger(logger))
	assert.Nil(t, c)
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)
	assert.Contains(t, err.Error(), "root 9 with V=4")
	assert.Empty(t, hook.AllEntries(), "no solver may start")

	_, err = compare.Run(context.Background(), square(), compare.WithRoot(-1))
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)

	c, err = compare.Run(context.Background(), square(), compare.WithRoot(9),
		compare.WithMethod(prim_kruskal.MethodKruskal))
	require.NoError(t, err, "Kruskal ignores the root")
	assert.Equal(t, int64(19), c.Kruskal.Total)
}

func TestNotes(t *testing.T) {
	notes := compare.Notes()
	require.Len(t, notes, 3)
	assert.Equal(t, "Kruskal's Algorithm", notes[0].Title)
	assert.Contains(t, notes[1].Points, "Requires the graph to be connected.")
	assert.Len(t, notes[2].Points, 2)
}

func TestRun_ComponentsMatchForest(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := builder.MustBuild(
			[]builder.Option{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(-5, 20))},
			builder.RandomSparse(12, 0.12),
			builder.Isolated(1),
		)
		c, err := compare.Run(context.Background(), g)
		require.NoError(t, err)
		assert.Equal(t, c.Vertices-c.Kruskal.Len(), c.Components, "seed %d", seed)
		if c.PrimErr != nil {
			assert.Contains(t, c.Unreached, 12, "the isolated vertex is never reached")
		}
	}
}
