// SPDX-License-Identifier: MIT

package heatmap_test

import (
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/corrmap/heatmap"
	"github.com/katalvlaran/corrmap/table"
)

// build creates a table from ordered columns of raw cells.
func build(t *testing.T, names []string, cols ...[]string) *table.Table {
	t.Helper()

	tb, err := table.New(names...)
	require.NoError(t, err)
	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0])
	}
	for i := 0; i < rows; i++ {
		vals := make([]table.Value, len(cols))
		for j := range cols {
			vals[j] = table.Parse(cols[j][i])
		}
		require.NoError(t, tb.AppendRow(vals...))
	}

	return tb
}

// requireMasked asserts every i <= j cell is NaN.
func requireMasked(t *testing.T, z [][]float64) {
	t.Helper()

	for i := range z {
		require.Len(t, z[i], len(z))
		for j := i; j < len(z); j++ {
			require.True(t, math.IsNaN(z[i][j]), "(%d,%d) must be absent", i, j)
		}
	}
}

func TestBuild_MixedColumns(t *testing.T) {
	t.Parallel()

	tb := build(t, []string{"A", "B", "C"},
		[]string{"1", "2", "3"},
		[]string{"3", "2", "1"},
		[]string{"cat", "cat", "cat"},
	)
	spec, err := heatmap.Build(tb, "Title", heatmap.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B"}, spec.X)
	require.Equal(t, spec.X, spec.Y)
	requireMasked(t, spec.Z)
	require.Equal(t, -1.0, spec.Z[1][0])
}

func TestBuild_SingleColumn(t *testing.T) {
	t.Parallel()

	spec, err := heatmap.Build(build(t, []string{"X"}, []string{"1", "2", "3"}), "one")
	require.NoError(t, err)
	require.Equal(t, []string{"X"}, spec.X)
	require.Len(t, spec.Z, 1)
	require.True(t, math.IsNaN(spec.Z[0][0]))
}

func TestBuild_EmptyInputs(t *testing.T) {
	t.Parallel()

	noRows, err := table.New("A", "B")
	require.NoError(t, err)
	onlyText := build(t, []string{"Tm"}, []string{"LAL", "BOS"})

	for name, tb := range map[string]*table.Table{"no rows": noRows, "no numeric": onlyText, "nil": nil} {
		spec, err := heatmap.Build(tb, "empty")
		require.NoError(t, err, name)
		require.True(t, spec.Empty(), name)
		require.Zero(t, spec.Len(), name)
		require.NotNil(t, spec.X, name)
		require.NotNil(t, spec.Y, name)
		require.NotNil(t, spec.Z, name)
		require.Empty(t, spec.Z, name)
		require.Equal(t, "empty", spec.Title, name)
	}
}

func TestBuild_ZeroVariance(t *testing.T) {
	t.Parallel()

	tb := build(t, []string{"A", "B"}, []string{"5", "5", "5"}, []string{"1", "2", "3"})
	spec, err := heatmap.Build(tb, "flat")
	require.NoError(t, err)
	require.True(t, math.IsNaN(spec.Z[1][0]), "undefined correlation sentinel")
}

func TestBuild_ZeroVarianceFractional(t *testing.T) {
	t.Parallel()

	for _, c := range []string{"0.1", "0.7", "0.3333333333333333", ".45"} {
		tb := build(t, []string{"FG%", "PTS"},
			[]string{c, c, c, c},
			[]string{"10", "12", "7", "20"},
		)
		spec, err := heatmap.Build(tb, "flat fraction")
		require.NoError(t, err)
		require.Equal(t, 2, spec.Len())
		requireMasked(t, spec.Z)
		require.True(t, math.IsNaN(spec.Z[1][0]), "constant %s must be undefined, got %v", c, spec.Z[1][0])
	}
}

func TestBuild_LayoutDefaultsAndOptions(t *testing.T) {
	t.Parallel()

	tb := build(t, []string{"A", "B"}, []string{"1", "2", "4"}, []string{"2", "1", "0"})

	spec, err := heatmap.Build(tb, "defaults")
	require.NoError(t, err)
	require.Equal(t, -1.0, spec.ZMin)
	require.Equal(t, 1.0, spec.ZMax)
	require.Equal(t, 600, spec.Height)
	require.Equal(t, 800, spec.Width)
	require.Equal(t, "RdBu", spec.ColorScale)
	require.Equal(t, 1, spec.XGap)
	require.Equal(t, 1, spec.YGap)
	require.Equal(t, 0.5, spec.TitleX)
	require.True(t, spec.ReverseY)
	require.False(t, spec.ShowGridX)
	require.False(t, spec.ShowGridY)

	// Malformed bounds are passed through, not validated.
	spec, err = heatmap.Build(tb, "custom", heatmap.WithZRange(2, -3), heatmap.WithSize(0, -10))
	require.NoError(t, err)
	require.Equal(t, 2.0, spec.ZMin)
	require.Equal(t, -3.0, spec.ZMax)
	require.Equal(t, 0, spec.Height)
	require.Equal(t, -10, spec.Width)
}

func TestBuild_MissingDataPairwise(t *testing.T) {
	t.Parallel()

	tb := build(t, []string{"A", "B", "C"},
		[]string{"1", "2", "3", "4"},
		[]string{"2", "4", "6", ""},
		[]string{"", "", "1", "2"},
	)
	spec, err := heatmap.Build(tb, "gaps")
	require.NoError(t, err)
	require.InDelta(t, 1.0, spec.Z[1][0], 1e-12)
	require.InDelta(t, 1.0, spec.Z[2][0], 1e-12)
	require.True(t, math.IsNaN(spec.Z[2][1]), "one complete pair only")

	spec, err = heatmap.Build(tb, "gaps", heatmap.WithMinPeriods(4))
	require.NoError(t, err)
	require.True(t, math.IsNaN(spec.Z[1][0]))
}

func TestBuild_ColumnOrderAndIdempotence(t *testing.T) {
	t.Parallel()

	tb := build(t, []string{"Z", "name", "M", "A"},
		[]string{"1", "4", "2", "8", "5"},
		[]string{"a", "b", "c", "d", "e"},
		[]string{"3", "1", "4", "1", "5"},
		[]string{"9", "2", "6", "5", "3"},
	)

	first, err := heatmap.Build(tb, "t")
	require.NoError(t, err)
	require.Equal(t, []string{"Z", "M", "A"}, first.X)

	var wg sync.WaitGroup
	results := make([]heatmap.Spec, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = heatmap.Build(tb, "t")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		if diff := cmp.Diff(first, got, cmpopts.EquateNaNs()); diff != "" {
			t.Fatalf("non-deterministic spec (-first +got):\n%s", diff)
		}
	}

	// Returned specs do not share storage.
	results[0].Z[1][0] = 42
	results[0].X[0] = "mutated"
	require.NotEqual(t, 42.0, first.Z[1][0])
	require.Equal(t, "Z", first.X[0])
}
