// SPDX-License-Identifier: MIT

package table_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/corrmap/table"
	"github.com/stretchr/testify/require"
)

func TestDecode_RowsYAML(t *testing.T) {
	t.Parallel()

	doc := `
columns: [Player, Age, PTS]
rows:
  - [A. One, 25, 20.5]
  - [B. Two, ~, "11"]
`
	tb, err := table.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, []string{"Player", "Age", "PTS"}, tb.Columns())
	require.Equal(t, 2, tb.Len())
	require.Equal(t, []string{"Age", "PTS"}, tb.NumericColumns())

	v, err := tb.Cell(1, "Age")
	require.NoError(t, err)
	require.True(t, v.IsMissing())
}

func TestDecode_RowsJSON(t *testing.T) {
	t.Parallel()

	doc := `{"columns": ["A", "B", "C"], "rows": [[1, 3, "cat"], [2, 2, "cat"], [3, 1, "dog"]]}`
	tb, err := table.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, tb.NumericColumns())
}

func TestDecode_Records(t *testing.T) {
	t.Parallel()

	doc := `
records:
  - {Tm: LAL, PTS: 20, AST: 5}
  - {PTS: 10, Tm: BOS, STL: 1}
`
	tb, err := table.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, []string{"Tm", "PTS", "AST", "STL"}, tb.Columns())

	v, err := tb.Cell(1, "AST")
	require.NoError(t, err)
	require.True(t, v.IsMissing())

	explicit := "columns: [PTS, Tm]\nrecords:\n  - {Tm: LAL, PTS: 20}\n"
	tb, err = table.Decode(strings.NewReader(explicit))
	require.NoError(t, err)
	require.Equal(t, []string{"PTS", "Tm"}, tb.Columns())
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	_, err := table.Decode(strings.NewReader("columns: [A]\nrows:\n  - [1, 2]\n"))
	require.ErrorIs(t, err, table.ErrRowWidth)

	_, err = table.Decode(strings.NewReader("columns: [A]\nrows:\n  - [[1]]\n"))
	require.ErrorIs(t, err, table.ErrDocument)

	_, err = table.Decode(strings.NewReader("columns: [A]\nrows: [[1]]\nrecords: [{A: 1}]\n"))
	require.ErrorIs(t, err, table.ErrDocument)

	_, err = table.Decode(strings.NewReader("columns: [A, A]\n"))
	require.ErrorIs(t, err, table.ErrDuplicateColumn)

	tb, err := table.Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 0, tb.Width())
}
