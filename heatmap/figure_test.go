// SPDX-License-Identifier: MIT

package heatmap_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/corrmap/heatmap"
)

func TestGrid_MarshalNaNAsNull(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	raw, err := json.Marshal(heatmap.Grid{{nan, nan}, {-0.5, nan}})
	require.NoError(t, err)
	require.JSONEq(t, `[[null,null],[-0.5,null]]`, string(raw))

	raw, err = json.Marshal(heatmap.Grid{})
	require.NoError(t, err)
	require.Equal(t, `[]`, string(raw))
}

func TestWriteFigure(t *testing.T) {
	t.Parallel()

	tb := build(t, []string{"A", "B", "C"},
		[]string{"1", "2", "3"},
		[]string{"3", "2", "1"},
		[]string{"cat", "cat", "cat"},
	)
	spec, err := heatmap.Build(tb, "Intercorrelation")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, heatmap.WriteFigure(&buf, spec))

	want := `{
	  "data": [{
	    "type": "heatmap",
	    "z": [[null, null], [-1, null]],
	    "x": ["A", "B"],
	    "y": ["A", "B"],
	    "zmin": -1, "zmax": 1,
	    "xgap": 1, "ygap": 1,
	    "colorscale": "RdBu"
	  }],
	  "layout": {
	    "title": {"text": "Intercorrelation", "x": 0.5},
	    "width": 800, "height": 600,
	    "xaxis": {"showgrid": false},
	    "yaxis": {"showgrid": false, "autorange": "reversed"}
	  }
	}`
	require.JSONEq(t, want, buf.String())
}

func TestFigure_EmptySpec(t *testing.T) {
	t.Parallel()

	fig := heatmap.Figure(heatmap.Spec{})
	raw, err := json.Marshal(fig)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	trace := doc["data"].([]any)[0].(map[string]any)
	require.Equal(t, []any{}, trace["z"])
	require.Equal(t, []any{}, trace["x"])

	layout := doc["layout"].(map[string]any)
	_, hasAutorange := layout["yaxis"].(map[string]any)["autorange"]
	require.False(t, hasAutorange, "zero Spec does not request reversal")
}
