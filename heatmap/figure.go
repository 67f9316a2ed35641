// SPDX-License-Identifier: MIT

package heatmap

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
)

// autorangeReversed is Plotly's value for a top-to-bottom axis.
const autorangeReversed = "reversed"

// Grid is a row-major float grid whose NaN cells marshal as JSON null.
type Grid [][]float64

// MarshalJSON implements json.Marshaler.
func (g Grid) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 16*len(g)*len(g))
	buf = append(buf, '[')
	for i, row := range g {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '[')
		for j, v := range row {
			if j > 0 {
				buf = append(buf, ',')
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				buf = append(buf, "null"...)
				continue
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		buf = append(buf, ']')
	}
	buf = append(buf, ']')

	return buf, nil
}

// FigureDoc is a Plotly figure: one heatmap trace plus layout.
type FigureDoc struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a Plotly heatmap trace.
type Trace struct {
	Type       string   `json:"type"`
	Z          Grid     `json:"z"`
	X          []string `json:"x"`
	Y          []string `json:"y"`
	ZMin       float64  `json:"zmin"`
	ZMax       float64  `json:"zmax"`
	XGap       int      `json:"xgap"`
	YGap       int      `json:"ygap"`
	ColorScale string   `json:"colorscale"`
}

// Layout is the subset of Plotly layout the heatmap uses.
type Layout struct {
	Title  Title `json:"title"`
	Width  int   `json:"width"`
	Height int   `json:"height"`
	XAxis  Axis  `json:"xaxis"`
	YAxis  Axis  `json:"yaxis"`
}

// Title is a Plotly layout title.
type Title struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
}

// Axis is a Plotly axis.
type Axis struct {
	ShowGrid  bool   `json:"showgrid"`
	AutoRange string `json:"autorange,omitempty"`
}

// Figure converts a Spec into a Plotly figure document.
func Figure(s Spec) FigureDoc {
	yaxis := Axis{ShowGrid: s.ShowGridY}
	if s.ReverseY {
		yaxis.AutoRange = autorangeReversed
	}

	return FigureDoc{
		Data: []Trace{{
			Type:       "heatmap",
			Z:          nonNilGrid(s.Z),
			X:          nonNil(s.X),
			Y:          nonNil(s.Y),
			ZMin:       s.ZMin,
			ZMax:       s.ZMax,
			XGap:       s.XGap,
			YGap:       s.YGap,
			ColorScale: s.ColorScale,
		}},
		Layout: Layout{
			Title:  Title{Text: s.Title, X: s.TitleX},
			Width:  s.Width,
			Height: s.Height,
			XAxis:  Axis{ShowGrid: s.ShowGridX},
			YAxis:  yaxis,
		},
	}
}

// WriteFigure writes the Plotly figure of s to w as indented JSON.
func WriteFigure(w io.Writer, s Spec) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(Figure(s))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

func nonNilGrid(g [][]float64) Grid {
	if g == nil {
		return Grid{}
	}

	return Grid(g)
}
