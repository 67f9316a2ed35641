// SPDX-License-Identifier: MIT

package table

import (
	"math"
	"strings"

	"github.com/katalvlaran/corrmap/matrix"
)

// ColumnKind classifies a whole column from its cells.
type ColumnKind uint8

const (
	// ColumnEmpty has no present cells.
	ColumnEmpty ColumnKind = iota
	// ColumnNumeric has at least one number and no category cells.
	ColumnNumeric
	// ColumnCategory has at least one category cell.
	ColumnCategory
)

// String implements fmt.Stringer.
func (k ColumnKind) String() string {
	switch k {
	case ColumnNumeric:
		return "numeric"
	case ColumnCategory:
		return "category"
	default:
		return "empty"
	}
}

// Table is an Observation Table: ordered columns, rows of cells.
type Table struct {
	columns []string       // header, in order
	index   map[string]int // column name -> position
	rows    [][]Value      // each row has len(columns) cells
}

// New creates an empty table with the given ordered columns.
//
// Errors:
//   - ErrEmptyColumnName for blank names.
//   - ErrDuplicateColumn when a name repeats.
func New(columns ...string) (*Table, error) {
	idx := make(map[string]int, len(columns))
	for i, name := range columns {
		if strings.TrimSpace(name) == "" {
			return nil, tableErrorf("New", name, ErrEmptyColumnName)
		}
		if _, dup := idx[name]; dup {
			return nil, tableErrorf("New", name, ErrDuplicateColumn)
		}
		idx[name] = i
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	return &Table{columns: cols, index: idx}, nil
}

// AppendRow adds one row; len(vals) must equal the column count.
func (t *Table) AppendRow(vals ...Value) error {
	if t == nil {
		return tableErrorf("AppendRow", "", ErrNilTable)
	}
	if len(vals) != len(t.columns) {
		return tableErrorf("AppendRow", "", ErrRowWidth)
	}
	row := make([]Value, len(vals))
	copy(row, vals)
	t.rows = append(t.rows, row)

	return nil
}

// AppendRecord adds one row given as a column→value mapping.
// Columns absent from rec are missing; keys that are not columns are rejected.
func (t *Table) AppendRecord(rec map[string]Value) error {
	if t == nil {
		return tableErrorf("AppendRecord", "", ErrNilTable)
	}
	row := make([]Value, len(t.columns))
	for name, v := range rec {
		j, ok := t.index[name]
		if !ok {
			return tableErrorf("AppendRecord", name, ErrUnknownColumn)
		}
		row[j] = v
	}
	t.rows = append(t.rows, row)

	return nil
}

// Columns returns a copy of the ordered column names.
func (t *Table) Columns() []string {
	if t == nil {
		return []string{}
	}
	out := make([]string, len(t.columns))
	copy(out, t.columns)

	return out
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.rows)
}

// Width returns the number of columns.
func (t *Table) Width() int {
	if t == nil {
		return 0
	}

	return len(t.columns)
}

// Has reports whether the column exists.
func (t *Table) Has(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[name]

	return ok
}

// Cell returns the value at (row, column name).
func (t *Table) Cell(row int, col string) (Value, error) {
	if t == nil {
		return Value{}, tableErrorf("Cell", col, ErrNilTable)
	}
	j, ok := t.index[col]
	if !ok {
		return Value{}, tableErrorf("Cell", col, ErrUnknownColumn)
	}
	if row < 0 || row >= len(t.rows) {
		return Value{}, tableErrorf("Cell", col, ErrRowIndex)
	}

	return t.rows[row][j], nil
}

// Row returns row i as a column→value mapping.
func (t *Table) Row(i int) (map[string]Value, error) {
	if t == nil {
		return nil, tableErrorf("Row", "", ErrNilTable)
	}
	if i < 0 || i >= len(t.rows) {
		return nil, tableErrorf("Row", "", ErrRowIndex)
	}
	out := make(map[string]Value, len(t.columns))
	for j, name := range t.columns {
		out[name] = t.rows[i][j]
	}

	return out, nil
}

// Column returns a copy of the named column's cells.
func (t *Table) Column(name string) ([]Value, error) {
	if t == nil {
		return nil, tableErrorf("Column", name, ErrNilTable)
	}
	j, ok := t.index[name]
	if !ok {
		return nil, tableErrorf("Column", name, ErrUnknownColumn)
	}
	out := make([]Value, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[j]
	}

	return out, nil
}

// ColumnKind classifies the named column.
func (t *Table) ColumnKind(name string) (ColumnKind, error) {
	if t == nil {
		return ColumnEmpty, tableErrorf("ColumnKind", name, ErrNilTable)
	}
	j, ok := t.index[name]
	if !ok {
		return ColumnEmpty, tableErrorf("ColumnKind", name, ErrUnknownColumn)
	}

	return t.kindAt(j), nil
}

func (t *Table) kindAt(j int) ColumnKind {
	kind := ColumnEmpty
	for _, row := range t.rows {
		switch row[j].kind {
		case KindCategory:
			return ColumnCategory
		case KindNumber:
			kind = ColumnNumeric
		}
	}

	return kind
}

// NumericColumns returns the numeric columns in table order.
// The result is empty (non-nil) for nil tables and tables with no rows.
func (t *Table) NumericColumns() []string {
	out := []string{}
	if t == nil {
		return out
	}
	for j, name := range t.columns {
		if t.kindAt(j) == ColumnNumeric {
			out = append(out, name)
		}
	}

	return out
}

// Numeric extracts the named columns into a rows×len(cols) observation
// matrix, in the given order. Missing and category cells become NaN.
func (t *Table) Numeric(cols []string) (*matrix.Dense, error) {
	if t == nil {
		return nil, tableErrorf("Numeric", "", ErrNilTable)
	}
	pos := make([]int, len(cols))
	for k, name := range cols {
		j, ok := t.index[name]
		if !ok {
			return nil, tableErrorf("Numeric", name, ErrUnknownColumn)
		}
		pos[k] = j
	}

	c := len(cols)
	data := make([]float64, len(t.rows)*c)
	nan := math.NaN()
	for i, row := range t.rows {
		for k, j := range pos {
			if f, ok := row[j].Float(); ok {
				data[i*c+k] = f
			} else {
				data[i*c+k] = nan
			}
		}
	}

	return matrix.NewDenseFrom(len(t.rows), c, data, matrix.WithNoValidateNaNInf())
}

// clone returns a table with the same header and copied rows.
func (t *Table) clone() *Table {
	out := &Table{
		columns: make([]string, len(t.columns)),
		index:   make(map[string]int, len(t.index)),
		rows:    make([][]Value, len(t.rows)),
	}
	copy(out.columns, t.columns)
	for k, v := range t.index {
		out.index[k] = v
	}
	for i, row := range t.rows {
		r := make([]Value, len(row))
		copy(r, row)
		out.rows[i] = r
	}

	return out
}
