// SPDX-License-Identifier: MIT

package table

import "sort"

// Facets maps a categorical column to the set of values a row may hold in it.
// Rows must match every listed facet (AND across columns) and any value of a
// facet (OR within a column). A facet listed with an empty set matches no row;
// a nil or empty Facets matches every row.
type Facets map[string][]string

// Filter returns the rows that satisfy f, preserving row order.
// Matching is exact and case-sensitive against Value.String; missing cells
// never match.
func (t *Table) Filter(f Facets) (*Table, error) {
	if t == nil {
		return nil, tableErrorf("Filter", "", ErrNilTable)
	}

	type check struct {
		col     int
		allowed map[string]struct{}
	}
	checks := make([]check, 0, len(f))
	for name, allowed := range f {
		j, ok := t.index[name]
		if !ok {
			return nil, tableErrorf("Filter", name, ErrUnknownColumn)
		}
		set := make(map[string]struct{}, len(allowed))
		for _, a := range allowed {
			set[a] = struct{}{}
		}
		checks = append(checks, check{col: j, allowed: set})
	}

	out := t.clone()
	kept := out.rows[:0]
	for _, row := range out.rows {
		pass := true
		for _, c := range checks {
			cell := row[c.col]
			if cell.kind == KindMissing {
				pass = false
				break
			}
			if _, ok := c.allowed[cell.String()]; !ok {
				pass = false
				break
			}
		}
		if pass {
			kept = append(kept, row)
		}
	}
	out.rows = kept

	return out, nil
}

// Distinct returns the sorted unique display forms of the column's present cells.
func (t *Table) Distinct(col string) ([]string, error) {
	vals, err := t.Column(col)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v.IsMissing() {
			continue
		}
		s := v.String()
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)

	return out, nil
}
