// SPDX-License-Identifier: MIT

package table

// DropColumns returns a copy without the named columns.
// Every name must exist (ErrUnknownColumn otherwise).
func (t *Table) DropColumns(names ...string) (*Table, error) {
	if t == nil {
		return nil, tableErrorf("DropColumns", "", ErrNilTable)
	}
	drop := make(map[int]struct{}, len(names))
	for _, name := range names {
		j, ok := t.index[name]
		if !ok {
			return nil, tableErrorf("DropColumns", name, ErrUnknownColumn)
		}
		drop[j] = struct{}{}
	}

	keep := make([]int, 0, len(t.columns)-len(drop))
	cols := make([]string, 0, len(t.columns)-len(drop))
	for j, name := range t.columns {
		if _, gone := drop[j]; !gone {
			keep = append(keep, j)
			cols = append(cols, name)
		}
	}

	out, err := New(cols...)
	if err != nil {
		return nil, tableErrorf("DropColumns", "", err)
	}
	out.rows = make([][]Value, len(t.rows))
	for i, row := range t.rows {
		r := make([]Value, len(keep))
		for k, j := range keep {
			r[k] = row[j]
		}
		out.rows[i] = r
	}

	return out, nil
}

// DropHeaderRows returns a copy without the rows whose cell in col equals the
// literal column name. Scraped tables repeat their header every few rows;
// those repeats parse as ordinary rows of text.
func (t *Table) DropHeaderRows(col string) (*Table, error) {
	if t == nil {
		return nil, tableErrorf("DropHeaderRows", col, ErrNilTable)
	}
	j, ok := t.index[col]
	if !ok {
		return nil, tableErrorf("DropHeaderRows", col, ErrUnknownColumn)
	}

	out := t.clone()
	kept := out.rows[:0]
	for _, row := range out.rows {
		if row[j].kind == KindCategory && row[j].str == col {
			continue
		}
		kept = append(kept, row)
	}
	out.rows = kept

	return out, nil
}

// FillMissing returns a copy with every missing cell replaced by v.
func (t *Table) FillMissing(v Value) (*Table, error) {
	if t == nil {
		return nil, tableErrorf("FillMissing", "", ErrNilTable)
	}
	out := t.clone()
	for _, row := range out.rows {
		for j := range row {
			if row[j].kind == KindMissing {
				row[j] = v
			}
		}
	}

	return out, nil
}
