// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrDocument is returned when a table document is structurally invalid.
var ErrDocument = errors.New("table: invalid document")

// document is the YAML/JSON wire shape. Exactly one of Rows or Records is used;
// Columns is required with Rows and optional with Records.
//
//	columns: [Player, Pos, Age]
//	rows:
//	  - [A. Smith, C, 25]
//
//	records:
//	  - {Player: A. Smith, Pos: C, Age: 25}
type document struct {
	Columns []string      `yaml:"columns"`
	Rows    [][]yaml.Node `yaml:"rows"`
	Records []yaml.Node   `yaml:"records"`
}

// Decode reads one YAML (or JSON) table document from r.
// Scalars go through Parse; null scalars are missing. In the records form,
// column order is the columns list when given, otherwise first-seen key order.
func Decode(r io.Reader) (*Table, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New()
		}

		return nil, fmt.Errorf("Decode: %w", err)
	}
	if len(doc.Rows) > 0 && len(doc.Records) > 0 {
		return nil, fmt.Errorf("Decode: both rows and records: %w", ErrDocument)
	}
	if len(doc.Records) > 0 {
		return decodeRecords(doc)
	}

	t, err := New(doc.Columns...)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	for i, raw := range doc.Rows {
		vals := make([]Value, len(raw))
		for j := range raw {
			if vals[j], err = cellOf(&raw[j]); err != nil {
				return nil, fmt.Errorf("Decode: row %d col %d: %w", i, j, err)
			}
		}
		if err = t.AppendRow(vals...); err != nil {
			return nil, fmt.Errorf("Decode: row %d: %w", i, err)
		}
	}

	return t, nil
}

func decodeRecords(doc document) (*Table, error) {
	cols := doc.Columns
	if len(cols) == 0 {
		seen := make(map[string]struct{})
		for i := range doc.Records {
			n := &doc.Records[i]
			if n.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("Decode: record %d: %w", i, ErrDocument)
			}
			for k := 0; k+1 < len(n.Content); k += 2 {
				key := n.Content[k].Value
				if _, ok := seen[key]; !ok {
					seen[key] = struct{}{}
					cols = append(cols, key)
				}
			}
		}
	}

	t, err := New(cols...)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	for i := range doc.Records {
		n := &doc.Records[i]
		if n.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("Decode: record %d: %w", i, ErrDocument)
		}
		rec := make(map[string]Value, len(n.Content)/2)
		for k := 0; k+1 < len(n.Content); k += 2 {
			v, err := cellOf(n.Content[k+1])
			if err != nil {
				return nil, fmt.Errorf("Decode: record %d key %q: %w", i, n.Content[k].Value, err)
			}
			rec[n.Content[k].Value] = v
		}
		if err = t.AppendRecord(rec); err != nil {
			return nil, fmt.Errorf("Decode: record %d: %w", i, err)
		}
	}

	return t, nil
}

// cellOf converts one scalar node into a Value.
func cellOf(n *yaml.Node) (Value, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return Value{}, ErrDocument
	}
	if n.ShortTag() == "!!null" {
		return Missing(), nil
	}

	return Parse(n.Value), nil
}
