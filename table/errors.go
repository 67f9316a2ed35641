// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyColumnName is returned when a column name is empty or blank.
	ErrEmptyColumnName = errors.New("table: empty column name")

	// ErrDuplicateColumn is returned when a column name appears twice.
	ErrDuplicateColumn = errors.New("table: duplicate column name")

	// ErrUnknownColumn is returned when a referenced column does not exist.
	ErrUnknownColumn = errors.New("table: unknown column")

	// ErrRowWidth is returned when a row has a different width than the header.
	ErrRowWidth = errors.New("table: row width does not match columns")

	// ErrRowIndex is returned when a row index is out of range.
	ErrRowIndex = errors.New("table: row index out of range")

	// ErrNilTable is returned when a nil *Table is used.
	ErrNilTable = errors.New("table: nil table")
)

// tableErrorf wraps err with an operation tag and optional subject.
func tableErrorf(op, subject string, err error) error {
	if subject == "" {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s(%q): %w", op, subject, err)
}
