// SPDX-License-Identifier: MIT

package table

import (
	"math"
	"strconv"
	"strings"
)

// Kind classifies a single cell.
type Kind uint8

const (
	// KindMissing marks an absent observation.
	KindMissing Kind = iota
	// KindNumber marks a finite numeric observation.
	KindNumber
	// KindCategory marks a non-numeric (categorical or free-text) observation.
	KindCategory
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindCategory:
		return "category"
	default:
		return "missing"
	}
}

// Value is one immutable table cell.
// The zero Value is missing.
type Value struct {
	kind Kind
	num  float64
	str  string
}

// Number returns a numeric cell. NaN and ±Inf become missing.
func Number(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Missing()
	}

	return Value{kind: KindNumber, num: f}
}

// Category returns a categorical cell holding s verbatim.
func Category(s string) Value { return Value{kind: KindCategory, str: s} }

// Missing returns an absent cell.
func Missing() Value { return Value{} }

// missingTokens are the literal spellings Parse treats as absent.
var missingTokens = map[string]struct{}{
	"":     {},
	"nan":  {},
	"null": {},
	"na":   {},
	"n/a":  {},
}

// Parse classifies a raw text cell: blank and NaN-like tokens are missing,
// text that parses as a finite float64 is a number, anything else is a category.
// Surrounding whitespace is trimmed first.
func Parse(raw string) Value {
	s := strings.TrimSpace(raw)
	if _, ok := missingTokens[strings.ToLower(s)]; ok {
		return Missing()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return Category(s)
	}

	return Number(f)
}

// Kind reports the cell kind.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the cell is absent.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Float returns the numeric payload and true for number cells.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}

	return v.num, true
}

// String returns the display form: the category text, the shortest float
// formatting for numbers, and "" for missing cells.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindCategory:
		return v.str
	default:
		return ""
	}
}
