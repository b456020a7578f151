// Package weight computes the pick-weight used by given-clause selection:
// a per-symbol weight table, summed over a term's symbol occurrences, and
// summed again over a clause's literal atoms.
package weight

import (
	"math"

	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/symbol"
	"github.com/xDarkicex/foras/term"
)

// DefaultWeight is the weight assigned to a symbol with no explicit entry
// and to every variable occurrence.
const DefaultWeight int32 = 1

// Table holds per-symbol weights plus a default for unlisted symbols.
type Table struct {
	weights map[symbol.ID]int32
	Default int32
}

// NewTable creates a table with DefaultWeight as the default.
func NewTable() *Table {
	return &Table{weights: make(map[symbol.ID]int32), Default: DefaultWeight}
}

// SetWeight fixes the weight of a specific symbol.
func (t *Table) SetWeight(sym symbol.ID, w int32) {
	t.weights[sym] = w
}

// SetDefault sets the weight used for symbols with no explicit entry.
func (t *Table) SetDefault(w int32) {
	t.Default = w
}

func (t *Table) symbolWeight(sym symbol.ID) int32 {
	if w, ok := t.weights[sym]; ok {
		return w
	}
	return t.Default
}

// WeightTerm returns the symbol weight plus the (saturating) sum of child
// weights; a variable's weight is the table default.
func (t *Table) WeightTerm(tm term.Term) int32 {
	switch n := tm.(type) {
	case term.Variable:
		return t.Default
	case term.App:
		total := t.symbolWeight(n.Symbol)
		for _, arg := range n.Args {
			total = saturatingAdd(total, t.WeightTerm(arg))
		}
		return total
	default:
		return t.Default
	}
}

// WeightClause sums the weight of every literal's atom across the clause.
func (t *Table) WeightClause(c clause.Clause) int32 {
	var total int32
	for _, lit := range c.Literals {
		total = saturatingAdd(total, t.WeightTerm(lit.Atom))
	}
	return total
}

// saturatingAdd adds a and b, clamping to math.MaxInt32 on overflow.
func saturatingAdd(a, b int32) int32 {
	sum := int64(a) + int64(b)
	if sum > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(sum)
}
