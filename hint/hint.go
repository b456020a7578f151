// Package hint implements hint-biased clause weighting: a list of "hint"
// clauses that resemble intended proof steps, used to nudge given-clause
// selection toward the clauses that look like them.
package hint

import (
	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/subsume"
)

// Data carries the six threshold/additive parameters associated with one
// hint clause: a weight threshold and an additive adjustment for each of
// the three ways a generated clause can resemble the hint (it forward
// subsumes the hint, the hint subsumes it, or the two are equivalent).
type Data struct {
	FSubWt, FSubAddWt   int32
	BSubWt, BSubAddWt   int32
	EquivWt, EquivAddWt int32
}

// Entry pairs a hint clause with its weighting parameters.
type Entry struct {
	Clause clause.Clause
	Data   Data
}

// List is the ordered collection of hints loaded for a search.
type List struct {
	Entries []Entry
}

// New creates an empty hints list.
func New() *List {
	return &List{}
}

// Add appends a hint clause with its weighting data.
func (l *List) Add(c clause.Clause, d Data) {
	l.Entries = append(l.Entries, Entry{Clause: c, Data: d})
}

// AdjustWeight returns weight adjusted by every hint c resembles: for each
// hint, if c forward-subsumes it (c is at least as general), the weight
// already at or under FSubWt gains FSubAddWt; if the hint subsumes c (c is
// a specialisation of something we expected), under BSubWt gains
// BSubAddWt; if both hold (equivalence), under EquivWt gains EquivAddWt
// instead of double-counting the first two. Adjustments are additive and
// applied in hint order; the result may be negative, which is intentional
// -- it only ever feeds weight-based selection, never a iterals count.
func AdjustWeight(c clause.Clause, weight int32, hints *List) int32 {
	if hints == nil {
		return weight
	}
	for _, h := range hints.Entries {
		fsub := subsumes(c, h.Clause)
		bsub := subsumes(h.Clause, c)
		switch {
		case fsub && bsub:
			if weight <= h.Data.EquivWt {
				weight += h.Data.EquivAddWt
			}
		case fsub:
			if weight <= h.Data.FSubWt {
				weight += h.Data.FSubAddWt
			}
		case bsub:
			if weight <= h.Data.BSubWt {
				weight += h.Data.BSubAddWt
			}
		}
	}
	return weight
}

// KeepTest reports whether c should bypass a max-weight discard because it
// subsumes or is equivalent to some hint and the corresponding
// keep-override flag is enabled.
func KeepTest(c clause.Clause, hints *List, keepSubsumers, keepEquivalents bool) bool {
	if hints == nil || (!keepSubsumers && !keepEquivalents) {
		return false
	}
	for _, h := range hints.Entries {
		fsub := subsumes(c, h.Clause)
		bsub := subsumes(h.Clause, c)
		if keepEquivalents && fsub && bsub {
			return true
		}
		if keepSubsumers && fsub {
			return true
		}
	}
	return false
}

func subsumes(c, d clause.Clause) bool {
	return subsume.ForwardSubsumed(d, []clause.Clause{c})
}
