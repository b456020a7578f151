package infer

import (
	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/subst"
)

// UnitDeletionResult is the outcome of a successful forward unit deletion.
type UnitDeletionResult struct {
	Clause  clause.Clause
	Parents []clause.ID
}

// ForwardUnitDeletion removes from c every literal L' for which some unit
// clause in pool has a literal L of opposite sign that one-sided-matches
// L' (pattern=L, subject=L'). Reports ok=false if nothing was removed.
// Emptying c entirely (all literals matched away) yields the empty clause,
// which the caller recognises as a proof.
func ForwardUnitDeletion(c clause.Clause, pool []Satellite) (UnitDeletionResult, bool) {
	var kept []clause.Literal
	var usedParents []clause.ID
	changed := false

	for _, lit := range c.Literals {
		removed := false
		for _, u := range pool {
			if len(u.Clause.Literals) != 1 {
				continue
			}
			uLit := u.Clause.Literals[0]
			if uLit.Sign == lit.Sign {
				continue
			}
			if _, err := subst.Match(uLit.Atom, lit.Atom); err == nil {
				removed = true
				changed = true
				usedParents = append(usedParents, u.ID)
				break
			}
		}
		if !removed {
			kept = append(kept, lit)
		}
	}

	if !changed {
		return UnitDeletionResult{}, false
	}
	return UnitDeletionResult{Clause: clause.New(kept), Parents: usedParents}, true
}
