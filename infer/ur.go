package infer

import (
	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/subst"
)

// URResolve produces every UR-resolvent (unit-resulting resolution) of
// nucleus against the unit clauses in pool: for each way of picking one
// literal of nucleus to keep, the remaining n-1 literals are each resolved
// away against some unit clause of opposite sign, yielding a unit clause.
func URResolve(nucleusID clause.ID, nucleus clause.Clause, pool []Satellite, src *subst.VarSource) []Result {
	rn := renameClause(nucleus, src)
	n := len(rn.Literals)
	if n < 2 {
		return nil
	}
	renamedPool := make([]Satellite, len(pool))
	for i, s := range pool {
		renamedPool[i] = Satellite{ID: s.ID, Clause: renameClause(s.Clause, src)}
	}

	var out []Result
	for keep := 0; keep < n; keep++ {
		var targets []int
		for i := range rn.Literals {
			if i != keep {
				targets = append(targets, i)
			}
		}
		out = append(out, resolveAwayIndices(nucleusID, rn, targets, renamedPool, src)...)
	}
	return out
}
