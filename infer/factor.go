package infer

import (
	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/subst"
)

// Factor merges every pair of same-sign literals of c whose atoms unify,
// one pair per produced child.
func Factor(id clause.ID, c clause.Clause, src *subst.VarSource) []Result {
	rc := renameClause(c, src)

	var out []Result
	for i := 0; i < len(rc.Literals); i++ {
		for j := i + 1; j < len(rc.Literals); j++ {
			li, lj := rc.Literals[i], rc.Literals[j]
			if li.Sign != lj.Sign {
				continue
			}
			sub, err := subst.Unify(li.Atom, lj.Atom)
			if err != nil {
				continue
			}
			lits := literalsExcept(rc.Literals, j, sub)
			child := clause.New(lits)
			child.AddParent(id)
			out = append(out, Result{Clause: child, Parents: []clause.ID{id}})
		}
	}
	return out
}
