package infer

import (
	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/subst"
)

// Resolve produces every binary resolvent of c1 and c2: for each pair of
// opposite-sign literals whose atoms unify, the resolvent is the
// substitution applied to the union of both clauses' remaining literals.
func Resolve(id1 clause.ID, c1 clause.Clause, id2 clause.ID, c2 clause.Clause, src *subst.VarSource) []Result {
	rc1 := renameClause(c1, src)
	rc2 := renameClause(c2, src)

	var out []Result
	for i, l1 := range rc1.Literals {
		for j, l2 := range rc2.Literals {
			if l1.Sign == l2.Sign {
				continue
			}
			sub, err := subst.Unify(l1.Atom, l2.Atom)
			if err != nil {
				continue
			}
			lits := append(literalsExcept(rc1.Literals, i, sub), literalsExcept(rc2.Literals, j, sub)...)
			child := clause.New(lits)
			child.AddParent(id1)
			child.AddParent(id2)
			out = append(out, Result{Clause: child, Parents: []clause.ID{id1, id2}})
		}
	}
	return out
}
