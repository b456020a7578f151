package infer

import (
	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/subst"
)

// Hyperresolve treats nucleus as the nucleus clause of hyperresolution: it
// must have at least one negative literal. Every negative literal is
// resolved away simultaneously against some positive-unit satellite,
// leaving a purely positive clause. satellites should be the positive
// unit clauses currently available (the given clause plus usable's
// positive units).
func Hyperresolve(nucleusID clause.ID, nucleus clause.Clause, satellites []Satellite, src *subst.VarSource) []Result {
	rn := renameClause(nucleus, src)

	var negatives []int
	for i, l := range rn.Literals {
		if !l.Sign {
			negatives = append(negatives, i)
		}
	}
	if len(negatives) == 0 {
		return nil
	}

	renamed := make([]Satellite, len(satellites))
	for i, s := range satellites {
		renamed[i] = Satellite{ID: s.ID, Clause: renameClause(s.Clause, src)}
	}
	return resolveAwayIndices(nucleusID, rn, negatives, renamed, src)
}
