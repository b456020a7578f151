package infer

import (
	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/subst"
)

// Satellite is a candidate unit clause usable to resolve away one literal
// of a nucleus, shared by hyperresolution and UR-resolution.
type Satellite struct {
	ID     clause.ID
	Clause clause.Clause
}

// resolveAwayIndices tries to resolve away every literal of rn at the
// given target indices, each against some unit satellite of opposite
// sign, accumulating one composed substitution across the whole set.
// Every satisfying assignment of satellites to targets produces one
// Result whose clause is rn's remaining (non-target) literals under that
// assignment's substitution.
func resolveAwayIndices(nucleusID clause.ID, rn clause.Clause, targets []int, satellites []Satellite, src *subst.VarSource) []Result {
	var out []Result
	search(nucleusID, rn, targets, 0, satellites, subst.New(), []clause.ID{nucleusID}, &out)
	return out
}

func search(nucleusID clause.ID, rn clause.Clause, targets []int, pos int, satellites []Satellite, sub subst.Substitution, parents []clause.ID, out *[]Result) {
	if pos == len(targets) {
		child := buildSurvivors(rn, targets, sub)
		for _, p := range parents {
			child.AddParent(p)
		}
		*out = append(*out, Result{Clause: child, Parents: append([]clause.ID{}, parents...)})
		return
	}
	idx := targets[pos]
	lit := rn.Literals[idx]
	for _, sat := range satellites {
		if len(sat.Clause.Literals) != 1 {
			continue
		}
		satLit := sat.Clause.Literals[0]
		if satLit.Sign == lit.Sign {
			continue
		}
		mgu, err := subst.Unify(sub.Apply(lit.Atom), sub.Apply(satLit.Atom))
		if err != nil {
			continue
		}
		merged := subst.Merge(sub, mgu)
		search(nucleusID, rn, targets, pos+1, satellites, merged, append(parents, sat.ID), out)
	}
}

// buildSurvivors returns the literals of rn not named in targets, with sub
// applied.
func buildSurvivors(rn clause.Clause, targets []int, sub subst.Substitution) clause.Clause {
	excluded := make(map[int]bool, len(targets))
	for _, i := range targets {
		excluded[i] = true
	}
	var lits []clause.Literal
	for i, l := range rn.Literals {
		if excluded[i] {
			continue
		}
		lits = append(lits, clause.NewLiteral(l.Sign, sub.Apply(l.Atom)))
	}
	return clause.New(lits)
}
