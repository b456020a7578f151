package infer

import (
	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/subst"
)

// LinkedURConfig bounds the chain linked UR-resolution may build through
// non-unit auxiliary clauses.
type LinkedURConfig struct {
	// MaxDepth is the maximum number of non-unit auxiliary clauses that may
	// be linked into a single derivation.
	MaxDepth int
	// MaxWidth caps how many unifying pool literals are followed at each
	// position, to bound branching.
	MaxWidth int
}

// DefaultLinkedURConfig returns conservative depth/width bounds.
func DefaultLinkedURConfig() LinkedURConfig {
	return LinkedURConfig{MaxDepth: 4, MaxWidth: 8}
}

// LinkedURResolve is UR-resolution generalised to chain through non-unit
// auxiliary clauses in pool: a literal may be resolved away directly
// against a unit (as plain UR-resolution does, at no depth cost), or
// against one literal of a non-unit clause, whose remaining literals then
// join the resolution obligation (consuming one unit of MaxDepth). The
// result is still a unit clause: every nucleus literal is either kept
// (exactly one) or eventually resolved away.
func LinkedURResolve(nucleusID clause.ID, nucleus clause.Clause, pool []Satellite, cfg LinkedURConfig, src *subst.VarSource) []Result {
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
		var queue []clause.Literal
		for i, l := range rn.Literals {
			if i != keep {
				queue = append(queue, l)
			}
		}
		linkedSearch(queue, renamedPool, cfg, 0, subst.New(), []clause.ID{nucleusID}, rn.Literals[keep], &out)
	}
	return out
}

func linkedSearch(queue []clause.Literal, pool []Satellite, cfg LinkedURConfig, linksUsed int, sub subst.Substitution, parents []clause.ID, kept clause.Literal, out *[]Result) {
	if len(queue) == 0 {
		lit := clause.NewLiteral(kept.Sign, sub.Apply(kept.Atom))
		child := clause.New([]clause.Literal{lit})
		for _, p := range parents {
			child.AddParent(p)
		}
		*out = append(*out, Result{Clause: child, Parents: append([]clause.ID{}, parents...)})
		return
	}

	lit := queue[0]
	rest := queue[1:]
	tried := 0
	for _, sat := range pool {
		if tried >= cfg.MaxWidth {
			break
		}
		for sIdx, sLit := range sat.Clause.Literals {
			if sLit.Sign == lit.Sign {
				continue
			}
			mgu, err := subst.Unify(sub.Apply(lit.Atom), sub.Apply(sLit.Atom))
			if err != nil {
				continue
			}
			tried++
			merged := subst.Merge(sub, mgu)

			if len(sat.Clause.Literals) == 1 {
				linkedSearch(rest, pool, cfg, linksUsed, merged, append(append([]clause.ID{}, parents...), sat.ID), kept, out)
				continue
			}
			if linksUsed >= cfg.MaxDepth {
				continue
			}
			var auxRest []clause.Literal
			for j, ol := range sat.Clause.Literals {
				if j != sIdx {
					auxRest = append(auxRest, ol)
				}
			}
			newQueue := append(append([]clause.Literal{}, rest...), auxRest...)
			linkedSearch(newQueue, pool, cfg, linksUsed+1, merged, append(append([]clause.ID{}, parents...), sat.ID), kept, out)
		}
	}
}
