// Package infer implements the prover's inference rules: binary
// resolution, factoring, hyperresolution, UR-resolution, linked
// UR-resolution and paramodulation. Every rule takes fresh-renamed copies
// of its inputs and emits children whose parents reference the source
// clause ids, per the saturation loop's bookkeeping contract.
package infer

import (
	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/subst"
	"github.com/xDarkicex/foras/term"
)

// Result is one inferred child together with the parent clause ids the
// loop should record on it.
type Result struct {
	Clause  clause.Clause
	Parents []clause.ID
}

// renameClause returns a copy of c with every variable replaced by a fresh
// one drawn from src, so that no two clauses entering an inference step
// ever share a variable id.
func renameClause(c clause.Clause, src *subst.VarSource) clause.Clause {
	mapping := make(map[term.VarID]term.VarID)
	lits := make([]clause.Literal, len(c.Literals))
	for i, l := range c.Literals {
		lits[i] = clause.NewLiteral(l.Sign, subst.RenameTerm(l.Atom, mapping, src))
	}
	return clause.New(lits)
}

// literalsExcept returns lits without the literal at index skip, each
// remaining atom rewritten under sub.
func literalsExcept(lits []clause.Literal, skip int, sub subst.Substitution) []clause.Literal {
	out := make([]clause.Literal, 0, len(lits))
	for i, l := range lits {
		if i == skip {
			continue
		}
		out = append(out, clause.NewLiteral(l.Sign, sub.Apply(l.Atom)))
	}
	return out
}
