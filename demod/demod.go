// Package demod implements demodulation: extracting oriented rewrite rules
// from unit equalities under LRPO and using them to normalise terms and
// clauses to a fixed point.
package demod

import (
	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/order"
	"github.com/xDarkicex/foras/subst"
	"github.com/xDarkicex/foras/symbol"
	"github.com/xDarkicex/foras/term"
)

// Rule is an oriented rewrite rule lhs -> rhs. lhs is never a variable, and
// every variable of rhs occurs in lhs.
type Rule struct {
	LHS, RHS term.Term
}

// ExtractRule tries to turn clause c into a demodulator: c must be a
// positive unit equality s = t with all variables of one side contained in
// the other, and that side strictly LRPO-greater — the greater side becomes
// LHS. When LRPO does not order the two sides, the side with the larger
// term.Size becomes LHS; sides of equal size give no rule (there is no
// lexical tie-break, and weight-table weights are not consulted).
// Returns false if c is not a suitable demodulator.
func ExtractRule(c clause.Clause, eqSym symbol.ID, lrpo *order.LRPO) (Rule, bool) {
	if len(c.Literals) != 1 || !c.Literals[0].Sign {
		return Rule{}, false
	}
	app, ok := c.Literals[0].Atom.(term.App)
	if !ok || app.Symbol != eqSym || len(app.Args) != 2 {
		return Rule{}, false
	}
	s, t := app.Args[0], app.Args[1]

	lhs, rhs, ok := orient(s, t, lrpo)
	if !ok {
		return Rule{}, false
	}
	if _, isVar := lhs.(term.Variable); isVar {
		return Rule{}, false
	}
	lhsVars := varSet(term.Vars(lhs))
	for _, v := range term.Vars(rhs) {
		if !lhsVars[v] {
			return Rule{}, false
		}
	}
	return Rule{LHS: lhs, RHS: rhs}, true
}

// orient decides which of s, t should be the LHS of a rewrite rule,
// returning ok=false if neither side is strictly greater (s=t is then
// useless as a demodulator: rewriting it would not make progress).
func orient(s, t term.Term, lrpo *order.LRPO) (lhs, rhs term.Term, ok bool) {
	switch lrpo.Compare(s, t) {
	case order.Greater:
		return s, t, true
	case order.Less:
		return t, s, true
	default:
		// LRPO reports Equal both for true syntactic equality and for
		// incomparable terms; fall back to term size (symbol and
		// variable occurrences).
		ws, wt := term.Size(s), term.Size(t)
		if ws > wt {
			return s, t, true
		}
		if wt > ws {
			return t, s, true
		}
		return nil, nil, false
	}
}

func varSet(ids []term.VarID) map[term.VarID]bool {
	m := make(map[term.VarID]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// Rewrite normalises t against rules, innermost-leftmost, to a fixed point
// or until maxIter rewrite steps have been applied (a safety net: the
// orientation invariant already guarantees termination).
func Rewrite(t term.Term, rules []Rule, maxIter int) term.Term {
	for i := 0; i < maxIter; i++ {
		next, changed := rewriteStep(t, rules)
		if !changed {
			return t
		}
		t = next
	}
	return t
}

// rewriteStep applies the first matching rule at the first (innermost,
// leftmost) position where one matches, returning the rewritten term and
// true, or the original term and false if no rule matches anywhere.
func rewriteStep(t term.Term, rules []Rule) (term.Term, bool) {
	if a, ok := t.(term.App); ok {
		args := a.Args
		for i, arg := range args {
			if rewritten, changed := rewriteStep(arg, rules); changed {
				newArgs := make([]term.Term, len(args))
				copy(newArgs, args)
				newArgs[i] = rewritten
				return term.NewApp(a.Symbol, newArgs), true
			}
		}
	}
	for _, r := range rules {
		if sub, err := subst.Match(r.LHS, t); err == nil {
			return sub.Apply(r.RHS), true
		}
	}
	return t, false
}

// RewriteClause normalises every literal atom of c against rules.
func RewriteClause(c clause.Clause, rules []Rule, maxIter int) clause.Clause {
	out := c.Clone()
	for i, lit := range out.Literals {
		out.Literals[i] = clause.NewLiteral(lit.Sign, Rewrite(lit.Atom, rules, maxIter))
	}
	return out
}
