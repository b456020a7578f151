// Package subsume implements forward and backward subsumption: a clause C
// subsumes D when some substitution makes C's literals a sub-multiset of
// D's literals under syntactic equality of signed atoms.
package subsume

import (
	"sort"

	"github.com/mitchellh/hashstructure"

	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/subst"
	"github.com/xDarkicex/foras/symbol"
	"github.com/xDarkicex/foras/term"
)

// ForwardSubsumed reports whether some clause in existing subsumes clause.
func ForwardSubsumed(c clause.Clause, existing []clause.Clause) bool {
	for _, e := range existing {
		if subsumes(e, c) {
			return true
		}
	}
	return false
}

// BackSubsumed returns the indices into existing of every clause that
// clause subsumes (i.e. clauses made redundant by the new, more general
// clause).
func BackSubsumed(c clause.Clause, existing []clause.Clause) []int {
	var out []int
	for i, e := range existing {
		if subsumes(c, e) {
			out = append(out, i)
		}
	}
	return out
}

// AncestorDepth is the length of a clause's derivation, used by the
// ancestor-aware forward subsumption variant to prefer shallower proofs on
// ties.
type AncestorDepth func(clause.Clause) int

// ForwardSubsumedAncestor is ForwardSubsumed's ancestor-aware variant: a
// clause with identical literal structure (a "tie") is treated as
// subsumption only if the existing clause's ancestry is not deeper than the
// candidate's, so the search prefers to keep shallower proofs.
func ForwardSubsumedAncestor(c clause.Clause, existing []clause.Clause, depth AncestorDepth) bool {
	for _, e := range existing {
		if !subsumes(e, c) {
			continue
		}
		if len(e.Literals) == len(c.Literals) && depth != nil && depth(e) > depth(c) {
			continue
		}
		return true
	}
	return false
}

// subsumes reports whether c's literals are a sub-multiset of d's literals
// under some substitution applied only to c (one-sided matching per
// literal, extended across the whole clause so a single substitution must
// work for every matched literal simultaneously).
func subsumes(c, d clause.Clause) bool {
	if len(c.Literals) > len(d.Literals) {
		return false
	}
	if !signatureSubmultiset(clauseSignature(c), clauseSignature(d)) {
		return false
	}
	used := make([]bool, len(d.Literals))
	return matchFrom(c.Literals, 0, d.Literals, used, subst.New())
}

func matchFrom(cLits []clause.Literal, i int, dLits []clause.Literal, used []bool, s subst.Substitution) bool {
	if i == len(cLits) {
		return true
	}
	lit := cLits[i]
	for j, dl := range dLits {
		if used[j] || dl.Sign != lit.Sign {
			continue
		}
		trial := cloneSubst(s)
		if matchInto(lit.Atom, dl.Atom, trial) {
			used[j] = true
			if matchFrom(cLits, i+1, dLits, used, trial) {
				return true
			}
			used[j] = false
		}
	}
	return false
}

// matchInto extends s so that s(pattern) == subject, consistent with any
// bindings s already carries, mutating s in place. Variables occurring on
// the subject side are treated as opaque constants: subsumption matching
// only ever binds pattern (the candidate subsumer's) variables.
func matchInto(pattern, subject term.Term, s subst.Substitution) bool {
	switch p := pattern.(type) {
	case term.Variable:
		if bound, ok := s[p.ID]; ok {
			return bound.Equal(subject)
		}
		s[p.ID] = subject
		return true
	case term.App:
		sa, ok := subject.(term.App)
		if !ok || sa.Symbol != p.Symbol || len(sa.Args) != len(p.Args) {
			return false
		}
		for i := range p.Args {
			if !matchInto(p.Args[i], sa.Args[i], s) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func cloneSubst(s subst.Substitution) subst.Substitution {
	out := make(subst.Substitution, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// literalSignature hashes a literal's sign, predicate symbol and arity --
// everything a match must preserve regardless of variable naming -- so it
// stays stable across variable renaming while still separating literals
// that could never match. Non-predicate atoms (bare variables) have no
// signature and are reported via ok=false.
func literalSignature(l clause.Literal) (sig uint64, ok bool) {
	app, isApp := l.Atom.(term.App)
	if !isApp {
		return 0, false
	}
	h, err := hashstructure.Hash(struct {
		Sign   bool
		Symbol symbol.ID
		Arity  int
	}{l.Sign, app.Symbol, len(app.Args)}, nil)
	if err != nil {
		return 0, false
	}
	return h, true
}

// clauseSignature is the sorted multiset of literal signatures in c, used
// to cheaply reject subsumption candidates before the full match.
func clauseSignature(c clause.Clause) []uint64 {
	sigs := make([]uint64, 0, len(c.Literals))
	for _, lit := range c.Literals {
		if h, ok := literalSignature(lit); ok {
			sigs = append(sigs, h)
		}
	}
	sort.Slice(sigs, func(i, j int) bool { return sigs[i] < sigs[j] })
	return sigs
}

// signatureSubmultiset reports whether small injects into big as a
// multiset: a necessary condition for small's clause to subsume big's.
func signatureSubmultiset(small, big []uint64) bool {
	counts := make(map[uint64]int, len(big))
	for _, h := range big {
		counts[h]++
	}
	for _, h := range small {
		if counts[h] == 0 {
			return false
		}
		counts[h]--
	}
	return true
}
