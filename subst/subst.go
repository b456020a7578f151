// Package subst implements substitutions, Robinson unification with occurs
// check, one-sided matching, and fresh-variable renaming.
package subst

import (
	"errors"

	"github.com/xDarkicex/foras/term"
)

// Substitution maps variable ids to terms. It is transient: owned by the
// inference step that creates it, applied, then discarded.
type Substitution map[term.VarID]term.Term

// New returns an empty substitution.
func New() Substitution { return make(Substitution) }

// Apply substitutes every variable in t according to s, with path
// compression: a binding that itself contains bound variables is resolved
// transitively.
func (s Substitution) Apply(t term.Term) term.Term {
	switch n := t.(type) {
	case term.Variable:
		if bound, ok := s[n.ID]; ok {
			return s.Apply(bound)
		}
		return t
	case term.App:
		if len(n.Args) == 0 {
			return t
		}
		args := make([]term.Term, len(n.Args))
		changed := false
		for i, a := range n.Args {
			args[i] = s.Apply(a)
			if !changed && !args[i].Equal(a) {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return term.NewApp(n.Symbol, args)
	default:
		return t
	}
}

// ApplyAll is a convenience for applying s across every term of a slice,
// without mutating the input slice.
func (s Substitution) ApplyAll(ts []term.Term) []term.Term {
	out := make([]term.Term, len(ts))
	for i, t := range ts {
		out[i] = s.Apply(t)
	}
	return out
}

// Merge combines substitutions a and b into one that has the effect of
// applying b followed by a: every binding of b is first resolved under a,
// then a's own bindings are added for variables b left untouched. Used to
// accumulate a composed unifier across a multi-step inference (e.g.
// hyperresolution resolving several literals in sequence).
func Merge(a, b Substitution) Substitution {
	out := make(Substitution, len(a)+len(b))
	for k, v := range b {
		out[k] = a.Apply(v)
	}
	for k, v := range a {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return out
}

// Failure classifies why Unify or Match failed.
type Failure int

const (
	FailureNone Failure = iota
	FailureOccursCheck
	FailureSymbolMismatch
	FailureArityMismatch
	FailureIncompatibleBinding
)

var (
	// ErrOccursCheck is returned when unifying a variable with a term
	// that properly contains it.
	ErrOccursCheck = errors.New("subst: occurs check failed")
	// ErrSymbolMismatch is returned when two applications have different
	// head symbols.
	ErrSymbolMismatch = errors.New("subst: symbol mismatch")
	// ErrArityMismatch is returned when two applications of the same
	// symbol disagree on argument count (should not happen for
	// well-formed terms, but is checked defensively).
	ErrArityMismatch = errors.New("subst: arity mismatch")
	// ErrIncompatibleBinding is returned when a matching variable would
	// need two different bindings.
	ErrIncompatibleBinding = errors.New("subst: incompatible binding")
)

// Unify computes the most general unifier of a and b, or returns one of the
// sentinel errors above. Callers treat any non-nil error as "no unifier",
// never as a hard failure (spec: unification failure is normal).
func Unify(a, b term.Term) (Substitution, error) {
	s := New()
	if err := unify(a, b, s); err != nil {
		return nil, err
	}
	return s, nil
}

func unify(a, b term.Term, s Substitution) error {
	a = resolve(a, s)
	b = resolve(b, s)

	if av, ok := a.(term.Variable); ok {
		if bv, ok := b.(term.Variable); ok && av.ID == bv.ID {
			return nil
		}
		return bindVar(av.ID, b, s)
	}
	if bv, ok := b.(term.Variable); ok {
		return bindVar(bv.ID, a, s)
	}

	aa, aok := a.(term.App)
	ba, bok := b.(term.App)
	if !aok || !bok {
		return ErrSymbolMismatch
	}
	if aa.Symbol != ba.Symbol {
		return ErrSymbolMismatch
	}
	if len(aa.Args) != len(ba.Args) {
		return ErrArityMismatch
	}
	for i := range aa.Args {
		if err := unify(aa.Args[i], ba.Args[i], s); err != nil {
			return err
		}
	}
	return nil
}

func bindVar(v term.VarID, t term.Term, s Substitution) error {
	t = resolve(t, s)
	if tv, ok := t.(term.Variable); ok && tv.ID == v {
		return nil
	}
	if term.Occurs(v, t) {
		return ErrOccursCheck
	}
	s[v] = t
	return nil
}

// resolve follows bindings for t if it is a (possibly already-bound)
// variable, without mutating s.
func resolve(t term.Term, s Substitution) term.Term {
	for {
		v, ok := t.(term.Variable)
		if !ok {
			return t
		}
		bound, ok := s[v.ID]
		if !ok {
			return t
		}
		t = bound
	}
}

// Match computes a one-sided substitution binding only pattern's variables
// such that applying it to pattern yields subject; subject is treated as
// ground with respect to the binding and is never itself bound.
func Match(pattern, subject term.Term) (Substitution, error) {
	s := New()
	if err := match(pattern, subject, s); err != nil {
		return nil, err
	}
	return s, nil
}

func match(pattern, subject term.Term, s Substitution) error {
	if pv, ok := pattern.(term.Variable); ok {
		if bound, ok := s[pv.ID]; ok {
			if !bound.Equal(subject) {
				return ErrIncompatibleBinding
			}
			return nil
		}
		s[pv.ID] = subject
		return nil
	}

	pa, pok := pattern.(term.App)
	sa, sok := subject.(term.App)
	if !pok || !sok {
		return ErrSymbolMismatch
	}
	if pa.Symbol != sa.Symbol {
		return ErrSymbolMismatch
	}
	if len(pa.Args) != len(sa.Args) {
		return ErrArityMismatch
	}
	for i := range pa.Args {
		if err := match(pa.Args[i], sa.Args[i], s); err != nil {
			return err
		}
	}
	return nil
}
