package subst

import "github.com/xDarkicex/foras/term"

// VarSource hands out variable ids that are guaranteed fresh with respect
// to every clause renamed through it so far. A Prover owns exactly one
// VarSource for the lifetime of a search.
type VarSource struct {
	next term.VarID
}

// NewVarSource creates a source starting above the highest variable id seen
// so far (0 if none).
func NewVarSource() *VarSource {
	return &VarSource{}
}

// Reserve bumps the source past the given ids, so ids already in use by
// loaded input clauses are never handed out again.
func (s *VarSource) Reserve(ids ...term.VarID) {
	for _, id := range ids {
		if id >= s.next {
			s.next = id + 1
		}
	}
}

// Fresh returns a brand-new variable id.
func (s *VarSource) Fresh() term.VarID {
	id := s.next
	s.next++
	return id
}

// RenameTerm returns a copy of t with every variable remapped through
// mapping, allocating fresh ids from src for variables not yet seen.
func RenameTerm(t term.Term, mapping map[term.VarID]term.VarID, src *VarSource) term.Term {
	switch n := t.(type) {
	case term.Variable:
		fresh, ok := mapping[n.ID]
		if !ok {
			fresh = src.Fresh()
			mapping[n.ID] = fresh
		}
		return term.NewVar(fresh)
	case term.App:
		if len(n.Args) == 0 {
			return t
		}
		args := make([]term.Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = RenameTerm(a, mapping, src)
		}
		return term.NewApp(n.Symbol, args)
	default:
		return t
	}
}
