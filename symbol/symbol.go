// Package symbol implements interned constant/function/predicate/answer/
// equality symbols (variables are not symbols; see package term).
//
// Symbols are interned once and referenced everywhere else by a stable,
// comparable ID; arity and kind are fixed at interning time and never change
// afterward, matching the invariant that every application of a symbol uses
// exactly its interned arity.
package symbol

import (
	"fmt"

	"github.com/xDarkicex/foras/proverr"
)

// Kind classifies how a symbol is used.
type Kind int

const (
	KindConstant Kind = iota
	KindFunction
	KindPredicate
	// KindAnswer marks the special $Ans family used for answer literals.
	KindAnswer
	// KindEquality marks the distinguished equality symbol, at most one
	// per Table.
	KindEquality
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindFunction:
		return "function"
	case KindPredicate:
		return "predicate"
	case KindAnswer:
		return "answer"
	case KindEquality:
		return "equality"
	default:
		return "unknown"
	}
}

// ID is an opaque, stable handle into a Table.
type ID uint32

// Symbol is the interned record: name, arity and kind are fixed forever.
type Symbol struct {
	ID    ID
	Name  string
	Arity int
	Kind  Kind
}

// Table interns symbols keyed by name and hands out stable IDs; arity and
// kind are fixed by the first interning of a name.
type Table struct {
	byID    []Symbol
	byName  map[string]ID
	eqID    ID
	hasEq   bool
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{byName: make(map[string]ID)}
}

// Intern looks up the symbol called name, or creates it with the given
// arity and kind. Looking up an existing name with a different arity returns
// a KindBuild error; a different kind is ignored and the existing symbol is
// returned. Creating a second, differently named KindEquality symbol returns
// a KindBuild error.
func (t *Table) Intern(name string, arity int, kind Kind) (ID, error) {
	if id, ok := t.byName[name]; ok {
		sym := t.byID[id]
		if sym.Arity != arity {
			return 0, proverr.Newf(proverr.KindBuild, "symbol.Intern",
				"symbol %q reinterned with arity %d, previously %d", name, arity, sym.Arity)
		}
		return id, nil
	}
	if kind == KindEquality {
		if t.hasEq {
			return 0, proverr.Newf(proverr.KindBuild, "symbol.Intern",
				"only one equality symbol is allowed per problem, already have %q", t.byID[t.eqID].Name)
		}
	}
	id := ID(len(t.byID))
	t.byID = append(t.byID, Symbol{ID: id, Name: name, Arity: arity, Kind: kind})
	t.byName[name] = id
	if kind == KindEquality {
		t.eqID = id
		t.hasEq = true
	}
	return id, nil
}

// MustIntern is Intern but panics on error; only safe for symbols the
// caller knows are well-formed (e.g. test fixtures).
func (t *Table) MustIntern(name string, arity int, kind Kind) ID {
	id, err := t.Intern(name, arity, kind)
	if err != nil {
		panic(err)
	}
	return id
}

// Get returns the interned Symbol for id.
func (t *Table) Get(id ID) (Symbol, bool) {
	if int(id) < 0 || int(id) >= len(t.byID) {
		return Symbol{}, false
	}
	return t.byID[id], true
}

// Lookup returns the ID for an already-interned name.
func (t *Table) Lookup(name string) (ID, bool) {
	id, ok := t.byName[name]
	return id, ok
}

// EqualitySymbol returns the problem's distinguished equality symbol, if any.
func (t *Table) EqualitySymbol() (ID, bool) {
	if !t.hasEq {
		return 0, false
	}
	return t.eqID, true
}

// IsAnswerName reports whether a symbol name belongs to the $Ans family.
func IsAnswerName(name string) bool {
	return len(name) >= 4 && name[:4] == "$Ans"
}

// String is a debugging aid: "name/arity".
func (s Symbol) String() string {
	return fmt.Sprintf("%s/%d", s.Name, s.Arity)
}
