// Package term implements first-order terms: variables and applications.
//
// Terms have value semantics. Two terms compare equal iff they are
// structurally identical; a Table may intern common ground subterms for
// allocation efficiency, but that sharing is never observable through the
// Term API.
package term

import (
	"fmt"
	"strings"

	"github.com/xDarkicex/foras/symbol"
)

// VarID identifies a variable within the scope of a single clause.
// Variables are per-clause-local; callers must rename before any pairwise
// inference step so two clauses never share variable ids.
type VarID uint32

// Term is either a Variable or an Application; there is no third case.
type Term interface {
	isTerm()
	// Equal reports structural equality.
	Equal(other Term) bool
	// String renders the term for diagnostics.
	String() string
}

// Variable is a first-order variable.
type Variable struct {
	ID VarID
}

func (Variable) isTerm() {}

func (v Variable) Equal(other Term) bool {
	o, ok := other.(Variable)
	return ok && o.ID == v.ID
}

func (v Variable) String() string { return fmt.Sprintf("v%d", v.ID) }

// App is an application of a symbol to arguments. len(Args) must equal the
// symbol's interned arity.
type App struct {
	Symbol symbol.ID
	Args   []Term
}

func (App) isTerm() {}

func (a App) Equal(other Term) bool {
	o, ok := other.(App)
	if !ok || o.Symbol != a.Symbol || len(o.Args) != len(a.Args) {
		return false
	}
	for i := range a.Args {
		if !a.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

func (a App) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "s%d", a.Symbol)
	if len(a.Args) > 0 {
		sb.WriteByte('(')
		for i, arg := range a.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(arg.String())
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

// NewVar constructs a Variable term.
func NewVar(id VarID) Term { return Variable{ID: id} }

// NewApp constructs an Application term.
func NewApp(sym symbol.ID, args []Term) Term { return App{Symbol: sym, Args: args} }

// IsVariable reports whether t is a Variable.
func IsVariable(t Term) (VarID, bool) {
	if v, ok := t.(Variable); ok {
		return v.ID, true
	}
	return 0, false
}

// Occurs reports whether variable v occurs anywhere in t (itself included).
func Occurs(v VarID, t Term) bool {
	switch n := t.(type) {
	case Variable:
		return n.ID == v
	case App:
		for _, arg := range n.Args {
			if Occurs(v, arg) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Vars returns the set of distinct variable ids occurring in t, in
// first-occurrence order.
func Vars(t Term) []VarID {
	seen := make(map[VarID]bool)
	var order []VarID
	var walk func(Term)
	walk = func(t Term) {
		switch n := t.(type) {
		case Variable:
			if !seen[n.ID] {
				seen[n.ID] = true
				order = append(order, n.ID)
			}
		case App:
			for _, arg := range n.Args {
				walk(arg)
			}
		}
	}
	walk(t)
	return order
}

// Walk calls visit for t and, recursively, for every subterm of t.
func Walk(t Term, visit func(Term)) {
	visit(t)
	if a, ok := t.(App); ok {
		for _, arg := range a.Args {
			Walk(arg, visit)
		}
	}
}

// Size returns the number of symbol/variable occurrences in t.
func Size(t Term) int {
	switch n := t.(type) {
	case Variable:
		return 1
	case App:
		size := 1
		for _, arg := range n.Args {
			size += Size(arg)
		}
		return size
	default:
		return 0
	}
}
