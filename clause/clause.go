// Package clause implements literals, clauses, the clause arena and the
// named clause lists (SOS, usable, passive, ...) the saturation loop
// operates over.
package clause

import "github.com/xDarkicex/foras/term"

// Literal is a signed atom. A positive literal asserts its atom; a negative
// literal asserts its negation. The atom's outer symbol must be a
// predicate, answer or equality symbol (enforced by the caller building the
// literal from parsed input).
type Literal struct {
	Sign bool
	Atom term.Term
}

// NewLiteral constructs a Literal.
func NewLiteral(sign bool, atom term.Term) Literal {
	return Literal{Sign: sign, Atom: atom}
}

// Negate returns the literal with the opposite sign.
func (l Literal) Negate() Literal {
	return Literal{Sign: !l.Sign, Atom: l.Atom}
}

// Equal reports whether two literals have the same sign and structurally
// identical atoms.
func (l Literal) Equal(other Literal) bool {
	return l.Sign == other.Sign && l.Atom.Equal(other.Atom)
}

// Attribute is a tag carried on a clause, e.g. its list-of-origin.
type Attribute struct {
	Name  string
	Value string
}

// Clause is an ordered disjunction of literals plus provenance.
// An empty Literals slice denotes the empty clause (⊥).
type Clause struct {
	Literals   []Literal
	Parents    []ID
	Attributes []Attribute
	PickWeight int32
}

// New constructs a Clause with no parents and zero weight (callers must
// cache PickWeight via a weight.Table before inserting into an Arena).
func New(lits []Literal) Clause {
	return Clause{Literals: lits}
}

// AddParent appends a parent clause id; parents are append-only.
func (c *Clause) AddParent(id ID) {
	c.Parents = append(c.Parents, id)
}

// IsEmpty reports whether the clause is the empty clause (a proof).
func (c Clause) IsEmpty() bool {
	return len(c.Literals) == 0
}

// IsUnit reports whether the clause has exactly one literal.
func (c Clause) IsUnit() bool {
	return len(c.Literals) == 1
}

// IsTautology reports whether the clause contains some literal L and its
// negation ¬L syntactically. Tautologies are discarded by the loop.
func (c Clause) IsTautology() bool {
	for i := 0; i < len(c.Literals); i++ {
		for j := i + 1; j < len(c.Literals); j++ {
			a, b := c.Literals[i], c.Literals[j]
			if a.Sign != b.Sign && a.Atom.Equal(b.Atom) {
				return true
			}
		}
	}
	return false
}

// HasAttribute reports whether the clause carries an attribute called name
// and returns the value of the first such attribute.
func (c Clause) HasAttribute(name string) (string, bool) {
	for _, a := range c.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Clone returns a deep-enough copy: a new Literals/Parents/Attributes
// backing array, since these are the slices mutated in place elsewhere
// (e.g. AddParent).
func (c Clause) Clone() Clause {
	lits := make([]Literal, len(c.Literals))
	copy(lits, c.Literals)
	parents := make([]ID, len(c.Parents))
	copy(parents, c.Parents)
	attrs := make([]Attribute, len(c.Attributes))
	copy(attrs, c.Attributes)
	return Clause{Literals: lits, Parents: parents, Attributes: attrs, PickWeight: c.PickWeight}
}
