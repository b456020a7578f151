// Package input implements the textual problem-file format: lexing,
// recursive-descent parsing into a syntax-only ProblemFile, and building a
// *prover.Prover from it (interning symbols, constructing clauses, and
// decoding set/clear/assign directives onto a prover.Config).
package input

// ListKind names one of the recognised list(<kind>) sections.
type ListKind string

const (
	KindSOS          ListKind = "sos"
	KindUsable       ListKind = "usable"
	KindPassive      ListKind = "passive"
	KindDemodulators ListKind = "demodulators"
	KindHints        ListKind = "hints"
)

// RawTerm is a syntax-only term: a name plus arguments, with IsVar marking
// an identifier that lexed as a variable (leading uppercase letter or
// underscore, Prolog-style). Symbol interning and arity/kind inference
// happen later, in BuildProver.
type RawTerm struct {
	Name  string
	Args  []RawTerm
	IsVar bool
}

// RawLiteral is a signed atom, or (when IsEquality) a signed equation
// between two terms (s = t or s != t).
type RawLiteral struct {
	Sign       bool
	IsEquality bool
	Atom       RawTerm
	Left       RawTerm
	Right      RawTerm
}

// RawClause is an ordered disjunction of literals as written in the input.
type RawClause struct {
	Literals []RawLiteral
}

// WeightEntry is one weight(term, value) line from a weight_list section.
type WeightEntry struct {
	Term  RawTerm
	Value int32
}

// OperatorDecl is one op(priority, fixity, symbol) directive. Declared
// operators beyond the built-in =, !=, | and unary - are recorded but not
// wired into the expression grammar; see DESIGN.md.
type OperatorDecl struct {
	Priority int
	Fixity   string
	Symbol   string
}

// ProblemFile is the fully parsed, not-yet-interned contents of an input
// file, mirroring the "ProverBuilder" input shape from the original
// implementation.
type ProblemFile struct {
	Lists         map[ListKind][]RawClause
	Sets          []string
	Clears        []string
	Assigns       map[string]int
	WeightEntries []WeightEntry
	Precedence    []string
	Operators     []OperatorDecl
}

func newProblemFile() *ProblemFile {
	return &ProblemFile{
		Lists:   make(map[ListKind][]RawClause),
		Assigns: make(map[string]int),
	}
}
