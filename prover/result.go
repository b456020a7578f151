package prover

import "github.com/xDarkicex/foras/clause"

// Kind classifies how a search terminated.
type Kind int

const (
	// KindProof means the empty clause (or an answer-literal-only clause)
	// was derived.
	KindProof Kind = iota
	// KindSaturated means the set of support emptied without a proof.
	KindSaturated
	// KindResourceLimit means a configured resource cap fired first.
	KindResourceLimit
)

func (k Kind) String() string {
	switch k {
	case KindProof:
		return "proof"
	case KindSaturated:
		return "saturated"
	case KindResourceLimit:
		return "resource_limit"
	default:
		return "unknown"
	}
}

// Statistics are the resource-accounting counters spec §5 requires.
type Statistics struct {
	ClausesGenerated int
	ClausesKept      int
	GivenCount       int
}

// Result is the outcome of a Prover.Search call.
type Result struct {
	Kind          Kind
	EmptyClauseID clause.ID
	Stats         Statistics
	// LimitReason names which resource limit fired; only set for
	// KindResourceLimit.
	LimitReason string
}
