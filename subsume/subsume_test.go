package subsume_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/subsume"
	"github.com/xDarkicex/foras/symbol"
	"github.com/xDarkicex/foras/term"
)

func TestForwardSubsumedByMoreGeneralClause(t *testing.T) {
	p := symbol.ID(1)
	a := symbol.ID(2)
	x := term.NewVar(0)

	general := clause.New([]clause.Literal{clause.NewLiteral(true, term.NewApp(p, []term.Term{x}))})
	specific := clause.New([]clause.Literal{
		clause.NewLiteral(true, term.NewApp(p, []term.Term{term.NewApp(a, nil)})),
		clause.NewLiteral(true, term.NewApp(p, []term.Term{term.NewApp(a, nil)})),
	})

	require.True(t, subsume.ForwardSubsumed(specific, []clause.Clause{general}))
}

func TestForwardSubsumedRequiresSameSign(t *testing.T) {
	p := symbol.ID(1)
	x := term.NewVar(0)
	pos := clause.New([]clause.Literal{clause.NewLiteral(true, term.NewApp(p, []term.Term{x}))})
	neg := clause.New([]clause.Literal{clause.NewLiteral(false, term.NewApp(p, []term.Term{x}))})

	require.False(t, subsume.ForwardSubsumed(neg, []clause.Clause{pos}))
}

func TestBackSubsumedFindsWeakerClauses(t *testing.T) {
	p := symbol.ID(1)
	a := symbol.ID(2)
	x := term.NewVar(0)

	general := clause.New([]clause.Literal{clause.NewLiteral(true, term.NewApp(p, []term.Term{x}))})
	weak1 := clause.New([]clause.Literal{clause.NewLiteral(true, term.NewApp(p, []term.Term{term.NewApp(a, nil)}))})
	unrelated := clause.New([]clause.Literal{clause.NewLiteral(false, term.NewApp(p, []term.Term{x}))})

	idxs := subsume.BackSubsumed(general, []clause.Clause{weak1, unrelated})
	require.Equal(t, []int{0}, idxs)
}

func TestForwardSubsumedAncestorTieBreak(t *testing.T) {
	p := symbol.ID(1)
	a := symbol.ID(2)
	lit := clause.NewLiteral(true, term.NewApp(p, []term.Term{term.NewApp(a, nil)}))
	deep := clause.New([]clause.Literal{lit})
	shallow := clause.New([]clause.Literal{lit})

	depth := func(c clause.Clause) int {
		if len(c.Parents) > 0 {
			return 5
		}
		return 0
	}
	deep.Parents = []clause.ID{1, 2}

	// deep subsumes shallow structurally, but shallow is no deeper than
	// deep's ancestry, so it is not treated as subsumed.
	require.False(t, subsume.ForwardSubsumedAncestor(shallow, []clause.Clause{deep}, depth))
}
