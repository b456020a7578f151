package hint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/hint"
	"github.com/xDarkicex/foras/symbol"
	"github.com/xDarkicex/foras/term"
)

func unitClause(sign bool, sym symbol.ID, args ...term.Term) clause.Clause {
	return clause.New([]clause.Literal{clause.NewLiteral(sign, term.NewApp(sym, args))})
}

func TestAdjustWeightForwardSubsumes(t *testing.T) {
	p := symbol.ID(1)
	a := symbol.ID(2)
	x := term.NewVar(0)

	general := unitClause(true, p, x)
	specific := unitClause(true, p, term.NewApp(a, nil))

	hints := hint.New()
	hints.Add(specific, hint.Data{FSubWt: 10, FSubAddWt: -5})

	// general forward-subsumes specific (the hint), so it gets the
	// forward-subsume adjustment.
	adjusted := hint.AdjustWeight(general, 3, hints)
	require.Equal(t, int32(-2), adjusted)
}

func TestAdjustWeightAboveThresholdUnaffected(t *testing.T) {
	p := symbol.ID(1)
	a := symbol.ID(2)
	x := term.NewVar(0)
	general := unitClause(true, p, x)
	specific := unitClause(true, p, term.NewApp(a, nil))

	hints := hint.New()
	hints.Add(specific, hint.Data{FSubWt: 1, FSubAddWt: -5})

	adjusted := hint.AdjustWeight(general, 10, hints)
	require.Equal(t, int32(10), adjusted)
}

func TestAdjustWeightEquivalentTakesPrecedence(t *testing.T) {
	p := symbol.ID(1)
	a := symbol.ID(2)
	c := unitClause(true, p, term.NewApp(a, nil))

	hints := hint.New()
	hints.Add(c, hint.Data{
		FSubWt: 10, FSubAddWt: -1,
		BSubWt: 10, BSubAddWt: -2,
		EquivWt: 10, EquivAddWt: -100,
	})

	adjusted := hint.AdjustWeight(c, 5, hints)
	require.Equal(t, int32(-95), adjusted)
}

func TestKeepTestRespectsFlags(t *testing.T) {
	p := symbol.ID(1)
	a := symbol.ID(2)
	x := term.NewVar(0)
	general := unitClause(true, p, x)
	specific := unitClause(true, p, term.NewApp(a, nil))

	hints := hint.New()
	hints.Add(specific, hint.Data{})

	require.False(t, hint.KeepTest(general, hints, false, false))
	require.True(t, hint.KeepTest(general, hints, true, false))
}

func TestAdjustWeightNilHintsIsNoop(t *testing.T) {
	p := symbol.ID(1)
	a := symbol.ID(2)
	c := unitClause(true, p, term.NewApp(a, nil))
	require.Equal(t, int32(7), hint.AdjustWeight(c, 7, nil))
}
