package demod_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/demod"
	"github.com/xDarkicex/foras/order"
	"github.com/xDarkicex/foras/symbol"
	"github.com/xDarkicex/foras/term"
)

func TestExtractRuleOrientsByPrecedence(t *testing.T) {
	eq := symbol.ID(1)
	a := symbol.ID(2)
	b := symbol.ID(3)

	lrpo := order.New()
	lrpo.SetPrecedence(a, 0)
	lrpo.SetPrecedence(b, 1)

	c := clause.New([]clause.Literal{
		clause.NewLiteral(true, term.NewApp(eq, []term.Term{term.NewApp(a, nil), term.NewApp(b, nil)})),
	})
	rule, ok := demod.ExtractRule(c, eq, lrpo)
	require.True(t, ok)
	require.True(t, rule.LHS.Equal(term.NewApp(a, nil)))
	require.True(t, rule.RHS.Equal(term.NewApp(b, nil)))
}

func TestExtractRuleRejectsNonUnitOrNegative(t *testing.T) {
	eq := symbol.ID(1)
	a := symbol.ID(2)
	lrpo := order.New()

	negUnit := clause.New([]clause.Literal{
		clause.NewLiteral(false, term.NewApp(eq, []term.Term{term.NewApp(a, nil), term.NewApp(a, nil)})),
	})
	_, ok := demod.ExtractRule(negUnit, eq, lrpo)
	require.False(t, ok)

	twoLits := clause.New([]clause.Literal{
		clause.NewLiteral(true, term.NewApp(eq, []term.Term{term.NewApp(a, nil), term.NewApp(a, nil)})),
		clause.NewLiteral(true, term.NewApp(eq, []term.Term{term.NewApp(a, nil), term.NewApp(a, nil)})),
	})
	_, ok = demod.ExtractRule(twoLits, eq, lrpo)
	require.False(t, ok)
}

func TestExtractRuleRejectsUnboundRHSVariable(t *testing.T) {
	eq := symbol.ID(1)
	f := symbol.ID(2)
	lrpo := order.New()
	lrpo.SetPrecedence(f, 0)

	x, y := term.NewVar(0), term.NewVar(1)
	// f(x) = y : y does not occur in the LHS, so this can't be a valid rule
	// in either orientation (y alone can't be an LHS either).
	c := clause.New([]clause.Literal{
		clause.NewLiteral(true, term.NewApp(eq, []term.Term{term.NewApp(f, []term.Term{x}), y})),
	})
	_, ok := demod.ExtractRule(c, eq, lrpo)
	require.False(t, ok)
}

func TestRewriteToFixpoint(t *testing.T) {
	f := symbol.ID(1)
	a := symbol.ID(2)
	b := symbol.ID(3)

	rule := demod.Rule{LHS: term.NewApp(a, nil), RHS: term.NewApp(b, nil)}
	tm := term.NewApp(f, []term.Term{term.NewApp(a, nil), term.NewApp(a, nil)})

	rewritten := demod.Rewrite(tm, []demod.Rule{rule}, 10)
	require.True(t, rewritten.Equal(term.NewApp(f, []term.Term{term.NewApp(b, nil), term.NewApp(b, nil)})))
}

func TestRewriteClauseNormalisesEveryLiteral(t *testing.T) {
	eq := symbol.ID(1)
	a := symbol.ID(2)
	b := symbol.ID(3)

	rule := demod.Rule{LHS: term.NewApp(a, nil), RHS: term.NewApp(b, nil)}
	c := clause.New([]clause.Literal{
		clause.NewLiteral(false, term.NewApp(eq, []term.Term{term.NewApp(a, nil), term.NewApp(a, nil)})),
	})

	out := demod.RewriteClause(c, []demod.Rule{rule}, 10)
	want := term.NewApp(eq, []term.Term{term.NewApp(b, nil), term.NewApp(b, nil)})
	require.True(t, out.Literals[0].Atom.Equal(want))
}
