package subst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/foras/subst"
	"github.com/xDarkicex/foras/symbol"
	"github.com/xDarkicex/foras/term"
)

func TestUnifyVariableWithTerm(t *testing.T) {
	f := symbol.ID(1)
	a := symbol.ID(2)
	x := term.NewVar(0)
	ft := term.NewApp(f, []term.Term{term.NewApp(a, nil)})

	s, err := subst.Unify(x, ft)
	require.NoError(t, err)
	require.True(t, s.Apply(x).Equal(ft))
}

func TestUnifyOccursCheckFails(t *testing.T) {
	f := symbol.ID(1)
	x := term.NewVar(0)
	ft := term.NewApp(f, []term.Term{x})

	_, err := subst.Unify(x, ft)
	require.ErrorIs(t, err, subst.ErrOccursCheck)
}

func TestUnifySymbolMismatch(t *testing.T) {
	a := symbol.ID(1)
	b := symbol.ID(2)
	_, err := subst.Unify(term.NewApp(a, nil), term.NewApp(b, nil))
	require.ErrorIs(t, err, subst.ErrSymbolMismatch)
}

func TestMatchIsOneSided(t *testing.T) {
	f := symbol.ID(1)
	a := symbol.ID(2)
	x := term.NewVar(0)
	pattern := term.NewApp(f, []term.Term{x})
	subject := term.NewApp(f, []term.Term{term.NewApp(a, nil)})

	s, err := subst.Match(pattern, subject)
	require.NoError(t, err)
	require.True(t, s.Apply(pattern).Equal(subject))

	// A variable on the subject side is never a valid pattern-match target
	// for a ground pattern.
	_, err = subst.Match(term.NewApp(a, nil), x)
	require.Error(t, err)
}

func TestMatchIncompatibleBinding(t *testing.T) {
	f := symbol.ID(1)
	a := symbol.ID(2)
	b := symbol.ID(3)
	x := term.NewVar(0)
	pattern := term.NewApp(f, []term.Term{x, x})
	subject := term.NewApp(f, []term.Term{term.NewApp(a, nil), term.NewApp(b, nil)})

	_, err := subst.Match(pattern, subject)
	require.ErrorIs(t, err, subst.ErrIncompatibleBinding)
}

func TestVarSourceReserveAvoidsCollisions(t *testing.T) {
	src := subst.NewVarSource()
	src.Reserve(0, 3, 1)
	require.Equal(t, term.VarID(4), src.Fresh())
	require.Equal(t, term.VarID(5), src.Fresh())
}

func TestRenameTermProducesFreshDisjointVars(t *testing.T) {
	f := symbol.ID(1)
	x, y := term.NewVar(0), term.NewVar(1)
	orig := term.NewApp(f, []term.Term{x, y, x})

	src := subst.NewVarSource()
	src.Reserve(0, 1)
	mapping := map[term.VarID]term.VarID{}
	renamed := subst.RenameTerm(orig, mapping, src)

	app, ok := renamed.(term.App)
	require.True(t, ok)
	v0, ok := term.IsVariable(app.Args[0])
	require.True(t, ok)
	v2, ok := term.IsVariable(app.Args[2])
	require.True(t, ok)
	require.Equal(t, v0, v2, "same source variable renames to the same fresh id")
	require.NotEqual(t, v0, term.VarID(0))
}

func TestMergeComposesSubstitutions(t *testing.T) {
	f := symbol.ID(1)
	a := symbol.ID(2)

	bSubst := subst.New()
	bSubst[0] = term.NewVar(1)
	aSubst := subst.New()
	aSubst[1] = term.NewApp(a, nil)

	merged := subst.Merge(aSubst, bSubst)
	result := merged.Apply(term.NewApp(f, []term.Term{term.NewVar(0)}))
	require.True(t, result.Equal(term.NewApp(f, []term.Term{term.NewApp(a, nil)})))
}
