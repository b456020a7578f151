package term_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/foras/symbol"
	"github.com/xDarkicex/foras/term"
)

func TestEqualStructural(t *testing.T) {
	f := symbol.ID(1)
	a := symbol.ID(2)
	t1 := term.NewApp(f, []term.Term{term.NewApp(a, nil), term.NewVar(0)})
	t2 := term.NewApp(f, []term.Term{term.NewApp(a, nil), term.NewVar(0)})
	t3 := term.NewApp(f, []term.Term{term.NewApp(a, nil), term.NewVar(1)})

	require.True(t, t1.Equal(t2))
	require.False(t, t1.Equal(t3))
}

func TestOccurs(t *testing.T) {
	f := symbol.ID(1)
	x := term.NewVar(0)
	nested := term.NewApp(f, []term.Term{term.NewApp(f, []term.Term{x})})
	require.True(t, term.Occurs(0, nested))
	require.False(t, term.Occurs(1, nested))
}

func TestVarsFirstOccurrenceOrder(t *testing.T) {
	f := symbol.ID(1)
	tm := term.NewApp(f, []term.Term{term.NewVar(2), term.NewVar(0), term.NewVar(2)})
	require.Equal(t, []term.VarID{2, 0}, term.Vars(tm))
}

func TestSize(t *testing.T) {
	a := symbol.ID(1)
	f := symbol.ID(2)
	require.Equal(t, 1, term.Size(term.NewVar(0)))
	require.Equal(t, 1, term.Size(term.NewApp(a, nil)))
	require.Equal(t, 3, term.Size(term.NewApp(f, []term.Term{term.NewApp(a, nil), term.NewVar(0)})))
}

func TestWalkVisitsEverySubterm(t *testing.T) {
	f := symbol.ID(1)
	a := symbol.ID(2)
	tm := term.NewApp(f, []term.Term{term.NewApp(a, nil), term.NewVar(0)})

	var count int
	term.Walk(tm, func(term.Term) { count++ })
	require.Equal(t, 3, count)
}
