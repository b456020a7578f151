package clause_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/symbol"
	"github.com/xDarkicex/foras/term"
)

func TestArenaInsertGetReplace(t *testing.T) {
	a := clause.NewArena()
	p := symbol.ID(1)
	c := clause.New([]clause.Literal{clause.NewLiteral(true, term.NewApp(p, nil))})

	id := a.Insert(c)
	got, ok := a.Get(id)
	require.True(t, ok)
	require.Equal(t, c.Literals, got.Literals)

	replacement := clause.New(nil)
	require.True(t, a.Replace(id, replacement))
	got, ok = a.Get(id)
	require.True(t, ok)
	require.True(t, got.IsEmpty())

	_, ok = a.Get(clause.ID(99))
	require.False(t, ok)
}

func TestClauseIsTautology(t *testing.T) {
	p := symbol.ID(1)
	a := symbol.ID(2)
	atom := term.NewApp(p, []term.Term{term.NewApp(a, nil)})

	taut := clause.New([]clause.Literal{
		clause.NewLiteral(true, atom),
		clause.NewLiteral(false, atom),
	})
	require.True(t, taut.IsTautology())

	notTaut := clause.New([]clause.Literal{clause.NewLiteral(true, atom)})
	require.False(t, notTaut.IsTautology())
}

func TestClauseCloneIsIndependent(t *testing.T) {
	p := symbol.ID(1)
	c := clause.New([]clause.Literal{clause.NewLiteral(true, term.NewApp(p, nil))})
	c.AddParent(clause.ID(1))

	clone := c.Clone()
	clone.AddParent(clause.ID(2))
	require.Len(t, c.Parents, 1)
	require.Len(t, clone.Parents, 2)
}

func TestListFIFOAndRemoval(t *testing.T) {
	l := clause.NewList("sos")
	l.Push(1)
	l.Push(2)
	l.Push(3)

	id, ok := l.Pop()
	require.True(t, ok)
	require.Equal(t, clause.ID(1), id)

	require.True(t, l.Remove(3))
	require.Equal(t, []clause.ID{2}, l.Items())

	_, ok = l.RemoveAt(5)
	require.False(t, ok)
}
