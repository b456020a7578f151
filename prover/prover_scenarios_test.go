package prover_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/prover"
	"github.com/xDarkicex/foras/symbol"
	"github.com/xDarkicex/foras/term"
)

func mustIntern(t *testing.T, tbl *symbol.Table, name string, arity int, kind symbol.Kind) symbol.ID {
	t.Helper()
	id, err := tbl.Intern(name, arity, kind)
	require.NoError(t, err)
	return id
}

func lit(sign bool, sym symbol.ID, args ...term.Term) clause.Literal {
	return clause.NewLiteral(sign, term.NewApp(sym, args))
}

// Scenario 1: resolution base case (spec §8.1).
func TestScenario_ResolutionBaseCase(t *testing.T) {
	symbols := symbol.NewTable()
	p := symbol.ID(0)
	a := symbol.ID(0)
	p = mustIntern(t, symbols, "P", 1, symbol.KindPredicate)
	a = mustIntern(t, symbols, "a", 0, symbol.KindConstant)
	x := term.NewVar(0)
	aTerm := term.NewApp(a, nil)

	pr := prover.NewProver(prover.DefaultConfig(), symbols)
	pr.AddSOS(clause.New([]clause.Literal{lit(true, p, aTerm)}))
	pr.AddUsable(clause.New([]clause.Literal{lit(false, p, x)}))

	result := pr.Search(context.Background())
	require.Equal(t, prover.KindProof, result.Kind)
	require.GreaterOrEqual(t, result.Stats.ClausesGenerated, 1)
	require.GreaterOrEqual(t, result.Stats.ClausesKept, 3)
}

// Scenario 2: saturation without a proof (spec §8.2).
func TestScenario_Saturation(t *testing.T) {
	symbols := symbol.NewTable()
	p := mustIntern(t, symbols, "P", 1, symbol.KindPredicate)
	q := mustIntern(t, symbols, "Q", 1, symbol.KindPredicate)
	a := mustIntern(t, symbols, "a", 0, symbol.KindConstant)
	b := mustIntern(t, symbols, "b", 0, symbol.KindConstant)

	pr := prover.NewProver(prover.DefaultConfig(), symbols)
	pr.AddSOS(clause.New([]clause.Literal{lit(true, p, term.NewApp(a, nil))}))
	pr.AddSOS(clause.New([]clause.Literal{lit(true, q, term.NewApp(b, nil))}))

	result := pr.Search(context.Background())
	require.Equal(t, prover.KindSaturated, result.Kind)
	require.Equal(t, 0, result.Stats.ClausesGenerated)
}

// Scenario 3: chain resolution (spec §8.3).
func TestScenario_ChainResolution(t *testing.T) {
	symbols := symbol.NewTable()
	p := mustIntern(t, symbols, "P", 1, symbol.KindPredicate)
	q := mustIntern(t, symbols, "Q", 1, symbol.KindPredicate)
	a := mustIntern(t, symbols, "a", 0, symbol.KindConstant)
	y := term.NewVar(0)
	aTerm := term.NewApp(a, nil)

	pr := prover.NewProver(prover.DefaultConfig(), symbols)
	pr.AddSOS(clause.New([]clause.Literal{lit(true, p, aTerm)}))
	pr.AddUsable(clause.New([]clause.Literal{lit(false, p, y), lit(true, q, y)}))
	pr.AddSOS(clause.New([]clause.Literal{lit(false, q, aTerm)}))

	result := pr.Search(context.Background())
	require.Equal(t, prover.KindProof, result.Kind)
}

// Scenario 4: Knuth-Bendix mini-completion via paramodulation (spec §8.4).
func TestScenario_KnuthBendixMiniCompletion(t *testing.T) {
	symbols := symbol.NewTable()
	eq := mustIntern(t, symbols, "=", 2, symbol.KindEquality)
	mul := mustIntern(t, symbols, "mul", 2, symbol.KindFunction)
	g := mustIntern(t, symbols, "g", 1, symbol.KindFunction)
	e := mustIntern(t, symbols, "e", 0, symbol.KindConstant)

	x := term.NewVar(0)
	y := term.NewVar(1)
	z := term.NewVar(2)
	eTerm := term.NewApp(e, nil)

	mkMul := func(a, b term.Term) term.Term { return term.NewApp(mul, []term.Term{a, b}) }
	mkEq := func(sign bool, a, b term.Term) clause.Literal {
		return clause.NewLiteral(sign, term.NewApp(eq, []term.Term{a, b}))
	}

	cfg := prover.DefaultConfig()
	cfg.UseDemod = true
	cfg.UseBackDemod = true
	cfg.UseParaInto = true
	cfg.UseParaFrom = true

	pr := prover.NewProver(cfg, symbols)
	pr.SetSymbolPrecedence(g, 0)
	pr.SetSymbolPrecedence(mul, 1)
	pr.SetSymbolPrecedence(e, 2)

	// e*x = x
	pr.AddUsable(clause.New([]clause.Literal{mkEq(true, mkMul(eTerm, x), x)}))
	// g(x)*x = e
	pr.AddUsable(clause.New([]clause.Literal{mkEq(true, mkMul(term.NewApp(g, []term.Term{x}), x), eTerm)}))
	// (x*y)*z = x*(y*z)
	pr.AddUsable(clause.New([]clause.Literal{mkEq(true, mkMul(mkMul(x, y), z), mkMul(x, mkMul(y, z)))}))
	// goal: x*e != x
	pr.AddSOS(clause.New([]clause.Literal{mkEq(false, mkMul(x, eTerm), x)}))

	result := pr.Search(context.Background())
	require.Equal(t, prover.KindProof, result.Kind)
}

// Scenario 5: reflexive contradiction surfaced by back-demodulation (spec §8.5).
func TestScenario_ReflexiveContradictionAfterDemodulation(t *testing.T) {
	symbols := symbol.NewTable()
	eq := mustIntern(t, symbols, "=", 2, symbol.KindEquality)
	a := mustIntern(t, symbols, "a", 0, symbol.KindConstant)
	b := mustIntern(t, symbols, "b", 0, symbol.KindConstant)
	aTerm := term.NewApp(a, nil)
	bTerm := term.NewApp(b, nil)

	cfg := prover.DefaultConfig()
	cfg.UseDemod = true
	cfg.UseBackDemod = true

	pr := prover.NewProver(cfg, symbols)
	pr.SetSymbolPrecedence(a, 0)
	pr.SetSymbolPrecedence(b, 1)

	pr.AddSOS(clause.New([]clause.Literal{clause.NewLiteral(true, term.NewApp(eq, []term.Term{aTerm, bTerm}))}))
	pr.AddSOS(clause.New([]clause.Literal{clause.NewLiteral(false, term.NewApp(eq, []term.Term{aTerm, aTerm}))}))

	result := pr.Search(context.Background())
	require.Equal(t, prover.KindProof, result.Kind)
}

// Scenario 6: propositional pigeonhole, 5 pigeons into 4 holes (spec §8.6).
func TestScenario_Pigeonhole5Into4(t *testing.T) {
	const pigeons, holes = 5, 4

	symbols := symbol.NewTable()
	predID := func(i, h int) symbol.ID {
		return mustIntern(t, symbols, fmt.Sprintf("p%d_%d", i, h), 0, symbol.KindPredicate)
	}

	cfg := prover.DefaultConfig()
	cfg.UseFactor = true
	cfg.UseSubsumption = true

	pr := prover.NewProver(cfg, symbols)

	for i := 1; i <= pigeons; i++ {
		var lits []clause.Literal
		for h := 1; h <= holes; h++ {
			lits = append(lits, clause.NewLiteral(true, term.NewApp(predID(i, h), nil)))
		}
		pr.AddSOS(clause.New(lits))
	}
	for h := 1; h <= holes; h++ {
		for i := 1; i <= pigeons; i++ {
			for j := i + 1; j <= pigeons; j++ {
				pr.AddSOS(clause.New([]clause.Literal{
					clause.NewLiteral(false, term.NewApp(predID(i, h), nil)),
					clause.NewLiteral(false, term.NewApp(predID(j, h), nil)),
				}))
			}
		}
	}

	result := pr.Search(context.Background())
	require.Equal(t, prover.KindProof, result.Kind)
}
