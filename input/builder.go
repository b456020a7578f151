package input

import (
	"github.com/mitchellh/mapstructure"

	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/prover"
	"github.com/xDarkicex/foras/proverr"
	"github.com/xDarkicex/foras/symbol"
	"github.com/xDarkicex/foras/term"
)

// equalityName is the fixed internal name given to the distinguished
// equality symbol, regardless of whether the input wrote "=" or "!=".
const equalityName = "="

// BuildProver turns a parsed ProblemFile into a ready-to-search
// *prover.Prover: it interns every symbol, constructs clauses from the raw
// syntax, applies weight and precedence directives, and decodes
// set/clear/assign onto a prover.Config (the "ProverBuilder" step from the
// original implementation).
func BuildProver(f *ProblemFile) (*prover.Prover, error) {
	cfg, err := decodeConfig(f)
	if err != nil {
		return nil, err
	}

	symbols := symbol.NewTable()
	p := prover.NewProver(cfg, symbols)
	b := &builder{symbols: symbols}

	for _, kind := range []ListKind{KindSOS, KindUsable, KindPassive, KindDemodulators, KindHints} {
		for _, rc := range f.Lists[kind] {
			c, err := b.buildClause(rc)
			if err != nil {
				return nil, proverr.Wrap(err, "input.BuildProver")
			}
			switch kind {
			case KindHints:
				p.AddHint(c)
			case KindUsable, KindDemodulators:
				p.AddUsable(c)
			default: // KindSOS, KindPassive
				p.AddSOS(c)
			}
		}
	}

	for _, we := range f.WeightEntries {
		t, err := b.internTerm(we.Term, map[string]term.VarID{}, nextVarCounter(), false)
		if err != nil {
			return nil, proverr.Wrap(err, "input.BuildProver")
		}
		if app, ok := t.(term.App); ok {
			p.SetSymbolWeight(app.Symbol, we.Value)
		}
	}

	for i, name := range f.Precedence {
		id, ok := symbols.Lookup(name)
		if !ok {
			return nil, proverr.Newf(proverr.KindBuild, "input.BuildProver",
				"lex(...) names unknown symbol %q (it must also appear in a clause)", name)
		}
		p.SetSymbolPrecedence(id, uint32(i))
	}

	return p, nil
}

func decodeConfig(f *ProblemFile) (prover.Config, error) {
	cfg := prover.DefaultConfig()

	m := make(map[string]interface{})
	for _, name := range f.Sets {
		m[name] = true
	}
	for _, name := range f.Clears {
		m[name] = false
	}
	for name, val := range f.Assigns {
		m[name] = val
	}
	if len(m) == 0 {
		return cfg, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return cfg, proverr.Wrap(err, "input.decodeConfig")
	}
	if err := decoder.Decode(m); err != nil {
		return cfg, proverr.Wrap(err, "input.decodeConfig")
	}
	return cfg, nil
}

// builder interns symbols while turning RawClause/RawTerm values into
// clause.Clause/term.Term values.
type builder struct {
	symbols *symbol.Table
}

type varCounter struct{ next term.VarID }

func nextVarCounter() *varCounter { return &varCounter{} }

func (vc *varCounter) fresh() term.VarID {
	id := vc.next
	vc.next++
	return id
}

func (b *builder) buildClause(rc RawClause) (clause.Clause, error) {
	vars := make(map[string]term.VarID)
	vc := nextVarCounter()

	lits := make([]clause.Literal, 0, len(rc.Literals))
	for _, rl := range rc.Literals {
		if rl.IsEquality {
			eqID, err := b.symbols.Intern(equalityName, 2, symbol.KindEquality)
			if err != nil {
				return clause.Clause{}, err
			}
			left, err := b.internTerm(rl.Left, vars, vc, false)
			if err != nil {
				return clause.Clause{}, err
			}
			right, err := b.internTerm(rl.Right, vars, vc, false)
			if err != nil {
				return clause.Clause{}, err
			}
			atom := term.NewApp(eqID, []term.Term{left, right})
			lits = append(lits, clause.NewLiteral(rl.Sign, atom))
			continue
		}
		atom, err := b.internTerm(rl.Atom, vars, vc, true)
		if err != nil {
			return clause.Clause{}, err
		}
		lits = append(lits, clause.NewLiteral(rl.Sign, atom))
	}
	return clause.New(lits), nil
}

// internTerm interns rt's symbol (if any) and recursively its arguments.
// isAtomHead marks rt as the head of a non-equality literal, which decides
// between KindPredicate/KindAnswer and KindFunction/KindConstant.
func (b *builder) internTerm(rt RawTerm, vars map[string]term.VarID, vc *varCounter, isAtomHead bool) (term.Term, error) {
	if rt.IsVar {
		id, ok := vars[rt.Name]
		if !ok {
			id = vc.fresh()
			vars[rt.Name] = id
		}
		return term.NewVar(id), nil
	}

	args := make([]term.Term, len(rt.Args))
	for i, a := range rt.Args {
		arg, err := b.internTerm(a, vars, vc, false)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}

	kind := symbol.KindConstant
	if len(rt.Args) > 0 {
		kind = symbol.KindFunction
	}
	if isAtomHead {
		if symbol.IsAnswerName(rt.Name) {
			kind = symbol.KindAnswer
		} else {
			kind = symbol.KindPredicate
		}
	}

	id, err := b.symbols.Intern(rt.Name, len(rt.Args), kind)
	if err != nil {
		return nil, err
	}
	return term.NewApp(id, args), nil
}
