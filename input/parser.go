package input

import "fmt"

// ParseError is a location-tagged syntax error, distinct from the core's
// proverr.Error since it belongs to the input format, not clause/symbol
// construction (spec §7).
type ParseError struct {
	Pos     Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("input: parse error at %s: %s", e.Pos, e.Message)
}

// Parser is a recursive-descent parser over a pre-lexed token stream,
// following the same match/check/advance/peek/previous shape the teacher's
// classical/parser.go uses for propositional formulas.
type Parser struct {
	tokens []Token
	pos    int
}

// Parse lexes and parses src into a ProblemFile.
func Parse(src string) (*ProblemFile, error) {
	tokens, err := NewLexer(src).Lex()
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens}
	return p.parseFile()
}

func (p *Parser) peek() Token  { return p.tokens[p.pos] }
func (p *Parser) previous() Token {
	if p.pos == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.pos-1]
}
func (p *Parser) isAtEnd() bool { return p.peek().Type == TokEOF }

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) check(t TokenType) bool {
	if p.isAtEnd() {
		return t == TokEOF
	}
	return p.peek().Type == t
}

func (p *Parser) checkIdent(name string) bool {
	return p.check(TokIdent) && p.peek().Value == name
}

func (p *Parser) match(types ...TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) expect(t TokenType, context string) (Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return Token{}, &ParseError{Pos: p.peek().Pos, Message: fmt.Sprintf("expected %s %s, found %s %q", t, context, p.peek().Type, p.peek().Value)}
}

func (p *Parser) expectIdentValue(name string) error {
	if p.checkIdent(name) {
		p.advance()
		return nil
	}
	return &ParseError{Pos: p.peek().Pos, Message: fmt.Sprintf("expected %q, found %q", name, p.peek().Value)}
}

func (p *Parser) parseFile() (*ProblemFile, error) {
	f := newProblemFile()
	for !p.isAtEnd() {
		if err := p.parseDirective(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (p *Parser) parseDirective(f *ProblemFile) error {
	if !p.check(TokIdent) {
		return &ParseError{Pos: p.peek().Pos, Message: fmt.Sprintf("expected a directive keyword, found %q", p.peek().Value)}
	}
	switch p.peek().Value {
	case "list":
		return p.parseListDirective(f)
	case "set":
		return p.parseFlagDirective(&f.Sets)
	case "clear":
		return p.parseFlagDirective(&f.Clears)
	case "assign":
		return p.parseAssignDirective(f)
	case "weight_list":
		return p.parseWeightListDirective(f)
	case "lex":
		return p.parseLexDirective(f)
	case "op":
		return p.parseOpDirective(f)
	default:
		return &ParseError{Pos: p.peek().Pos, Message: fmt.Sprintf("unknown directive %q", p.peek().Value)}
	}
}

func (p *Parser) parseListDirective(f *ProblemFile) error {
	p.advance() // "list"
	if _, err := p.expect(TokLParen, "after list"); err != nil {
		return err
	}
	kindTok, err := p.expect(TokIdent, "list kind")
	if err != nil {
		return err
	}
	kind := ListKind(kindTok.Value)
	switch kind {
	case KindSOS, KindUsable, KindPassive, KindDemodulators, KindHints:
	default:
		return &ParseError{Pos: kindTok.Pos, Message: fmt.Sprintf("unknown list kind %q", kindTok.Value)}
	}
	if _, err := p.expect(TokRParen, "after list kind"); err != nil {
		return err
	}
	if _, err := p.expect(TokDot, "after list(...)"); err != nil {
		return err
	}

	for !p.checkIdent("end_of_list") {
		if p.isAtEnd() {
			return &ParseError{Pos: p.peek().Pos, Message: "unterminated list, expected end_of_list"}
		}
		c, err := p.parseClause()
		if err != nil {
			return err
		}
		f.Lists[kind] = append(f.Lists[kind], c)
	}
	p.advance() // "end_of_list"
	if _, err := p.expect(TokDot, "after end_of_list"); err != nil {
		return err
	}
	return nil
}

func (p *Parser) parseFlagDirective(into *[]string) error {
	p.advance() // "set" or "clear"
	if _, err := p.expect(TokLParen, "after set/clear"); err != nil {
		return err
	}
	name, err := p.expect(TokIdent, "flag name")
	if err != nil {
		return err
	}
	if _, err := p.expect(TokRParen, "after flag name"); err != nil {
		return err
	}
	if _, err := p.expect(TokDot, "after set/clear(...)"); err != nil {
		return err
	}
	*into = append(*into, name.Value)
	return nil
}

func (p *Parser) parseAssignDirective(f *ProblemFile) error {
	p.advance() // "assign"
	if _, err := p.expect(TokLParen, "after assign"); err != nil {
		return err
	}
	name, err := p.expect(TokIdent, "assign name")
	if err != nil {
		return err
	}
	if _, err := p.expect(TokComma, "after assign name"); err != nil {
		return err
	}
	neg := p.match(TokMinus)
	numTok, err := p.expect(TokNumber, "assign value")
	if err != nil {
		return err
	}
	val := atoi(numTok.Value)
	if neg {
		val = -val
	}
	if _, err := p.expect(TokRParen, "after assign value"); err != nil {
		return err
	}
	if _, err := p.expect(TokDot, "after assign(...)"); err != nil {
		return err
	}
	f.Assigns[name.Value] = val
	return nil
}

func (p *Parser) parseWeightListDirective(f *ProblemFile) error {
	p.advance() // "weight_list"
	if _, err := p.expect(TokLParen, "after weight_list"); err != nil {
		return err
	}
	if _, err := p.expect(TokIdent, "weight_list kind"); err != nil {
		return err
	}
	if _, err := p.expect(TokRParen, "after weight_list kind"); err != nil {
		return err
	}
	if _, err := p.expect(TokDot, "after weight_list(...)"); err != nil {
		return err
	}
	for !p.checkIdent("end_of_list") {
		if p.isAtEnd() {
			return &ParseError{Pos: p.peek().Pos, Message: "unterminated weight_list, expected end_of_list"}
		}
		if err := p.expectIdentValue("weight"); err != nil {
			return err
		}
		if _, err := p.expect(TokLParen, "after weight"); err != nil {
			return err
		}
		term, err := p.parseTerm()
		if err != nil {
			return err
		}
		if _, err := p.expect(TokComma, "after weight term"); err != nil {
			return err
		}
		neg := p.match(TokMinus)
		numTok, err := p.expect(TokNumber, "weight value")
		if err != nil {
			return err
		}
		val := int32(atoi(numTok.Value))
		if neg {
			val = -val
		}
		if _, err := p.expect(TokRParen, "after weight value"); err != nil {
			return err
		}
		if _, err := p.expect(TokDot, "after weight(...)"); err != nil {
			return err
		}
		f.WeightEntries = append(f.WeightEntries, WeightEntry{Term: term, Value: val})
	}
	p.advance() // "end_of_list"
	if _, err := p.expect(TokDot, "after end_of_list"); err != nil {
		return err
	}
	return nil
}

func (p *Parser) parseLexDirective(f *ProblemFile) error {
	p.advance() // "lex"
	if _, err := p.expect(TokLParen, "after lex"); err != nil {
		return err
	}
	if _, err := p.expect(TokLBracket, "after lex("); err != nil {
		return err
	}
	for !p.check(TokRBracket) {
		name, err := p.expect(TokIdent, "precedence symbol")
		if err != nil {
			return err
		}
		f.Precedence = append(f.Precedence, name.Value)
		if !p.match(TokComma) {
			break
		}
	}
	if _, err := p.expect(TokRBracket, "after precedence list"); err != nil {
		return err
	}
	if _, err := p.expect(TokRParen, "after lex([...])"); err != nil {
		return err
	}
	if _, err := p.expect(TokDot, "after lex(...)"); err != nil {
		return err
	}
	return nil
}

func (p *Parser) parseOpDirective(f *ProblemFile) error {
	p.advance() // "op"
	if _, err := p.expect(TokLParen, "after op"); err != nil {
		return err
	}
	prioTok, err := p.expect(TokNumber, "operator priority")
	if err != nil {
		return err
	}
	if _, err := p.expect(TokComma, "after priority"); err != nil {
		return err
	}
	fixityTok, err := p.expect(TokIdent, "operator fixity")
	if err != nil {
		return err
	}
	if _, err := p.expect(TokComma, "after fixity"); err != nil {
		return err
	}
	symTok, err := p.expect(TokIdent, "operator symbol")
	if err != nil {
		return err
	}
	if _, err := p.expect(TokRParen, "after operator symbol"); err != nil {
		return err
	}
	if _, err := p.expect(TokDot, "after op(...)"); err != nil {
		return err
	}
	f.Operators = append(f.Operators, OperatorDecl{Priority: atoi(prioTok.Value), Fixity: fixityTok.Value, Symbol: symTok.Value})
	return nil
}

// parseClause parses a disjunction of literals terminated by ".".
func (p *Parser) parseClause() (RawClause, error) {
	var lits []RawLiteral
	for {
		lit, err := p.parseLiteral()
		if err != nil {
			return RawClause{}, err
		}
		lits = append(lits, lit)
		if !p.match(TokBar) {
			break
		}
	}
	if _, err := p.expect(TokDot, "after clause"); err != nil {
		return RawClause{}, err
	}
	return RawClause{Literals: lits}, nil
}

// parseLiteral parses an optionally negated atom, or an equation
// (s = t / s != t); "-" before an equation negates it exactly as "!="
// does, so "-(s = t)" and "s != t" are equivalent.
func (p *Parser) parseLiteral() (RawLiteral, error) {
	sign := true
	if p.match(TokMinus) {
		sign = false
	}
	lhs, err := p.parseTerm()
	if err != nil {
		return RawLiteral{}, err
	}
	switch {
	case p.match(TokEqual):
		rhs, err := p.parseTerm()
		if err != nil {
			return RawLiteral{}, err
		}
		return RawLiteral{Sign: sign, IsEquality: true, Left: lhs, Right: rhs}, nil
	case p.match(TokBangEqual):
		rhs, err := p.parseTerm()
		if err != nil {
			return RawLiteral{}, err
		}
		return RawLiteral{Sign: !sign, IsEquality: true, Left: lhs, Right: rhs}, nil
	default:
		return RawLiteral{Sign: sign, Atom: lhs}, nil
	}
}

// parseTerm parses a variable, constant, or function/predicate application.
func (p *Parser) parseTerm() (RawTerm, error) {
	if p.check(TokVar) {
		tok := p.advance()
		return RawTerm{Name: tok.Value, IsVar: true}, nil
	}
	nameTok, err := p.expect(TokIdent, "term")
	if err != nil {
		return RawTerm{}, err
	}
	t := RawTerm{Name: nameTok.Value}
	if !p.match(TokLParen) {
		return t, nil
	}
	for {
		arg, err := p.parseTerm()
		if err != nil {
			return RawTerm{}, err
		}
		t.Args = append(t.Args, arg)
		if !p.match(TokComma) {
			break
		}
	}
	if _, err := p.expect(TokRParen, "after argument list"); err != nil {
		return RawTerm{}, err
	}
	return t, nil
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
