package infer

import (
	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/subst"
	"github.com/xDarkicex/foras/symbol"
	"github.com/xDarkicex/foras/term"
)

// Paramodulate produces every paramodulant of an equality literal s = t
// (positive, taken from the from clause) into a non-variable subterm
// position of some literal of the into clause: if mgu(s, subject@p) = sigma,
// the result is sigma applied to into with subject@p replaced by t, plus
// sigma applied to from's remaining literals, with parents [fromID, intoID].
//
// fromLeft/fromRight select whether the equality's left/right side may act
// as s (the side unified against the target subterm); intoLeft/intoRight
// restrict target positions that fall under the left/right argument of an
// equality atom being rewritten into (positions in a non-equality atom are
// unaffected by these two flags).
func Paramodulate(fromID clause.ID, from clause.Clause, intoID clause.ID, into clause.Clause, eqSym symbol.ID, fromLeft, fromRight, intoLeft, intoRight bool, src *subst.VarSource) []Result {
	rf := renameClause(from, src)
	ri := renameClause(into, src)

	var out []Result
	for i, fl := range rf.Literals {
		if !fl.Sign {
			continue
		}
		app, ok := fl.Atom.(term.App)
		if !ok || app.Symbol != eqSym || len(app.Args) != 2 {
			continue
		}

		type side struct{ s, t term.Term }
		var sides []side
		if fromLeft {
			sides = append(sides, side{s: app.Args[0], t: app.Args[1]})
		}
		if fromRight {
			sides = append(sides, side{s: app.Args[1], t: app.Args[0]})
		}
		if len(sides) == 0 {
			continue
		}

		for j, il := range ri.Literals {
			positions := eligiblePositions(il.Atom, eqSym, intoLeft, intoRight)
			for _, pos := range positions {
				subject, ok := term.At(il.Atom, pos)
				if !ok {
					continue
				}
				for _, sd := range sides {
					sub, err := subst.Unify(sd.s, subject)
					if err != nil {
						continue
					}
					rewritten := term.Replace(il.Atom, pos, sd.t)

					lits := make([]clause.Literal, 0, len(ri.Literals)+len(rf.Literals)-1)
					for k, l := range ri.Literals {
						if k == j {
							lits = append(lits, clause.NewLiteral(l.Sign, sub.Apply(rewritten)))
						} else {
							lits = append(lits, clause.NewLiteral(l.Sign, sub.Apply(l.Atom)))
						}
					}
					lits = append(lits, literalsExcept(rf.Literals, i, sub)...)

					child := clause.New(lits)
					child.AddParent(fromID)
					child.AddParent(intoID)
					out = append(out, Result{Clause: child, Parents: []clause.ID{fromID, intoID}})
				}
			}
		}
	}
	return out
}

// eligiblePositions enumerates the non-variable subterm positions of atom
// eligible as a paramodulation target: every position of a non-equality
// atom, or (for an equality atom) the positions under its left/right
// argument gated by intoLeft/intoRight, plus the atom's own root.
func eligiblePositions(atom term.Term, eqSym symbol.ID, intoLeft, intoRight bool) []term.Position {
	app, ok := atom.(term.App)
	if !ok || app.Symbol != eqSym || len(app.Args) != 2 {
		return term.Positions(atom, true)
	}
	var out []term.Position
	for _, pos := range term.Positions(atom, true) {
		if len(pos) == 0 {
			out = append(out, pos)
			continue
		}
		switch pos[0] {
		case 0:
			if intoLeft {
				out = append(out, pos)
			}
		case 1:
			if intoRight {
				out = append(out, pos)
			}
		}
	}
	return out
}
