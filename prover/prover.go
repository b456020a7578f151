package prover

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/xDarkicex/foras/clause"
	"github.com/xDarkicex/foras/demod"
	"github.com/xDarkicex/foras/hint"
	"github.com/xDarkicex/foras/infer"
	"github.com/xDarkicex/foras/order"
	"github.com/xDarkicex/foras/proverr"
	"github.com/xDarkicex/foras/resource"
	"github.com/xDarkicex/foras/subst"
	"github.com/xDarkicex/foras/subsume"
	"github.com/xDarkicex/foras/symbol"
	"github.com/xDarkicex/foras/term"
	"github.com/xDarkicex/foras/weight"
)

// Prover holds the entire state of one saturation search: the clause arena,
// the set-of-support and usable lists, the demodulator set, the weight
// table and LRPO ordering, hints, and search statistics. A Prover is a pure
// function of its loaded clauses and Config; it touches no OS API except
// through the injected resource.Sampler.
type Prover struct {
	config  Config
	symbols *symbol.Table

	arena  *clause.Arena
	sos    *clause.List
	usable *clause.List

	demodulators []demod.Rule
	weights      *weight.Table
	lrpo         *order.LRPO
	hints        *hint.List
	varSrc       *subst.VarSource
	sampler      resource.Sampler
	logger       *logrus.Entry

	stats      Statistics
	pickCount  int
	depthCache map[clause.ID]int

	// proofFromBackDemod is the one-shot side channel back-demodulation
	// uses to report a t != t contradiction discovered while rewriting an
	// existing clause; consumed at the top of the next search iteration.
	proofFromBackDemod *clause.ID
}

// NewProver creates a Prover over an (initially empty) symbol table with
// the given configuration. Memory is sampled through resource.ProcSampler
// when cfg.MaxMemoryBytes is set and through resource.NopSampler otherwise;
// SetSampler replaces either.
func NewProver(cfg Config, symbols *symbol.Table) *Prover {
	var sampler resource.Sampler = resource.NopSampler{}
	if cfg.MaxMemoryBytes > 0 {
		sampler = resource.ProcSampler{}
	}
	return &Prover{
		config:     cfg,
		symbols:    symbols,
		arena:      clause.NewArena(),
		sos:        clause.NewList("sos"),
		usable:     clause.NewList("usable"),
		weights:    weight.NewTable(),
		lrpo:       order.New(),
		hints:      hint.New(),
		varSrc:     subst.NewVarSource(),
		sampler:    sampler,
		depthCache: make(map[clause.ID]int),
		logger:     logrus.WithField("component", "prover"),
	}
}

// SetSampler installs the resource.Sampler consulted for max_memory_bytes.
func (p *Prover) SetSampler(s resource.Sampler) { p.sampler = s }

// SetSymbolWeight fixes the pick-weight contribution of sym.
func (p *Prover) SetSymbolWeight(sym symbol.ID, w int32) { p.weights.SetWeight(sym, w) }

// SetDefaultWeight sets the weight used for symbols with no explicit entry.
func (p *Prover) SetDefaultWeight(w int32) { p.weights.SetDefault(w) }

// SetSymbolPrecedence fixes sym's LRPO precedence (lower value = higher
// precedence).
func (p *Prover) SetSymbolPrecedence(sym symbol.ID, prec uint32) { p.lrpo.SetPrecedence(sym, prec) }

// AddHint registers a hint clause using the weight-adjustment parameters
// from Config.
func (p *Prover) AddHint(c clause.Clause) {
	p.hints.Add(c, hint.Data{
		FSubWt: p.config.FSubHintWt, FSubAddWt: p.config.FSubHintAddWt,
		BSubWt: p.config.BSubHintWt, BSubAddWt: p.config.BSubHintAddWt,
		EquivWt: p.config.EquivHintWt, EquivAddWt: p.config.EquivHintAddWt,
	})
}

// Config returns the prover's configuration.
func (p *Prover) Config() Config { return p.config }

// SetConfig replaces the prover's configuration.
func (p *Prover) SetConfig(cfg Config) { p.config = cfg }

// Symbols returns the prover's symbol table.
func (p *Prover) Symbols() *symbol.Table { return p.symbols }

// Arena exposes the clause arena for inspection (e.g. printing a proof).
func (p *Prover) Arena() *clause.Arena { return p.arena }

// Stats returns the current resource-accounting counters.
func (p *Prover) Stats() Statistics { return p.stats }

func (p *Prover) reserveVars(c clause.Clause) {
	for _, lit := range c.Literals {
		p.varSrc.Reserve(term.Vars(lit.Atom)...)
	}
}

// AddSOS inserts an input clause directly into the set of support. Input
// clauses bypass max_weight filtering (spec §4.3).
func (p *Prover) AddSOS(c clause.Clause) clause.ID {
	p.reserveVars(c)
	c.PickWeight = p.weights.WeightClause(c)
	if len(p.hints.Entries) > 0 {
		c.PickWeight = hint.AdjustWeight(c, c.PickWeight, p.hints)
	}
	id := p.arena.Insert(c)
	p.sos.Push(id)
	p.stats.ClausesKept++
	return id
}

// AddUsable inserts an input clause directly into the usable set.
func (p *Prover) AddUsable(c clause.Clause) clause.ID {
	p.reserveVars(c)
	c.PickWeight = p.weights.WeightClause(c)
	id := p.arena.Insert(c)
	p.usable.Push(id)
	p.stats.ClausesKept++
	return id
}

// tryKeepClause caches the weight, applies hint adjustment, applies the
// max_weight/hint-keep filter, and on success inserts c into SOS.
func (p *Prover) tryKeepClause(c clause.Clause) bool {
	c.PickWeight = p.weights.WeightClause(c)
	if len(p.hints.Entries) > 0 {
		c.PickWeight = hint.AdjustWeight(c, c.PickWeight, p.hints)
	}
	if p.config.MaxWeight < MaxWeight && c.PickWeight > p.config.MaxWeight {
		if !hint.KeepTest(c, p.hints, p.config.KeepHintSubsumers, p.config.KeepHintEquivalents) {
			return false
		}
	}
	id := p.arena.Insert(c)
	p.sos.Push(id)
	p.stats.ClausesKept++
	return true
}

func (p *Prover) isProof(c clause.Clause) bool {
	if c.IsEmpty() {
		return true
	}
	for _, lit := range c.Literals {
		app, ok := lit.Atom.(term.App)
		if !ok {
			return false
		}
		sym, ok := p.symbols.Get(app.Symbol)
		if !ok || sym.Kind != symbol.KindAnswer {
			return false
		}
	}
	return true
}

func isReflexiveContradiction(c clause.Clause, eqSym symbol.ID) bool {
	if len(c.Literals) != 1 || c.Literals[0].Sign {
		return false
	}
	app, ok := c.Literals[0].Atom.(term.App)
	if !ok || app.Symbol != eqSym || len(app.Args) != 2 {
		return false
	}
	return app.Args[0].Equal(app.Args[1])
}

// trySimplifyFactor merges the first pair of same-sign unifiable literals
// it finds, preserving c's existing parents (factoring here is a
// within-derivation simplification, not a new binary inference, so it
// records no additional parent).
func trySimplifyFactor(c clause.Clause) clause.Clause {
	for i := 0; i < len(c.Literals); i++ {
		for j := i + 1; j < len(c.Literals); j++ {
			li, lj := c.Literals[i], c.Literals[j]
			if li.Sign != lj.Sign {
				continue
			}
			sub, err := subst.Unify(li.Atom, lj.Atom)
			if err != nil {
				continue
			}
			lits := make([]clause.Literal, 0, len(c.Literals)-1)
			for k, l := range c.Literals {
				if k == j {
					continue
				}
				lits = append(lits, clause.NewLiteral(l.Sign, sub.Apply(l.Atom)))
			}
			out := clause.New(lits)
			out.Parents = append(out.Parents, c.Parents...)
			out.Attributes = append(out.Attributes, c.Attributes...)
			return out
		}
	}
	return c
}

// processNewClause applies the per-child simplification pipeline: tautology
// check, factoring, demodulation, reflexive-contradiction detection, and
// demodulator extraction (with back-demodulation). Returns ok=false if the
// clause should be discarded outright (a tautology).
func (p *Prover) processNewClause(c clause.Clause) (clause.Clause, bool) {
	if c.IsTautology() {
		if p.config.Debug {
			p.logger.WithField("literals", len(c.Literals)).Debug("tautology detected")
		}
		return clause.Clause{}, false
	}

	if p.config.UseFactor {
		c = trySimplifyFactor(c)
	}

	if p.config.UseDemod && len(p.demodulators) > 0 {
		c = demod.RewriteClause(c, p.demodulators, p.config.MaxDemodIterations)
	}

	if eqSym, hasEq := p.symbols.EqualitySymbol(); hasEq {
		if isReflexiveContradiction(c, eqSym) {
			empty := clause.New(nil)
			empty.Parents = append(empty.Parents, c.Parents...)
			return empty, true
		}
		if p.config.UseDemod {
			if rule, ok := demod.ExtractRule(c, eqSym, p.lrpo); ok {
				if p.config.UseBackDemod {
					p.backDemodulate(rule)
				}
				p.demodulators = append(p.demodulators, rule)
			}
		}
	}

	return c, true
}

func literalsEqual(a, b []clause.Literal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// backDemodulate rewrites every clause in usable and SOS with the new
// demodulator, recaching the weight of every rewritten clause, and records a one-shot proof if
// rewriting produces t != t (spec §4.10 step 3, §9 design note).
func (p *Prover) backDemodulate(rule demod.Rule) {
	eqSym, hasEq := p.symbols.EqualitySymbol()

	rewriteList := func(list *clause.List, recacheWeight bool) bool {
		for _, id := range list.Items() {
			c, ok := p.arena.Get(id)
			if !ok {
				continue
			}
			simplified := demod.RewriteClause(c, []demod.Rule{rule}, p.config.MaxDemodIterations)
			if literalsEqual(c.Literals, simplified.Literals) {
				continue
			}
			if hasEq && isReflexiveContradiction(simplified, eqSym) {
				empty := clause.New(nil)
				empty.Parents = append(empty.Parents, c.Parents...)
				emptyID := p.arena.Insert(empty)
				p.proofFromBackDemod = &emptyID
				return true
			}
			if recacheWeight {
				simplified.PickWeight = p.weights.WeightClause(simplified)
			}
			p.arena.Replace(id, simplified)
		}
		return false
	}

	if rewriteList(p.usable, true) {
		return
	}
	rewriteList(p.sos, true)
}

func (p *Prover) preprocessInitialClauses() {
	if !p.config.UseDemod {
		return
	}
	eqSym, hasEq := p.symbols.EqualitySymbol()
	if !hasEq {
		return
	}
	for _, id := range append(p.usable.Items(), p.sos.Items()...) {
		c, ok := p.arena.Get(id)
		if !ok {
			continue
		}
		if rule, ok := demod.ExtractRule(c, eqSym, p.lrpo); ok {
			p.demodulators = append(p.demodulators, rule)
		}
	}
}

// clauseDepth returns the derivation depth of the clause stored at id,
// memoised since the arena only grows and Replace never changes Parents.
func (p *Prover) clauseDepth(id clause.ID) int {
	if d, ok := p.depthCache[id]; ok {
		return d
	}
	c, ok := p.arena.Get(id)
	if !ok || len(c.Parents) == 0 {
		p.depthCache[id] = 0
		return 0
	}
	max := 0
	for _, parent := range c.Parents {
		if d := p.clauseDepth(parent); d > max {
			max = d
		}
	}
	p.depthCache[id] = max + 1
	return max + 1
}

// ancestorDepthOf is the subsume.AncestorDepth callback: a candidate's own
// depth is one more than the deepest of its recorded parents.
func (p *Prover) ancestorDepthOf(c clause.Clause) int {
	max := -1
	for _, parent := range c.Parents {
		if d := p.clauseDepth(parent); d > max {
			max = d
		}
	}
	return max + 1
}

func (p *Prover) performBackSubsumption(c clause.Clause) {
	p.evictSubsumedFrom(p.usable, c)
	p.evictSubsumedFrom(p.sos, c)
}

func (p *Prover) evictSubsumedFrom(list *clause.List, c clause.Clause) {
	ids := list.Items()
	clauses := make([]clause.Clause, len(ids))
	for i, id := range ids {
		clauses[i], _ = p.arena.Get(id)
	}
	for _, idx := range subsume.BackSubsumed(c, clauses) {
		list.Remove(ids[idx])
	}
}

// iterCtx snapshots usable and SOS at the start of a given-clause
// iteration, used by every rule application within that iteration for
// forward subsumption and unit deletion (spec §4.10 step 4: the snapshot is
// not updated as new children are kept mid-iteration).
type iterCtx struct {
	usableIDs []clause.ID
	usable    []clause.Clause
	sos       []clause.Clause
}

func (c iterCtx) unitSatellites() []infer.Satellite {
	var out []infer.Satellite
	for i, cl := range c.usable {
		if cl.IsUnit() {
			out = append(out, infer.Satellite{ID: c.usableIDs[i], Clause: cl})
		}
	}
	return out
}

func (p *Prover) snapshotIterCtx() iterCtx {
	ids := p.usable.Items()
	clauses := make([]clause.Clause, len(ids))
	for i, id := range ids {
		clauses[i], _ = p.arena.Get(id)
	}
	sosIDs := p.sos.Items()
	sosClauses := make([]clause.Clause, len(sosIDs))
	for i, id := range sosIDs {
		sosClauses[i], _ = p.arena.Get(id)
	}
	return iterCtx{usableIDs: ids, usable: clauses, sos: sosClauses}
}

func (p *Prover) isForwardSubsumedCtx(c clause.Clause, ctx iterCtx) bool {
	if p.config.UseAncestorSubsume {
		return subsume.ForwardSubsumedAncestor(c, ctx.usable, p.ancestorDepthOf) ||
			subsume.ForwardSubsumedAncestor(c, ctx.sos, p.ancestorDepthOf)
	}
	return subsume.ForwardSubsumed(c, ctx.usable) || subsume.ForwardSubsumed(c, ctx.sos)
}

// handleChild runs one freshly generated child through the full
// process->proof-check->unit-deletion->tautology->subsumption->keep
// pipeline. It returns the empty clause's id and true if a proof was
// found, else (0, false) after either discarding or keeping the clause.
func (p *Prover) handleChild(c clause.Clause, ctx iterCtx) (clause.ID, bool) {
	p.stats.ClausesGenerated++

	processed, ok := p.processNewClause(c)
	if !ok {
		return 0, false
	}
	if p.isProof(processed) {
		id := p.arena.Insert(processed)
		p.stats.ClausesKept++
		return id, true
	}

	final := processed
	if p.config.UseUnitDeletion {
		if ud, ok := infer.ForwardUnitDeletion(final, ctx.unitSatellites()); ok {
			final = ud.Clause
			for _, parent := range ud.Parents {
				final.AddParent(parent)
			}
			if p.isProof(final) {
				id := p.arena.Insert(final)
				p.stats.ClausesKept++
				return id, true
			}
		}
	}

	if final.IsTautology() {
		if p.config.Debug {
			p.logger.Debug("tautology after unit deletion")
		}
		return 0, false
	}

	if p.config.UseSubsumption {
		if p.isForwardSubsumedCtx(final, ctx) {
			return 0, false
		}
		p.performBackSubsumption(final)
	}

	if !p.invariantCheck(final, "handleChild") {
		return 0, false
	}
	p.tryKeepClause(final)
	return 0, false
}

func hasNegativeLiteral(c clause.Clause) bool {
	for _, l := range c.Literals {
		if !l.Sign {
			return true
		}
	}
	return false
}

// selectGiven removes and returns the next given clause from SOS: by
// minimum cached PickWeight for pick_given_ratio picks out of every
// pick_given_ratio+1, then one FIFO pick, repeating (spec §4.10 step 2).
func (p *Prover) selectGiven() (clause.ID, bool) {
	if p.sos.IsEmpty() {
		return 0, false
	}
	selectByWeight := p.pickCount < p.config.PickGivenRatio
	p.pickCount = (p.pickCount + 1) % (p.config.PickGivenRatio + 1)

	if !selectByWeight {
		return p.sos.Pop()
	}

	items := p.sos.Items()
	minWeight := int32(0)
	minIdx := -1
	for i, id := range items {
		c, ok := p.arena.Get(id)
		if !ok {
			continue
		}
		if minIdx < 0 || c.PickWeight < minWeight {
			minWeight = c.PickWeight
			minIdx = i
		}
	}
	if minIdx < 0 {
		return p.sos.Pop()
	}
	return p.sos.RemoveAt(minIdx)
}

// Search runs the given-clause saturation loop until a proof is found, SOS
// empties (Saturated), or a resource limit fires. ctx composes with
// max_seconds: either firing ends the search.
func (p *Prover) Search(ctx context.Context) Result {
	p.preprocessInitialClauses()
	start := time.Now()

	for !p.sos.IsEmpty() {
		if p.proofFromBackDemod != nil {
			id := *p.proofFromBackDemod
			p.proofFromBackDemod = nil
			p.stats.ClausesKept++
			return Result{Kind: KindProof, EmptyClauseID: id, Stats: p.stats}
		}

		select {
		case <-ctx.Done():
			return Result{Kind: KindResourceLimit, Stats: p.stats, LimitReason: "context"}
		default:
		}
		if p.stats.GivenCount >= p.config.MaxGiven {
			return Result{Kind: KindResourceLimit, Stats: p.stats, LimitReason: "max_given"}
		}
		if p.stats.ClausesKept >= p.config.MaxClauses {
			return Result{Kind: KindResourceLimit, Stats: p.stats, LimitReason: "max_clauses"}
		}
		if p.config.MaxSeconds > 0 && time.Since(start) >= time.Duration(p.config.MaxSeconds)*time.Second {
			return Result{Kind: KindResourceLimit, Stats: p.stats, LimitReason: "max_seconds"}
		}
		if p.config.MaxMemoryBytes > 0 && p.stats.GivenCount%10 == 0 {
			if rss, err := p.sampler.CurrentRSSBytes(); err == nil && rss > p.config.MaxMemoryBytes {
				return Result{
					Kind:        KindResourceLimit,
					Stats:       p.stats,
					LimitReason: fmt.Sprintf("max_memory (%d MB used)", rss/1024/1024),
				}
			}
		}

		givenID, ok := p.selectGiven()
		if !ok {
			break
		}
		p.stats.GivenCount++

		given, ok := p.arena.Get(givenID)
		if !ok {
			continue
		}

		if p.config.UseDemod {
			if eqSym, hasEq := p.symbols.EqualitySymbol(); hasEq {
				if rule, ok := demod.ExtractRule(given, eqSym, p.lrpo); ok {
					if p.config.UseBackDemod {
						p.backDemodulate(rule)
						if p.proofFromBackDemod != nil {
							id := *p.proofFromBackDemod
							p.proofFromBackDemod = nil
							p.stats.ClausesKept++
							return Result{Kind: KindProof, EmptyClauseID: id, Stats: p.stats}
						}
					}
					p.demodulators = append(p.demodulators, rule)
				}
			}
		}

		if id, found := p.runGivenIteration(givenID, given); found {
			p.stats.ClausesKept++
			return Result{Kind: KindProof, EmptyClauseID: id, Stats: p.stats}
		}
	}

	return Result{Kind: KindSaturated, Stats: p.stats}
}

// runGivenIteration applies every enabled inference rule against usable
// (and the given clause's own positive units, for hyperresolution
// satellites), processing each child, and finally moves the given clause
// into usable. Returns (emptyID, true) the moment any rule discovers a
// proof.
func (p *Prover) runGivenIteration(givenID clause.ID, given clause.Clause) (clause.ID, bool) {
	iterStart := p.stats.ClausesGenerated
	ctx := p.snapshotIterCtx()

	limitHit := func() bool {
		return p.config.MaxClausesPerGiven > 0 &&
			(p.stats.ClausesGenerated-iterStart) >= p.config.MaxClausesPerGiven
	}

	if p.config.UseHyperRes {
		for i, nucleus := range ctx.usable {
			if !hasNegativeLiteral(nucleus) {
				continue
			}
			var satellites []infer.Satellite
			if given.IsUnit() && given.Literals[0].Sign {
				satellites = append(satellites, infer.Satellite{ID: givenID, Clause: given})
			}
			for j, s := range ctx.usable {
				if j == i {
					continue
				}
				if s.IsUnit() && s.Literals[0].Sign {
					satellites = append(satellites, infer.Satellite{ID: ctx.usableIDs[j], Clause: s})
				}
			}
			if len(satellites) == 0 {
				continue
			}
			for _, r := range infer.Hyperresolve(ctx.usableIDs[i], nucleus, satellites, p.varSrc) {
				if id, found := p.handleChild(r.Clause, ctx); found {
					return id, true
				}
			}
		}
	}
	if limitHit() {
		p.usable.Push(givenID)
		return 0, false
	}

	if p.config.UseBinaryRes {
		for i, usableClause := range ctx.usable {
			for _, r := range infer.Resolve(givenID, given, ctx.usableIDs[i], usableClause, p.varSrc) {
				if id, found := p.handleChild(r.Clause, ctx); found {
					return id, true
				}
			}
		}
	}
	if limitHit() {
		p.usable.Push(givenID)
		return 0, false
	}

	if p.config.UseURRes {
		pool := make([]infer.Satellite, len(ctx.usable))
		for i, c := range ctx.usable {
			pool[i] = infer.Satellite{ID: ctx.usableIDs[i], Clause: c}
		}
		for _, r := range infer.URResolve(givenID, given, pool, p.varSrc) {
			if id, found := p.handleChild(r.Clause, ctx); found {
				return id, true
			}
		}
	}
	if limitHit() {
		p.usable.Push(givenID)
		return 0, false
	}

	if p.config.UseLinkedURRes {
		pool := make([]infer.Satellite, len(ctx.usable))
		for i, c := range ctx.usable {
			pool[i] = infer.Satellite{ID: ctx.usableIDs[i], Clause: c}
		}
		cfg := infer.LinkedURConfig{MaxDepth: p.config.LinkedURMaxDepth, MaxWidth: p.config.LinkedURMaxWidth}
		for _, r := range infer.LinkedURResolve(givenID, given, pool, cfg, p.varSrc) {
			if id, found := p.handleChild(r.Clause, ctx); found {
				return id, true
			}
		}
	}
	if limitHit() {
		p.usable.Push(givenID)
		return 0, false
	}

	if (p.config.UseParaInto || p.config.UseParaFrom) {
		if eqSym, hasEq := p.symbols.EqualitySymbol(); hasEq {
			for i, usableClause := range ctx.usable {
				if p.config.UseParaInto {
					results := infer.Paramodulate(givenID, given, ctx.usableIDs[i], usableClause, eqSym,
						p.config.ParaFromLeft, p.config.ParaFromRight, p.config.ParaIntoLeft, p.config.ParaIntoRight, p.varSrc)
					for _, r := range results {
						if id, found := p.handleChild(r.Clause, ctx); found {
							return id, true
						}
					}
				}
				if p.config.UseParaFrom {
					results := infer.Paramodulate(ctx.usableIDs[i], usableClause, givenID, given, eqSym,
						p.config.ParaFromLeft, p.config.ParaFromRight, p.config.ParaIntoLeft, p.config.ParaIntoRight, p.varSrc)
					for _, r := range results {
						if id, found := p.handleChild(r.Clause, ctx); found {
							return id, true
						}
					}
				}
			}
		}
	}

	p.usable.Push(givenID)
	return 0, false
}

// invariantCheck logs (and never panics on) a clause an inference rule
// produced with no parents, which should never happen for anything but an
// input clause — an InternalInvariant violation per spec §7. It reports
// false for such a clause so the caller drops it.
func (p *Prover) invariantCheck(c clause.Clause, op string) bool {
	if len(c.Parents) > 0 {
		return true
	}
	err := proverr.New(proverr.KindInternalInvariant, op, "child clause produced with no parents")
	p.logger.WithError(err).Warn("internal invariant violated")
	return false
}
