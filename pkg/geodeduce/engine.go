package geodeduce

import (
	"context"

	"github.com/google/uuid"

	"github.com/gitrdm/geodeduce/internal/matchercache"
)

// RunInfo is the minimal reporting contract every caller of Engine.Run
// can depend on.
type RunInfo struct {
	RunID       string
	Success     bool
	Steps       int
	Exhausted   bool
	GoalsProven int
	GoalsTotal  int
}

// Engine drives the saturation loop: a single-threaded cooperative
// fixpoint over a rule buffer of rules to match and an application
// buffer of candidate dependencies, stopping on either total success
// (every goal checks) or exhaustion (a full sweep with no progress).
type Engine struct {
	Dep   *DependencyGraph
	Rules []Rule
	Goals []*Statement
	cfg   Config

	matchers []*Matcher
	cache    *matchercache.Cache

	ruleBuffer        []int // indices into matchers/Rules still to match this sweep
	applicationBuffer []*Dependency
	progress          bool
	steps             int
	runID             string
}

// NewEngine builds an engine over dg with rules and goals, using cfg for
// tolerances and the matcher cache path. Opening the matcher cache is
// the only I/O the engine performs eagerly; it is flushed on Run's
// return, the only blocking I/O besides diagnostic logging.
func NewEngine(dg *DependencyGraph, rules []Rule, goals []*Statement, cfg Config) (*Engine, error) {
	dg.SetTolerance(cfg.PredicateTolerance)
	cache, err := matchercache.Open(cfg.MatcherCachePath)
	if err != nil {
		return nil, err
	}
	matchers := make([]*Matcher, len(rules))
	for i, r := range rules {
		m := NewMatcher(r)
		m.UseCache(cache)
		matchers[i] = m
	}
	return &Engine{
		Dep:      dg,
		Rules:    rules,
		Goals:    goals,
		cfg:      cfg,
		matchers: matchers,
		cache:    cache,
		runID:    uuid.NewString(),
	}, nil
}

// allGoalsTrue reports whether every goal already checks against the
// current hypergraph.
func (e *Engine) allGoalsTrue() bool {
	for _, g := range e.Goals {
		if !e.Dep.Check(g) {
			return false
		}
	}
	return true
}

// reloadRuleBuffer refills ruleBuffer with every rule's index, in
// declaration order: all matches of one rule are enqueued before any
// match of the next rule in a sweep.
func (e *Engine) reloadRuleBuffer() {
	e.ruleBuffer = make([]int, len(e.matchers))
	for i := range e.matchers {
		e.ruleBuffer[i] = i
	}
}

// Step performs one iteration of the saturation loop's body and reports
// whether the run is finished (success or exhaustion). Callers drive
// the loop by calling Step repeatedly; this is the granularity at which
// external cancellation or progress snapshots are possible.
func (e *Engine) Step(ctx context.Context) (done bool) {
	e.steps++
	if e.allGoalsTrue() {
		return true
	}
	if len(e.ruleBuffer) > 0 {
		idx := e.ruleBuffer[0]
		e.ruleBuffer = e.ruleBuffer[1:]
		matches := e.matchers[idx].Match(e.Dep.tolerance(), e.Dep.Symbols)
		e.applicationBuffer = append(e.applicationBuffer, matches...)
		return false
	}
	if len(e.applicationBuffer) > 0 {
		// applications drain LIFO.
		last := len(e.applicationBuffer) - 1
		dep := e.applicationBuffer[last]
		e.applicationBuffer = e.applicationBuffer[:last]
		if e.acceptApplication(dep) {
			dep.Statement.Pred.Add(dep, e.Dep)
			e.progress = true
		}
		return false
	}
	if !e.progress {
		return true // exhausted: no work left, no progress this sweep
	}
	e.progress = false
	e.reloadRuleBuffer()
	return false
}

// acceptApplication is the admission test for a candidate dependency:
// the conclusion must not already be proven by this exact dependency,
// it must hold on the diagram (rule files carry no explicit
// non-degeneracy clauses, so the diagram is what rules them out), and
// every premise must currently check (premises are monotone but may not
// yet be known).
func (e *Engine) acceptApplication(dep *Dependency) bool {
	if e.Dep.HasEdge(dep) {
		return false
	}
	if !dep.Statement.Pred.CheckNumerical(dep.Statement, e.Dep.tolerance()) {
		return false
	}
	for _, p := range dep.Premises {
		if !e.Dep.Check(p) {
			return false
		}
	}
	return true
}

// Run drives Step until it reports done or MaxSaturationSweeps worth of
// sweeps elapse, then returns the run's RunInfo. It always flushes the
// matcher cache, success or not.
func (e *Engine) Run(ctx context.Context) (RunInfo, error) {
	logger := LoggerFrom(ctx)
	e.Dep.SetLogger(logger)
	logger.Debugf("run %s: %d rules, %d goals", e.runID, len(e.Rules), len(e.Goals))
	e.reloadRuleBuffer()
	sweeps := 0
	for {
		if ctx.Err() != nil {
			break
		}
		// A step taken with both buffers empty closes a sweep: it either
		// reports exhaustion or reloads the rule buffer for the next one.
		endsSweep := len(e.ruleBuffer) == 0 && len(e.applicationBuffer) == 0
		if e.Step(ctx) {
			break
		}
		if endsSweep {
			sweeps++
			if sweeps >= e.cfg.MaxSaturationSweeps {
				break
			}
		}
	}
	if err := e.cache.Flush(); err != nil {
		return RunInfo{}, err
	}
	proven := 0
	for _, g := range e.Goals {
		if e.Dep.Check(g) {
			proven++
		}
	}
	success := proven == len(e.Goals)
	logger.Debugf("run %s: steps=%d proven=%d/%d known=%d", e.runID, e.steps, proven, len(e.Goals), e.Dep.Size())
	return RunInfo{
		RunID:       e.runID,
		Success:     success,
		Steps:       e.steps,
		Exhausted:   !success,
		GoalsProven: proven,
		GoalsTotal:  len(e.Goals),
	}, nil
}
