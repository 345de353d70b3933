package geodeduce

import "sort"

// proofLine is one line of the linearized proof text: a label ("g0" for
// a goal, otherwise a sequential integer), the statement it proves, the
// reason, and the labels of the premises it depends on.
type proofLine struct {
	Label     string
	Statement *Statement
	Reason    string
	Premises  []string

	dep *Dependency // the justification this line renders
}

// proofState is the per-statement memo used during backward extraction:
// either "in progress" (cycle guard, Line == nil and InProgress ==
// true), resolved (Line set), or unresolved (not present at all).
type proofState struct {
	InProgress bool
	Line       *proofLine
}

// proofBuilder accumulates proof lines in discovery order while
// resolving goals back through the hypergraph.
type proofBuilder struct {
	dg       *DependencyGraph
	memo     map[string]*proofState
	lines    []*proofLine
	nextID   int
	goalRepr map[string]string // statement repr -> g0/g1/... label, assigned up front
}

// ExtractProof performs a backward best-first traversal rooted at goals
// and returns the linearized proof text. It panics with
// *ProofExtractionError if any goal has no acyclic proof: saturation
// reporting success implies a proof must exist, so failure here
// indicates an inconsistent hypergraph rather than a normal outcome
// callers should recover from.
func ExtractProof(dg *DependencyGraph, goals []*Statement) string {
	pb := &proofBuilder{
		dg:       dg,
		memo:     make(map[string]*proofState),
		goalRepr: make(map[string]string, len(goals)),
	}
	for i, g := range goals {
		pb.goalRepr[g.Repr()] = labelFor(i)
	}
	for _, g := range goals {
		if _, ok := pb.resolve(g); !ok {
			panic(&ProofExtractionError{Statement: g.Repr(), Reason: "no acyclic proof found"})
		}
	}
	return renderProof(pb.lines)
}

// ProofDeps returns the ordered set of dependencies participating in
// the proof of every goal — the union of the backward slices, in
// discovery order (a dependency's premises always precede it). It
// panics with *ProofExtractionError under the same conditions as
// ExtractProof.
func ProofDeps(dg *DependencyGraph, goals []*Statement) []*Dependency {
	pb := &proofBuilder{
		dg:       dg,
		memo:     make(map[string]*proofState),
		goalRepr: make(map[string]string, len(goals)),
	}
	for i, g := range goals {
		pb.goalRepr[g.Repr()] = labelFor(i)
	}
	for _, g := range goals {
		if _, ok := pb.resolve(g); !ok {
			panic(&ProofExtractionError{Statement: g.Repr(), Reason: "no acyclic proof found"})
		}
	}
	out := make([]*Dependency, 0, len(pb.lines))
	for _, l := range pb.lines {
		out = append(out, l.dep)
	}
	return out
}

func labelFor(i int) string {
	// g0, g1, ... for goals.
	digits := []byte{}
	n := i
	for {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
		if n == 0 {
			break
		}
	}
	return "g" + string(digits)
}

// resolve returns a proof of s, memoizing as it goes. For every
// candidate incoming dependency, it recursively resolves every premise;
// if any premise fails, the candidate is discarded; otherwise it keeps
// the successful candidate with the fewest direct premises, ties broken
// lexicographically by sorted premise labels. Candidates are not
// compared by the total number of lines in their proofs.
func (pb *proofBuilder) resolve(s *Statement) (*proofLine, bool) {
	key := s.Repr()
	if st, ok := pb.memo[key]; ok {
		if st.InProgress {
			return nil, false // cycle: refuse to use a statement still being resolved
		}
		return st.Line, st.Line != nil
	}
	pb.memo[key] = &proofState{InProgress: true}

	var best *proofLine
	var bestPremiseLabels []string

	for _, dep := range pb.dg.edgesFor(s) {
		labels, ok := pb.resolvePremises(dep.Premises)
		if !ok {
			continue
		}
		sorted := append([]string(nil), labels...)
		sort.Strings(sorted)
		if best == nil || isBetterCandidate(labels, sorted, best, bestPremiseLabels) {
			best = &proofLine{Statement: s, Reason: dep.Reason, Premises: labels, dep: dep}
			bestPremiseLabels = sorted
		}
	}
	if best == nil {
		if dep, ok := s.Pred.Why(s, pb.dg); ok {
			labels, ok := pb.resolvePremises(dep.Premises)
			if ok {
				best = &proofLine{Statement: s, Reason: dep.Reason, Premises: labels, dep: dep}
			}
		}
	}
	if best == nil {
		pb.memo[key] = &proofState{InProgress: false, Line: nil}
		return nil, false
	}
	best.Label = pb.labelFor(s)
	pb.lines = append(pb.lines, best)
	pb.memo[key] = &proofState{InProgress: false, Line: best}
	return best, true
}

// isBetterCandidate prefers fewer premises, then lexicographically
// smaller sorted premise labels.
func isBetterCandidate(labels, sortedLabels []string, best *proofLine, bestSorted []string) bool {
	if len(labels) != len(best.Premises) {
		return len(labels) < len(best.Premises)
	}
	for i := range sortedLabels {
		if sortedLabels[i] != bestSorted[i] {
			return sortedLabels[i] < bestSorted[i]
		}
	}
	return false
}

// resolvePremises resolves every premise statement and returns their
// labels, or ok=false if any premise has no acyclic proof.
func (pb *proofBuilder) resolvePremises(premises []*Statement) ([]string, bool) {
	labels := make([]string, 0, len(premises))
	for _, p := range premises {
		line, ok := pb.resolve(p)
		if !ok {
			return nil, false
		}
		labels = append(labels, line.Label)
	}
	return labels, true
}

// labelFor assigns a goal's reserved g-label, or the next sequential
// intermediate label.
func (pb *proofBuilder) labelFor(s *Statement) string {
	if label, ok := pb.goalRepr[s.Repr()]; ok {
		return label
	}
	label := intLabel(pb.nextID)
	pb.nextID++
	return label
}

func intLabel(n int) string {
	digits := []byte{}
	for {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
		if n == 0 {
			break
		}
	}
	return string(digits)
}

// renderProof linearizes lines (in discovery order, so every premise
// precedes the lines that cite it) into the proof text: leaf lines with
// no premises (premises and numerical-check leaves) first, then the
// proof steps in discovery order.
func renderProof(lines []*proofLine) string {
	ordered := make([]*proofLine, 0, len(lines))
	for _, l := range lines {
		if len(l.Premises) == 0 {
			ordered = append(ordered, l)
		}
	}
	for _, l := range lines {
		if len(l.Premises) > 0 {
			ordered = append(ordered, l)
		}
	}
	out := ""
	for _, l := range ordered {
		out += l.Label + ": " + l.Statement.Pretty() + " <= " + l.Reason
		if len(l.Premises) > 0 {
			out += "("
			for i, p := range l.Premises {
				if i > 0 {
					out += ","
				}
				out += p
			}
			out += ")"
		}
		out += "\n"
	}
	return out
}
