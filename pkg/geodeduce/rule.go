package geodeduce

import "fmt"

// Sentence is one predicate application inside a Rule, written in terms
// of the rule's own variable names rather than concrete points. "coll a
// b c" parses into Sentence{Predicate: "coll", Vars: [a b c]}.
type Sentence struct {
	Predicate string
	Vars      []string
}

// Rule is a deduction rule: a tuple of premise sentences that, once all
// matched against a common point binding, license a tuple of conclusion
// sentences. Variables is the rule's declared variable set, used
// to drive the matcher's enumeration.
type Rule struct {
	Description string
	Variables   []string
	Premises    []Sentence
	Conclusions []Sentence
}

// instantiate resolves a Sentence's variable tokens through binding (a
// map from rule variable name to point name) into the literal point-name
// tokens a Predicate.Parse expects.
func (s Sentence) instantiate(binding map[string]string) ([]string, error) {
	out := make([]string, len(s.Vars))
	for i, v := range s.Vars {
		pt, ok := binding[v]
		if !ok {
			return nil, fmt.Errorf("geodeduce: rule variable %q unbound", v)
		}
		out[i] = pt
	}
	return out, nil
}

// parseWith resolves and parses a Sentence against g using binding,
// looking the predicate up in Registry. Returns an error if the
// predicate name is unknown to the registry; the matcher treats that
// like any other parse failure and skips the binding.
func (s Sentence) parseWith(binding map[string]string, g *SymbolGraph) (*Statement, error) {
	pred, ok := Registry[s.Predicate]
	if !ok {
		return nil, fmt.Errorf("geodeduce: unknown predicate %q", s.Predicate)
	}
	tokens, err := s.instantiate(binding)
	if err != nil {
		return nil, err
	}
	return pred.Parse(tokens, g)
}
