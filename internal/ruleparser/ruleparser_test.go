package ruleparser

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleRuleFile = `
midpoint implies congruent
midp m a b
cong m a m b

collinear transitivity
coll a b c, coll b c d
coll a b d
`

func TestParseSampleRuleFile(t *testing.T) {
	rules, err := Parse(context.Background(), strings.NewReader(sampleRuleFile))
	require.NoError(t, err)
	require.Len(t, rules, 2)

	r0 := rules[0]
	require.Equal(t, "midpoint implies congruent", r0.Description)
	require.Lenf(t, r0.Premises, 1, "unexpected premises: %+v", r0.Premises)
	require.Equal(t, "midp", r0.Premises[0].Predicate)
	require.Lenf(t, r0.Premises[0].Vars, 3, "expected 3 vars in midp premise, got %v", r0.Premises[0].Vars)
	require.Lenf(t, r0.Conclusions, 1, "unexpected conclusions: %+v", r0.Conclusions)
	require.Equal(t, "cong", r0.Conclusions[0].Predicate)

	wantVars := []string{"m", "a", "b"}
	require.Equalf(t, wantVars, r0.Variables, "variables not in first-appearance order")

	r1 := rules[1]
	require.Lenf(t, r1.Premises, 2, "expected 2 comma-separated premises")
}

func TestParseRejectsNonMultipleOfThreeLines(t *testing.T) {
	bad := "only one line here"
	_, err := Parse(context.Background(), strings.NewReader(bad))
	require.Error(t, err, "expected an error for a rule file not a multiple of 3 non-blank lines")
}

func TestParseRejectsEmptyClause(t *testing.T) {
	bad := "bad rule\ncoll a b c,\nconcl x y z\n"
	_, err := Parse(context.Background(), strings.NewReader(bad))
	require.Error(t, err, "expected an error for an empty comma-separated clause")
}
