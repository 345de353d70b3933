// Package ruleparser reads the text rule-file format: for each rule, a
// description line, a comma-separated premise line, and a
// comma-separated conclusion line, blank lines separating rules.
package ruleparser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gitrdm/geodeduce/pkg/geodeduce"
)

// Parse reads every rule from r. Variables are collected from every
// premise/conclusion token across the rule (single lowercase letters by
// convention, but any token is accepted). Diagnostics go to the logger
// carried on ctx, if any.
func Parse(ctx context.Context, r io.Reader) ([]geodeduce.Rule, error) {
	scanner := bufio.NewScanner(r)
	var nonBlank []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		nonBlank = append(nonBlank, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ruleparser: reading rule file: %w", err)
	}
	if len(nonBlank)%3 != 0 {
		return nil, fmt.Errorf("ruleparser: rule file has %d non-blank lines, not a multiple of 3 (description/premises/conclusions)", len(nonBlank))
	}
	rules := make([]geodeduce.Rule, 0, len(nonBlank)/3)
	for i := 0; i < len(nonBlank); i += 3 {
		description := nonBlank[i]
		premises, err := parseSentences(nonBlank[i+1])
		if err != nil {
			return nil, fmt.Errorf("ruleparser: rule %q: %w", description, err)
		}
		conclusions, err := parseSentences(nonBlank[i+2])
		if err != nil {
			return nil, fmt.Errorf("ruleparser: rule %q: %w", description, err)
		}
		vars := collectVariables(premises, conclusions)
		rules = append(rules, geodeduce.Rule{
			Description: description,
			Variables:   vars,
			Premises:    premises,
			Conclusions: conclusions,
		})
	}
	geodeduce.LoggerFrom(ctx).Debugf("ruleparser: parsed %d rules", len(rules))
	return rules, nil
}

// parseSentences splits a comma-separated line of "predicate tok tok..."
// clauses into Sentences.
func parseSentences(line string) ([]geodeduce.Sentence, error) {
	parts := strings.Split(line, ",")
	out := make([]geodeduce.Sentence, 0, len(parts))
	for _, part := range parts {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) < 1 {
			return nil, fmt.Errorf("empty clause in %q", line)
		}
		out = append(out, geodeduce.Sentence{Predicate: fields[0], Vars: fields[1:]})
	}
	return out, nil
}

// collectVariables returns every distinct token used across premises and
// conclusions, in first-appearance order, so the matcher's enumeration
// order is deterministic and stable across re-parses of the same file.
func collectVariables(premises, conclusions []geodeduce.Sentence) []string {
	seen := map[string]bool{}
	var out []string
	add := func(sentences []geodeduce.Sentence) {
		for _, s := range sentences {
			for _, v := range s.Vars {
				if !seen[v] {
					seen[v] = true
					out = append(out, v)
				}
			}
		}
	}
	add(premises)
	add(conclusions)
	return out
}
