// Package normalizer replaces typographic punctuation with ASCII or HTML-entity equivalents.
package normalizer

import "strings"

// Rule is one find/replace step. Every pattern of a rule maps to the same
// replacement; patterns of one rule are matched together, leftmost first.
type Rule struct {
	Pattern     []string
	Replacement string
}

// The spaced em-dash must stay ahead of the bare one: it also consumes the
// surrounding spaces.
var defaultRules = []Rule{
	{Pattern: []string{" — "}, Replacement: "&mdash;"},
	{Pattern: []string{"—"}, Replacement: "&mdash;"},
	{Pattern: []string{"–"}, Replacement: "-"},
	{Pattern: []string{"’"}, Replacement: "'"},
	{Pattern: []string{"“", "”"}, Replacement: `"`},
	{Pattern: []string{"…"}, Replacement: "&hellip;"},
}

var defaultPasses = compile(defaultRules)

// Rules returns a copy of the ordered rule table used by Normalize.
func Rules() []Rule {
	rules := make([]Rule, len(defaultRules))
	for i, rule := range defaultRules {
		rules[i] = Rule{
			Pattern:     append([]string(nil), rule.Pattern...),
			Replacement: rule.Replacement,
		}
	}
	return rules
}

// Normalize applies the default rule table to text.
func Normalize(text string) string {
	return run(text, defaultPasses)
}

// Apply runs rules over text in order. Each rule scans the output of the
// previous one and replaces every non-overlapping leftmost match.
// Empty patterns are ignored.
func Apply(text string, rules []Rule) string {
	return run(text, compile(rules))
}

func compile(rules []Rule) []*strings.Replacer {
	passes := make([]*strings.Replacer, 0, len(rules))
	for _, rule := range rules {
		var oldnew []string
		for _, p := range rule.Pattern {
			if p == "" {
				continue
			}
			oldnew = append(oldnew, p, rule.Replacement)
		}
		if len(oldnew) == 0 {
			continue
		}
		passes = append(passes, strings.NewReplacer(oldnew...))
	}
	return passes
}

func run(text string, passes []*strings.Replacer) string {
	for _, pass := range passes {
		text = pass.Replace(text)
	}
	return text
}
