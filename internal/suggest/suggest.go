// Package suggest maps journal text to a study-topic suggestion.
//
// A Table is an ordered list of rules, each a keyword predicate paired with
// a suggestion. Rules are tested in table order against the lower-cased
// journal corpus and the first rule whose keyword occurs as a substring
// wins, even when later keywords also occur. Two fallbacks cover the cases
// where no rule fires:
//   - Default: the journal is empty
//   - Fallback: the journal has text but no keyword matched
package suggest

import (
	"fmt"
	"strings"
)

// Rule pairs a keyword predicate with the suggestion it yields.
type Rule struct {
	Keyword    string `yaml:"keyword" json:"keyword"`
	Suggestion string `yaml:"suggestion" json:"suggestion"`
}

// Matches reports whether the rule's keyword occurs in corpus.
// corpus is expected to be lower-cased already.
func (r Rule) Matches(corpus string) bool {
	return strings.Contains(corpus, r.Keyword)
}

// Table is an ordered rule set plus its two fallbacks.
type Table struct {
	Rules    []Rule `json:"rules"`
	Default  string `json:"default"`
	Fallback string `json:"fallback"`
}

// Result is the outcome of evaluating a Table.
type Result struct {
	Suggestion string `json:"suggestion"`
	// Keyword is the matched keyword; empty when a fallback was used.
	Keyword string `json:"keyword,omitempty"`
}

// Evaluate runs the table against corpus. The result depends only on the
// corpus and the table.
func (t Table) Evaluate(corpus string) Result {
	if corpus == "" {
		return Result{Suggestion: t.Default}
	}
	for _, r := range t.Rules {
		if r.Matches(corpus) {
			return Result{Suggestion: r.Suggestion, Keyword: r.Keyword}
		}
	}
	return Result{Suggestion: t.Fallback}
}

// Suggest is Evaluate without the matched keyword.
func (t Table) Suggest(corpus string) string {
	return t.Evaluate(corpus).Suggestion
}

// Validate checks that every rule has a lower-case, non-empty keyword and a
// suggestion, and that both fallbacks are set.
func (t Table) Validate() error {
	if len(t.Rules) == 0 {
		return fmt.Errorf("rule table is empty")
	}
	for i, r := range t.Rules {
		if strings.TrimSpace(r.Keyword) == "" {
			return fmt.Errorf("rules[%d]: keyword is required", i)
		}
		if r.Keyword != strings.ToLower(r.Keyword) {
			return fmt.Errorf("rules[%d]: keyword %q must be lower case", i, r.Keyword)
		}
		if strings.TrimSpace(r.Suggestion) == "" {
			return fmt.Errorf("rules[%d]: suggestion is required", i)
		}
	}
	if t.Default == "" {
		return fmt.Errorf("default suggestion is required")
	}
	if t.Fallback == "" {
		return fmt.Errorf("fallback suggestion is required")
	}
	return nil
}
