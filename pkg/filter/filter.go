package filter

import (
	"regexp"

	"github.com/arthur-debert/tagscrub/pkg/errors"
)

// Rule is a single pattern/replacement pair. The zero value is not usable;
// construct rules with New or MustRule.
type Rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// New compiles pattern and returns a Rule that substitutes its first match
// with replacement. The replacement may reference capture groups with $1,
// $2, and so on. A pattern that does not compile yields an error with code
// errors.ErrInvalidPattern carrying the offending pattern.
func New(pattern, replacement string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, errors.Wrapf(err, errors.ErrInvalidPattern,
			"invalid filter pattern %q", pattern).WithDetail("pattern", pattern)
	}
	return Rule{pattern: re, replacement: replacement}, nil
}

// MustRule is like New but panics when the pattern does not compile. Use it
// for static catalogs whose patterns are known good at process start.
func MustRule(pattern, replacement string) Rule {
	rule, err := New(pattern, replacement)
	if err != nil {
		panic(err)
	}
	return rule
}

// Pattern returns the source text of the rule's pattern.
func (r Rule) Pattern() string {
	return r.pattern.String()
}

// Replacement returns the rule's replacement template.
func (r Rule) Replacement() string {
	return r.replacement
}

// Apply substitutes the first match of the rule's pattern in text, expanding
// $N references in the replacement template from the captured groups. The
// second return reports whether a substitution was made; when false, text is
// returned untouched with no allocation.
func (r Rule) Apply(text string) (string, bool) {
	match := r.pattern.FindStringSubmatchIndex(text)
	if match == nil {
		return text, false
	}
	buf := make([]byte, 0, len(text))
	buf = append(buf, text[:match[0]]...)
	buf = r.pattern.ExpandString(buf, r.replacement, text, match)
	buf = append(buf, text[match[1]:]...)
	return string(buf), true
}

// RuleSet is an ordered list of rules. Order is significant: a pass applies
// the rules in list order.
type RuleSet []Rule

// Concat joins rule sets into one, preserving the order of the sets and of
// the rules within each set.
func Concat(sets ...RuleSet) RuleSet {
	total := 0
	for _, set := range sets {
		total += len(set)
	}
	joined := make(RuleSet, 0, total)
	for _, set := range sets {
		joined = append(joined, set...)
	}
	return joined
}

// applyOnce runs a single pass of rules over text and reports whether any
// rule changed it.
func applyOnce(text string, rules RuleSet) (string, bool) {
	changed := false
	for _, rule := range rules {
		next, ok := rule.Apply(text)
		if ok {
			text = next
			changed = true
		}
	}
	return text, changed
}

// Apply runs rules over text until a full pass leaves it equal to what the
// pass started with, and returns the stable result. If no rule matches,
// text is returned as-is. Convergence is judged on the text itself, not on
// the per-rule substitution flag: a rule whose replacement reproduces its
// own match (a case-normalizing rule, or an empty-width pattern) still
// reports a substitution, and must not keep the loop alive.
func Apply(text string, rules RuleSet) string {
	prev := text
	result, changed := applyOnce(text, rules)
	for changed && result != prev {
		prev = result
		result, changed = applyOnce(result, rules)
	}
	return result
}

// ApplyN is Apply with an upper bound on the number of passes. It returns
// the text after at most maxPasses passes, stopping earlier at the
// fixpoint. A maxPasses of zero or less returns text untouched.
func ApplyN(text string, rules RuleSet, maxPasses int) string {
	for i := 0; i < maxPasses; i++ {
		next, changed := applyOnce(text, rules)
		if !changed || next == text {
			return next
		}
		text = next
	}
	return text
}
