// Package filter provides the rule-application engine for cleaning noisy
// metadata strings.
//
// A [Rule] pairs a compiled regular expression with a replacement template.
// Applying a rule substitutes the first match only; templates may reference
// capture groups positionally ($1, $2, ...).
//
// # Rule sets and passes
//
// A [RuleSet] is an ordered list of rules. One pass applies every rule in
// list order, feeding each rule's output into the next. [Apply] repeats
// passes until a full pass changes nothing, so a substitution made by a late
// rule can still be picked up by an earlier rule on the next pass.
//
// # Termination
//
// Apply enforces no pass limit. Convergence is a property of the rule
// catalog: replacement templates must not produce text that re-matches their
// own pattern indefinitely. All catalogs shipped in the rules package
// converge; callers authoring custom rules carry the same responsibility, or
// can use [ApplyN] to bound the number of passes.
//
// # Concurrency
//
// Rules and rule sets are immutable after construction and safe for
// concurrent use without locking.
package filter
