// Package rules ships the built-in filter rule catalogs for music metadata.
//
// Each catalog addresses one normalization concern (remaster tags, live
// tags, video-platform noise, ...) and is exposed as a zero-argument
// function returning a filter.RuleSet. Catalogs compile exactly once, on
// first use, and the returned sets are shared and read-only; concurrent
// first access is safe.
//
// Catalogs compose by concatenation. A typical track-title pipeline:
//
//	set := filter.Concat(rules.YouTubeTrack(), rules.TrimSymbols(),
//		rules.Remastered(), rules.TrimWhitespace())
//	clean := filter.Apply(title, set)
//
// [Named] and [Names] look catalogs up by name, for callers driven by
// configuration or command-line flags.
package rules
