package rules

import "github.com/arthur-debert/tagscrub/pkg/filter"

// Catalog names accepted by Named. Exposed as constants so callers wiring
// pipelines from config or flags can reference them without typos.
const (
	NameYouTube          = "youtube"
	NameTrimSymbols      = "trim-symbols"
	NameRemastered       = "remastered"
	NameLive             = "live"
	NameCleanExplicit    = "clean-explicit"
	NameFeature          = "feature"
	NameNormalizeFeature = "normalize-feature"
	NameVersion          = "version"
	NameSuffix           = "suffix"
	NameTrimWhitespace   = "trim-whitespace"
)

var catalogs = map[string]func() filter.RuleSet{
	NameYouTube:          YouTubeTrack,
	NameTrimSymbols:      TrimSymbols,
	NameRemastered:       Remastered,
	NameLive:             Live,
	NameCleanExplicit:    CleanExplicit,
	NameFeature:          Feature,
	NameNormalizeFeature: NormalizeFeature,
	NameVersion:          Version,
	NameSuffix:           Suffix,
	NameTrimWhitespace:   TrimWhitespace,
}

// Names returns the built-in catalog names in a stable, pipeline-friendly
// order: platform noise first, tag removal next, cosmetic trimming last.
func Names() []string {
	return []string{
		NameYouTube,
		NameTrimSymbols,
		NameRemastered,
		NameLive,
		NameCleanExplicit,
		NameFeature,
		NameNormalizeFeature,
		NameVersion,
		NameSuffix,
		NameTrimWhitespace,
	}
}

// Named looks up a built-in catalog by name. The returned set is shared and
// must be treated as read-only.
func Named(name string) (filter.RuleSet, bool) {
	catalog, ok := catalogs[name]
	if !ok {
		return nil, false
	}
	return catalog(), true
}
