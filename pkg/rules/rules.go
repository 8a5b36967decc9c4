package rules

import (
	"sync"

	"github.com/arthur-debert/tagscrub/pkg/filter"
)

// rawRule is one row of a catalog table before compilation.
type rawRule struct {
	pattern     string
	replacement string
}

func compile(table []rawRule) filter.RuleSet {
	set := make(filter.RuleSet, 0, len(table))
	for _, row := range table {
		set = append(set, filter.MustRule(row.pattern, row.replacement))
	}
	return set
}

// --- Catalog tables (order matters within each table) ---

var youTubeTrack = sync.OnceValue(func() filter.RuleSet {
	return compile([]rawRule{
		// Trim whitespaces
		{`^\s+`, ""},
		{`\s+$`, ""},
		// **NEW**
		{`\*+\s?\S+\s?\*+$`, ""},
		// [whatever]
		{`\[[^\]]+\]`, ""},
		// (whatever version)
		{`(?i)\([^)]*version\)$`, ""},
		// video extensions
		{`(?i)\.(avi|wmv|mpg|mpeg|flv)$`, ""},
		// (LYRICs VIDEO)
		{`(?i)\(.*lyrics?\s*(video)?\)`, ""},
		// (Official Track Stream)
		{`(?i)\((of+icial\s*)?(track\s*)?stream\)`, ""},
		// (official)? (music)? video
		{`(?i)\((of+icial\s*)?(music\s*)?video\)`, ""},
		// (official)? (music)? audio
		{`(?i)\((of+icial\s*)?(music\s*)?audio\)`, ""},
		// (ALBUM TRACK)
		{`(?i)(ALBUM TRACK\s*)?(album track\s*)`, ""},
		// (Cover Art)
		{`(?i)(COVER ART\s*)?(Cover Art\s*)`, ""},
		// (official)
		{`(?i)\(\s*of+icial\s*\)`, ""},
		// (1999)
		{`(?i)\(\s*[0-9]{4}\s*\)`, ""},
		// HD (HQ)
		{`(HD|HQ)\s*$`, ""},
		// video clip officiel or video clip official
		{`(?i)(vid[ée]o)?\s?clip\sof+ici[ae]l`, ""},
		// offizielles
		{`(?i)of+iziel+es\s*video`, ""},
		// video clip
		{`(?i)vid[ée]o\s?clip`, ""},
		// clip
		{`(?i)\sclip`, ""},
		// Full Album
		{`(?i)full\s*album`, ""},
		// (live)
		{`(?i)\(live.*?\)$`, ""},
		// | something
		{`(?i)\|.*$`, ""},
		// Artist - The new "Track title" featuring someone
		{`^(|.*\s)"(.{5,})"(\s.*|)$`, "$2"},
		// 'Track title'
		{`^(|.*\s)'(.{5,})'(\s.*|)$`, "$2"},
		// (*01/01/1999*)
		{`(?i)\(.*[0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4}.*\)`, ""},
		// Sub Español
		{`(?i)sub\s*español`, ""},
		// (Letra/Lyrics)
		{`(?i)\s\(Letra/Lyrics\)`, ""},
		// (Letra)
		{`(?i)\s\(Letra\)`, ""},
		// (En vivo)
		{`(?i)\s\(En\svivo\)`, ""},
	})
})

var trimSymbols = sync.OnceValue(func() filter.RuleSet {
	return compile([]rawRule{
		// Leftovers after e.g. (official video)
		{`\(+\s*\)+`, ""},
		// trim starting white chars and dash
		{`^[/,:;~\s"-]+`, ""},
		// trim trailing white chars and dash
		{`[/,:;~\s"-]+$`, ""},
	})
})

var remastered = sync.OnceValue(func() filter.RuleSet {
	return compile([]rawRule{
		// Here Comes The Sun - Remastered
		{`-\sRemastered$`, ""},
		// Hey Jude - Remastered 2015
		{`-\sRemastered\s\d+$`, ""},
		// Let It Be (Remastered 2009)
		// Red Rain (Remaster 2012)
		{`\(Remaster(ed)?\s\d+\)$`, ""},
		// Pigs On The Wing (Part One) [2011 - Remaster]
		{`\[\d+\s-\sRemaster\]$`, ""},
		// Comfortably Numb (2011 - Remaster)
		// Dancing Days (2012 Remaster)
		{`\(\d+(\s-)?\sRemaster\)$`, ""},
		// Outside The Wall - 2011 - Remaster
		// China Grove - 2006 Remaster
		{`-\s\d+(\s-)?\sRemaster$`, ""},
		// Learning To Fly - 2001 Digital Remaster
		{`-\s\d+\s.+?\sRemaster$`, ""},
		// Your Possible Pasts - 2011 Remastered Version
		{`-\s\d+\sRemastered Version$`, ""},
		// Roll Over Beethoven (Live / Remastered)
		{`\(Live\s/\sRemastered\)$`, ""},
		// Ticket To Ride - Live / Remastered
		{`-\sLive\s/\sRemastered$`, ""},
		// Mothership (Remastered)
		// How The West Was Won [Remastered]
		{`[(\[]Remastered[)\]]$`, ""},
		// A Well Respected Man (2014 Remastered Version)
		// A Well Respected Man [2014 Remastered Version]
		{`[(\[]\d{4} Re[Mm]astered Version[)\]]$`, ""},
		// She Was Hot (2009 Re-Mastered Digital Version)
		// She Was Hot (2009 Remastered Digital Version)
		{`[(\[]\d{4} Re-?[Mm]astered Digital Version[)\]]$`, ""},
		// In The Court Of The Crimson King (Expanded & Remastered Original Album Mix)
		{`\([^(]*Remaster[^)]*\)$`, ""},
	})
})

var live = sync.OnceValue(func() filter.RuleSet {
	return compile([]rawRule{
		// Track - Live
		{`-\sLive?$`, ""},
		// Track - Live at
		{`-\sLive\s.+?$`, ""},
	})
})

var cleanExplicit = sync.OnceValue(func() filter.RuleSet {
	return compile([]rawRule{
		// (Explicit) or [Explicit]
		{`(?i)\s[(\[]Explicit[)\]]`, ""},
		// (Clean) or [Clean]
		{`(?i)\s[(\[]Clean[)\]]`, ""},
	})
})

var feature = sync.OnceValue(func() filter.RuleSet {
	return compile([]rawRule{
		// [Feat. Artist] or (Feat. Artist)
		{`(?i)\s[(\[]feat. .+[)\]]`, ""},
	})
})

var normalizeFeature = sync.OnceValue(func() filter.RuleSet {
	return compile([]rawRule{
		// [Feat. Artist] or (Feat. Artist) -> Feat. Artist
		{`(?i)\s[(\[](feat. .+)[)\]]`, " $1"},
	})
})

var version = sync.OnceValue(func() filter.RuleSet {
	return compile([]rawRule{
		// Love Will Come To You (Album Version)
		{`[(\[]Album Version[)\]]$`, ""},
		// I Melt With You (Rerecorded)
		// When I Need You [Re-Recorded]
		{`[(\[]Re-?[Rr]ecorded[)\]]$`, ""},
		// Your Cheatin' Heart (Single Version)
		{`[(\[]Single Version[)\]]$`, ""},
		// All Over Now (Edit)
		{`[(\[]Edit[)\]]$`, ""},
		// (I Can't Get No) Satisfaction - Mono Version
		{`-\sMono Version$`, ""},
		// Ruby Tuesday - Stereo Version
		{`-\sStereo Version$`, ""},
		// Pure McCartney (Deluxe Edition)
		{`\(Deluxe Edition\)$`, ""},
		// 6 Foot 7 Foot (Explicit Version)
		{`(?i)[(\[]Explicit Version[)\]]`, ""},
	})
})

var suffix = sync.OnceValue(func() filter.RuleSet {
	return compile([]rawRule{
		// "- X Remix" -> "(X Remix)" and similar
		{`(?i)-\s(.+?)\s((Re)?mix|edit|dub|mix|vip|version)$`, "($1 $2)"},
		{`(?i)-\s(Remix|VIP)$`, "($1)"},
	})
})

var trimWhitespace = sync.OnceValue(func() filter.RuleSet {
	return compile([]rawRule{
		{`^\s+`, ""},
		{`\s+$`, ""},
	})
})

// YouTubeTrack returns rules that strip YouTube suffixes and prefixes, such
// as "(Official Video)" or "(Lyrics)", from a track title.
func YouTubeTrack() filter.RuleSet { return youTubeTrack() }

// TrimSymbols returns rules that strip leftover brackets, dashes and quotes,
// typically after YouTubeTrack has removed their contents.
func TrimSymbols() filter.RuleSet { return trimSymbols() }

// Remastered returns rules that strip "Remastered ..."-like tags.
func Remastered() filter.RuleSet { return remastered() }

// Live returns rules that strip "- Live ..."-like suffixes.
func Live() filter.RuleSet { return live() }

// CleanExplicit returns rules that strip "(Explicit)" and "(Clean)" tags.
func CleanExplicit() filter.RuleSet { return cleanExplicit() }

// Feature returns rules that strip feature credits like "(feat. Artist)".
func Feature() filter.RuleSet { return feature() }

// NormalizeFeature returns rules that rewrite bracketed feature credits to
// a bare "feat. Artist".
func NormalizeFeature() filter.RuleSet { return normalizeFeature() }

// Version returns rules that strip edition and version tags, such as
// "(Album Version)" or "(Deluxe Edition)".
func Version() filter.RuleSet { return version() }

// Suffix returns rules that rewrite trailing "- X Remix"-style suffixes to
// a parenthesized "(X Remix)".
func Suffix() filter.RuleSet { return suffix() }

// TrimWhitespace returns rules that strip leading and trailing whitespace.
func TrimWhitespace() filter.RuleSet { return trimWhitespace() }
