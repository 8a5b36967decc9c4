// Test Type: Unit Test
// Description: Tests for the built-in rule catalogs, table-driven over real
// title strings

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/tagscrub/pkg/filter"
	"github.com/arthur-debert/tagscrub/pkg/rules"
)

func testTable(t *testing.T, set filter.RuleSet, titles [][2]string) {
	t.Helper()
	for _, title := range titles {
		t.Run(title[0], func(t *testing.T) {
			assert.Equal(t, title[1], filter.Apply(title[0], set))
		})
	}
}

func TestRemastered(t *testing.T) {
	testTable(t, rules.Remastered(), [][2]string{
		{"Here Comes The Sun - Remastered", "Here Comes The Sun "},
		{"Hey Jude - Remastered 2015", "Hey Jude "},
		{"Let It Be (Remastered 2009)", "Let It Be "},
		{"Red Rain (Remaster 2012)", "Red Rain "},
		{"Pigs On The Wing (Part One) [2011 - Remaster]", "Pigs On The Wing (Part One) "},
		{"Comfortably Numb (2011 - Remaster)", "Comfortably Numb "},
		{"Dancing Days (2012 Remaster)", "Dancing Days "},
		{"Outside The Wall - 2011 - Remaster", "Outside The Wall "},
		{"China Grove - 2006 Remaster", "China Grove "},
		{"Learning To Fly - 2001 Digital Remaster", "Learning To Fly "},
		{"Your Possible Pasts - 2011 Remastered Version", "Your Possible Pasts "},
		{"Roll Over Beethoven (Live / Remastered)", "Roll Over Beethoven "},
		{"Ticket To Ride - Live / Remastered", "Ticket To Ride "},
		{"Mothership (Remastered)", "Mothership "},
		{"How The West Was Won [Remastered]", "How The West Was Won "},
		{"A Well Respected Man (2014 Remastered Version)", "A Well Respected Man "},
		{"A Well Respected Man [2014 Remastered Version]", "A Well Respected Man "},
		{"She Was Hot (2009 Re-Mastered Digital Version)", "She Was Hot "},
		{"She Was Hot (2009 Remastered Digital Version)", "She Was Hot "},
		{
			"In The Court Of The Crimson King (Expanded & Remastered Original Album Mix)",
			"In The Court Of The Crimson King ",
		},
	})
}

func TestVersion(t *testing.T) {
	testTable(t, rules.Version(), [][2]string{
		{"Love Will Come To You (Album Version)", "Love Will Come To You "},
		{"I Melt With You (Rerecorded)", "I Melt With You "},
		{"When I Need You [Re-Recorded]", "When I Need You "},
		{"Your Cheatin' Heart (Single Version)", "Your Cheatin' Heart "},
		{"All Over Now (Edit)", "All Over Now "},
		{"(I Can't Get No) Satisfaction - Mono Version", "(I Can't Get No) Satisfaction "},
		{"Ruby Tuesday - Stereo Version", "Ruby Tuesday "},
		{"Pure McCartney (Deluxe Edition)", "Pure McCartney "},
		{"6 Foot 7 Foot (Explicit Version)", "6 Foot 7 Foot "},
	})
}

func TestYouTubeTrack(t *testing.T) {
	// These need the fixpoint: removing a parenthetical leaves trailing
	// whitespace that only the next pass trims.
	testTable(t, rules.YouTubeTrack(), [][2]string{
		{"Track Title (Official Music Video)", "Track Title"},
		{"Track Title (Official Audio)", "Track Title"},
		{"Track Title (Lyrics Video)", "Track Title"},
		{"Track Title [Official Video]", "Track Title"},
		{"Track Title | Official Channel", "Track Title"},
		{"Track Title (1999)", "Track Title"},
		{"Track Title HD", "Track Title"},
		{"  Track Title  ", "Track Title"},
	})
}

func TestLive(t *testing.T) {
	testTable(t, rules.Live(), [][2]string{
		{"Track - Live", "Track "},
		{"Track - Live at Wembley", "Track "},
	})
}

func TestCleanExplicit(t *testing.T) {
	testTable(t, rules.CleanExplicit(), [][2]string{
		{"Track [Explicit]", "Track"},
		{"Track (Explicit)", "Track"},
		{"Track (Clean)", "Track"},
		{"Track [Explicit] [Clean]", "Track"},
	})
}

func TestFeature(t *testing.T) {
	testTable(t, rules.Feature(), [][2]string{
		{"Song Title (Feat. Other Artist)", "Song Title"},
		{"Song Title [feat. Other Artist]", "Song Title"},
	})
}

func TestNormalizeFeature(t *testing.T) {
	testTable(t, rules.NormalizeFeature(), [][2]string{
		{"Song Title (feat. Other Artist)", "Song Title feat. Other Artist"},
		{"Song Title [Feat. Other Artist]", "Song Title Feat. Other Artist"},
	})
}

func TestSuffix(t *testing.T) {
	testTable(t, rules.Suffix(), [][2]string{
		{"Song Title - X Remix", "Song Title (X Remix)"},
		{"Song Title - Remix", "Song Title (Remix)"},
		{"Song Title - Club Mix", "Song Title (Club Mix)"},
	})
}

func TestTrimWhitespace(t *testing.T) {
	testTable(t, rules.TrimWhitespace(), [][2]string{
		{"   Text   ", "Text"},
		{"Text", "Text"},
	})
}

func TestTrimSymbols(t *testing.T) {
	testTable(t, rules.TrimSymbols(), [][2]string{
		{"Track ()", "Track"},
		{"- Track -", "Track"},
		{`"Track"`, "Track"},
	})
}

func TestCatalogComposition(t *testing.T) {
	t.Run("remastered_then_trim", func(t *testing.T) {
		set := filter.Concat(rules.Remastered(), rules.TrimWhitespace())
		assert.Equal(t, "Here Comes The Sun",
			filter.Apply("Here Comes The Sun (Remastered)", set))
	})

	t.Run("remastered_alone_keeps_trailing_space", func(t *testing.T) {
		assert.Equal(t, "Here Comes The Sun ",
			filter.Apply("Here Comes The Sun (Remastered)", rules.Remastered()))
	})

	t.Run("full_track_pipeline", func(t *testing.T) {
		set := filter.Concat(
			rules.YouTubeTrack(),
			rules.TrimSymbols(),
			rules.Remastered(),
			rules.TrimWhitespace(),
		)
		assert.Equal(t, "Artist - Track",
			filter.Apply("Artist - Track (Official Video)", set))
	})

	t.Run("already_normalized_is_untouched", func(t *testing.T) {
		set := filter.Concat(rules.Remastered(), rules.TrimWhitespace())
		assert.Equal(t, "Here Comes The Sun", filter.Apply("Here Comes The Sun", set))
	})
}

func TestRegistry(t *testing.T) {
	t.Run("every_name_resolves", func(t *testing.T) {
		for _, name := range rules.Names() {
			set, ok := rules.Named(name)
			assert.True(t, ok, "catalog %q should resolve", name)
			assert.NotEmpty(t, set, "catalog %q should have rules", name)
		}
	})

	t.Run("unknown_name_does_not_resolve", func(t *testing.T) {
		_, ok := rules.Named("no-such-catalog")
		assert.False(t, ok)
	})

	t.Run("names_are_stable", func(t *testing.T) {
		assert.Equal(t, rules.Names(), rules.Names())
		assert.Len(t, rules.Names(), 10)
	})
}
