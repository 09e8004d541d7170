package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild_Defaults(t *testing.T) {
	req := require.New(t)
	source := NewMemorySource(nil)

	snap := Build(source)

	req.False(snap.BadWords.Enabled)
	req.Nil(snap.BadWords.List)
	req.True(snap.Streaming.Enabled)
	req.Equal("open.spotify.com", snap.Streaming.Host)
	req.Equal(2, snap.QuoteChainLimit)
	req.Equal(0, snap.MessageMaxChars)
	req.False(snap.ValidateEdited)
	req.True(snap.Markdown.Emoticons)
	req.False(snap.Markdown.Colors)
	req.Empty(snap.SiteURL)
}

func TestBuild_FromSource(t *testing.T) {
	req := require.New(t)
	source := NewMemorySource(map[string]string{
		KeySiteURL:           "https://chat.example.com/",
		KeyBadWordsEnabled:   "true",
		KeyBadWordsList:      " damn , heck ,,",
		KeyBadWordsWhitelist: "heck",
		KeyQuoteChainLimit:   "5",
		KeyMessageMaxChars:   "400",
		KeyStreamingEnabled:  "false",
	})

	snap := Build(source)

	// Trailing slash is stripped so permalink patterns concatenate cleanly.
	req.Equal("https://chat.example.com", snap.SiteURL)
	req.True(snap.BadWords.Enabled)
	req.Equal([]string{"damn", "heck"}, snap.BadWords.List)
	req.Equal([]string{"heck"}, snap.BadWords.Whitelist)
	req.Equal(5, snap.QuoteChainLimit)
	req.Equal(400, snap.MessageMaxChars)
	req.False(snap.Streaming.Enabled)
}

func TestBuild_MalformedValuesFallBack(t *testing.T) {
	req := require.New(t)
	source := NewMemorySource(map[string]string{
		KeyBadWordsEnabled: "certainly",
		KeyQuoteChainLimit: "many",
	})

	snap := Build(source)

	req.False(snap.BadWords.Enabled)
	req.Equal(2, snap.QuoteChainLimit)
}

func TestStore_ReplaceIsObservedByNewReaders(t *testing.T) {
	req := require.New(t)
	first := &Snapshot{Version: 1, QuoteChainLimit: 2}
	store := NewStore(first)

	held := store.Current()
	store.Replace(&Snapshot{Version: 2, QuoteChainLimit: 7})

	// A reader that dereferenced before the swap keeps its snapshot.
	req.Equal(uint64(1), held.Version)
	req.Equal(2, held.QuoteChainLimit)
	req.Equal(uint64(2), store.Current().Version)
}
