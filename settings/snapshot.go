// Package settings holds the pipeline configuration as immutable
// snapshots. A snapshot is built from a SettingsSource, swapped in as
// one atomic value, and never mutated afterwards: in-flight pipeline
// runs keep the snapshot they started with.
package settings

import (
	"strconv"
	"strings"
	"sync/atomic"

	"chat-pipeline/contract"

	"github.com/samber/lo"
)

const (
	KeyMarkdownColors        = "markdown.colors"
	KeyMarkdownEmoticons     = "markdown.emoticons"
	KeyMarkdownCustomDomains = "markdown.custom_domains"
	KeyKatexDollar           = "markdown.katex.dollar"
	KeyKatexParenthesis      = "markdown.katex.parenthesis"
	KeyBadWordsEnabled       = "badwords.enabled"
	KeyBadWordsList          = "badwords.list"
	KeyBadWordsWhitelist     = "badwords.whitelist"
	KeyStreamingEnabled      = "links.streaming.enabled"
	KeyStreamingHost         = "links.streaming.host"
	KeyQuoteChainLimit       = "quote.chain_limit"
	KeySiteURL               = "site.url"
	KeyUseRealName           = "ui.use_real_name"
	KeyMessageMaxChars       = "message.max_chars"
	KeyValidateEdited        = "message.validate_edited"
)

// WatchedKeys is the named set of keys the snapshot watcher subscribes
// to. A change to any of them triggers a full snapshot rebuild.
var WatchedKeys = []string{
	KeyMarkdownColors, KeyMarkdownEmoticons, KeyMarkdownCustomDomains,
	KeyKatexDollar, KeyKatexParenthesis,
	KeyBadWordsEnabled, KeyBadWordsList, KeyBadWordsWhitelist,
	KeyStreamingEnabled, KeyStreamingHost,
	KeyQuoteChainLimit, KeySiteURL, KeyUseRealName,
	KeyMessageMaxChars, KeyValidateEdited,
}

type Markdown struct {
	Colors           bool
	Emoticons        bool
	CustomDomains    []string
	KatexDollar      bool
	KatexParenthesis bool
}

type BadWords struct {
	Enabled   bool
	List      []string
	Whitelist []string
}

type Streaming struct {
	Enabled bool
	Host    string
}

// Snapshot is one complete, internally consistent configuration
// version. Disabled features are snapshot fields, not separate code
// paths.
type Snapshot struct {
	Version         uint64
	Markdown        Markdown
	BadWords        BadWords
	Streaming       Streaming
	QuoteChainLimit int
	SiteURL         string
	UseRealName     bool
	MessageMaxChars int // 0 means unlimited
	ValidateEdited  bool
}

// Build reads every watched key from the source and assembles a full
// snapshot. Missing keys fall back to safe defaults so a sparsely
// populated source still yields a usable configuration.
func Build(source contract.SettingsSource) *Snapshot {
	return &Snapshot{
		Markdown: Markdown{
			Colors:           boolValue(source, KeyMarkdownColors, false),
			Emoticons:        boolValue(source, KeyMarkdownEmoticons, true),
			CustomDomains:    listValue(source, KeyMarkdownCustomDomains),
			KatexDollar:      boolValue(source, KeyKatexDollar, false),
			KatexParenthesis: boolValue(source, KeyKatexParenthesis, false),
		},
		BadWords: BadWords{
			Enabled:   boolValue(source, KeyBadWordsEnabled, false),
			List:      listValue(source, KeyBadWordsList),
			Whitelist: listValue(source, KeyBadWordsWhitelist),
		},
		Streaming: Streaming{
			Enabled: boolValue(source, KeyStreamingEnabled, true),
			Host:    stringValue(source, KeyStreamingHost, "open.spotify.com"),
		},
		QuoteChainLimit: intValue(source, KeyQuoteChainLimit, 2),
		SiteURL:         strings.TrimRight(stringValue(source, KeySiteURL, ""), "/"),
		UseRealName:     boolValue(source, KeyUseRealName, false),
		MessageMaxChars: intValue(source, KeyMessageMaxChars, 0),
		ValidateEdited:  boolValue(source, KeyValidateEdited, false),
	}
}

func stringValue(source contract.SettingsSource, key, fallback string) string {
	if v, ok := source.Get(key); ok {
		return v
	}
	return fallback
}

func boolValue(source contract.SettingsSource, key string, fallback bool) bool {
	v, ok := source.Get(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func intValue(source contract.SettingsSource, key string, fallback int) int {
	v, ok := source.Get(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func listValue(source contract.SettingsSource, key string) []string {
	v, ok := source.Get(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	parts := lo.Map(strings.Split(v, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
	return lo.Filter(parts, func(item string, _ int) bool {
		return item != ""
	})
}

// Store publishes the current snapshot. Replace is a single atomic
// swap; readers dereference once per pipeline run and keep that value
// for the whole run.
type Store struct {
	current atomic.Pointer[Snapshot]
}

func NewStore(snap *Snapshot) *Store {
	s := &Store{}
	s.current.Store(snap)
	return s
}

func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

func (s *Store) Replace(snap *Snapshot) {
	s.current.Store(snap)
}
