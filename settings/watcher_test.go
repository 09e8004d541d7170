package settings

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestMemorySource_WatchersOnlySeeSubscribedKeys(t *testing.T) {
	req := require.New(t)
	source := NewMemorySource(map[string]string{KeySiteURL: "https://a"})

	var observed map[string]string
	source.Watch([]string{KeySiteURL}, func(changed map[string]string) {
		observed = changed
	})

	source.Set(map[string]string{
		KeySiteURL:         "https://b",
		"unrelated.toggle": "true",
	})

	req.Equal(map[string]string{KeySiteURL: "https://b"}, observed)

	// A change set without subscribed keys must not notify at all.
	observed = nil
	source.Set(map[string]string{"unrelated.toggle": "false"})
	req.Nil(observed)
}

func TestMemorySource_GetFromCallback(t *testing.T) {
	req := require.New(t)
	source := NewMemorySource(nil)

	var seen string
	source.Watch([]string{KeyStreamingHost}, func(map[string]string) {
		seen, _ = source.Get(KeyStreamingHost)
	})
	source.Set(map[string]string{KeyStreamingHost: "music.example.com"})

	req.Equal("music.example.com", seen)
}

func TestWatcher_RebuildsWholeSnapshotOnChange(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	source := NewMemorySource(map[string]string{
		KeyBadWordsEnabled: "true",
		KeyBadWordsList:    "damn",
	})
	store := NewStore(Build(source))
	watcher := NewWatcher(source, store, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = watcher.Run(ctx)
		close(done)
	}()

	// Run performs an initial rebuild, giving the store version 1. The
	// subscription lands right after, so Set is retried until a rebuilt
	// snapshot shows up.
	req.Eventually(func() bool {
		source.Set(map[string]string{KeyBadWordsList: "damn,heck"})
		return store.Current().Version >= 2
	}, time.Second, 5*time.Millisecond)

	snap := store.Current()
	// The untouched key survived the rebuild.
	req.True(snap.BadWords.Enabled)
	req.Equal([]string{"damn", "heck"}, snap.BadWords.List)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Watcher should stop when the context is canceled")
	}
}
