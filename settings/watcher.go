package settings

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"chat-pipeline/contract"
)

// Watcher subscribes to the watched key set and replaces the published
// snapshot whenever any of them changes. It is run under the worker
// supervisor; Run blocks until the context is done.
type Watcher struct {
	source  contract.SettingsSource
	store   *Store
	log     *slog.Logger
	version atomic.Uint64
}

func NewWatcher(source contract.SettingsSource, store *Store, log *slog.Logger) *Watcher {
	return &Watcher{source: source, store: store, log: log}
}

func (w *Watcher) Run(ctx context.Context) error {
	w.rebuild()
	w.source.Watch(WatchedKeys, func(changed map[string]string) {
		snap := w.rebuild()
		w.log.Info(fmt.Sprintf("Settings snapshot v%d replaced (%d keys changed)",
			snap.Version, len(changed)))
	})
	<-ctx.Done()
	return ctx.Err()
}

// rebuild assembles a complete snapshot from the source and swaps it
// in. The whole snapshot is rebuilt even for a single changed key so a
// reader can never observe a half-updated configuration.
func (w *Watcher) rebuild() *Snapshot {
	snap := Build(w.source)
	snap.Version = w.version.Add(1)
	w.store.Replace(snap)
	return snap
}
