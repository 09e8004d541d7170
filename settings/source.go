package settings

import "sync"

type watchRegistration struct {
	keys map[string]struct{}
	fn   func(changed map[string]string)
}

// MemorySource is an in-process SettingsSource. Set delivers one full,
// consistent set of changed values per notification; a watcher only
// sees the keys it subscribed to.
type MemorySource struct {
	mu       sync.RWMutex
	values   map[string]string
	watchers []watchRegistration
}

func NewMemorySource(initial map[string]string) *MemorySource {
	values := make(map[string]string, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &MemorySource{values: values}
}

func (s *MemorySource) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemorySource) Watch(keys []string, fn func(changed map[string]string)) {
	watched := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		watched[k] = struct{}{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, watchRegistration{keys: watched, fn: fn})
}

// Set applies all values as one change set and notifies matching
// watchers exactly once. Notification runs outside the lock so a
// watcher may call Get from its callback.
func (s *MemorySource) Set(values map[string]string) {
	s.mu.Lock()
	for k, v := range values {
		s.values[k] = v
	}
	watchers := make([]watchRegistration, len(s.watchers))
	copy(watchers, s.watchers)
	s.mu.Unlock()

	for _, w := range watchers {
		changed := make(map[string]string)
		for k, v := range values {
			if _, ok := w.keys[k]; ok {
				changed[k] = v
			}
		}
		if len(changed) > 0 {
			w.fn(changed)
		}
	}
}
