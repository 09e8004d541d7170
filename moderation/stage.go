package moderation

import (
	"context"
	"fmt"
	"sync"

	"chat-pipeline/domain"
	"chat-pipeline/pipeline"
	"chat-pipeline/settings"

	"github.com/abadojack/whatlanggo"
)

const maskChar = '*'

// Stage is the bad-words pipeline stage. The automaton is rebuilt
// lazily when a new snapshot version arrives, so a word-list change
// only affects runs started after the swap. When the feature flag is
// off the stage is a pass-through.
type Stage struct {
	mu        sync.Mutex
	version   uint64
	moderator *Moderator
}

func NewStage() *Stage {
	return &Stage{}
}

func (s *Stage) Name() string { return "badwords" }

func (s *Stage) Apply(_ context.Context, msg domain.Message, run pipeline.Run) domain.Message {
	if !run.Config.BadWords.Enabled {
		return msg
	}
	mod := s.moderatorFor(run.Config)
	if mod == nil {
		return msg
	}

	// Both forms are masked with the same matcher so the stored audit
	// text and the rendered text agree on what was hidden.
	masked, hits := mod.Mask(msg.Content)
	msg.Content = masked
	msg.Rendered, _ = mod.Mask(msg.Rendered)

	if len(hits) > 0 {
		info := whatlanggo.Detect(msg.Content)
		run.Log.Debug(fmt.Sprintf("Masked %d banned words", len(hits)),
			"message", msg.ID, "lang", info.Lang.Iso6391())
	}
	return msg
}

// moderatorFor returns the automaton for the run's snapshot, rebuilding
// it when the version moved. A build failure keeps the previous
// automaton; this stage never aborts the pipeline.
func (s *Stage) moderatorFor(cfg *settings.Snapshot) *Moderator {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.moderator != nil && s.version == cfg.Version {
		return s.moderator
	}
	mod, err := NewModerator(cfg.BadWords.List, cfg.BadWords.Whitelist, maskChar)
	if err != nil {
		return s.moderator
	}
	s.version = cfg.Version
	s.moderator = mod
	return s.moderator
}
