// Package enrichment holds the stages that resolve external references
// found in message text and attach structured previews. Enrichment is
// best-effort by contract: every failure mode is a silent skip, never a
// pipeline abort.
package enrichment

import (
	"context"
	"regexp"
	"sync"

	"chat-pipeline/domain"
	"chat-pipeline/pipeline"
	"chat-pipeline/settings"
)

// StreamingStage scans for links to the recognized music-streaming
// service and appends one preview attachment per match, left to right.
// The matched text itself is never rewritten.
type StreamingStage struct {
	mu      sync.Mutex
	version uint64
	re      *regexp.Regexp
}

func NewStreamingStage() *StreamingStage {
	return &StreamingStage{}
}

func (s *StreamingStage) Name() string { return "streaming-links" }

func (s *StreamingStage) Apply(_ context.Context, msg domain.Message, run pipeline.Run) domain.Message {
	cfg := run.Config
	if !cfg.Streaming.Enabled || cfg.Streaming.Host == "" {
		return msg
	}
	re := s.patternFor(cfg)

	for _, match := range re.FindAllStringSubmatch(msg.Content, -1) {
		msg.Attachments = append(msg.Attachments, domain.Attachment{
			Kind: domain.AttachmentStreaming,
			Streaming: &domain.StreamingPreview{
				Provider:   cfg.Streaming.Host,
				Resource:   match[1],
				ResourceID: match[2],
				URL:        match[0],
			},
		})
	}
	return msg
}

func (s *StreamingStage) patternFor(cfg *settings.Snapshot) *regexp.Regexp {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.re != nil && s.version == cfg.Version {
		return s.re
	}
	s.re = regexp.MustCompile(
		`https?://` + regexp.QuoteMeta(cfg.Streaming.Host) + `/(track|album|playlist)/([A-Za-z0-9]+)`)
	s.version = cfg.Version
	return s.re
}
