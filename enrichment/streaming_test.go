package enrichment

import (
	"context"
	"log/slog"
	"testing"

	"chat-pipeline/domain"
	"chat-pipeline/pipeline"
	"chat-pipeline/settings"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func streamingRun(cfg *settings.Snapshot) pipeline.Run {
	return pipeline.Run{
		Config: cfg,
		Log:    logs.GetLoggerFromLevel(slog.LevelDebug),
	}
}

func TestStreamingStage_AppendsPreviewPerMatch(t *testing.T) {
	req := require.New(t)
	stage := NewStreamingStage()
	cfg := &settings.Snapshot{
		Version:   1,
		Streaming: settings.Streaming{Enabled: true, Host: "open.spotify.com"},
	}

	msg := domain.Message{
		Content: "listen to https://open.spotify.com/track/42abc " +
			"then https://open.spotify.com/album/XYZ9",
	}
	out := stage.Apply(context.Background(), msg, streamingRun(cfg))

	req.Len(out.Attachments, 2)

	first := out.Attachments[0]
	req.Equal(domain.AttachmentStreaming, first.Kind)
	req.Equal("open.spotify.com", first.Streaming.Provider)
	req.Equal("track", first.Streaming.Resource)
	req.Equal("42abc", first.Streaming.ResourceID)
	req.Equal("https://open.spotify.com/track/42abc", first.Streaming.URL)

	second := out.Attachments[1]
	req.Equal("album", second.Streaming.Resource)
	req.Equal("XYZ9", second.Streaming.ResourceID)

	// The text itself is never rewritten.
	req.Equal(msg.Content, out.Content)
}

func TestStreamingStage_IgnoresOtherHostsAndResources(t *testing.T) {
	req := require.New(t)
	stage := NewStreamingStage()
	cfg := &settings.Snapshot{
		Version:   1,
		Streaming: settings.Streaming{Enabled: true, Host: "open.spotify.com"},
	}

	tests := []struct {
		name    string
		content string
	}{
		{"Foreign host", "https://example.com/track/42"},
		{"Unknown resource type", "https://open.spotify.com/artist/42"},
		{"No link at all", "just words"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := stage.Apply(context.Background(), domain.Message{Content: tt.content}, streamingRun(cfg))
			req.Empty(out.Attachments)
		})
	}
}

func TestStreamingStage_DisabledIsPassThrough(t *testing.T) {
	req := require.New(t)
	stage := NewStreamingStage()
	cfg := &settings.Snapshot{
		Version:   1,
		Streaming: settings.Streaming{Enabled: false, Host: "open.spotify.com"},
	}

	msg := domain.Message{Content: "https://open.spotify.com/track/42"}
	out := stage.Apply(context.Background(), msg, streamingRun(cfg))
	req.Empty(out.Attachments)
}
