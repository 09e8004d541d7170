package moderation

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

func maskingRun(cfg *settings.Snapshot) pipeline.Run {
	return pipeline.Run{
		Config: cfg,
		Log:    logs.GetLoggerFromLevel(slog.LevelDebug),
	}
}

func TestStage_MasksBothForms(t *testing.T) {
	req := require.New(t)
	stage := NewStage()
	cfg := &settings.Snapshot{
		Version: 1,
		BadWords: settings.BadWords{
			Enabled: true,
			List:    []string{"damn"},
		},
	}

	msg := domain.Message{
		Content:  "well damn",
		Rendered: "well <strong>damn</strong>",
	}
	out := stage.Apply(context.Background(), msg, maskingRun(cfg))

	req.Equal("well ****", out.Content)
	req.Equal("well <strong>****</strong>", out.Rendered)
}

func TestStage_DisabledIsPassThrough(t *testing.T) {
	req := require.New(t)
	stage := NewStage()
	cfg := &settings.Snapshot{
		Version: 1,
		BadWords: settings.BadWords{
			Enabled: false,
			List:    []string{"damn"},
		},
	}

	msg := domain.Message{Content: "well damn"}
	out := stage.Apply(context.Background(), msg, maskingRun(cfg))

	req.Equal("well damn", out.Content)
}

func TestStage_RebuildsOnNewSnapshotVersion(t *testing.T) {
	req := require.New(t)
	stage := NewStage()
	msg := domain.Message{Content: "heck that"}

	v1 := &settings.Snapshot{
		Version:  1,
		BadWords: settings.BadWords{Enabled: true, List: []string{"damn"}},
	}
	out := stage.Apply(context.Background(), msg, maskingRun(v1))
	req.Equal("heck that", out.Content)

	v2 := &settings.Snapshot{
		Version:  2,
		BadWords: settings.BadWords{Enabled: true, List: []string{"damn", "heck"}},
	}
	out = stage.Apply(context.Background(), msg, maskingRun(v2))
	req.Equal("**** that", out.Content)
}
