package services

import (
	"log/slog"

	"chat-pipeline/contract"
	"chat-pipeline/enrichment"
	"chat-pipeline/guard"
	"chat-pipeline/markdown"
	"chat-pipeline/moderation"
	"chat-pipeline/pipeline"
	"chat-pipeline/settings"
)

// NewDefaultPipeline wires the stages in their fixed processing order:
// markdown, bad words, streaming links, quote links, then the
// concurrent validation group (length constraint plus both mention
// guards). Changing the order is not supported; insert new stages
// here.
func NewDefaultPipeline(log *slog.Logger, store *settings.Store,
	messages contract.MessageLookup, rooms contract.RoomLookup,
	authz contract.AuthorizationCheck, avatars contract.AvatarResolver) *pipeline.Pipeline {

	stages := []pipeline.Stage{
		markdown.NewRenderer(),
		moderation.NewStage(),
		enrichment.NewStreamingStage(),
		enrichment.NewQuoteStage(messages, rooms, authz, avatars),
	}
	checks := append([]pipeline.Check{guard.NewLengthConstraint()},
		guard.NewMentionChecks(authz)...)

	return pipeline.New(log, store, stages, checks)
}
