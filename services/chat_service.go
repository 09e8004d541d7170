// Package services exposes the thin chat operations. Every method
// forwards to the pipeline and the persistence collaborators; the
// interesting behavior lives in the pipeline packages.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"chat-pipeline/contract"
	"chat-pipeline/domain"
	"chat-pipeline/errors"
	"chat-pipeline/pipeline"
	"chat-pipeline/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IChatService interface {
	SendMessage(ctx context.Context, cmd SendMessageCommand) (domain.Message, error)
	UpdateMessage(ctx context.Context, cmd UpdateMessageCommand) (domain.Message, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
	ReactToMessage(ctx context.Context, cmd ReactionCommand) (domain.Message, error)
	SaveSystemMessage(ctx context.Context, cmd SystemMessageCommand) (domain.Message, error)
}

type SendMessageCommand struct {
	RoomID  uuid.UUID         `validate:"required"`
	Actor   domain.ActingUser `validate:"required"`
	Content string            `validate:"required"`
}

type UpdateMessageCommand struct {
	MessageID uuid.UUID         `validate:"required"`
	Actor     domain.ActingUser `validate:"required"`
	Content   string            `validate:"required"`
}

type ReactionCommand struct {
	MessageID uuid.UUID         `validate:"required"`
	Actor     domain.ActingUser `validate:"required"`
	Emoji     string            `validate:"required"`
}

type SystemMessageCommand struct {
	RoomID   uuid.UUID `validate:"required"`
	Username string    `validate:"required"`
	Content  string    `validate:"required"`
}

type ChatService struct {
	pipeline *pipeline.Pipeline
	messages repositories.IMessageRepository
	rooms    contract.RoomLookup
	sinks    []contract.EventSink
	validate *validator.Validate
	log      *slog.Logger
}

func NewChatService(p *pipeline.Pipeline, messages repositories.IMessageRepository,
	rooms contract.RoomLookup, log *slog.Logger, sinks ...contract.EventSink) *ChatService {
	return &ChatService{
		pipeline: p,
		messages: messages,
		rooms:    rooms,
		sinks:    sinks,
		validate: validator.New(),
		log:      log,
	}
}

// SendMessage runs a new message through the pipeline and persists it
// when accepted. A veto is returned to the caller as-is; nothing is
// stored or broadcast in that case.
func (s *ChatService) SendMessage(ctx context.Context, cmd SendMessageCommand) (domain.Message, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.Message{}, fmt.Errorf("invalid send command: %w", err)
	}
	room, err := s.room(ctx, cmd.RoomID)
	if err != nil {
		return domain.Message{}, err
	}

	msg := domain.Message{
		ID:        uuid.New(),
		RoomID:    room.ID,
		Sender:    cmd.Actor,
		Content:   cmd.Content,
		CreatedAt: time.Now().UTC(),
	}
	msg, err = s.pipeline.Process(ctx, msg, room, cmd.Actor)
	if err != nil {
		return msg, err
	}
	if err := s.messages.StoreMessage(msg); err != nil {
		return msg, fmt.Errorf("storing message: %w", err)
	}
	s.fanout(ctx, msg)
	return msg, nil
}

// UpdateMessage re-runs the pipeline over the edited text. Attachments
// are rebuilt from scratch: stages append within one run, so an edit
// starts from an empty list rather than accumulating duplicates.
func (s *ChatService) UpdateMessage(ctx context.Context, cmd UpdateMessageCommand) (domain.Message, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.Message{}, fmt.Errorf("invalid update command: %w", err)
	}
	msg, err := s.message(ctx, cmd.MessageID)
	if err != nil {
		return domain.Message{}, err
	}
	room, err := s.room(ctx, msg.RoomID)
	if err != nil {
		return domain.Message{}, err
	}

	msg.Content = cmd.Content
	msg.Rendered = ""
	msg.Attachments = nil
	msg.EditedAt = lo.ToPtr(time.Now().UTC())

	msg, err = s.pipeline.Process(ctx, msg, room, cmd.Actor)
	if err != nil {
		return msg, err
	}
	if err := s.messages.UpdateMessage(msg); err != nil {
		return msg, fmt.Errorf("updating message: %w", err)
	}
	s.fanout(ctx, msg)
	return msg, nil
}

func (s *ChatService) DeleteMessage(_ context.Context, id uuid.UUID) error {
	return s.messages.DeleteMessage(id)
}

// ReactToMessage toggles the actor's reaction. Reactions never pass
// through the pipeline; they carry no text.
func (s *ChatService) ReactToMessage(ctx context.Context, cmd ReactionCommand) (domain.Message, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.Message{}, fmt.Errorf("invalid reaction command: %w", err)
	}
	msg, err := s.message(ctx, cmd.MessageID)
	if err != nil {
		return domain.Message{}, err
	}

	if msg.Reactions == nil {
		msg.Reactions = make(map[string][]string)
	}
	users := msg.Reactions[cmd.Emoji]
	if lo.Contains(users, cmd.Actor.ID) {
		users = lo.Without(users, cmd.Actor.ID)
	} else {
		users = append(users, cmd.Actor.ID)
	}
	if len(users) == 0 {
		delete(msg.Reactions, cmd.Emoji)
	} else {
		msg.Reactions[cmd.Emoji] = users
	}

	if err := s.messages.UpdateMessage(msg); err != nil {
		return msg, fmt.Errorf("storing reaction: %w", err)
	}
	return msg, nil
}

// SaveSystemMessage stores a system-authored message. A missing
// username is a caller input error and fails fast, before the pipeline
// runs.
func (s *ChatService) SaveSystemMessage(ctx context.Context, cmd SystemMessageCommand) (domain.Message, error) {
	if cmd.Username == "" {
		return domain.Message{}, errors.ErrMissingUsername
	}
	if err := s.validate.Struct(cmd); err != nil {
		return domain.Message{}, fmt.Errorf("invalid system message: %w", err)
	}
	return s.SendMessage(ctx, SendMessageCommand{
		RoomID: cmd.RoomID,
		Actor: domain.ActingUser{
			ID:       "system:" + cmd.Username,
			Username: cmd.Username,
		},
		Content: cmd.Content,
	})
}

func (s *ChatService) room(ctx context.Context, id uuid.UUID) (domain.Room, error) {
	rooms, err := s.rooms.Rooms(ctx, []uuid.UUID{id})
	if err != nil {
		return domain.Room{}, fmt.Errorf("resolving room: %w", err)
	}
	room, ok := rooms[id]
	if !ok {
		return domain.Room{}, errors.ErrUnknownRoom
	}
	return room, nil
}

func (s *ChatService) message(ctx context.Context, id uuid.UUID) (domain.Message, error) {
	messages, err := s.messages.Messages(ctx, []uuid.UUID{id})
	if err != nil {
		return domain.Message{}, fmt.Errorf("resolving message: %w", err)
	}
	msg, ok := messages[id]
	if !ok {
		return domain.Message{}, errors.ErrUnknownMessage
	}
	return msg, nil
}

func (s *ChatService) fanout(ctx context.Context, msg domain.Message) {
	for _, sink := range s.sinks {
		if err := sink.Consume(ctx, msg); err != nil {
			s.log.Warn("Event sink rejected message", "message", msg.ID, "error", err)
		}
	}
}
