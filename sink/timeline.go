// Package sink contains event sinks fed with accepted messages.
// Sinks run after persistence; they must tolerate being behind.
package sink

import (
	"context"
	"sync"

	"chat-pipeline/domain"

	"github.com/google/uuid"
)

// Timeline keeps an in-memory, per-room view of accepted messages.
// It backs local broadcast and the read side of tests and tooling.
type Timeline struct {
	mu       sync.RWMutex
	messages map[uuid.UUID][]domain.Message
}

func NewTimeline() *Timeline {
	return &Timeline{messages: make(map[uuid.UUID][]domain.Message)}
}

func (t *Timeline) Consume(_ context.Context, msg domain.Message) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages[msg.RoomID] = append(t.messages[msg.RoomID], msg)
	return nil
}

// Room returns the accepted messages observed for a room, in arrival
// order.
func (t *Timeline) Room(roomID uuid.UUID) []domain.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]domain.Message, len(t.messages[roomID]))
	copy(out, t.messages[roomID])
	return out
}
