package sink

import (
	"context"
	"sync"
	"testing"

	"chat-pipeline/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTimeline_KeepsPerRoomArrivalOrder(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	timeline := NewTimeline()

	roomA := uuid.New()
	roomB := uuid.New()
	first := domain.Message{ID: uuid.New(), RoomID: roomA, Content: "first"}
	second := domain.Message{ID: uuid.New(), RoomID: roomA, Content: "second"}
	elsewhere := domain.Message{ID: uuid.New(), RoomID: roomB, Content: "elsewhere"}

	req.NoError(timeline.Consume(ctx, first))
	req.NoError(timeline.Consume(ctx, elsewhere))
	req.NoError(timeline.Consume(ctx, second))

	req.Equal([]domain.Message{first, second}, timeline.Room(roomA))
	req.Equal([]domain.Message{elsewhere}, timeline.Room(roomB))
	req.Empty(timeline.Room(uuid.New()))
}

func TestTimeline_RoomReturnsACopy(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	timeline := NewTimeline()

	roomID := uuid.New()
	msg := domain.Message{ID: uuid.New(), RoomID: roomID, Content: "original"}
	req.NoError(timeline.Consume(ctx, msg))

	view := timeline.Room(roomID)
	view[0].Content = "tampered"

	req.Equal("original", timeline.Room(roomID)[0].Content)
}

func TestTimeline_ConcurrentConsumers(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	timeline := NewTimeline()
	roomID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = timeline.Consume(ctx, domain.Message{ID: uuid.New(), RoomID: roomID})
		}()
	}
	wg.Wait()

	req.Len(timeline.Room(roomID), 50)
}
