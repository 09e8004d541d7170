package repositories

import (
	"context"
	"log/slog"
	"testing"

	"chat-pipeline/domain"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestRoomRepository_StoreAndLookup(t *testing.T) {
	req := require.New(t)
	repository := NewRoomRepository(openTestDB(t), slog.Default())

	parent := uuid.New()
	public := domain.Room{ID: uuid.New(), Name: "lobby", IsPublic: true}
	private := domain.Room{ID: uuid.New(), ParentID: lo.ToPtr(parent), Name: "staff"}
	req.NoError(repository.StoreRoom(public))
	req.NoError(repository.StoreRoom(private))

	found, err := repository.Rooms(context.Background(),
		[]uuid.UUID{public.ID, private.ID, uuid.New()})
	req.NoError(err)
	req.Len(found, 2)
	req.Equal(public, found[public.ID])
	req.Equal(private, found[private.ID])
}

func TestRoomRepository_StoreIsUpsert(t *testing.T) {
	req := require.New(t)
	repository := NewRoomRepository(openTestDB(t), slog.Default())

	room := domain.Room{ID: uuid.New(), Name: "before"}
	req.NoError(repository.StoreRoom(room))
	room.Name = "after"
	room.IsPublic = true
	req.NoError(repository.StoreRoom(room))

	found, err := repository.Rooms(context.Background(), []uuid.UUID{room.ID})
	req.NoError(err)
	req.Equal("after", found[room.ID].Name)
	req.True(found[room.ID].IsPublic)
}
