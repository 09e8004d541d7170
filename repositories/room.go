package repositories

import (
	"context"
	"log/slog"

	"chat-pipeline/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// RoomRepository persists room records in BadgerDB and serves as the
// pipeline's RoomLookup collaborator.
type RoomRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRoomRepository(db *badger.DB, log *slog.Logger) RoomRepository {
	return RoomRepository{db: db, log: log}
}

func (r RoomRepository) StoreRoom(room domain.Room) error {
	bytes, err := json.Marshal(room)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(roomKey(room.ID), bytes)
	})
}

// Rooms resolves identifiers to room records; unknown identifiers are
// absent from the result.
func (r RoomRepository) Rooms(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Room, error) {
	found := make(map[uuid.UUID]domain.Room, len(ids))
	err := r.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			item, err := txn.Get(roomKey(id))
			if err == badger.ErrKeyNotFound {
				continue
			}
			if err != nil {
				return err
			}
			err = item.Value(func(value []byte) error {
				var room domain.Room
				if err := json.Unmarshal(value, &room); err != nil {
					return err
				}
				found[id] = room
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func roomKey(id uuid.UUID) []byte {
	return []byte("room:" + id.String())
}
