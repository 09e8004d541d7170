//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"chat-pipeline/domain"
	"chat-pipeline/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type IMessageRepository interface {
	StoreMessage(msg domain.Message) error
	UpdateMessage(msg domain.Message) error
	DeleteMessage(id uuid.UUID) error
	Messages(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Message, error)
	RoomMessages(roomID uuid.UUID, cursor *string) ([]domain.Message, *string, error)
}

// MessageRepository persists messages in BadgerDB. It doubles as the
// pipeline's MessageLookup collaborator.
type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

type storedMessage struct {
	ID          uuid.UUID           `json:"id"`
	RoomID      uuid.UUID           `json:"room_id"`
	Sender      domain.ActingUser   `json:"sender"`
	Content     string              `json:"content"`
	Rendered    string              `json:"rendered,omitempty"`
	Attachments []domain.Attachment `json:"attachments,omitempty"`
	Reactions   map[string][]string `json:"reactions,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	EditedAt    *time.Time          `json:"edited_at,omitempty"`
}

// StoreMessage persists a message under two keys:
//  1. "msg:{room_id}:{timestamp_padded}:{uuid}" for chronological
//     prefix scans (19-digit zero padding keeps lexicographical order).
//  2. "msgid:{uuid}" pointing at the chronological key, so permalink
//     resolution can fetch by identifier alone.
func (m MessageRepository) StoreMessage(msg domain.Message) error {
	key := chronoKey(msg)
	bytes, err := json.Marshal(fromDomain(msg))
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, bytes); err != nil {
			return err
		}
		return txn.Set(indexKey(msg.ID), key)
	})
}

// UpdateMessage rewrites the stored value in place. The chronological
// key is derived from the original creation timestamp, which never
// changes on edit.
func (m MessageRepository) UpdateMessage(msg domain.Message) error {
	bytes, err := json.Marshal(fromDomain(msg))
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(indexKey(msg.ID))
		if err != nil {
			return errors.ErrUnknownMessage
		}
		key, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return txn.Set(key, bytes)
	})
}

func (m MessageRepository) DeleteMessage(id uuid.UUID) error {
	return m.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(indexKey(id))
		if err != nil {
			return errors.ErrUnknownMessage
		}
		key, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if err := txn.Delete(key); err != nil {
			return err
		}
		return txn.Delete(indexKey(id))
	})
}

// Messages resolves identifiers to stored messages. Unknown identifiers
// are absent from the result; that is the lookup contract, not an
// error.
func (m MessageRepository) Messages(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Message, error) {
	found := make(map[uuid.UUID]domain.Message, len(ids))
	err := m.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			item, err := txn.Get(indexKey(id))
			if err == badger.ErrKeyNotFound {
				continue
			}
			if err != nil {
				return err
			}
			key, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			valueItem, err := txn.Get(key)
			if err == badger.ErrKeyNotFound {
				continue
			}
			if err != nil {
				return err
			}
			err = valueItem.Value(func(value []byte) error {
				var stored storedMessage
				if err := json.Unmarshal(value, &stored); err != nil {
					return err
				}
				found[id] = toDomain(stored)
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

// RoomMessages retrieves a room's messages newest first using a prefix
// scan. Thanks to the padded timestamp in the key, messages are
// naturally sorted by time. It stops once the configured limit is
// reached and hands back a cursor for the next page.
func (m MessageRepository) RoomMessages(roomID uuid.UUID, cursor *string) ([]domain.Message, *string, error) {
	var messages []domain.Message
	var lastKey string
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("msg:%s:", roomID)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Seek past the newest possible timestamp, then walk back.
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(messages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d messages reached", *m.limitMessages))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])
			err := item.Value(func(value []byte) error {
				var stored storedMessage
				if err := json.Unmarshal(value, &stored); err != nil {
					return err
				}
				messages = append(messages, toDomain(stored))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if lastKey == "" {
		return messages, nil, nil
	}
	return messages, &lastKey, nil
}

func chronoKey(msg domain.Message) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s",
		msg.RoomID, msg.CreatedAt.UnixNano(), msg.ID))
}

func indexKey(id uuid.UUID) []byte {
	return []byte("msgid:" + id.String())
}

func fromDomain(msg domain.Message) storedMessage {
	return storedMessage{
		ID:          msg.ID,
		RoomID:      msg.RoomID,
		Sender:      msg.Sender,
		Content:     msg.Content,
		Rendered:    msg.Rendered,
		Attachments: msg.Attachments,
		Reactions:   msg.Reactions,
		CreatedAt:   msg.CreatedAt,
		EditedAt:    msg.EditedAt,
	}
}

func toDomain(stored storedMessage) domain.Message {
	return domain.Message{
		ID:          stored.ID,
		RoomID:      stored.RoomID,
		Sender:      stored.Sender,
		Content:     stored.Content,
		Rendered:    stored.Rendered,
		Attachments: stored.Attachments,
		Reactions:   stored.Reactions,
		CreatedAt:   stored.CreatedAt,
		EditedAt:    stored.EditedAt,
	}
}
