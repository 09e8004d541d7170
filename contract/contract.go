//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-pipeline/domain"
	"context"
	"reflect"

	"github.com/google/uuid"
)

// MessageLookup resolves message identifiers to visible messages.
// Identifiers that cannot be resolved are simply absent from the
// result; that is not an error.
type MessageLookup interface {
	Messages(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Message, error)
}

// RoomLookup resolves room identifiers to room records.
type RoomLookup interface {
	Rooms(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Room, error)
}

// AuthorizationCheck decides room access and permission grants.
type AuthorizationCheck interface {
	CanAccess(ctx context.Context, room domain.Room, user domain.ActingUser) (bool, error)
	HasPermission(ctx context.Context, user domain.ActingUser, room domain.Room, permission string) (bool, error)
}

// AvatarResolver returns a best-effort avatar URL for a username.
// An empty string means resolution failed; callers must not treat
// that as fatal.
type AvatarResolver interface {
	AvatarURL(ctx context.Context, username string) string
}

// SettingsSource exposes current configuration values and change
// notifications. A notification always carries the full, consistent
// set of changed keys, never a partial update.
type SettingsSource interface {
	Get(key string) (string, bool)
	Watch(keys []string, fn func(changed map[string]string))
}

// EventSink consumes accepted messages for broadcast or projection.
type EventSink interface {
	Consume(ctx context.Context, msg domain.Message) error
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
