package auth

import (
	"context"
	"sync"

	"chat-pipeline/domain"

	"github.com/google/uuid"
)

// Authorizer is an in-process AuthorizationCheck backed by room
// membership and per-user permission grants. Public rooms are readable
// by anyone; private rooms require membership.
type Authorizer struct {
	mu      sync.RWMutex
	members map[uuid.UUID]map[string]struct{} // room -> user IDs
	grants  map[string]map[string]struct{}    // user -> permissions
}

func NewAuthorizer() *Authorizer {
	return &Authorizer{
		members: make(map[uuid.UUID]map[string]struct{}),
		grants:  make(map[string]map[string]struct{}),
	}
}

func (a *Authorizer) AddMember(roomID uuid.UUID, userID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.members[roomID] == nil {
		a.members[roomID] = make(map[string]struct{})
	}
	a.members[roomID][userID] = struct{}{}
}

func (a *Authorizer) Grant(userID string, permissions ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.grants[userID] == nil {
		a.grants[userID] = make(map[string]struct{})
	}
	for _, p := range permissions {
		a.grants[userID][p] = struct{}{}
	}
}

func (a *Authorizer) Revoke(userID string, permission string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.grants[userID], permission)
}

func (a *Authorizer) CanAccess(_ context.Context, room domain.Room, user domain.ActingUser) (bool, error) {
	if room.IsPublic {
		return true, nil
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.members[room.ID][user.ID]
	return ok, nil
}

func (a *Authorizer) HasPermission(_ context.Context, user domain.ActingUser, _ domain.Room, permission string) (bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.grants[user.ID][permission]
	return ok, nil
}
