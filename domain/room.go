package domain

import "github.com/google/uuid"

// Room is the place a message is posted in. Access-control metadata is
// opaque to the pipeline; only the authorization collaborator reads it.
type Room struct {
	ID       uuid.UUID
	ParentID *uuid.UUID // discussion linkage, nil for top-level rooms
	Name     string
	IsPublic bool
}
