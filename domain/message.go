// Package domain contains core concepts of the chat system.
// This file defines Message values and the attachment rules that
// pre-persistence stages must respect.
// Messages are owned by a single pipeline run while being transformed.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is one chat message moving through the pre-persistence
// pipeline. ID and RoomID never change once set. Attachments are
// append-only: a stage may add entries but must never reorder or
// remove what an earlier stage produced.
type Message struct {
	ID          uuid.UUID
	RoomID      uuid.UUID
	Sender      ActingUser
	Content     string // raw text, kept for audit and edits
	Rendered    string // rendered form, populated by the markdown stage
	Attachments []Attachment
	Reactions   map[string][]string // emoji -> user IDs
	CreatedAt   time.Time           // zero value means "no timestamp"
	EditedAt    *time.Time          // nil means never edited
}

// IsEdited reports whether the message carries an edited marker.
func (m Message) IsEdited() bool {
	return m.EditedAt != nil
}

type AttachmentKind string

const (
	AttachmentStreaming = AttachmentKind("streaming")
	AttachmentQuote     = AttachmentKind("quote")
)

// Attachment is a structured enrichment appended by a pipeline stage.
// Exactly one payload field is set, matching Kind.
type Attachment struct {
	Kind      AttachmentKind
	Streaming *StreamingPreview
	Quote     *QuotedMessage
}

// StreamingPreview references a resource on a recognized
// music-streaming service. The matched text stays in the message.
type StreamingPreview struct {
	Provider   string
	Resource   string // track, album or playlist
	ResourceID string
	URL        string
}

// QuotedMessage carries the bounded context of a permalinked message.
type QuotedMessage struct {
	AuthorUsername string
	AuthorName     string
	Text           string
	AvatarURL      string
	RoomID         uuid.UUID
	MessageID      uuid.UUID
}
