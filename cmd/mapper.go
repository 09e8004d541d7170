package main

import (
	"time"

	"chat-pipeline/internal"

	jsoniter "github.com/json-iterator/go"
)

type inspectMessage struct {
	RoomID  string        `json:"room_id"`
	Sender  inspectSender `json:"sender"`
	Content string        `json:"content"`
	Created time.Time     `json:"created_at"`
}

type inspectSender struct {
	Username string `json:"username"`
}

// messageMapper renders stored messages in the debug inspector. Keys
// that do not decode as messages fall back to the raw preview.
func messageMapper(key string, val []byte) internal.InspectRow {
	var msg inspectMessage
	if err := jsoniter.Unmarshal(val, &msg); err != nil || msg.RoomID == "" {
		return internal.DefaultMapper(key, val)
	}
	return internal.InspectRow{
		Key:     key,
		Room:    msg.RoomID,
		Author:  msg.Sender.Username,
		When:    msg.Created.Format(time.RFC822),
		Content: msg.Content,
	}
}
