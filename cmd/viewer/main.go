package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"chat-pipeline/internal"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
)

type storedMessage struct {
	RoomID string `json:"room_id"`
	Sender struct {
		Username string `json:"username"`
	} `json:"sender"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	EditedAt  *time.Time `json:"edited_at"`
}

// The viewer prints stored messages as a table without requiring the
// daemon to be down: BypassLockGuard allows opening the store while
// another process holds the lock.
func main() {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Room", "Author", "When", "Edited", "Content"})
	table.SetAutoWrapText(false)

	count := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte("msg:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var msg storedMessage
				if err := jsoniter.Unmarshal(val, &msg); err != nil {
					return nil // not a message value, skip
				}
				edited := ""
				if msg.EditedAt != nil {
					edited = "yes"
				}
				table.Append([]string{
					shorten(msg.RoomID), msg.Sender.Username,
					msg.CreatedAt.Format(time.RFC822), edited, msg.Content,
				})
				count++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to scan messages: %v", err)
	}

	color.Cyan.Printf("%d messages in %s\n", count, config.BadgerFilepath)
	table.Render()
	fmt.Println()
}

func shorten(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
