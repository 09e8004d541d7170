package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"chat-pipeline/auth"
	"chat-pipeline/domain"
	"chat-pipeline/guard"
	"chat-pipeline/internal"
	"chat-pipeline/repositories"
	"chat-pipeline/services"
	"chat-pipeline/settings"
	"chat-pipeline/sink"
	"chat-pipeline/workers"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// lobbyRoom is the room system notices land in. Created on first start.
var lobbyRoom = uuid.MustParse("00000000-0000-4000-8000-000000000001")

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the daemon lifecycle, and
// centralizes error reporting so deferred cleanup always executes.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Repositories & settings
	messageRepository := repositories.NewMessageRepository(db, log, config.LimitMessages)
	roomRepository := repositories.NewRoomRepository(db, log)

	source := settings.NewMemorySource(map[string]string{
		settings.KeySiteURL:           config.SiteURL,
		settings.KeyBadWordsEnabled:   strconv.FormatBool(config.BadWordsEnabled),
		settings.KeyBadWordsList:      config.BadWordsList,
		settings.KeyBadWordsWhitelist: config.BadWordsWhitelist,
		settings.KeyStreamingHost:     config.StreamingHost,
		settings.KeyQuoteChainLimit:   strconv.Itoa(config.QuoteChainLimit),
		settings.KeyMessageMaxChars:   strconv.Itoa(config.MessageMaxChars),
		settings.KeyUseRealName:       strconv.FormatBool(config.UseRealName),
	})
	store := settings.NewStore(settings.Build(source))
	watcher := settings.NewWatcher(source, store, log)

	// 4. Pipeline & service
	authorizer := auth.NewAuthorizer()
	authorizer.Grant("system:server", guard.PermissionMentionAll, guard.PermissionMentionHere)
	avatars := auth.NewSiteAvatarResolver(store)
	tokens := auth.NewTokenService([]byte(config.TokenSecret), config.TokenLifetime)
	serviceToken, err := tokens.Generate(domain.ActingUser{ID: "system:server", Username: "server"},
		[]string{guard.PermissionMentionAll, guard.PermissionMentionHere})
	if err != nil {
		return fmt.Errorf("minting service token: %w", err)
	}
	log.Debug("Service token minted for tooling", "token", serviceToken,
		"lifetime", config.TokenLifetime.String())
	p := services.NewDefaultPipeline(log, store, messageRepository, roomRepository, authorizer, avatars)
	timeline := sink.NewTimeline()
	chatService := services.NewChatService(p, messageRepository, roomRepository, log, timeline)

	// 5. Context & signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Ensure the lobby exists and announce the start
	if err := roomRepository.StoreRoom(domain.Room{
		ID:       lobbyRoom,
		Name:     "lobby",
		IsPublic: true,
	}); err != nil {
		return fmt.Errorf("creating lobby room: %w", err)
	}
	if _, err := chatService.SaveSystemMessage(ctx, services.SystemMessageCommand{
		RoomID:   lobbyRoom,
		Username: "server",
		Content:  "Chat daemon started at " + time.Now().UTC().Format(time.RFC822),
	}); err != nil {
		return fmt.Errorf("posting startup notice: %w", err)
	}

	// 7. Supervised workers: settings watcher + debug server
	debugServer := internal.NewDebugServer(db, config.DebugPort, messageMapper, nil, log)
	supervisor := workers.NewSupervisor(log)
	supervisor.Add(watcher, debugServer)

	log.Info(fmt.Sprintf("chat-pipeline daemon up, inspect at :%d/inspect", config.DebugPort))
	supervisor.Run(ctx)
	return nil
}
