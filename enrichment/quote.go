package enrichment

import (
	"context"
	"regexp"
	"sync"
	"unicode/utf8"

	"chat-pipeline/contract"
	"chat-pipeline/domain"
	"chat-pipeline/pipeline"
	"chat-pipeline/settings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// quoteTextLimit bounds how much of a quoted message is carried along.
const quoteTextLimit = 280

// QuoteStage resolves permalinks to messages on this deployment and
// appends a bounded quoted attachment per accessible match. The chain
// limit is counted across the whole message, capping attachment
// fan-out from self-referential or link-heavy messages.
type QuoteStage struct {
	messages contract.MessageLookup
	rooms    contract.RoomLookup
	authz    contract.AuthorizationCheck
	avatars  contract.AvatarResolver

	mu      sync.Mutex
	version uint64
	re      *regexp.Regexp
}

func NewQuoteStage(messages contract.MessageLookup, rooms contract.RoomLookup,
	authz contract.AuthorizationCheck, avatars contract.AvatarResolver) *QuoteStage {
	return &QuoteStage{messages: messages, rooms: rooms, authz: authz, avatars: avatars}
}

func (s *QuoteStage) Name() string { return "quote-links" }

type permalink struct {
	roomID    uuid.UUID
	messageID uuid.UUID
}

func (s *QuoteStage) Apply(ctx context.Context, msg domain.Message, run pipeline.Run) domain.Message {
	cfg := run.Config
	if cfg.SiteURL == "" || cfg.QuoteChainLimit <= 0 {
		return msg
	}

	links := s.scan(msg.Content, cfg)
	if len(links) == 0 {
		return msg
	}

	messageIDs := lo.Uniq(lo.Map(links, func(l permalink, _ int) uuid.UUID {
		return l.messageID
	}))
	quoted, err := s.messages.Messages(ctx, messageIDs)
	if err != nil {
		run.Log.Debug("Quoted message lookup failed", "message", msg.ID, "error", err)
		return msg
	}
	roomIDs := lo.Uniq(lo.Map(links, func(l permalink, _ int) uuid.UUID {
		return l.roomID
	}))
	rooms, err := s.rooms.Rooms(ctx, roomIDs)
	if err != nil {
		run.Log.Debug("Quoted room lookup failed", "message", msg.ID, "error", err)
		return msg
	}

	appended := 0
	for _, link := range links {
		if appended >= cfg.QuoteChainLimit {
			break
		}
		source, ok := quoted[link.messageID]
		if !ok {
			continue
		}
		room, ok := rooms[link.roomID]
		if !ok {
			continue
		}
		allowed, err := s.authz.CanAccess(ctx, room, run.Actor)
		if err != nil || !allowed {
			continue
		}

		author := source.Sender.Username
		if cfg.UseRealName && source.Sender.DisplayName != "" {
			author = source.Sender.DisplayName
		}
		msg.Attachments = append(msg.Attachments, domain.Attachment{
			Kind: domain.AttachmentQuote,
			Quote: &domain.QuotedMessage{
				AuthorUsername: source.Sender.Username,
				AuthorName:     author,
				Text:           truncate(source.Content, quoteTextLimit),
				AvatarURL:      s.avatars.AvatarURL(ctx, source.Sender.Username),
				RoomID:         room.ID,
				MessageID:      source.ID,
			},
		})
		appended++
	}
	return msg
}

// scan extracts well-formed permalinks in order of appearance.
// Malformed identifiers are dropped here, silently.
func (s *QuoteStage) scan(text string, cfg *settings.Snapshot) []permalink {
	re := s.patternFor(cfg)
	var links []permalink
	for _, match := range re.FindAllStringSubmatch(text, -1) {
		roomID, err := uuid.Parse(match[1])
		if err != nil {
			continue
		}
		messageID, err := uuid.Parse(match[2])
		if err != nil {
			continue
		}
		links = append(links, permalink{roomID: roomID, messageID: messageID})
	}
	return links
}

func (s *QuoteStage) patternFor(cfg *settings.Snapshot) *regexp.Regexp {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.re != nil && s.version == cfg.Version {
		return s.re
	}
	s.re = regexp.MustCompile(
		regexp.QuoteMeta(cfg.SiteURL) + `/room/([0-9a-fA-F-]{36})\?msg=([0-9a-fA-F-]{36})`)
	s.version = cfg.Version
	return s.re
}

func truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit]) + "…"
}
