// Package guard holds the validation checks of the concurrent group:
// broadcast-mention permission checks and the configurable content
// constraint. These are the only pipeline parts allowed to veto a
// message.
package guard

import (
	"context"
	"regexp"
	"sync"

	"chat-pipeline/contract"
	"chat-pipeline/domain"
	"chat-pipeline/errors"
	"chat-pipeline/pipeline"
)

const (
	TokenMentionAll  = "@all"
	TokenMentionHere = "@here"

	PermissionMentionAll  = "mention-all"
	PermissionMentionHere = "mention-here"
)

// MentionCheck vetoes a message containing a collective-mention token
// when the acting user lacks the matching permission in the room.
// Build one check per mention kind; the two run independently.
type MentionCheck struct {
	kind       errors.VetoKind
	token      string
	permission string
	authz      contract.AuthorizationCheck
}

// NewMentionChecks returns the two mention guards, one for the
// "everyone"-class token and one for the "here"-class token.
func NewMentionChecks(authz contract.AuthorizationCheck) []pipeline.Check {
	return []pipeline.Check{
		&MentionCheck{
			kind:       errors.VetoMentionAll,
			token:      TokenMentionAll,
			permission: PermissionMentionAll,
			authz:      authz,
		},
		&MentionCheck{
			kind:       errors.VetoMentionHere,
			token:      TokenMentionHere,
			permission: PermissionMentionHere,
			authz:      authz,
		},
	}
}

func (c *MentionCheck) Name() string { return "mention-" + c.token }

func (c *MentionCheck) Validate(ctx context.Context, msg domain.Message, run pipeline.Run) error {
	if !containsToken(msg.Content, c.token) {
		return nil
	}
	granted, err := c.authz.HasPermission(ctx, run.Actor, run.Room, c.permission)
	if err != nil {
		// Deny on an unavailable authorization collaborator; a
		// broadcast mention must never slip through unverified.
		return &errors.VetoError{Kind: c.kind, Detail: err.Error()}
	}
	if !granted {
		return &errors.VetoError{Kind: c.kind}
	}
	return nil
}

var tokenRes sync.Map // token -> *regexp.Regexp

// containsToken matches the mention token as a whole word so that
// "@allies" does not trigger the "@all" guard.
func containsToken(text, token string) bool {
	cached, ok := tokenRes.Load(token)
	if !ok {
		cached = regexp.MustCompile(`(^|\W)` + regexp.QuoteMeta(token) + `($|\W)`)
		tokenRes.Store(token, cached)
	}
	return cached.(*regexp.Regexp).MatchString(text)
}
