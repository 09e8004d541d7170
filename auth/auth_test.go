package auth

import (
	"context"
	"testing"
	"time"

	"chat-pipeline/domain"
	"chat-pipeline/settings"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	req := require.New(t)
	service := NewTokenService([]byte("test-secret"), time.Hour)

	user := domain.ActingUser{
		ID:          "u1",
		Username:    "alice",
		DisplayName: "Alice A.",
		Locale:      "fr",
	}
	token, err := service.Generate(user, []string{"mention-all"})
	req.NoError(err)
	req.NotEmpty(token)

	parsed, permissions, err := service.Validate(token)
	req.NoError(err)
	req.Equal(user, parsed)
	req.Equal([]string{"mention-all"}, permissions)
}

func TestTokenService_RejectsBadTokens(t *testing.T) {
	req := require.New(t)
	service := NewTokenService([]byte("test-secret"), time.Hour)
	other := NewTokenService([]byte("other-secret"), time.Hour)

	token, err := other.Generate(domain.ActingUser{ID: "u1", Username: "alice"}, nil)
	req.NoError(err)

	_, _, err = service.Validate(token)
	req.Error(err, "wrong signing key must be rejected")

	_, _, err = service.Validate("not-a-token")
	req.Error(err)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	req := require.New(t)
	service := NewTokenService([]byte("test-secret"), -time.Minute)

	token, err := service.Generate(domain.ActingUser{ID: "u1", Username: "alice"}, nil)
	req.NoError(err)

	_, _, err = service.Validate(token)
	req.Error(err)
}

func TestAuthorizer_CanAccess(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	authorizer := NewAuthorizer()

	public := domain.Room{ID: uuid.New(), IsPublic: true}
	private := domain.Room{ID: uuid.New()}
	alice := domain.ActingUser{ID: "u1", Username: "alice"}
	bob := domain.ActingUser{ID: "u2", Username: "bob"}

	authorizer.AddMember(private.ID, alice.ID)

	tests := []struct {
		name    string
		room    domain.Room
		user    domain.ActingUser
		allowed bool
	}{
		{"Public room is open to anyone", public, bob, true},
		{"Private room admits members", private, alice, true},
		{"Private room rejects non-members", private, bob, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := authorizer.CanAccess(ctx, tt.room, tt.user)
			req.NoError(err)
			req.Equal(tt.allowed, allowed, tt.name)
		})
	}
}

func TestAuthorizer_GrantAndRevoke(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	authorizer := NewAuthorizer()
	room := domain.Room{ID: uuid.New()}
	alice := domain.ActingUser{ID: "u1"}

	granted, err := authorizer.HasPermission(ctx, alice, room, "mention-all")
	req.NoError(err)
	req.False(granted)

	authorizer.Grant(alice.ID, "mention-all", "mention-here")
	granted, err = authorizer.HasPermission(ctx, alice, room, "mention-all")
	req.NoError(err)
	req.True(granted)

	authorizer.Revoke(alice.ID, "mention-all")
	granted, err = authorizer.HasPermission(ctx, alice, room, "mention-all")
	req.NoError(err)
	req.False(granted)

	granted, err = authorizer.HasPermission(ctx, alice, room, "mention-here")
	req.NoError(err)
	req.True(granted)
}

func TestSiteAvatarResolver(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	store := settings.NewStore(&settings.Snapshot{SiteURL: "https://chat.example.com"})
	resolver := NewSiteAvatarResolver(store)

	req.Equal("https://chat.example.com/avatar/alice", resolver.AvatarURL(ctx, "alice"))
	req.Equal("https://chat.example.com/avatar/a%2Fb", resolver.AvatarURL(ctx, "a/b"))
	req.Empty(resolver.AvatarURL(ctx, ""))

	store.Replace(&settings.Snapshot{})
	req.Empty(resolver.AvatarURL(ctx, "alice"))
}
