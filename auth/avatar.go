package auth

import (
	"context"
	"net/url"

	"chat-pipeline/settings"
)

// SiteAvatarResolver builds avatar URLs from the deployment's site
// base URL. Best-effort contract: an empty result is a valid answer
// and never an error.
type SiteAvatarResolver struct {
	store *settings.Store
}

func NewSiteAvatarResolver(store *settings.Store) *SiteAvatarResolver {
	return &SiteAvatarResolver{store: store}
}

func (r *SiteAvatarResolver) AvatarURL(_ context.Context, username string) string {
	siteURL := r.store.Current().SiteURL
	if siteURL == "" || username == "" {
		return ""
	}
	return siteURL + "/avatar/" + url.PathEscape(username)
}
