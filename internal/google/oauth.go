package google

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	gmail "google.golang.org/api/gmail/v1"
)

// Credentials holds the OAuth2 application credentials and the
// long-lived refresh token for the delegated account.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// OAuthConfig returns the OAuth2 configuration covering the scopes the
// server needs: Gmail read/modify/send and Calendar event access.
func OAuthConfig(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes: []string{
			gmail.GmailModifyScope,
			calendar.CalendarEventsScope,
		},
	}
}

// NewHTTPClient returns an HTTP client that authenticates requests with
// access tokens minted from the refresh token. The seed token is
// pre-expired so the first request triggers a refresh; the token source
// caches and reuses access tokens after that.
func NewHTTPClient(ctx context.Context, creds Credentials) *http.Client {
	conf := OAuthConfig(creds.ClientID, creds.ClientSecret)
	seed := &oauth2.Token{
		RefreshToken: creds.RefreshToken,
		Expiry:       time.Unix(1, 0),
	}
	return oauth2.NewClient(ctx, conf.TokenSource(ctx, seed))
}
