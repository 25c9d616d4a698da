// File: internal/auth/google.go
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/wflore19/portfolio-backend/internal/config"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Tokens is the result of the authorization-code exchange. RefreshToken may
// be empty: Google omits it on repeat consents, and an empty value means
// "absent", not failure.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// RemoteProfile is the provider profile consumed during a single callback.
// It is never persisted; the identity resolver and the avatar importer read
// it and it is discarded when the callback completes.
type RemoteProfile struct {
	ProviderID      string
	Email           string
	EmailVerified   bool
	GivenName       string
	FamilyName      string
	AvatarSourceURL string
}

// Provider is the identity-provider surface the callback orchestrator
// sequences: consent URL, code exchange, profile fetch.
type Provider interface {
	AuthURL() string
	ExchangeCode(ctx context.Context, code string) (Tokens, error)
	FetchProfile(ctx context.Context, tokens Tokens) (*RemoteProfile, error)
}

// GoogleProvider implements Provider against Google's OAuth2 endpoints. The
// client credentials live in an explicitly constructed, immutable
// oauth2.Config rather than process-wide state.
type GoogleProvider struct {
	oauthCfg    *oauth2.Config
	httpTimeout time.Duration
	logger      *zap.Logger

	// userinfoEndpoint overrides the Google API base URL in tests.
	userinfoEndpoint string
}

var _ Provider = (*GoogleProvider)(nil)

// NewGoogleProvider creates a provider from application configuration.
func NewGoogleProvider(cfg *config.Config, logger *zap.Logger) *GoogleProvider {
	return &GoogleProvider{
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURI,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.profile",
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: google.Endpoint,
		},
		httpTimeout: cfg.OAuthHTTPTimeout,
		logger:      logger.Named("GoogleProvider"),
	}
}

// AuthURL returns the Google consent-screen URL for the user to log in.
// Offline access with forced consent so a refresh token is issued when
// Google is willing to hand one out.
func (p *GoogleProvider) AuthURL() string {
	return p.oauthCfg.AuthCodeURL("", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// ExchangeCode trades the single-use authorization code for tokens.
func (p *GoogleProvider) ExchangeCode(ctx context.Context, code string) (Tokens, error) {
	ctx, cancel := context.WithTimeout(ctx, p.httpTimeout)
	defer cancel()

	token, err := p.oauthCfg.Exchange(ctx, code)
	if err != nil {
		p.logger.Error("Failed to exchange authorization code", zap.Error(err))
		return Tokens{}, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}

	return Tokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}

// FetchProfile retrieves the remote profile for the given tokens. The token
// source is seeded with both tokens so the transport can refresh a stale
// access token on its own.
func (p *GoogleProvider) FetchProfile(ctx context.Context, tokens Tokens) (*RemoteProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, p.httpTimeout)
	defer cancel()

	source := p.oauthCfg.TokenSource(ctx, &oauth2.Token{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})

	opts := []option.ClientOption{option.WithTokenSource(source)}
	if p.userinfoEndpoint != "" {
		opts = append(opts, option.WithEndpoint(p.userinfoEndpoint))
	}

	svc, err := oauth2api.NewService(ctx, opts...)
	if err != nil {
		p.logger.Error("Failed to build userinfo client", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrProfileFetchFailed, err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		p.logger.Error("Failed to fetch userinfo", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrProfileFetchFailed, err)
	}

	verified := info.VerifiedEmail != nil && *info.VerifiedEmail

	return &RemoteProfile{
		ProviderID:      info.Id,
		Email:           info.Email,
		EmailVerified:   verified,
		GivenName:       info.GivenName,
		FamilyName:      info.FamilyName,
		AvatarSourceURL: info.Picture,
	}, nil
}
