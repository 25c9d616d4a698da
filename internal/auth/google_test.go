// File: internal/auth/google_test.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wflore19/portfolio-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

func providerTestConfig() *config.Config {
	return &config.Config{
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		GoogleRedirectURI:  "http://localhost:8080/oauth/callback",
		OAuthHTTPTimeout:   5 * time.Second,
	}
}

func TestGoogleProvider_AuthURL(t *testing.T) {
	p := NewGoogleProvider(providerTestConfig(), zap.NewNop())

	u := p.AuthURL()
	assert.Contains(t, u, "client_id=client-id")
	assert.Contains(t, u, "access_type=offline")
	assert.Contains(t, u, "prompt=consent")
	assert.Contains(t, u, "userinfo.profile")
	assert.Contains(t, u, "userinfo.email")
	assert.Contains(t, u, "oauth%2Fcallback")
}

func TestGoogleProvider_ExchangeCode(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.FormValue("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at-123","refresh_token":"rt-456","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenServer.Close()

	p := NewGoogleProvider(providerTestConfig(), zap.NewNop())
	p.oauthCfg.Endpoint = oauth2.Endpoint{
		TokenURL:  tokenServer.URL,
		AuthStyle: oauth2.AuthStyleInParams,
	}

	tokens, err := p.ExchangeCode(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "at-123", tokens.AccessToken)
	assert.Equal(t, "rt-456", tokens.RefreshToken)

	_, err = p.ExchangeCode(context.Background(), "bad-code")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExchangeFailed))
}

func TestGoogleProvider_ExchangeCodeWithoutRefreshToken(t *testing.T) {
	// Google omits the refresh token on repeat consents; an empty value is
	// absence, not an error.
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at-123","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenServer.Close()

	p := NewGoogleProvider(providerTestConfig(), zap.NewNop())
	p.oauthCfg.Endpoint = oauth2.Endpoint{
		TokenURL:  tokenServer.URL,
		AuthStyle: oauth2.AuthStyleInParams,
	}

	tokens, err := p.ExchangeCode(context.Background(), "any-code")
	require.NoError(t, err)
	assert.Equal(t, "at-123", tokens.AccessToken)
	assert.Empty(t, tokens.RefreshToken)
}

func TestGoogleProvider_FetchProfile(t *testing.T) {
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "google-subject-123",
			"email": "ada@example.com",
			"verified_email": true,
			"given_name": "Ada",
			"family_name": "L",
			"picture": "https://lh3.googleusercontent.com/a/photo.jpg"
		}`))
	}))
	defer apiServer.Close()

	p := NewGoogleProvider(providerTestConfig(), zap.NewNop())
	p.userinfoEndpoint = apiServer.URL

	profile, err := p.FetchProfile(context.Background(), Tokens{AccessToken: "at-123"})
	require.NoError(t, err)
	assert.Equal(t, "google-subject-123", profile.ProviderID)
	assert.Equal(t, "ada@example.com", profile.Email)
	assert.True(t, profile.EmailVerified)
	assert.Equal(t, "Ada", profile.GivenName)
	assert.Equal(t, "L", profile.FamilyName)
	assert.Equal(t, "https://lh3.googleusercontent.com/a/photo.jpg", profile.AvatarSourceURL)
}

func TestGoogleProvider_FetchProfileUpstreamError(t *testing.T) {
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":401,"message":"Invalid Credentials"}}`, http.StatusUnauthorized)
	}))
	defer apiServer.Close()

	p := NewGoogleProvider(providerTestConfig(), zap.NewNop())
	p.userinfoEndpoint = apiServer.URL

	_, err := p.FetchProfile(context.Background(), Tokens{AccessToken: "stale"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProfileFetchFailed))
}
