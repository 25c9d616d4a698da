// File: internal/auth/resolver_test.go
package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/wflore19/portfolio-backend/internal/common"
	"github.com/wflore19/portfolio-backend/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testProfile() *RemoteProfile {
	return &RemoteProfile{
		ProviderID:      "google-subject-123",
		Email:           "ada@example.com",
		EmailVerified:   true,
		GivenName:       "Ada",
		FamilyName:      "L",
		AvatarSourceURL: "https://lh3.googleusercontent.com/a/photo.jpg",
	}
}

func TestResolve_FirstContactIsSignup(t *testing.T) {
	users := newFakeDirectory()
	resolver := NewIdentityResolver(users, zap.NewNop())

	res, err := resolver.Resolve(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, ModeSignup, res.Mode)
	require.NotNil(t, res.User)
	assert.Equal(t, "ada@example.com", res.User.Email)
	assert.Equal(t, "Ada", res.User.FirstName)
	assert.Equal(t, "L", res.User.LastName)
	assert.NotZero(t, res.User.ID)
}

func TestResolve_KnownEmailIsLogin(t *testing.T) {
	users := newFakeDirectory()
	existing := users.seed("ada@example.com", "Ada", "L")
	resolver := NewIdentityResolver(users, zap.NewNop())

	res, err := resolver.Resolve(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, ModeLogin, res.Mode)
	assert.Equal(t, existing.ID, res.User.ID)
	assert.Equal(t, 0, users.createCalls, "a returning user must not trigger a create")
}

func TestResolve_SecondCallbackAfterSignupIsLogin(t *testing.T) {
	users := newFakeDirectory()
	resolver := NewIdentityResolver(users, zap.NewNop())
	ctx := context.Background()

	first, err := resolver.Resolve(ctx, testProfile())
	require.NoError(t, err)
	require.Equal(t, ModeSignup, first.Mode)

	second, err := resolver.Resolve(ctx, testProfile())
	require.NoError(t, err)
	assert.Equal(t, ModeLogin, second.Mode)
	assert.Equal(t, first.User.ID, second.User.ID)
}

// racingDirectory simulates losing the insert race: the first lookup misses,
// the create hits the unique index, and the re-read finds the winner's row.
type racingDirectory struct {
	*fakeDirectory
	lookups int
}

func (r *racingDirectory) GetUserByEmail(ctx context.Context, email string) (*shared.User, error) {
	r.lookups++
	if r.lookups == 1 {
		return nil, common.ErrNotFound.WithDetails("User not found with this email.")
	}
	return r.fakeDirectory.GetUserByEmail(ctx, email)
}

func (r *racingDirectory) CreateUser(ctx context.Context, email, firstName, lastName string) (*shared.User, error) {
	return nil, common.ErrConflict.WithDetails("User with this email already exists.")
}

func TestResolve_CreateConflictRecoversAsLogin(t *testing.T) {
	users := newFakeDirectory()
	winner := users.seed("ada@example.com", "Ada", "L")
	resolver := NewIdentityResolver(&racingDirectory{fakeDirectory: users}, zap.NewNop())

	res, err := resolver.Resolve(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, ModeLogin, res.Mode)
	assert.Equal(t, winner.ID, res.User.ID)
}

func TestResolve_LookupFailurePropagates(t *testing.T) {
	users := newFakeDirectory()
	users.lookupErr = errors.New("connection refused")
	resolver := NewIdentityResolver(users, zap.NewNop())

	_, err := resolver.Resolve(context.Background(), testProfile())
	require.Error(t, err)
	assert.Equal(t, 0, users.createCalls)
}
