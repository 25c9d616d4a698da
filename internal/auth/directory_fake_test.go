// File: internal/auth/directory_fake_test.go
package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/wflore19/portfolio-backend/internal/common"
	"github.com/wflore19/portfolio-backend/internal/shared"
)

// fakeDirectory is an in-memory shared.Service for tests. Error hooks let
// individual tests script failures without a mocking framework.
type fakeDirectory struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*shared.User

	createErr      error
	lookupErr      error
	avatarPatchErr error

	createCalls      int
	avatarPatchCalls int
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		nextID: 1,
		byID:   make(map[int64]*shared.User),
	}
}

func (f *fakeDirectory) seed(email, firstName, lastName string) *shared.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := &shared.User{
		ID:        f.nextID,
		Email:     strings.ToLower(email),
		FirstName: firstName,
		LastName:  lastName,
	}
	f.byID[u.ID] = u
	f.nextID++
	return u
}

func (f *fakeDirectory) GetUserByID(ctx context.Context, id int64) (*shared.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound.WithDetails("User not found with this ID.")
	}
	copied := *u
	return &copied, nil
}

func (f *fakeDirectory) GetUserByEmail(ctx context.Context, email string) (*shared.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	email = strings.ToLower(email)
	for _, u := range f.byID {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound.WithDetails("User not found with this email.")
}

func (f *fakeDirectory) CreateUser(ctx context.Context, email, firstName, lastName string) (*shared.User, error) {
	f.mu.Lock()
	f.createCalls++
	err := f.createErr
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if existing, lookupErr := f.GetUserByEmail(ctx, email); lookupErr == nil && existing != nil {
		return nil, common.ErrConflict.WithDetails("User with this email already exists.")
	}
	return f.seed(email, firstName, lastName), nil
}

func (f *fakeDirectory) UpdateAvatarURL(ctx context.Context, id int64, avatarURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.avatarPatchCalls++
	if f.avatarPatchErr != nil {
		return f.avatarPatchErr
	}
	u, ok := f.byID[id]
	if !ok {
		return common.ErrNotFound.WithDetails("User not found with this ID.")
	}
	u.AvatarURL = avatarURL
	return nil
}
