package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/churchhub/internal/client/models"
	"github.com/dmitrijs2005/churchhub/internal/common"
)

type fakeAccounts struct {
	mu      sync.Mutex
	byEmail map[string]models.Account
	getErr  error
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byEmail: map[string]models.Account{}}
}

func (f *fakeAccounts) Create(_ context.Context, acc *models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[acc.Email]; ok {
		return common.ErrAlreadyExists
	}
	f.byEmail[acc.Email] = *acc
	return nil
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	acc, ok := f.byEmail[common.NormalizeEmail(email)]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", email, common.ErrNotFound)
	}
	return &acc, nil
}

func newProvider(repo *fakeAccounts) *MockProvider {
	return NewMockProvider(repo, []byte("test-secret"), time.Hour)
}

func signIn(t *testing.T, p *MockProvider, email, password string) *models.User {
	t.Helper()
	tok, err := p.Authenticate(context.Background(), email, password)
	require.NoError(t, err)
	u, err := p.Verify(tok)
	require.NoError(t, err)
	return u
}

func TestAuthenticate_KeywordUsers(t *testing.T) {
	p := newProvider(newFakeAccounts())

	tests := []struct {
		email      string
		id, name   string
		role       models.Role
		ministries models.MinistrySet
	}{
		{"guest@church.com", "1", "Guest User", models.RoleMember, 0},
		{"kids@church.com", "2", "Kids Ministry", models.RoleLeader, models.NewMinistrySet(models.MinistryKids)},
		{"worship@church.com", "3", "Worship Ministry", models.RoleLeader, models.NewMinistrySet(models.MinistryWorship)},
		{"pastor@church.com", "4", "Pastor", models.RolePastor,
			models.NewMinistrySet(models.MinistryWorship, models.MinistryKids, models.MinistryYouth, models.MinistryAdmin)},
		{"someone@church.com", "1", "Guest User", models.RoleMember, 0},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			u := signIn(t, p, tt.email, "anything")
			assert.Equal(t, tt.id, u.ID)
			assert.Equal(t, tt.name, u.Name)
			assert.Equal(t, tt.email, u.Email)
			assert.Equal(t, tt.role, u.Role)
			assert.Equal(t, tt.ministries, u.Ministries)
		})
	}
}

func TestAuthenticate_EmptyInputs(t *testing.T) {
	p := newProvider(newFakeAccounts())

	_, err := p.Authenticate(context.Background(), "", "pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = p.Authenticate(context.Background(), "guest@church.com", "   ")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterThenAuthenticate(t *testing.T) {
	repo := newFakeAccounts()
	p := newProvider(repo)
	ctx := context.Background()

	require.NoError(t, p.Register(ctx, " Maria ", "Maria@Church.com", "s3cret!"))

	u := signIn(t, p, "maria@church.com", "s3cret!")
	assert.Equal(t, "Maria", u.Name)
	assert.Equal(t, models.RoleMember, u.Role)
	assert.True(t, u.Ministries.Empty())
	assert.NotEqual(t, "1", u.ID)

	_, err := p.Authenticate(ctx, "maria@church.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	err = p.Register(ctx, "Maria", "maria@church.com", "other")
	require.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestAuthenticate_RepositoryFailure(t *testing.T) {
	repo := newFakeAccounts()
	repo.getErr = errors.New("disk on fire")
	p := newProvider(repo)

	_, err := p.Authenticate(context.Background(), "guest@church.com", "pw")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}
