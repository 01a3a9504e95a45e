package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/churchhub/internal/client/models"
)

// memStore is an in-memory Store with switchable failures. block, when set,
// holds Load until it is closed.
type memStore struct {
	mu      sync.Mutex
	user    *models.User
	loadErr error
	saveErr error
	block   chan struct{}

	loads, saves, clears int
}

func (m *memStore) Load(ctx context.Context) (*models.User, error) {
	if m.block != nil {
		select {
		case <-m.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.user == nil {
		return nil, nil
	}
	cp := *m.user
	return &cp, nil
}

func (m *memStore) Save(_ context.Context, u models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.user = &u
	return nil
}

func (m *memStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
	m.user = nil
	return nil
}

func (m *memStore) stored() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

var errBadCredentials = errors.New("bad credentials")

// fakeIdentity hands out the user itself as the "token" key.
type fakeIdentity struct {
	users     map[string]models.User
	verifyErr error
	registers int
}

func (f *fakeIdentity) Authenticate(_ context.Context, email, password string) (string, error) {
	if _, ok := f.users[email]; !ok || password == "" {
		return "", errBadCredentials
	}
	return email, nil
}

func (f *fakeIdentity) Register(_ context.Context, name, email, _ string) error {
	f.registers++
	f.users[email] = models.User{ID: "new-" + email, Name: name, Email: email, Role: models.RoleMember}
	return nil
}

func (f *fakeIdentity) Verify(token string) (*models.User, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	u := f.users[token]
	return &u, nil
}

var (
	pastorUser = models.User{ID: "4", Name: "Pastor", Email: "pastor@church.com", Role: models.RolePastor,
		Ministries: models.NewMinistrySet(models.MinistryWorship, models.MinistryKids, models.MinistryYouth, models.MinistryAdmin)}
	memberUser = models.User{ID: "1", Name: "Guest User", Email: "guest@church.com", Role: models.RoleMember}
	kidsUser   = models.User{ID: "2", Name: "Kids Ministry", Email: "kids@church.com", Role: models.RoleLeader,
		Ministries: models.NewMinistrySet(models.MinistryKids)}
)

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{users: map[string]models.User{
		pastorUser.Email: pastorUser,
		memberUser.Email: memberUser,
		kidsUser.Email:   kidsUser,
	}}
}
