package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/churchhub/internal/client/models"
	"github.com/dmitrijs2005/churchhub/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/churchhub/internal/common"
)

// ErrInvalidCredentials is returned for an empty email or password and for
// a wrong password on a registered account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// MockProvider is a local identity provider. It is safe for concurrent use
// as long as the accounts repository is.
type MockProvider struct {
	accounts accounts.Repository
	secret   []byte
	ttl      time.Duration
}

func NewMockProvider(repo accounts.Repository, secret []byte, ttl time.Duration) *MockProvider {
	return &MockProvider{accounts: repo, secret: secret, ttl: ttl}
}

// keywordUsers are matched in order against the email address.
var keywordUsers = []struct {
	keyword string
	user    models.User
}{
	{"guest", models.User{ID: "1", Name: "Guest User", Role: models.RoleMember}},
	{"kids", models.User{ID: "2", Name: "Kids Ministry", Role: models.RoleLeader,
		Ministries: models.NewMinistrySet(models.MinistryKids)}},
	{"worship", models.User{ID: "3", Name: "Worship Ministry", Role: models.RoleLeader,
		Ministries: models.NewMinistrySet(models.MinistryWorship)}},
	{"pastor", models.User{ID: "4", Name: "Pastor", Role: models.RolePastor,
		Ministries: models.NewMinistrySet(models.MinistryWorship, models.MinistryKids, models.MinistryYouth, models.MinistryAdmin)}},
}

// demoUser picks the canned profile for email; unmatched addresses become
// the guest.
func demoUser(email string) models.User {
	u := keywordUsers[0].user
	for _, k := range keywordUsers {
		if strings.Contains(email, k.keyword) {
			u = k.user
			break
		}
	}
	u.Email = email
	return u
}

// Authenticate signs the user in and returns an ID token.
func (p *MockProvider) Authenticate(ctx context.Context, email, password string) (string, error) {
	email = common.NormalizeEmail(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return "", ErrInvalidCredentials
	}

	var user models.User
	acc, err := p.accounts.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)) != nil {
			return "", ErrInvalidCredentials
		}
		user = models.User{ID: acc.ID, Name: acc.Name, Email: acc.Email, Role: models.RoleMember}
	case errors.Is(err, common.ErrNotFound):
		user = demoUser(email)
	default:
		return "", fmt.Errorf("lookup account: %w", err)
	}

	return GenerateToken(user, p.secret, p.ttl)
}

// Register creates a member account with no ministries.
func (p *MockProvider) Register(ctx context.Context, name, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	acc := &models.Account{
		ID:           uuid.NewString(),
		Email:        common.NormalizeEmail(email),
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
	}
	return p.accounts.Create(ctx, acc)
}

// Verify validates an ID token issued by this provider.
func (p *MockProvider) Verify(token string) (*models.User, error) {
	return ParseToken(token, p.secret)
}
