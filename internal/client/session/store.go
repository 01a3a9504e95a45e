package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/churchhub/internal/client/models"
	"github.com/dmitrijs2005/churchhub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/churchhub/internal/cryptox"
)

// userKey is the metadata key holding the JSON-encoded user.
const userKey = "user"

var sealSalt = []byte("churchhub/session/v1")

// Store persists the single current user.
type Store interface {
	// Load returns (nil, nil) when nothing is stored.
	Load(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, u models.User) error
	Clear(ctx context.Context) error
}

// MetadataStore keeps the user as JSON under the "user" key of the metadata
// repository. A sealed store encrypts the JSON before writing it.
type MetadataStore struct {
	repo metadata.Repository
	key  []byte
}

func NewMetadataStore(repo metadata.Repository) *MetadataStore {
	return &MetadataStore{repo: repo}
}

// NewSealedMetadataStore is NewMetadataStore with the stored value encrypted
// under a key derived from secret. Changing secret makes an existing stored
// user unreadable, which Bootstrap treats as signed out.
func NewSealedMetadataStore(repo metadata.Repository, secret []byte) *MetadataStore {
	return &MetadataStore{repo: repo, key: cryptox.DeriveKey(secret, sealSalt)}
}

func (s *MetadataStore) Load(ctx context.Context) (*models.User, error) {
	data, err := s.repo.Get(ctx, userKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	if s.key != nil {
		if data, err = cryptox.Open(data, s.key); err != nil {
			return nil, fmt.Errorf("unseal stored user: %w", err)
		}
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	return &u, nil
}

func (s *MetadataStore) Save(ctx context.Context, u models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if s.key != nil {
		if data, err = cryptox.Seal(data, s.key); err != nil {
			return fmt.Errorf("seal user: %w", err)
		}
	}
	return s.repo.Set(ctx, userKey, data)
}

func (s *MetadataStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, userKey)
}
