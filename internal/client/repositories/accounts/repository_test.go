package accounts

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/churchhub/internal/client/models"
	"github.com/dmitrijs2005/churchhub/internal/client/storage"
	"github.com/dmitrijs2005/churchhub/internal/common"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "church.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCreateAndGetByEmail(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	acc := &models.Account{ID: "a-1", Email: "  Maria@Church.com ", Name: "Maria", PasswordHash: []byte("hash")}
	require.NoError(t, r.Create(ctx, acc))

	got, err := r.GetByEmail(ctx, "maria@church.com")
	require.NoError(t, err)
	assert.Equal(t, "a-1", got.ID)
	assert.Equal(t, "maria@church.com", got.Email)
	assert.Equal(t, "Maria", got.Name)
	assert.Equal(t, []byte("hash"), got.PasswordHash)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.Account{ID: "a-1", Email: "joao@church.com", Name: "João", PasswordHash: []byte("x")}))
	err := r.Create(ctx, &models.Account{ID: "a-2", Email: "JOAO@church.com", Name: "João", PasswordHash: []byte("y")})

	require.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestGetByEmail_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByEmail(context.Background(), "nobody@church.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}
