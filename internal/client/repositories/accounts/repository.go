package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/dmitrijs2005/churchhub/internal/client/models"
	"github.com/dmitrijs2005/churchhub/internal/common"
	"github.com/dmitrijs2005/churchhub/internal/dbx"
)

// Repository stores registered accounts.
type Repository interface {
	// Create inserts a new account; CreatedAt is set by the database.
	Create(ctx context.Context, acc *models.Account) error

	// GetByEmail returns the account registered under email.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, acc *models.Account) error {
	query := `INSERT INTO accounts (id, email, name, password_hash) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, acc.ID, common.NormalizeEmail(acc.Email), acc.Name, acc.PasswordHash)
	if isUniqueViolation(err) {
		return fmt.Errorf("account %s: %w", acc.Email, common.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT id, email, name, password_hash, created_at FROM accounts WHERE email = ?`

	acc := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, common.NormalizeEmail(email)).
		Scan(&acc.ID, &acc.Email, &acc.Name, &acc.PasswordHash, &acc.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", email, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acc, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}
