// Package accounts persists self-registered logins in the local database.
//
// Emails are stored normalized (see common.NormalizeEmail) and are unique;
// creating a second account for the same address fails with
// common.ErrAlreadyExists. Lookups of unknown emails return
// common.ErrNotFound.
//
// Typical Usage
//
//	repo := accounts.NewSQLiteRepository(db)
//	_ = repo.Create(ctx, &models.Account{ID: id, Email: email, Name: name, PasswordHash: hash})
//	acc, err := repo.GetByEmail(ctx, email)
package accounts
