package repository

import (
	"context"
	"time"

	"github.com/salonflow/booking/backend/internal/domain"
)

func (r *Repository) CreateAccount(account *domain.Account) error {
	query := `
		INSERT INTO accounts (username, password_hash, full_name, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{account.Username, account.PasswordHash, account.FullName, account.Email}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&account.ID, &account.CreatedAt, &account.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAccountByUsername(username string) (*domain.Account, error) {
	query := `
		SELECT id, password_hash, full_name, email, created_at, version
		FROM accounts WHERE username = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	account := &domain.Account{
		Username: username,
	}

	dst := []any{&account.ID, &account.PasswordHash, &account.FullName, &account.Email, &account.CreatedAt, &account.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, err
	}

	return account, nil
}
