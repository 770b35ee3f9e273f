package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/logger"
)

type AccountRepository struct {
	db       *sql.DB
	notifier Notifier
}

func NewAccountRepository(db *sql.DB, notifier Notifier) *AccountRepository {
	return &AccountRepository{db: db, notifier: notifier}
}

const accountColumns = `id, customer_id, account_type_id, balance, state, created_at, deleted_at`

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	const query = `
INSERT INTO accounts (id, customer_id, account_type_id, balance, state, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.CustomerID,
		account.AccountTypeID,
		account.Balance,
		account.State,
		account.CreatedAt,
	); err != nil {
		logger.Error("account repository create failed", err, logger.Fields{
			"accountId": account.ID,
		})
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) Update(ctx context.Context, id string, account domain.Account) (domain.Account, error) {
	const query = `
UPDATE accounts
SET customer_id = $2,
    account_type_id = $3,
    balance = $4,
    state = $5
WHERE id = $1
  AND deleted_at IS NULL`

	result, err := r.db.ExecContext(
		ctx,
		query,
		id,
		account.CustomerID,
		account.AccountTypeID,
		account.Balance,
		account.State,
	)
	if err != nil {
		logger.Error("account repository update failed", err, logger.Fields{
			"accountId": id,
		})
		return domain.Account{}, fmt.Errorf("update account: %w", err)
	}
	if affected, err := result.RowsAffected(); err != nil {
		return domain.Account{}, fmt.Errorf("update account rows affected: %w", err)
	} else if affected == 0 {
		return domain.Account{}, domain.ErrRecordNotFound
	}

	account.ID = id
	return account, nil
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	return execLiveDelete(ctx, r.db, "accounts", id, false)
}

func (r *AccountRepository) SoftDelete(ctx context.Context, id string) error {
	if err := execLiveDelete(ctx, r.db, "accounts", id, true); err != nil {
		return err
	}
	if r.notifier != nil {
		if account, err := r.GetByIDIncludingDeleted(ctx, id); err == nil {
			r.notifier.EntityDeleted("account", account)
		}
	}
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (domain.Account, error) {
	return r.getOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1 AND deleted_at IS NULL`, id)
}

func (r *AccountRepository) GetByIDIncludingDeleted(ctx context.Context, id string) (domain.Account, error) {
	return r.getOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

func (r *AccountRepository) GetAll(ctx context.Context) ([]domain.Account, error) {
	return r.getMany(ctx, `SELECT `+accountColumns+` FROM accounts WHERE deleted_at IS NULL ORDER BY created_at`)
}

func (r *AccountRepository) GetByState(ctx context.Context, state bool) ([]domain.Account, error) {
	return r.getMany(ctx, `SELECT `+accountColumns+` FROM accounts WHERE state = $1 AND deleted_at IS NULL ORDER BY created_at`, state)
}

func (r *AccountRepository) GetByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error) {
	return r.getMany(ctx, `SELECT `+accountColumns+` FROM accounts WHERE customer_id = $1 AND deleted_at IS NULL ORDER BY created_at`, customerID)
}

func (r *AccountRepository) GetByAccountTypeID(ctx context.Context, accountTypeID string) ([]domain.Account, error) {
	return r.getMany(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_type_id = $1 AND deleted_at IS NULL ORDER BY created_at`, accountTypeID)
}

func (r *AccountRepository) getOne(ctx context.Context, query string, args ...any) (domain.Account, error) {
	var account domain.Account
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&account.ID,
		&account.CustomerID,
		&account.AccountTypeID,
		&account.Balance,
		&account.State,
		&account.CreatedAt,
		&account.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrRecordNotFound
		}
		return domain.Account{}, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) getMany(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.ID,
			&account.CustomerID,
			&account.AccountTypeID,
			&account.Balance,
			&account.State,
			&account.CreatedAt,
			&account.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}
