package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/logger"
)

type TransferRepository struct {
	db       *sql.DB
	notifier Notifier
}

func NewTransferRepository(db *sql.DB, notifier Notifier) *TransferRepository {
	return &TransferRepository{db: db, notifier: notifier}
}

const transferColumns = `id, outcome_account_id, income_account_id, amount, reason, date_time, deleted_at`

func (r *TransferRepository) Create(ctx context.Context, transfer domain.Transfer) (domain.Transfer, error) {
	const query = `
INSERT INTO transfers (id, outcome_account_id, income_account_id, amount, reason, date_time)
VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.ExecContext(
		ctx,
		query,
		transfer.ID,
		transfer.OutcomeAccountID,
		transfer.IncomeAccountID,
		transfer.Amount,
		transfer.Reason,
		transfer.DateTime,
	); err != nil {
		logger.Error("transfer repository create failed", err, logger.Fields{
			"transferId": transfer.ID,
		})
		return domain.Transfer{}, fmt.Errorf("create transfer: %w", err)
	}

	return transfer, nil
}

func (r *TransferRepository) Update(ctx context.Context, id string, transfer domain.Transfer) (domain.Transfer, error) {
	const query = `
UPDATE transfers
SET outcome_account_id = $2,
    income_account_id = $3,
    amount = $4,
    reason = $5,
    date_time = $6
WHERE id = $1
  AND deleted_at IS NULL`

	result, err := r.db.ExecContext(
		ctx,
		query,
		id,
		transfer.OutcomeAccountID,
		transfer.IncomeAccountID,
		transfer.Amount,
		transfer.Reason,
		transfer.DateTime,
	)
	if err != nil {
		return domain.Transfer{}, fmt.Errorf("update transfer: %w", err)
	}
	if affected, err := result.RowsAffected(); err != nil {
		return domain.Transfer{}, fmt.Errorf("update transfer rows affected: %w", err)
	} else if affected == 0 {
		return domain.Transfer{}, domain.ErrRecordNotFound
	}

	transfer.ID = id
	return transfer, nil
}

func (r *TransferRepository) Delete(ctx context.Context, id string) error {
	return execLiveDelete(ctx, r.db, "transfers", id, false)
}

func (r *TransferRepository) SoftDelete(ctx context.Context, id string) error {
	if err := execLiveDelete(ctx, r.db, "transfers", id, true); err != nil {
		return err
	}
	if r.notifier != nil {
		if transfer, err := r.getOne(ctx, `SELECT `+transferColumns+` FROM transfers WHERE id = $1`, id); err == nil {
			r.notifier.EntityDeleted("transfer", transfer)
		}
	}
	return nil
}

func (r *TransferRepository) GetByID(ctx context.Context, id string) (domain.Transfer, error) {
	return r.getOne(ctx, `SELECT `+transferColumns+` FROM transfers WHERE id = $1 AND deleted_at IS NULL`, id)
}

func (r *TransferRepository) GetAll(ctx context.Context) ([]domain.Transfer, error) {
	return r.getMany(ctx, `SELECT `+transferColumns+` FROM transfers WHERE deleted_at IS NULL ORDER BY date_time`)
}

func (r *TransferRepository) GetOutcomeByDateRange(ctx context.Context, accountID string, start, end time.Time) ([]domain.Transfer, error) {
	const query = `
SELECT ` + transferColumns + `
FROM transfers
WHERE outcome_account_id = $1
  AND date_time >= $2
  AND date_time <= $3
  AND deleted_at IS NULL
ORDER BY date_time`
	return r.getMany(ctx, query, accountID, start, end)
}

func (r *TransferRepository) GetIncomeByDateRange(ctx context.Context, accountID string, start, end time.Time) ([]domain.Transfer, error) {
	const query = `
SELECT ` + transferColumns + `
FROM transfers
WHERE income_account_id = $1
  AND date_time >= $2
  AND date_time <= $3
  AND deleted_at IS NULL
ORDER BY date_time`
	return r.getMany(ctx, query, accountID, start, end)
}

func (r *TransferRepository) getOne(ctx context.Context, query string, args ...any) (domain.Transfer, error) {
	var transfer domain.Transfer
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&transfer.ID,
		&transfer.OutcomeAccountID,
		&transfer.IncomeAccountID,
		&transfer.Amount,
		&transfer.Reason,
		&transfer.DateTime,
		&transfer.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Transfer{}, domain.ErrRecordNotFound
		}
		return domain.Transfer{}, fmt.Errorf("get transfer: %w", err)
	}
	return transfer, nil
}

func (r *TransferRepository) getMany(ctx context.Context, query string, args ...any) ([]domain.Transfer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var transfers []domain.Transfer
	for rows.Next() {
		var transfer domain.Transfer
		if err := rows.Scan(
			&transfer.ID,
			&transfer.OutcomeAccountID,
			&transfer.IncomeAccountID,
			&transfer.Amount,
			&transfer.Reason,
			&transfer.DateTime,
			&transfer.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		transfers = append(transfers, transfer)
	}
	return transfers, rows.Err()
}
