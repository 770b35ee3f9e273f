package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/logger"
)

type CustomerRepository struct {
	db       *sql.DB
	notifier Notifier
}

func NewCustomerRepository(db *sql.DB, notifier Notifier) *CustomerRepository {
	return &CustomerRepository{db: db, notifier: notifier}
}

const customerColumns = `id, full_name, document, document_type_id, email, password_hash, phone, state, avatar_url, created_at, deleted_at`

func (r *CustomerRepository) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	const query = `
INSERT INTO customers (id, full_name, document, document_type_id, email, password_hash, phone, state, avatar_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	if _, err := r.db.ExecContext(
		ctx,
		query,
		customer.ID,
		customer.FullName,
		customer.Document,
		customer.DocumentTypeID,
		customer.Email,
		customer.PasswordHash,
		customer.Phone,
		customer.State,
		customer.AvatarURL,
		customer.CreatedAt,
	); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return domain.Customer{}, fmt.Errorf("%w: %s", domain.ErrConflict, pqErr.Constraint)
		}
		logger.Error("customer repository create failed", err, logger.Fields{
			"customerId": customer.ID,
		})
		return domain.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	return customer, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id string, customer domain.Customer) (domain.Customer, error) {
	const query = `
UPDATE customers
SET full_name = $2,
    document = $3,
    document_type_id = $4,
    email = $5,
    password_hash = $6,
    phone = $7,
    state = $8,
    avatar_url = $9
WHERE id = $1
  AND deleted_at IS NULL`

	result, err := r.db.ExecContext(
		ctx,
		query,
		id,
		customer.FullName,
		customer.Document,
		customer.DocumentTypeID,
		customer.Email,
		customer.PasswordHash,
		customer.Phone,
		customer.State,
		customer.AvatarURL,
	)
	if err != nil {
		logger.Error("customer repository update failed", err, logger.Fields{
			"customerId": id,
		})
		return domain.Customer{}, fmt.Errorf("update customer: %w", err)
	}
	if affected, err := result.RowsAffected(); err != nil {
		return domain.Customer{}, fmt.Errorf("update customer rows affected: %w", err)
	} else if affected == 0 {
		return domain.Customer{}, domain.ErrRecordNotFound
	}

	customer.ID = id
	return customer, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return execLiveDelete(ctx, r.db, "customers", id, false)
}

func (r *CustomerRepository) SoftDelete(ctx context.Context, id string) error {
	if err := execLiveDelete(ctx, r.db, "customers", id, true); err != nil {
		return err
	}
	if r.notifier != nil {
		if customer, err := r.GetByIDIncludingDeleted(ctx, id); err == nil {
			r.notifier.EntityDeleted("customer", customer)
		}
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (domain.Customer, error) {
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1 AND deleted_at IS NULL`, id)
}

func (r *CustomerRepository) GetByIDIncludingDeleted(ctx context.Context, id string) (domain.Customer, error) {
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

func (r *CustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	return r.getMany(ctx, `SELECT `+customerColumns+` FROM customers WHERE deleted_at IS NULL ORDER BY created_at`)
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (domain.Customer, error) {
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1 AND deleted_at IS NULL`, email)
}

func (r *CustomerRepository) GetByPhone(ctx context.Context, phone string) (domain.Customer, error) {
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE phone = $1 AND deleted_at IS NULL`, phone)
}

func (r *CustomerRepository) GetByDocument(ctx context.Context, documentTypeID, document string) (domain.Customer, error) {
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE document_type_id = $1 AND document = $2 AND deleted_at IS NULL`, documentTypeID, document)
}

func (r *CustomerRepository) GetByState(ctx context.Context, state bool) ([]domain.Customer, error) {
	return r.getMany(ctx, `SELECT `+customerColumns+` FROM customers WHERE state = $1 AND deleted_at IS NULL ORDER BY created_at`, state)
}

func (r *CustomerRepository) GetByFullName(ctx context.Context, fullName string) ([]domain.Customer, error) {
	return r.getMany(ctx, `SELECT `+customerColumns+` FROM customers WHERE full_name = $1 AND deleted_at IS NULL ORDER BY created_at`, fullName)
}

func (r *CustomerRepository) getOne(ctx context.Context, query string, args ...any) (domain.Customer, error) {
	var customer domain.Customer
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.FullName,
		&customer.Document,
		&customer.DocumentTypeID,
		&customer.Email,
		&customer.PasswordHash,
		&customer.Phone,
		&customer.State,
		&customer.AvatarURL,
		&customer.CreatedAt,
		&customer.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, domain.ErrRecordNotFound
		}
		return domain.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	return customer, nil
}

func (r *CustomerRepository) getMany(ctx context.Context, query string, args ...any) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.FullName,
			&customer.Document,
			&customer.DocumentTypeID,
			&customer.Email,
			&customer.PasswordHash,
			&customer.Phone,
			&customer.State,
			&customer.AvatarURL,
			&customer.CreatedAt,
			&customer.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

// execLiveDelete removes or soft deletes one live row from the given table.
func execLiveDelete(ctx context.Context, db *sql.DB, table, id string, soft bool) error {
	query := `DELETE FROM ` + table + ` WHERE id = $1 AND deleted_at IS NULL`
	if soft {
		query = `UPDATE ` + table + ` SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	}

	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s rows affected: %w", table, err)
	}
	if affected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}
