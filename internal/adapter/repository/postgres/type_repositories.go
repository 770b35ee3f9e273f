package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/bank-back-office/internal/domain"
)

// Document types and account types share the same shape, so both repositories
// delegate to one table-parameterized helper set.

type DocumentTypeRepository struct {
	db       *sql.DB
	notifier Notifier
}

func NewDocumentTypeRepository(db *sql.DB, notifier Notifier) *DocumentTypeRepository {
	return &DocumentTypeRepository{db: db, notifier: notifier}
}

func (r *DocumentTypeRepository) Create(ctx context.Context, documentType domain.DocumentType) (domain.DocumentType, error) {
	if err := insertType(ctx, r.db, "document_types", documentType.ID, documentType.Name, documentType.State); err != nil {
		return domain.DocumentType{}, err
	}
	return documentType, nil
}

func (r *DocumentTypeRepository) Update(ctx context.Context, id string, documentType domain.DocumentType) (domain.DocumentType, error) {
	if err := updateType(ctx, r.db, "document_types", id, documentType.Name, documentType.State); err != nil {
		return domain.DocumentType{}, err
	}
	documentType.ID = id
	return documentType, nil
}

func (r *DocumentTypeRepository) Delete(ctx context.Context, id string) error {
	return execLiveDelete(ctx, r.db, "document_types", id, false)
}

func (r *DocumentTypeRepository) SoftDelete(ctx context.Context, id string) error {
	if err := execLiveDelete(ctx, r.db, "document_types", id, true); err != nil {
		return err
	}
	if r.notifier != nil {
		if rows, err := selectTypes(ctx, r.db, `SELECT id, name, state, deleted_at FROM document_types WHERE id = $1`, id); err == nil && len(rows) == 1 {
			r.notifier.EntityDeleted("document_type", domain.DocumentType(rows[0]))
		}
	}
	return nil
}

func (r *DocumentTypeRepository) GetByID(ctx context.Context, id string) (domain.DocumentType, error) {
	row, err := selectOneType(ctx, r.db, "document_types", id)
	return domain.DocumentType(row), err
}

func (r *DocumentTypeRepository) GetAll(ctx context.Context) ([]domain.DocumentType, error) {
	rows, err := selectTypes(ctx, r.db, `SELECT id, name, state, deleted_at FROM document_types WHERE deleted_at IS NULL ORDER BY name`)
	return documentTypes(rows), err
}

func (r *DocumentTypeRepository) GetByState(ctx context.Context, state bool) ([]domain.DocumentType, error) {
	rows, err := selectTypes(ctx, r.db, `SELECT id, name, state, deleted_at FROM document_types WHERE state = $1 AND deleted_at IS NULL ORDER BY name`, state)
	return documentTypes(rows), err
}

func (r *DocumentTypeRepository) GetByName(ctx context.Context, name string) ([]domain.DocumentType, error) {
	rows, err := selectTypes(ctx, r.db, `SELECT id, name, state, deleted_at FROM document_types WHERE name = $1 AND deleted_at IS NULL`, name)
	return documentTypes(rows), err
}

type AccountTypeRepository struct {
	db       *sql.DB
	notifier Notifier
}

func NewAccountTypeRepository(db *sql.DB, notifier Notifier) *AccountTypeRepository {
	return &AccountTypeRepository{db: db, notifier: notifier}
}

func (r *AccountTypeRepository) Create(ctx context.Context, accountType domain.AccountType) (domain.AccountType, error) {
	if err := insertType(ctx, r.db, "account_types", accountType.ID, accountType.Name, accountType.State); err != nil {
		return domain.AccountType{}, err
	}
	return accountType, nil
}

func (r *AccountTypeRepository) Update(ctx context.Context, id string, accountType domain.AccountType) (domain.AccountType, error) {
	if err := updateType(ctx, r.db, "account_types", id, accountType.Name, accountType.State); err != nil {
		return domain.AccountType{}, err
	}
	accountType.ID = id
	return accountType, nil
}

func (r *AccountTypeRepository) Delete(ctx context.Context, id string) error {
	return execLiveDelete(ctx, r.db, "account_types", id, false)
}

func (r *AccountTypeRepository) SoftDelete(ctx context.Context, id string) error {
	if err := execLiveDelete(ctx, r.db, "account_types", id, true); err != nil {
		return err
	}
	if r.notifier != nil {
		if rows, err := selectTypes(ctx, r.db, `SELECT id, name, state, deleted_at FROM account_types WHERE id = $1`, id); err == nil && len(rows) == 1 {
			r.notifier.EntityDeleted("account_type", domain.AccountType(rows[0]))
		}
	}
	return nil
}

func (r *AccountTypeRepository) GetByID(ctx context.Context, id string) (domain.AccountType, error) {
	row, err := selectOneType(ctx, r.db, "account_types", id)
	return domain.AccountType(row), err
}

func (r *AccountTypeRepository) GetAll(ctx context.Context) ([]domain.AccountType, error) {
	rows, err := selectTypes(ctx, r.db, `SELECT id, name, state, deleted_at FROM account_types WHERE deleted_at IS NULL ORDER BY name`)
	return accountTypes(rows), err
}

func (r *AccountTypeRepository) GetByState(ctx context.Context, state bool) ([]domain.AccountType, error) {
	rows, err := selectTypes(ctx, r.db, `SELECT id, name, state, deleted_at FROM account_types WHERE state = $1 AND deleted_at IS NULL ORDER BY name`, state)
	return accountTypes(rows), err
}

func (r *AccountTypeRepository) GetByName(ctx context.Context, name string) ([]domain.AccountType, error) {
	rows, err := selectTypes(ctx, r.db, `SELECT id, name, state, deleted_at FROM account_types WHERE name = $1 AND deleted_at IS NULL`, name)
	return accountTypes(rows), err
}

// typeRowOut mirrors domain.DocumentType and domain.AccountType field for
// field so it converts directly to either.
type typeRowOut struct {
	ID        string
	Name      string
	State     bool
	DeletedAt *time.Time
}

func insertType(ctx context.Context, db *sql.DB, table, id, name string, state bool) error {
	query := `INSERT INTO ` + table + ` (id, name, state) VALUES ($1, $2, $3)`
	if _, err := db.ExecContext(ctx, query, id, name, state); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

func updateType(ctx context.Context, db *sql.DB, table, id, name string, state bool) error {
	query := `UPDATE ` + table + ` SET name = $2, state = $3 WHERE id = $1 AND deleted_at IS NULL`
	result, err := db.ExecContext(ctx, query, id, name, state)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s rows affected: %w", table, err)
	}
	if affected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func selectOneType(ctx context.Context, db *sql.DB, table, id string) (typeRowOut, error) {
	query := `SELECT id, name, state, deleted_at FROM ` + table + ` WHERE id = $1 AND deleted_at IS NULL`
	var row typeRowOut
	err := db.QueryRowContext(ctx, query, id).Scan(&row.ID, &row.Name, &row.State, &row.DeletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return typeRowOut{}, domain.ErrRecordNotFound
		}
		return typeRowOut{}, fmt.Errorf("get from %s: %w", table, err)
	}
	return row, nil
}

func selectTypes(ctx context.Context, db *sql.DB, query string, args ...any) ([]typeRowOut, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list types: %w", err)
	}
	defer rows.Close()

	var out []typeRowOut
	for rows.Next() {
		var row typeRowOut
		if err := rows.Scan(&row.ID, &row.Name, &row.State, &row.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan type: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func documentTypes(rows []typeRowOut) []domain.DocumentType {
	out := make([]domain.DocumentType, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.DocumentType(row))
	}
	return out
}

func accountTypes(rows []typeRowOut) []domain.AccountType {
	out := make([]domain.AccountType, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.AccountType(row))
	}
	return out
}
