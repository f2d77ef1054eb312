package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"rently-backend/internal/domain"
	"rently-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, tenant_id, full_name, email, phone, address, id_document_url, has_unpaid_dues, created_on`

func scanCustomer(row interface{ Scan(...any) error }) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := row.Scan(&c.ID, &c.TenantID, &c.FullName, &c.Email, &c.Phone, &c.Address, &c.IDDocumentURL, &c.HasUnpaidDues, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedOn = time.Now().UTC()
	query := `INSERT INTO customers (id, tenant_id, full_name, email, phone, address, id_document_url, has_unpaid_dues, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.TenantID, c.FullName, c.Email, c.Phone, c.Address, c.IDDocumentURL, c.HasUnpaidDues, c.CreatedOn)
	return err
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return scanCustomer(r.db.QueryRowContext(ctx, query, id))
}

func (r *customerRepository) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE tenant_id = $1 AND lower(email) = lower($2)`
	return scanCustomer(r.db.QueryRowContext(ctx, query, tenantID, email))
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET full_name=$1, email=$2, phone=$3, address=$4, id_document_url=$5, has_unpaid_dues=$6 WHERE id=$7`
	result, err := r.db.ExecContext(ctx, query, c.FullName, c.Email, c.Phone, c.Address, c.IDDocumentURL, c.HasUnpaidDues, c.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *customerRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE tenant_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.TenantID, &c.FullName, &c.Email, &c.Phone, &c.Address, &c.IDDocumentURL, &c.HasUnpaidDues, &c.CreatedOn); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
