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

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, tenant_id, rental_id, amount_cents, method, status, payment_date, notes, invoice_url`

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now().UTC()
	}
	query := `INSERT INTO payments (id, tenant_id, rental_id, amount_cents, method, status, payment_date, notes, invoice_url)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.TenantID, p.RentalID, p.AmountCents, p.Method, p.Status, p.PaymentDate, p.Notes, p.InvoiceURL)
	return err
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.TenantID, &p.RentalID, &p.AmountCents, &p.Method, &p.Status, &p.PaymentDate, &p.Notes, &p.InvoiceURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments SET amount_cents=$1, method=$2, status=$3, notes=$4, invoice_url=$5 WHERE id=$6`
	result, err := r.db.ExecContext(ctx, query, p.AmountCents, p.Method, p.Status, p.Notes, p.InvoiceURL, p.ID)
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

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
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

func (r *paymentRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE tenant_id = $1 ORDER BY payment_date DESC`
	return r.list(ctx, query, tenantID)
}

func (r *paymentRepository) ListPending(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE status <> $1`
	return r.list(ctx, query, domain.PaymentStatusCompleted)
}

func (r *paymentRepository) list(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.TenantID, &p.RentalID, &p.AmountCents, &p.Method, &p.Status, &p.PaymentDate, &p.Notes, &p.InvoiceURL); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
