package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"rently-backend/internal/domain"
	"rently-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, tenant_id, item_id, customer_id, start_date, due_date, return_date, status, price_cents, amount_paid_cents, outstanding_cents`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (tenant_id, item_id, customer_id, start_date, due_date, return_date, status, price_cents, amount_paid_cents, outstanding_cents)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rt.TenantID, rt.ItemID, rt.CustomerID, rt.StartDate, rt.DueDate, rt.ReturnDate, rt.Status, rt.PriceCents, rt.AmountPaidCents, rt.OutstandingCents).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.TenantID, &rt.ItemID, &rt.CustomerID, &rt.StartDate, &rt.DueDate, &rt.ReturnDate, &rt.Status, &rt.PriceCents, &rt.AmountPaidCents, &rt.OutstandingCents)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET start_date=$1, due_date=$2, return_date=$3, status=$4, price_cents=$5, amount_paid_cents=$6, outstanding_cents=$7 WHERE id=$8`
	result, err := r.db.ExecContext(ctx, query, rt.StartDate, rt.DueDate, rt.ReturnDate, rt.Status, rt.PriceCents, rt.AmountPaidCents, rt.OutstandingCents, rt.ID)
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

func (r *rentalRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE tenant_id = $1 ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.TenantID, &rt.ItemID, &rt.CustomerID, &rt.StartDate, &rt.DueDate, &rt.ReturnDate, &rt.Status, &rt.PriceCents, &rt.AmountPaidCents, &rt.OutstandingCents); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
