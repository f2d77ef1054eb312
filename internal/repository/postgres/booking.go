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

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, tenant_id, customer_id, inventory_item_id, customer_name, customer_email, status, start_date, end_date, created_on`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedOn = time.Now().UTC()
	query := `INSERT INTO bookings (id, tenant_id, customer_id, inventory_item_id, customer_name, customer_email, status, start_date, end_date, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, b.ID, b.TenantID, b.CustomerID, b.InventoryItemID, b.CustomerName, b.CustomerEmail, b.Status, b.StartDate, b.EndDate, b.CreatedOn)
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.TenantID, &b.CustomerID, &b.InventoryItemID, &b.CustomerName, &b.CustomerEmail, &b.Status, &b.StartDate, &b.EndDate, &b.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET customer_name=$1, customer_email=$2, status=$3, start_date=$4, end_date=$5 WHERE id=$6`
	result, err := r.db.ExecContext(ctx, query, b.CustomerName, b.CustomerEmail, b.Status, b.StartDate, b.EndDate, b.ID)
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

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
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

func (r *bookingRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE tenant_id = $1 ORDER BY created_on DESC`
	return r.list(ctx, query, tenantID)
}

func (r *bookingRepository) ListStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE start_date > $1 AND start_date <= $2`
	return r.list(ctx, query, from, to)
}

func (r *bookingRepository) ListEndingBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE end_date > $1 AND end_date <= $2`
	return r.list(ctx, query, from, to)
}

func (r *bookingRepository) list(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.TenantID, &b.CustomerID, &b.InventoryItemID, &b.CustomerName, &b.CustomerEmail, &b.Status, &b.StartDate, &b.EndDate, &b.CreatedOn); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
