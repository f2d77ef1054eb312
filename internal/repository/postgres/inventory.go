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

type inventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

const itemColumns = `id, tenant_id, name, category, condition, status, price_cents, times_rented, image_url, created_on, updated_on`

func (r *inventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.Status == "" {
		item.Status = domain.ItemStatusAvailable
	}
	now := time.Now().UTC()
	item.CreatedOn = now
	item.UpdatedOn = now
	query := `INSERT INTO inventory_items (id, tenant_id, name, category, condition, status, price_cents, times_rented, image_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query, item.ID, item.TenantID, item.Name, item.Category, item.Condition, item.Status, item.PriceCents, item.TimesRented, item.ImageURL, item.CreatedOn, item.UpdatedOn)
	return err
}

func (r *inventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{}
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.TenantID, &item.Name, &item.Category, &item.Condition, &item.Status, &item.PriceCents, &item.TimesRented, &item.ImageURL, &item.CreatedOn, &item.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *inventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	query := `UPDATE inventory_items SET name=$1, category=$2, condition=$3, status=$4, price_cents=$5, image_url=$6, updated_on=$7 WHERE id=$8`
	result, err := r.db.ExecContext(ctx, query, item.Name, item.Category, item.Condition, item.Status, item.PriceCents, item.ImageURL, time.Now().UTC(), item.ID)
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

func (r *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
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

func (r *inventoryRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE tenant_id = $1 ORDER BY created_on DESC`
	return r.list(ctx, query, tenantID)
}

func (r *inventoryRepository) ListByStatus(ctx context.Context, status domain.ItemStatus) ([]domain.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE status = $1`
	return r.list(ctx, query, status)
}

func (r *inventoryRepository) list(ctx context.Context, query string, args ...any) ([]domain.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.ID, &item.TenantID, &item.Name, &item.Category, &item.Condition, &item.Status, &item.PriceCents, &item.TimesRented, &item.ImageURL, &item.CreatedOn, &item.UpdatedOn); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ReserveIfAvailable relies on the database to serialize concurrent
// reservations: the row moves to Reserved only if it was not already
// Reserved or Rented, so exactly one of N racing callers gets a row back.
func (r *inventoryRepository) ReserveIfAvailable(ctx context.Context, id, tenantID uuid.UUID) error {
	query := `UPDATE inventory_items SET status=$1, updated_on=$2
	          WHERE id=$3 AND tenant_id=$4 AND status NOT IN ($5, $6)`
	result, err := r.db.ExecContext(ctx, query, domain.ItemStatusReserved, time.Now().UTC(), id, tenantID, domain.ItemStatusReserved, domain.ItemStatusRented)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrConflict
	}
	return nil
}

func (r *inventoryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) error {
	query := `UPDATE inventory_items SET status=$1, updated_on=$2 WHERE id=$3`
	result, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
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

func (r *inventoryRepository) IncrementTimesRented(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE inventory_items SET times_rented = times_rented + 1, updated_on=$1 WHERE id=$2`
	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
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
