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

type alertRepository struct {
	db *sql.DB
}

func NewAlertRepository(db *sql.DB) repository.AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, a *domain.Alert) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO alerts (id, tenant_id, type, message, is_read, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.TenantID, a.Type, a.Message, a.IsRead, a.CreatedAt)
	return err
}

func (r *alertRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	a := &domain.Alert{}
	query := `SELECT id, tenant_id, type, message, is_read, created_at FROM alerts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.TenantID, &a.Type, &a.Message, &a.IsRead, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *alertRepository) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `UPDATE alerts SET is_read = TRUE WHERE id = $1`, id)
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

func (r *alertRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Alert, error) {
	query := `SELECT id, tenant_id, type, message, is_read, created_at FROM alerts WHERE tenant_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := rows.Scan(&a.ID, &a.TenantID, &a.Type, &a.Message, &a.IsRead, &a.CreatedAt); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (r *alertRepository) DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM alerts WHERE tenant_id = $1`, tenantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *alertRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM alerts WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *alertRepository) ExistsSince(ctx context.Context, tenantID uuid.UUID, alertType, message string, since time.Time) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM alerts WHERE tenant_id = $1 AND type = $2 AND message = $3 AND created_at >= $4)`
	err := r.db.QueryRowContext(ctx, query, tenantID, alertType, message, since).Scan(&exists)
	return exists, err
}
