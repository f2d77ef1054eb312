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

type tenantRepository struct {
	db *sql.DB
}

func NewTenantRepository(db *sql.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

func (r *tenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	query := `INSERT INTO tenants (id, name, category, logo_url, theme_color, contact_email, contact_phone, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, t.ID, t.Name, t.Category, t.LogoURL, t.ThemeColor, t.ContactEmail, t.ContactPhone, time.Now().UTC())
	return err
}

func (r *tenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	t := &domain.Tenant{}
	query := `SELECT id, name, category, logo_url, theme_color, contact_email, contact_phone, created_on
	          FROM tenants WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Category, &t.LogoURL, &t.ThemeColor, &t.ContactEmail, &t.ContactPhone, &t.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tenantRepository) Update(ctx context.Context, t *domain.Tenant) error {
	query := `UPDATE tenants SET name=$1, category=$2, logo_url=$3, theme_color=$4, contact_email=$5, contact_phone=$6 WHERE id=$7`
	result, err := r.db.ExecContext(ctx, query, t.Name, t.Category, t.LogoURL, t.ThemeColor, t.ContactEmail, t.ContactPhone, t.ID)
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
