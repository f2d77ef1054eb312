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

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

const analyticsColumns = `id, tenant_id, booking_id, customer_name, category, condition, price_cents, revenue_cents, status, start_date, end_date, logged_at`

func (r *analyticsRepository) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*domain.AnalyticsLog, error) {
	l := &domain.AnalyticsLog{}
	query := `SELECT ` + analyticsColumns + ` FROM analytics_logs WHERE booking_id = $1`
	err := r.db.QueryRowContext(ctx, query, bookingID).Scan(&l.ID, &l.TenantID, &l.BookingID, &l.CustomerName, &l.Category, &l.Condition, &l.PriceCents, &l.RevenueCents, &l.Status, &l.StartDate, &l.EndDate, &l.LoggedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *analyticsRepository) Insert(ctx context.Context, l *domain.AnalyticsLog) error {
	query := `INSERT INTO analytics_logs (tenant_id, booking_id, customer_name, category, condition, price_cents, revenue_cents, status, start_date, end_date, logged_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query, l.TenantID, l.BookingID, l.CustomerName, l.Category, l.Condition, l.PriceCents, l.RevenueCents, l.Status, l.StartDate, l.EndDate, l.LoggedAt).Scan(&l.ID)
}

func (r *analyticsRepository) Update(ctx context.Context, l *domain.AnalyticsLog) error {
	query := `UPDATE analytics_logs SET customer_name=$1, category=$2, condition=$3, price_cents=$4, revenue_cents=$5, status=$6, start_date=$7, end_date=$8, logged_at=$9 WHERE booking_id=$10`
	result, err := r.db.ExecContext(ctx, query, l.CustomerName, l.Category, l.Condition, l.PriceCents, l.RevenueCents, l.Status, l.StartDate, l.EndDate, l.LoggedAt, l.BookingID)
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

func (r *analyticsRepository) Recent(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.AnalyticsLog, error) {
	query := `SELECT ` + analyticsColumns + ` FROM analytics_logs WHERE tenant_id = $1 ORDER BY logged_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, tenantID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.AnalyticsLog
	for rows.Next() {
		var l domain.AnalyticsLog
		if err := rows.Scan(&l.ID, &l.TenantID, &l.BookingID, &l.CustomerName, &l.Category, &l.Condition, &l.PriceCents, &l.RevenueCents, &l.Status, &l.StartDate, &l.EndDate, &l.LoggedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *analyticsRepository) Summary(ctx context.Context, tenantID uuid.UUID) (*domain.AnalyticsSummary, error) {
	s := &domain.AnalyticsSummary{}
	query := `SELECT COALESCE(SUM(revenue_cents), 0),
	                 COUNT(*),
	                 COUNT(*) FILTER (WHERE status = 'Active'),
	                 COUNT(*) FILTER (WHERE status = 'Completed'),
	                 COUNT(*) FILTER (WHERE status = 'Cancelled')
	          FROM analytics_logs WHERE tenant_id = $1`
	err := r.db.QueryRowContext(ctx, query, tenantID).Scan(&s.TotalRevenueCents, &s.TotalBookings, &s.ActiveBookings, &s.CompletedBookings, &s.CancelledBookings)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *analyticsRepository) RevenueTrend(ctx context.Context, tenantID uuid.UUID, since time.Time) ([]domain.TrendPoint, error) {
	query := `SELECT date_trunc('day', logged_at) AS day, SUM(revenue_cents)
	          FROM analytics_logs WHERE tenant_id = $1 AND logged_at >= $2
	          GROUP BY day ORDER BY day ASC`
	return r.trend(ctx, query, tenantID, since)
}

func (r *analyticsRepository) BookingTrend(ctx context.Context, tenantID uuid.UUID, since time.Time) ([]domain.TrendPoint, error) {
	query := `SELECT date_trunc('day', logged_at) AS day, COUNT(*)
	          FROM analytics_logs WHERE tenant_id = $1 AND logged_at >= $2
	          GROUP BY day ORDER BY day ASC`
	return r.trend(ctx, query, tenantID, since)
}

func (r *analyticsRepository) trend(ctx context.Context, query string, tenantID uuid.UUID, since time.Time) ([]domain.TrendPoint, error) {
	rows, err := r.db.QueryContext(ctx, query, tenantID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []domain.TrendPoint
	for rows.Next() {
		var p domain.TrendPoint
		if err := rows.Scan(&p.Date, &p.Value); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
