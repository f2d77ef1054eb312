package postgres

import (
	"database/sql"

	"rently-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.TenantRepository
	repository.CustomerRepository
	repository.InventoryRepository
	repository.BookingRepository
	repository.RentalRepository
	repository.PaymentRepository
	repository.AnalyticsRepository
	repository.AlertRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		TenantRepository:    NewTenantRepository(db),
		CustomerRepository:  NewCustomerRepository(db),
		InventoryRepository: NewInventoryRepository(db),
		BookingRepository:   NewBookingRepository(db),
		RentalRepository:    NewRentalRepository(db),
		PaymentRepository:   NewPaymentRepository(db),
		AnalyticsRepository: NewAnalyticsRepository(db),
		AlertRepository:     NewAlertRepository(db),
	}
}
