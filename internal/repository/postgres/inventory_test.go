package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"rently-backend/internal/domain"
	"rently-backend/internal/repository"
	"rently-backend/internal/repository/postgres"
)

func TestInventoryRepository_ReserveIfAvailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewInventoryRepository(db)
	ctx := context.Background()
	itemID := uuid.New()
	tenantID := uuid.New()

	t.Run("Wins", func(t *testing.T) {
		mock.ExpectExec("UPDATE inventory_items SET status").
			WithArgs(domain.ItemStatusReserved, sqlmock.AnyArg(), itemID, tenantID, domain.ItemStatusReserved, domain.ItemStatusRented).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.ReserveIfAvailable(ctx, itemID, tenantID))
	})

	t.Run("AlreadyTaken", func(t *testing.T) {
		mock.ExpectExec("UPDATE inventory_items SET status").
			WithArgs(domain.ItemStatusReserved, sqlmock.AnyArg(), itemID, tenantID, domain.ItemStatusReserved, domain.ItemStatusRented).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.ReserveIfAvailable(ctx, itemID, tenantID)
		assert.ErrorIs(t, err, repository.ErrConflict)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewInventoryRepository(db)
	ctx := context.Background()
	itemID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE inventory_items SET status").
			WithArgs(domain.ItemStatusAvailable, sqlmock.AnyArg(), itemID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(ctx, itemID, domain.ItemStatusAvailable))
	})

	t.Run("UnknownItem", func(t *testing.T) {
		mock.ExpectExec("UPDATE inventory_items SET status").
			WithArgs(domain.ItemStatusAvailable, sqlmock.AnyArg(), itemID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, itemID, domain.ItemStatusAvailable)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestInventoryRepository_IncrementTimesRented(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewInventoryRepository(db)
	ctx := context.Background()
	itemID := uuid.New()

	mock.ExpectExec("UPDATE inventory_items SET times_rented = times_rented \\+ 1").
		WithArgs(sqlmock.AnyArg(), itemID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.IncrementTimesRented(ctx, itemID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewInventoryRepository(db)
	ctx := context.Background()
	itemID := uuid.New()

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM inventory_items WHERE id = \\$1").
			WithArgs(itemID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, itemID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
