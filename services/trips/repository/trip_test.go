package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danapr/tumpangan/internal/pkg/apperrors"
	"github.com/danapr/tumpangan/internal/pkg/models"
)

func setupTripRepoTest(t *testing.T) (*TripRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := &TripRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func tripRowColumns() []string {
	return []string{
		"id", "driver_id", "origin", "destination", "distance", "duration", "steps",
		"start_time", "status", "available_seats", "price_per_seat",
		"vehicle_info", "passengers", "version", "created_at", "updated_at",
	}
}

func addTripRow(rows *sqlmock.Rows, tripID, driverID uuid.UUID, status models.TripStatus, version int64, passengers string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		tripID, driverID,
		[]byte(`{"latitude":-6.2088,"longitude":106.8456,"address":"Jakarta"}`),
		[]byte(`{"latitude":-6.9175,"longitude":107.6191,"address":"Bandung"}`),
		[]byte(`{"value":150000,"text":"150 km"}`),
		[]byte(`{"value":10800,"text":"3 hours"}`),
		[]byte(`[]`),
		now.Add(24*time.Hour), status, 4, int64(75000),
		sql.NullString{String: `{"car_plate":"B 1234 XYZ","car_model":"Toyota Avanza","seats":6}`, Valid: true},
		[]byte(passengers), version, now, now,
	)
}

func TestTripRepo_Get(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	tripID := uuid.New()
	driverID := uuid.New()

	rows := addTripRow(sqlmock.NewRows(tripRowColumns()), tripID, driverID, models.TripStatusScheduled, 1, `[]`)
	mock.ExpectQuery("^SELECT (.+) FROM trips WHERE id").
		WithArgs(tripID).
		WillReturnRows(rows)

	trip, err := repo.Get(context.Background(), tripID)

	assert.NoError(t, err)
	require.NotNil(t, trip)
	assert.Equal(t, tripID, trip.ID)
	assert.Equal(t, driverID, trip.DriverID)
	assert.Equal(t, "Jakarta", trip.Origin.Address)
	assert.Equal(t, models.TripStatusScheduled, trip.Status)
	require.NotNil(t, trip.VehicleInfo)
	assert.Equal(t, 6, trip.VehicleInfo.Seats)
	assert.Empty(t, trip.Passengers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_Get_NotFound(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	tripID := uuid.New()
	mock.ExpectQuery("^SELECT (.+) FROM trips WHERE id").
		WithArgs(tripID).
		WillReturnError(sql.ErrNoRows)

	trip, err := repo.Get(context.Background(), tripID)

	assert.Nil(t, trip)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_Get_UnmarshalsPassengers(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	tripID := uuid.New()
	passengerID := uuid.New()
	passengers := `[{"passenger_id":"` + passengerID.String() + `","seats":2,"status":"confirmed","reserved_at":"2026-08-01T10:00:00Z"}]`

	rows := addTripRow(sqlmock.NewRows(tripRowColumns()), tripID, uuid.New(), models.TripStatusScheduled, 3, passengers)
	mock.ExpectQuery("^SELECT (.+) FROM trips WHERE id").
		WithArgs(tripID).
		WillReturnRows(rows)

	trip, err := repo.Get(context.Background(), tripID)

	assert.NoError(t, err)
	require.Len(t, trip.Passengers, 1)
	assert.Equal(t, passengerID, trip.Passengers[0].PassengerID)
	assert.Equal(t, 2, trip.Passengers[0].Seats)
	assert.Equal(t, int64(3), trip.Version)
	assert.Equal(t, 2, trip.BookedSeats())
}

func TestTripRepo_Create(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	now := time.Now().UTC()
	trip := &models.Trip{
		ID:             uuid.New(),
		DriverID:       uuid.New(),
		Origin:         models.Point{Latitude: -6.2088, Longitude: 106.8456, Address: "Jakarta"},
		Destination:    models.Point{Latitude: -6.9175, Longitude: 107.6191, Address: "Bandung"},
		StartTime:      now.Add(24 * time.Hour),
		Status:         models.TripStatusScheduled,
		AvailableSeats: 4,
		PricePerSeat:   75000,
		Passengers:     []models.PassengerInfo{},
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	mock.ExpectExec("^INSERT INTO trips").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), trip)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_Delete(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	tripID := uuid.New()
	mock.ExpectExec("^DELETE FROM trips WHERE id").
		WithArgs(tripID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), tripID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	tripID := uuid.New()
	mock.ExpectExec("^DELETE FROM trips WHERE id").
		WithArgs(tripID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), tripID)

	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestTripRepo_AtomicUpdate_Success(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	tripID := uuid.New()
	rows := addTripRow(sqlmock.NewRows(tripRowColumns()), tripID, uuid.New(), models.TripStatusScheduled, 1, `[]`)
	mock.ExpectQuery("^SELECT (.+) FROM trips WHERE id").
		WithArgs(tripID).
		WillReturnRows(rows)
	mock.ExpectExec("^UPDATE trips SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	passengerID := uuid.New()
	trip, err := repo.AtomicUpdate(context.Background(), tripID, func(trip *models.Trip) error {
		trip.Passengers = append(trip.Passengers, models.PassengerInfo{
			PassengerID: passengerID,
			Seats:       2,
			Status:      models.PassengerStatusConfirmed,
			ReservedAt:  time.Now().UTC(),
		})
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), trip.Version)
	assert.Equal(t, 2, trip.BookedSeats())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_AtomicUpdate_VersionConflict(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	tripID := uuid.New()
	rows := addTripRow(sqlmock.NewRows(tripRowColumns()), tripID, uuid.New(), models.TripStatusScheduled, 1, `[]`)
	mock.ExpectQuery("^SELECT (.+) FROM trips WHERE id").
		WithArgs(tripID).
		WillReturnRows(rows)
	// Another writer bumped the version in between, so zero rows match
	mock.ExpectExec("^UPDATE trips SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	trip, err := repo.AtomicUpdate(context.Background(), tripID, func(trip *models.Trip) error {
		trip.PricePerSeat = 90000
		return nil
	})

	assert.Nil(t, trip)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_AtomicUpdate_MutatorErrorSkipsWrite(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	tripID := uuid.New()
	rows := addTripRow(sqlmock.NewRows(tripRowColumns()), tripID, uuid.New(), models.TripStatusScheduled, 1, `[]`)
	mock.ExpectQuery("^SELECT (.+) FROM trips WHERE id").
		WithArgs(tripID).
		WillReturnRows(rows)

	wantErr := apperrors.Capacity("trip has 0 seats remaining")
	trip, err := repo.AtomicUpdate(context.Background(), tripID, func(*models.Trip) error {
		return wantErr
	})

	assert.Nil(t, trip)
	assert.True(t, errors.Is(err, wantErr))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_Find_ByDriver(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	driverID := uuid.New()
	rows := addTripRow(sqlmock.NewRows(tripRowColumns()), uuid.New(), driverID, models.TripStatusScheduled, 1, `[]`)

	mock.ExpectQuery("^SELECT (.+) FROM trips WHERE driver_id (.+) ORDER BY start_time DESC").
		WithArgs(driverID).
		WillReturnRows(rows)

	trips, err := repo.Find(context.Background(), models.TripFilter{
		DriverID: &driverID,
		SortDesc: true,
	})

	assert.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, driverID, trips[0].DriverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_Find_ByPassengerUsesJSONBContainment(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	passengerID := uuid.New()
	rows := addTripRow(sqlmock.NewRows(tripRowColumns()), uuid.New(), uuid.New(), models.TripStatusCompleted, 2,
		`[{"passenger_id":"`+passengerID.String()+`","seats":1,"status":"cancelled","reserved_at":"2026-08-01T10:00:00Z"}]`)

	mock.ExpectQuery("jsonb_build_object\\('passenger_id'").
		WithArgs(passengerID.String()).
		WillReturnRows(rows)

	trips, err := repo.Find(context.Background(), models.TripFilter{PassengerID: &passengerID})

	assert.NoError(t, err)
	require.Len(t, trips, 1)
	// Cancelled reservations still show up in the passenger's history
	assert.Equal(t, models.PassengerStatusCancelled, trips[0].Passengers[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_GetMany_EmptyInput(t *testing.T) {
	repo, _, cleanup := setupTripRepoTest(t)
	defer cleanup()

	trips, err := repo.GetMany(context.Background(), nil)

	assert.NoError(t, err)
	assert.Nil(t, trips)
}
