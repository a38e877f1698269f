package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/danapr/tumpangan/internal/pkg/apperrors"
	"github.com/danapr/tumpangan/internal/pkg/models"
	"github.com/danapr/tumpangan/services/trips"
)

const tripColumns = `
	id, driver_id, origin, destination, distance, duration, steps,
	start_time, status, available_seats, price_per_seat,
	vehicle_info, passengers, version, created_at, updated_at
`

// TripRepo is the PostgreSQL trip store
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// Create inserts a new trip
func (r *TripRepo) Create(ctx context.Context, trip *models.Trip) error {
	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	origin, destination, distance, duration, steps, vehicleInfo, passengers, err := marshalTripJSON(trip)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(
		ctx,
		query,
		trip.ID,
		trip.DriverID,
		origin,
		destination,
		distance,
		duration,
		steps,
		trip.StartTime,
		trip.Status,
		trip.AvailableSeats,
		trip.PricePerSeat,
		vehicleInfo,
		passengers,
		trip.Version,
		trip.CreatedAt,
		trip.UpdatedAt,
	)
	if err != nil {
		return mapDBError(err, "failed to create trip")
	}

	return nil
}

// Get retrieves a trip by ID
func (r *TripRepo) Get(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, tripID)
	trip, err := scanTrip(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("trip not found")
		}
		return nil, mapDBError(err, "failed to get trip")
	}

	return trip, nil
}

// GetMany retrieves multiple trips by ID. Missing ids are silently skipped.
func (r *TripRepo) GetMany(ctx context.Context, tripIDs []uuid.UUID) ([]*models.Trip, error) {
	if len(tripIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT `+tripColumns+` FROM trips WHERE id IN (?)`, tripIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	query = r.db.Rebind(query)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapDBError(err, "failed to get trips")
	}
	defer rows.Close()

	return collectTrips(rows)
}

// Delete removes a trip record
func (r *TripRepo) Delete(ctx context.Context, tripID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, tripID)
	if err != nil {
		return mapDBError(err, "failed to delete trip")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFound("trip not found")
	}

	return nil
}

// Find queries trips by attribute filter
func (r *TripRepo) Find(ctx context.Context, filter models.TripFilter) ([]*models.Trip, error) {
	var (
		conditions []string
		args       []interface{}
	)

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.DriverID != nil {
		conditions = append(conditions, "driver_id = "+arg(*filter.DriverID))
	}
	if filter.PassengerID != nil {
		// Match any reservation record of this passenger, regardless of status
		conditions = append(conditions,
			"passengers @> jsonb_build_array(jsonb_build_object('passenger_id', "+arg(filter.PassengerID.String())+"::text))")
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = "+arg(*filter.Status))
	}
	if filter.StartAfter != nil {
		conditions = append(conditions, "start_time >= "+arg(*filter.StartAfter))
	}
	if filter.StartBefore != nil {
		conditions = append(conditions, "start_time <= "+arg(*filter.StartBefore))
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, "price_per_seat <= "+arg(*filter.MaxPrice))
	}

	query := `SELECT ` + tripColumns + ` FROM trips`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	// Deterministic ordering: departure time, ties broken by id
	if filter.SortDesc {
		query += " ORDER BY start_time DESC, id DESC"
	} else {
		query += " ORDER BY start_time ASC, id ASC"
	}

	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET " + arg(filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapDBError(err, "failed to find trips")
	}
	defer rows.Close()

	return collectTrips(rows)
}

// AtomicUpdate loads the trip, applies the mutator and persists the result
// guarded by the version column. A concurrent writer that bumped the version
// in between causes a conflict error so callers can retry.
func (r *TripRepo) AtomicUpdate(ctx context.Context, tripID uuid.UUID, mutate trips.Mutator) (*models.Trip, error) {
	trip, err := r.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}

	expectedVersion := trip.Version
	if err := mutate(trip); err != nil {
		return nil, err
	}

	trip.UpdatedAt = time.Now().UTC()

	if trip.Passengers == nil {
		trip.Passengers = []models.PassengerInfo{}
	}
	passengers, err := json.Marshal(trip.Passengers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal passengers: %w", err)
	}

	query := `
		UPDATE trips
		SET start_time = $1, status = $2, available_seats = $3, price_per_seat = $4,
			passengers = $5, version = version + 1, updated_at = $6
		WHERE id = $7 AND version = $8
	`

	res, err := r.db.ExecContext(
		ctx,
		query,
		trip.StartTime,
		trip.Status,
		trip.AvailableSeats,
		trip.PricePerSeat,
		passengers,
		trip.UpdatedAt,
		trip.ID,
		expectedVersion,
	)
	if err != nil {
		return nil, mapDBError(err, "failed to update trip")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.Conflict("trip was modified concurrently")
	}

	trip.Version = expectedVersion + 1
	return trip, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrip(row rowScanner) (*models.Trip, error) {
	trip := &models.Trip{}
	var origin, destination, distance, duration, steps, passengers []byte
	var vehicleInfo sql.NullString

	err := row.Scan(
		&trip.ID,
		&trip.DriverID,
		&origin,
		&destination,
		&distance,
		&duration,
		&steps,
		&trip.StartTime,
		&trip.Status,
		&trip.AvailableSeats,
		&trip.PricePerSeat,
		&vehicleInfo,
		&passengers,
		&trip.Version,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(origin, &trip.Origin); err != nil {
		return nil, fmt.Errorf("invalid origin payload: %w", err)
	}
	if err := json.Unmarshal(destination, &trip.Destination); err != nil {
		return nil, fmt.Errorf("invalid destination payload: %w", err)
	}
	if err := json.Unmarshal(distance, &trip.Distance); err != nil {
		return nil, fmt.Errorf("invalid distance payload: %w", err)
	}
	if err := json.Unmarshal(duration, &trip.Duration); err != nil {
		return nil, fmt.Errorf("invalid duration payload: %w", err)
	}
	if err := json.Unmarshal(steps, &trip.Steps); err != nil {
		return nil, fmt.Errorf("invalid steps payload: %w", err)
	}
	if err := json.Unmarshal(passengers, &trip.Passengers); err != nil {
		return nil, fmt.Errorf("invalid passengers payload: %w", err)
	}
	if vehicleInfo.Valid && vehicleInfo.String != "" {
		info := &models.VehicleInfo{}
		if err := json.Unmarshal([]byte(vehicleInfo.String), info); err != nil {
			return nil, fmt.Errorf("invalid vehicle info payload: %w", err)
		}
		trip.VehicleInfo = info
	}

	return trip, nil
}

func collectTrips(rows *sql.Rows) ([]*models.Trip, error) {
	var result []*models.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func marshalTripJSON(trip *models.Trip) (origin, destination, distance, duration, steps, vehicleInfo, passengers []byte, err error) {
	if origin, err = json.Marshal(trip.Origin); err != nil {
		return
	}
	if destination, err = json.Marshal(trip.Destination); err != nil {
		return
	}
	if distance, err = json.Marshal(trip.Distance); err != nil {
		return
	}
	if duration, err = json.Marshal(trip.Duration); err != nil {
		return
	}
	if trip.Steps == nil {
		steps = []byte("[]")
	} else if steps, err = json.Marshal(trip.Steps); err != nil {
		return
	}
	if trip.VehicleInfo != nil {
		if vehicleInfo, err = json.Marshal(trip.VehicleInfo); err != nil {
			return
		}
	}
	if trip.Passengers == nil {
		passengers = []byte("[]")
	} else if passengers, err = json.Marshal(trip.Passengers); err != nil {
		return
	}
	return
}

// mapDBError classifies driver errors so collaborator failures surface as
// timeout/unavailable rather than opaque internals
func mapDBError(err error, message string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Timeout(message, err)
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, sql.ErrTxDone) {
		return apperrors.Unavailable(message, err)
	}
	return apperrors.Internal(message, err)
}
