package usecase

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danapr/tumpangan/internal/pkg/apperrors"
	"github.com/danapr/tumpangan/internal/pkg/models"
	"github.com/danapr/tumpangan/services/trips"
	"github.com/danapr/tumpangan/services/trips/mocks"
)

func verifiedPassenger(id uuid.UUID) *models.User {
	return &models.User{ID: id, Name: "Sari", Role: models.RolePassenger}
}

func TestAddPassenger_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(ctrl)
	passengerID := uuid.New()
	trip := scheduledTrip(uuid.New())

	deps.userGW.EXPECT().FindUserByID(gomock.Any(), passengerID).Return(verifiedPassenger(passengerID), nil)
	deps.tripRepo.EXPECT().AtomicUpdate(gomock.Any(), trip.ID, gomock.Any()).
		DoAndReturn(applyMutator(trip))
	deps.tripGW.EXPECT().PublishPassengerAdded(gomock.Any(), gomock.Any(), passengerID, 2).Return(nil)

	updated, err := uc.AddPassenger(context.Background(), trip.ID, passengerID, 2, nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, 2, updated.BookedSeats())
	reservation := updated.ActiveReservation(passengerID)
	require.NotNil(t, reservation)
	assert.Equal(t, models.PassengerStatusConfirmed, reservation.Status)
	assert.False(t, reservation.ReservedAt.IsZero())
}

func TestAddPassenger_InvalidSeats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUC(ctrl)

	_, err := uc.AddPassenger(context.Background(), uuid.New(), uuid.New(), 0, nil, nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = uc.AddPassenger(context.Background(), uuid.New(), uuid.New(), models.MaxSeatsPerBooking+1, nil, nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestAddPassenger_NotAPassenger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(ctrl)
	userID := uuid.New()

	deps.userGW.EXPECT().FindUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Role: models.RoleDriver}, nil)

	_, err := uc.AddPassenger(context.Background(), uuid.New(), userID, 1, nil, nil)

	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestAddPassenger_TripNotScheduled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(ctrl)
	passengerID := uuid.New()
	trip := scheduledTrip(uuid.New())
	trip.Status = models.TripStatusOngoing

	deps.userGW.EXPECT().FindUserByID(gomock.Any(), passengerID).Return(verifiedPassenger(passengerID), nil)
	deps.tripRepo.EXPECT().AtomicUpdate(gomock.Any(), trip.ID, gomock.Any()).
		DoAndReturn(applyMutator(trip))

	_, err := uc.AddPassenger(context.Background(), trip.ID, passengerID, 1, nil, nil)

	assert.True(t, apperrors.IsKind(err, apperrors.KindState))
}

func TestAddPassenger_CapacityExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(ctrl)
	passengerID := uuid.New()
	trip := scheduledTrip(uuid.New())
	trip.Passengers = []models.PassengerInfo{
		{PassengerID: uuid.New(), Seats: 3, Status: models.PassengerStatusConfirmed},
	}

	deps.userGW.EXPECT().FindUserByID(gomock.Any(), passengerID).Return(verifiedPassenger(passengerID), nil)
	deps.tripRepo.EXPECT().AtomicUpdate(gomock.Any(), trip.ID, gomock.Any()).
		DoAndReturn(applyMutator(trip))

	_, err := uc.AddPassenger(context.Background(), trip.ID, passengerID, 2, nil, nil)

	assert.True(t, apperrors.IsKind(err, apperrors.KindCapacity))
}

func TestAddPassenger_DuplicateReservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(ctrl)
	passengerID := uuid.New()
	trip := scheduledTrip(uuid.New())
	trip.Passengers = []models.PassengerInfo{
		{PassengerID: passengerID, Seats: 1, Status: models.PassengerStatusConfirmed},
	}

	deps.userGW.EXPECT().FindUserByID(gomock.Any(), passengerID).Return(verifiedPassenger(passengerID), nil)
	deps.tripRepo.EXPECT().AtomicUpdate(gomock.Any(), trip.ID, gomock.Any()).
		DoAndReturn(applyMutator(trip))

	_, err := uc.AddPassenger(context.Background(), trip.ID, passengerID, 1, nil, nil)

	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestAddPassenger_RebookAfterCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(ctrl)
	passengerID := uuid.New()
	cancelledAt := time.Now().Add(-time.Hour)
	trip := scheduledTrip(uuid.New())
	trip.Passengers = []models.PassengerInfo{
		{PassengerID: passengerID, Seats: 4, Status: models.PassengerStatusCancelled, CancelledAt: &cancelledAt},
	}

	deps.userGW.EXPECT().FindUserByID(gomock.Any(), passengerID).Return(verifiedPassenger(passengerID), nil)
	deps.tripRepo.EXPECT().AtomicUpdate(gomock.Any(), trip.ID, gomock.Any()).
		DoAndReturn(applyMutator(trip))
	deps.tripGW.EXPECT().PublishPassengerAdded(gomock.Any(), gomock.Any(), passengerID, 2).Return(nil)

	updated, err := uc.AddPassenger(context.Background(), trip.ID, passengerID, 2, nil, nil)

	assert.NoError(t, err)
	// The cancelled record stays, a fresh confirmed one is appended
	assert.Len(t, updated.Passengers, 2)
	assert.Equal(t, 2, updated.BookedSeats())
}

func TestAddPassenger_RetriesOnConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(ctrl)
	passengerID := uuid.New()
	trip := scheduledTrip(uuid.New())

	deps.userGW.EXPECT().FindUserByID(gomock.Any(), passengerID).Return(verifiedPassenger(passengerID), nil)

	gomock.InOrder(
		deps.tripRepo.EXPECT().AtomicUpdate(gomock.Any(), trip.ID, gomock.Any()).
			Return(nil, apperrors.Conflict("trip was modified concurrently")),
		deps.tripRepo.EXPECT().AtomicUpdate(gomock.Any(), trip.ID, gomock.Any()).
			DoAndReturn(applyMutator(trip)),
	)
	deps.tripGW.EXPECT().PublishPassengerAdded(gomock.Any(), gomock.Any(), passengerID, 1).Return(nil)

	updated, err := uc.AddPassenger(context.Background(), trip.ID, passengerID, 1, nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, 1, updated.BookedSeats())
}

func TestAddPassenger_ConflictRetriesExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(ctrl)
	passengerID := uuid.New()
	tripID := uuid.New()

	deps.userGW.EXPECT().FindUserByID(gomock.Any(), passengerID).Return(verifiedPassenger(passengerID), nil)
	deps.tripRepo.EXPECT().AtomicUpdate(gomock.Any(), tripID, gomock.Any()).
		Return(nil, apperrors.Conflict("trip was modified concurrently")).
		Times(3)

	_, err := uc.AddPassenger(context.Background(), tripID, passengerID, 1, nil, nil)

	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestCancelPassenger_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(ctrl)
	passengerID := uuid.New()
	trip := scheduledTrip(uuid.New())
	trip.Passengers = []models.PassengerInfo{
		{PassengerID: passengerID, Seats: 3, Status: models.PassengerStatusConfirmed},
	}

	deps.tripRepo.EXPECT().AtomicUpdate(gomock.Any(), trip.ID, gomock.Any()).
		DoAndReturn(applyMutator(trip))
	deps.tripGW.EXPECT().PublishPassengerCancelled(gomock.Any(), gomock.Any(), passengerID, 3).Return(nil)

	updated, err := uc.CancelPassenger(context.Background(), trip.ID, passengerID)

	assert.NoError(t, err)
	assert.Equal(t, 0, updated.BookedSeats())
	require.Len(t, updated.Passengers, 1)
	assert.Equal(t, models.PassengerStatusCancelled, updated.Passengers[0].Status)
	assert.NotNil(t, updated.Passengers[0].CancelledAt)
}

func TestCancelPassenger_NoActiveReservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(ctrl)
	trip := scheduledTrip(uuid.New())

	deps.tripRepo.EXPECT().AtomicUpdate(gomock.Any(), trip.ID, gomock.Any()).
		DoAndReturn(applyMutator(trip))

	_, err := uc.CancelPassenger(context.Background(), trip.ID, uuid.New())

	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCancelPassenger_TerminalTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(ctrl)
	passengerID := uuid.New()
	trip := scheduledTrip(uuid.New())
	trip.Status = models.TripStatusCompleted
	trip.Passengers = []models.PassengerInfo{
		{PassengerID: passengerID, Seats: 1, Status: models.PassengerStatusConfirmed},
	}

	deps.tripRepo.EXPECT().AtomicUpdate(gomock.Any(), trip.ID, gomock.Any()).
		DoAndReturn(applyMutator(trip))

	_, err := uc.CancelPassenger(context.Background(), trip.ID, passengerID)

	assert.True(t, apperrors.IsKind(err, apperrors.KindState))
}

// casTripRepo is an in-memory trip store with the same compare-and-swap
// semantics as the PostgreSQL repository. Mutators run on a private snapshot
// outside the lock so concurrent bookings genuinely race on the version.
type casTripRepo struct {
	mu   sync.Mutex
	trip *models.Trip
}

func (f *casTripRepo) Create(context.Context, *models.Trip) error { return nil }

func (f *casTripRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (f *casTripRepo) Find(context.Context, models.TripFilter) ([]*models.Trip, error) {
	return nil, nil
}
func (f *casTripRepo) GetMany(context.Context, []uuid.UUID) ([]*models.Trip, error) {
	return nil, nil
}

func (f *casTripRepo) Get(context.Context, uuid.UUID) (*models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneTrip(f.trip), nil
}

func (f *casTripRepo) AtomicUpdate(_ context.Context, _ uuid.UUID, mutate trips.Mutator) (*models.Trip, error) {
	f.mu.Lock()
	snapshot := cloneTrip(f.trip)
	f.mu.Unlock()

	if err := mutate(snapshot); err != nil {
		return nil, err
	}

	// Widen the race window between read and write
	time.Sleep(time.Duration(rand.Intn(3)) * time.Millisecond)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.trip.Version != snapshot.Version {
		return nil, apperrors.Conflict("trip was modified concurrently")
	}
	snapshot.Version++
	f.trip = snapshot
	return cloneTrip(snapshot), nil
}

func cloneTrip(trip *models.Trip) *models.Trip {
	data, _ := json.Marshal(trip)
	clone := &models.Trip{}
	_ = json.Unmarshal(data, clone)
	clone.Version = trip.Version
	return clone
}

// TestAddPassenger_ConcurrentBookingsNeverOversell hammers a 4-seat trip with
// concurrent single-seat bookings and checks the confirmed total never passes
// the capacity, whatever interleaving the scheduler produces.
func TestAddPassenger_ConcurrentBookingsNeverOversell(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trip := scheduledTrip(uuid.New())
	repo := &casTripRepo{trip: trip}

	userGW := mocks.NewMockUserGW(ctrl)
	tripGW := mocks.NewMockTripGW(ctrl)
	userGW.EXPECT().FindUserByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.User, error) {
			return verifiedPassenger(id), nil
		}).AnyTimes()
	tripGW.EXPECT().PublishPassengerAdded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).AnyTimes()

	cfg := &models.Config{Trips: models.TripsConfig{BookingRetries: 5}}
	uc := NewTripUC(cfg, repo, nil, nil, tripGW, userGW)

	const workers = 20
	var wg sync.WaitGroup
	successes := make(chan int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seats := 1 + rand.Intn(2)
			_, err := uc.AddPassenger(context.Background(), trip.ID, uuid.New(), seats, nil, nil)
			if err == nil {
				successes <- seats
				return
			}
			// Losers must fail for a legitimate reason
			kind := apperrors.KindOf(err)
			assert.Contains(t,
				[]apperrors.Kind{apperrors.KindCapacity, apperrors.KindConflict},
				kind)
		}()
	}
	wg.Wait()
	close(successes)

	booked := 0
	for seats := range successes {
		booked += seats
	}

	final, err := repo.Get(context.Background(), trip.ID)
	require.NoError(t, err)
	assert.Equal(t, booked, final.BookedSeats())
	assert.LessOrEqual(t, final.BookedSeats(), final.TotalSeats())
}
