package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danapr/tumpangan/internal/pkg/apperrors"
	"github.com/danapr/tumpangan/internal/pkg/middleware"
	"github.com/danapr/tumpangan/internal/pkg/models"
	"github.com/danapr/tumpangan/services/trips/mocks"
)

func newTestContext(method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func authenticate(c echo.Context, userID uuid.UUID, role string) {
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextUserRole, role)
}

func TestCreateTrip_HandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockUC)

	driverID := uuid.New()
	body := `{
		"origin": {"latitude": -6.2088, "longitude": 106.8456, "address": "Jakarta"},
		"destination": {"latitude": -6.9175, "longitude": 107.6191, "address": "Bandung"},
		"start_time": "` + time.Now().Add(24*time.Hour).Format(time.RFC3339) + `",
		"available_seats": 4,
		"price_per_seat": 75000
	}`

	created := &models.Trip{ID: uuid.New(), DriverID: driverID, Status: models.TripStatusScheduled}
	mockUC.EXPECT().CreateTrip(gomock.Any(), gomock.Any(), driverID).Return(created, nil)

	c, rec := newTestContext(http.MethodPost, "/v1/trips", body)
	authenticate(c, driverID, models.RoleDriver)

	err := handler.CreateTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool        `json:"success"`
		Data    models.Trip `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, created.ID, resp.Data.ID)
}

func TestCreateTrip_HandlerUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewTripHandler(mocks.NewMockTripUC(ctrl))

	c, rec := newTestContext(http.MethodPost, "/v1/trips", `{}`)

	err := handler.CreateTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetTrip_HandlerInvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewTripHandler(mocks.NewMockTripUC(ctrl))

	c, rec := newTestContext(http.MethodGet, "/v1/trips/not-a-uuid", "")
	c.SetParamNames("tripID")
	c.SetParamValues("not-a-uuid")

	err := handler.GetTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTrip_HandlerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockUC)

	tripID := uuid.New()
	mockUC.EXPECT().GetTrip(gomock.Any(), tripID).Return(nil, apperrors.NotFound("trip not found"))

	c, rec := newTestContext(http.MethodGet, "/v1/trips/"+tripID.String(), "")
	c.SetParamNames("tripID")
	c.SetParamValues(tripID.String())

	err := handler.GetTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateTrip_HandlerStateErrorMapsToConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockUC)

	requesterID := uuid.New()
	tripID := uuid.New()
	mockUC.EXPECT().UpdateTrip(gomock.Any(), tripID, gomock.Any(), requesterID).
		Return(nil, apperrors.State("trip details are frozen in status ongoing"))

	c, rec := newTestContext(http.MethodPatch, "/v1/trips/"+tripID.String(), `{"price_per_seat": 90000}`)
	c.SetParamNames("tripID")
	c.SetParamValues(tripID.String())
	authenticate(c, requesterID, models.RoleDriver)

	err := handler.UpdateTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteTrip_HandlerPassesAdminFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockUC)

	adminID := uuid.New()
	tripID := uuid.New()
	mockUC.EXPECT().DeleteTrip(gomock.Any(), tripID, adminID, true).Return(nil)

	c, rec := newTestContext(http.MethodDelete, "/v1/trips/"+tripID.String(), "")
	c.SetParamNames("tripID")
	c.SetParamValues(tripID.String())
	authenticate(c, adminID, models.RoleAdmin)

	err := handler.DeleteTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddPassenger_HandlerCapacityMapsToConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockUC)

	passengerID := uuid.New()
	tripID := uuid.New()
	mockUC.EXPECT().AddPassenger(gomock.Any(), tripID, passengerID, 2, gomock.Nil(), gomock.Nil()).
		Return(nil, apperrors.Capacity("trip has 1 seats remaining"))

	c, rec := newTestContext(http.MethodPost, "/v1/trips/"+tripID.String()+"/passengers", `{"seats": 2}`)
	c.SetParamNames("tripID")
	c.SetParamValues(tripID.String())
	authenticate(c, passengerID, models.RolePassenger)

	err := handler.AddPassenger(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCancelPassenger_HandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockUC)

	passengerID := uuid.New()
	tripID := uuid.New()
	mockUC.EXPECT().CancelPassenger(gomock.Any(), tripID, passengerID).
		Return(&models.Trip{ID: tripID}, nil)

	c, rec := newTestContext(http.MethodDelete, "/v1/trips/"+tripID.String()+"/passengers", "")
	c.SetParamNames("tripID")
	c.SetParamValues(tripID.String())
	authenticate(c, passengerID, models.RolePassenger)

	err := handler.CancelPassenger(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchTrips_HandlerBindsQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockUC)

	mockUC.EXPECT().SearchTrips(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, criteria models.SearchCriteria) ([]*models.Trip, error) {
			assert.InDelta(t, -6.2088, criteria.Origin.Latitude, 0.0001)
			assert.InDelta(t, 107.6191, criteria.Destination.Longitude, 0.0001)
			assert.Equal(t, 2, criteria.SeatsRequired)
			require.NotNil(t, criteria.MaxPrice)
			assert.Equal(t, int64(100000), *criteria.MaxPrice)
			require.NotNil(t, criteria.StartTime)
			return []*models.Trip{}, nil
		})

	target := "/v1/trips/search?origin_lat=-6.2088&origin_lng=106.8456" +
		"&destination_lat=-6.9175&destination_lng=107.6191" +
		"&start_time=2026-09-01T08:00:00Z&max_price=100000&seats_required=2"
	c, rec := newTestContext(http.MethodGet, target, "")
	authenticate(c, uuid.New(), models.RolePassenger)

	err := handler.SearchTrips(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchTrips_HandlerRejectsBadStartTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewTripHandler(mocks.NewMockTripUC(ctrl))

	c, rec := newTestContext(http.MethodGet, "/v1/trips/search?start_time=tomorrow", "")

	err := handler.SearchTrips(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListDriverTrips_HandlerStatusFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockUC)

	driverID := uuid.New()
	mockUC.EXPECT().ListDriverTrips(gomock.Any(), driverID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, status *models.TripStatus) ([]*models.Trip, error) {
			require.NotNil(t, status)
			assert.Equal(t, models.TripStatusScheduled, *status)
			return []*models.Trip{}, nil
		})

	c, rec := newTestContext(http.MethodGet, "/v1/drivers/"+driverID.String()+"/trips?status=scheduled", "")
	c.SetParamNames("driverID")
	c.SetParamValues(driverID.String())

	err := handler.ListDriverTrips(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListDriverTrips_HandlerInvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewTripHandler(mocks.NewMockTripUC(ctrl))

	driverID := uuid.New()
	c, rec := newTestContext(http.MethodGet, "/v1/drivers/"+driverID.String()+"/trips?status=parked", "")
	c.SetParamNames("driverID")
	c.SetParamValues(driverID.String())

	err := handler.ListDriverTrips(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
