package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/danapr/tumpangan/internal/pkg/middleware"
	"github.com/danapr/tumpangan/internal/pkg/models"
	"github.com/danapr/tumpangan/internal/utils"
	"github.com/danapr/tumpangan/services/trips"
)

// TripHandler handles HTTP requests for the trips service
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// CreateTrip handles POST /v1/trips
func (h *TripHandler) CreateTrip(c echo.Context) error {
	driverID, ok := middleware.RequesterID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), &req, driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip created", trip)
}

// GetTrip handles GET /v1/trips/:tripID
func (h *TripHandler) GetTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), tripID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved", trip)
}

// UpdateTrip handles PATCH /v1/trips/:tripID
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	requesterID, ok := middleware.RequesterID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var patch models.TripPatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.tripUC.UpdateTrip(c.Request().Context(), tripID, &patch, requesterID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip updated", trip)
}

// DeleteTrip handles DELETE /v1/trips/:tripID
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	requesterID, ok := middleware.RequesterID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	if err := h.tripUC.DeleteTrip(c.Request().Context(), tripID, requesterID, middleware.RequesterIsAdmin(c)); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip deleted", nil)
}

// SearchTrips handles GET /v1/trips/search
func (h *TripHandler) SearchTrips(c echo.Context) error {
	var req models.SearchTripsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	criteria := models.SearchCriteria{
		Origin:        models.Coordinate{Latitude: req.OriginLat, Longitude: req.OriginLng},
		Destination:   models.Coordinate{Latitude: req.DestinationLat, Longitude: req.DestinationLng},
		MaxPrice:      req.MaxPrice,
		SeatsRequired: req.SeatsRequired,
	}
	if req.StartTime != "" {
		startTime, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid start_time, expected RFC3339")
		}
		criteria.StartTime = &startTime
	}

	results, err := h.tripUC.SearchTrips(c.Request().Context(), criteria)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved", results)
}

// AddPassenger handles POST /v1/trips/:tripID/passengers
func (h *TripHandler) AddPassenger(c echo.Context) error {
	passengerID, ok := middleware.RequesterID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.AddPassengerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.tripUC.AddPassenger(c.Request().Context(), tripID, passengerID, req.Seats, req.Pickup, req.Dropoff)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Reservation confirmed", trip)
}

// CancelPassenger handles DELETE /v1/trips/:tripID/passengers
func (h *TripHandler) CancelPassenger(c echo.Context) error {
	passengerID, ok := middleware.RequesterID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.CancelPassenger(c.Request().Context(), tripID, passengerID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reservation cancelled", trip)
}

// ListDriverTrips handles GET /v1/drivers/:driverID/trips
func (h *TripHandler) ListDriverTrips(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	status, err := statusFilter(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid status filter")
	}

	results, err := h.tripUC.ListDriverTrips(c.Request().Context(), driverID, status)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved", results)
}

// ListPassengerTrips handles GET /v1/passengers/:passengerID/trips
func (h *TripHandler) ListPassengerTrips(c echo.Context) error {
	passengerID, err := uuid.Parse(c.Param("passengerID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid passenger ID")
	}

	status, err := statusFilter(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid status filter")
	}

	results, err := h.tripUC.ListPassengerTrips(c.Request().Context(), passengerID, status)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved", results)
}

func statusFilter(c echo.Context) (*models.TripStatus, error) {
	raw := c.QueryParam("status")
	if raw == "" {
		return nil, nil
	}
	status := models.TripStatus(raw)
	if !status.IsValid() {
		return nil, echo.ErrBadRequest
	}
	return &status, nil
}
