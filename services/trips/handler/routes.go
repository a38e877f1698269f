package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/danapr/tumpangan/internal/pkg/middleware"
	"github.com/danapr/tumpangan/internal/pkg/models"
	"github.com/danapr/tumpangan/services/trips"
	httphandler "github.com/danapr/tumpangan/services/trips/handler/http"
)

// Handler wires the trips service HTTP surface
type Handler struct {
	cfg         *models.Config
	tripHandler *httphandler.TripHandler
}

// NewHandler creates a new trips service handler
func NewHandler(cfg *models.Config, tripUC trips.TripUC) *Handler {
	return &Handler{
		cfg:         cfg,
		tripHandler: httphandler.NewTripHandler(tripUC),
	}
}

// RegisterRoutes registers the public and internal routes on the echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	v1.POST("/trips", h.tripHandler.CreateTrip)
	v1.GET("/trips/search", h.tripHandler.SearchTrips)
	v1.GET("/trips/:tripID", h.tripHandler.GetTrip)
	v1.PATCH("/trips/:tripID", h.tripHandler.UpdateTrip)
	v1.DELETE("/trips/:tripID", h.tripHandler.DeleteTrip)

	v1.POST("/trips/:tripID/passengers", h.tripHandler.AddPassenger)
	v1.DELETE("/trips/:tripID/passengers", h.tripHandler.CancelPassenger)

	v1.GET("/drivers/:driverID/trips", h.tripHandler.ListDriverTrips)
	v1.GET("/passengers/:passengerID/trips", h.tripHandler.ListPassengerTrips)

	// Service-to-service lookups bypass JWT and authenticate with an API key
	mw := middleware.NewMiddleware(h.cfg)
	internal := e.Group("/internal", mw.APIKeyHandler(h.cfg.APIKey.TripsService, h.cfg.APIKey.AdminService))
	internal.GET("/trips/:tripID", h.tripHandler.GetTrip)
}
