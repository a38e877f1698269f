package models

import "time"

// CreateTripRequest is the payload for publishing a new trip
type CreateTripRequest struct {
	Origin         Point       `json:"origin"`
	Destination    Point       `json:"destination"`
	StartTime      time.Time   `json:"start_time"`
	AvailableSeats int         `json:"available_seats"`
	PricePerSeat   int64       `json:"price_per_seat"`
	Distance       Distance    `json:"distance"`
	Duration       Duration    `json:"duration"`
	Steps          []RouteStep `json:"steps"`
}

// AddPassengerRequest is the payload for reserving seats on a trip
type AddPassengerRequest struct {
	Seats   int    `json:"seats"`
	Pickup  *Point `json:"pickup_location,omitempty"`
	Dropoff *Point `json:"dropoff_location,omitempty"`
}

// SearchTripsRequest carries the search query parameters
type SearchTripsRequest struct {
	OriginLat      float64 `query:"origin_lat"`
	OriginLng      float64 `query:"origin_lng"`
	DestinationLat float64 `query:"destination_lat"`
	DestinationLng float64 `query:"destination_lng"`
	StartTime      string  `query:"start_time"`
	MaxPrice       *int64  `query:"max_price"`
	SeatsRequired  int     `query:"seats_required"`
}
