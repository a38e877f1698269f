package constants

// NATS Subjects
const (
	// Trip lifecycle events
	SubjectTripCreated = "trip.created"
	SubjectTripUpdated = "trip.updated"
	SubjectTripDeleted = "trip.deleted"

	// Reservation events
	SubjectPassengerAdded     = "trip.passenger.added"
	SubjectPassengerCancelled = "trip.passenger.cancelled"
)
