package constants

// Redis key formats
const (
	// Geo-index sorted sets, member = trip id
	KeyTripOriginGeo      = "trip:origin:geo"
	KeyTripDestinationGeo = "trip:destination:geo"

	// Search result cache
	KeyTripSearch = "trip:search:%s" // Format: trip:search:{criteria hash}
)
