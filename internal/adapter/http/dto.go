package http

// SearchSummaryDTO reports what happened to the options of one route search.
type SearchSummaryDTO struct {
	Origin      string `json:"origin" example:"NYC"`
	Destination string `json:"destination" example:"LON"`
	Options     int    `json:"options" example:"3"`
	Inserted    int    `json:"inserted" example:"2"`
	Duplicates  int    `json:"duplicates" example:"1"`
	Skipped     int    `json:"skipped" example:"0"`
	Failed      int    `json:"failed" example:"0"`
}

// MultiSearchResponseDTO reports how many routes a multi-destination search covered.
type MultiSearchResponseDTO struct {
	// Origin is the airport code or city the searches started from
	Origin         string `json:"origin" example:"JFK"`
	RoutesSearched int    `json:"routesSearched" example:"12"`
}

// TripsResponseDTO is the listing response for stored trips.
type TripsResponseDTO struct {
	Count int       `json:"count"`
	Trips []TripDTO `json:"trips"`
}

// TripDTO is the data transfer object for a stored trip.
type TripDTO struct {
	ID              int64   `json:"id"`
	Type            string  `json:"type" example:"air"`
	Company         string  `json:"company" example:"British Airways"`
	Price           float64 `json:"price" example:"512.3"`
	PlacesAvailable int     `json:"placesAvailable" example:"5"`
	Stopover        int     `json:"stopover" example:"3"`
	Duration        int     `json:"duration" example:"965"`
	Departure       string  `json:"departure" example:"2026-11-20T19:30:00-04:00"`
	Arrival         string  `json:"arrival" example:"2026-11-27T19:45:00-05:00"`

	// StartTime and EndTime are hour.minute clock values (19:30 is 19.3)
	StartTime float64 `json:"startTime" example:"19.3"`
	EndTime   float64 `json:"endTime" example:"19.45"`

	Start TripEndpointDTO `json:"start"`
	End   TripEndpointDTO `json:"end"`

	// Coordinates are the longitude and latitude of the destination city's top airport
	Coordinates [2]float64 `json:"coordinates"`
	AirportID   int64      `json:"airportId"`

	SearchDate string `json:"searchDate"`
	LowCost    bool   `json:"lowcost"`
	Preferred  bool   `json:"preferred"`
}

// TripEndpointDTO describes one end of a trip.
type TripEndpointDTO struct {
	AirportCode string `json:"airportCode" example:"JFK"`
	Airport     string `json:"airport" example:"John F Kennedy Intl"`
	City        string `json:"city" example:"New York"`
	Country     string `json:"country" example:"United States"`
}
