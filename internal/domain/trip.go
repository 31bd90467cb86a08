package domain

import "time"

// TripTypeAir is the transport type recorded for QPX trips.
const TripTypeAir = "air"

// NormalizedTrip is the persisted, deduplicated unit produced from one trip option.
// (StartAirportCode, EndAirportCode, Price, Departure, Arrival, Stopover, Company) is unique in the store.
type NormalizedTrip struct {
	ID int64 `db:"id" json:"id"`

	StartCity    string `db:"start_city" json:"startCity"`
	StartCountry string `db:"start_country" json:"startCountry"`
	EndCity      string `db:"end_city" json:"endCity"`
	EndCountry   string `db:"end_country" json:"endCountry"`

	// Price is the sale total in USD
	Price float64 `db:"price" json:"price"`

	// PlacesAvailable is a configured estimate, not returned by QPX
	PlacesAvailable int `db:"places_available" json:"placesAvailable"`

	Departure time.Time `db:"departure" json:"departure"`
	Arrival   time.Time `db:"arrival" json:"arrival"`

	// Stopover is the total number of segments across all slices
	Stopover int `db:"stopover" json:"stopover"`

	Company string `db:"company" json:"company"`

	StartAirport     string `db:"start_airport" json:"startAirport"`
	StartAirportCode string `db:"start_airport_code" json:"startAirportCode"`
	EndAirport       string `db:"end_airport" json:"endAirport"`
	EndAirportCode   string `db:"end_airport_code" json:"endAirportCode"`

	// Longitude and Latitude locate the representative airport of the end city
	Longitude float64 `db:"longitude" json:"longitude"`
	Latitude  float64 `db:"latitude" json:"latitude"`

	// StartTime and EndTime are hour.minute clock values (14:05 is 14.05)
	StartTime float64 `db:"start_time" json:"startTime"`
	EndTime   float64 `db:"end_time" json:"endTime"`

	// Duration is the sum of slice durations in minutes
	Duration int `db:"duration" json:"duration"`

	SearchDate time.Time `db:"search_date" json:"searchDate"`

	// AirportID references the representative airport of the end city
	AirportID int64 `db:"airport_id" json:"airportId"`

	About     string `db:"about" json:"about"`
	Title     string `db:"title" json:"title"`
	Type      string `db:"type" json:"type"`
	LowCost   bool   `db:"lowcost" json:"lowcost"`
	Preferred bool   `db:"preferred" json:"preferred"`
}

// NewNormalizedTrip assembles a trip from derived attributes and resolved reference data.
func NewNormalizedTrip(attrs TripAttributes, route *ResolvedRoute, placesAvailable int, searchDate time.Time) NormalizedTrip {
	return NormalizedTrip{
		StartCity:        route.StartAirport.City,
		StartCountry:     route.StartAirport.Country,
		EndCity:          route.EndAirport.City,
		EndCountry:       route.EndAirport.Country,
		Price:            attrs.Price,
		PlacesAvailable:  placesAvailable,
		Departure:        attrs.Departure,
		Arrival:          attrs.Arrival,
		Stopover:         attrs.Stopover,
		Company:          route.Company,
		StartAirport:     route.StartAirport.Name,
		StartAirportCode: attrs.StartAirportCode,
		EndAirport:       route.EndAirport.Name,
		EndAirportCode:   attrs.EndAirportCode,
		Longitude:        route.TopAirport.Longitude,
		Latitude:         route.TopAirport.Latitude,
		StartTime:        attrs.StartTime,
		EndTime:          attrs.EndTime,
		Duration:         attrs.Duration,
		SearchDate:       searchDate,
		AirportID:        route.TopAirport.ID,
		Type:             TripTypeAir,
	}
}

// PersistOutcome is the result of handing one trip to the trip store.
type PersistOutcome int

const (
	// PersistInserted means the trip was stored.
	PersistInserted PersistOutcome = iota + 1

	// PersistDuplicate means an identical trip was already stored.
	PersistDuplicate
)

func (o PersistOutcome) String() string {
	switch o {
	case PersistInserted:
		return "inserted"
	case PersistDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// SearchSummary counts what happened to the trip options of one search.
// A successful search with no options has Options == 0 and a nil error.
type SearchSummary struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// Options is the number of trip options QPX returned
	Options int `json:"options"`

	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`

	// Skipped counts options dropped for missing reference data or malformed content
	Skipped int `json:"skipped"`

	// Failed counts options the trip store rejected
	Failed int `json:"failed"`
}
