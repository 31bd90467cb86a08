package domain

// AirportRecord is one airport row of the reference data store.
type AirportRecord struct {
	// ID is the store identifier
	ID int64 `db:"id" json:"id"`

	// IATACode is the 3-letter IATA code; never blank for stored rows
	IATACode string `db:"iata_code" json:"iataCode"`

	// ICAOCode is the 4-letter ICAO code (may be empty)
	ICAOCode string `db:"icao_code" json:"icaoCode,omitempty"`

	Name    string `db:"name" json:"name"`
	City    string `db:"city" json:"city"`
	Country string `db:"country" json:"country"`

	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`

	// Altitude is expressed in feet
	Altitude float64 `db:"altitude" json:"altitude"`

	// UTCOffset is the standard offset from UTC in hours
	UTCOffset float64 `db:"utc_offset" json:"utcOffset"`

	// DST is the daylight-saving rule letter (E, A, S, O, Z, N, U)
	DST string `db:"dst" json:"dst,omitempty"`

	// Timezone is the IANA timezone name (e.g., "America/New_York")
	Timezone string `db:"timezone" json:"timezone,omitempty"`

	// CityAirport is true when the row is a metropolitan "All Airports" aggregate
	CityAirport bool `db:"city_airport" json:"cityAirport"`

	// FirstClass marks default destinations for exploratory multi-destination searches
	FirstClass bool `db:"first_class" json:"firstClass"`
}

// AirlineRecord is one airline row of the reference data store.
type AirlineRecord struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Alias    string `db:"alias" json:"alias,omitempty"`
	IATACode string `db:"iata_code" json:"iataCode"`
	ICAOCode string `db:"icao_code" json:"icaoCode,omitempty"`
	CallSign string `db:"call_sign" json:"callSign,omitempty"`
	Country  string `db:"country" json:"country"`
	Active   bool   `db:"active" json:"active"`
}

// ResolvedRoute is the reference data resolved for one trip option.
type ResolvedRoute struct {
	StartAirport AirportRecord
	EndAirport   AirportRecord

	// Company is the name of the airline operating the first segment
	Company string

	// TopAirport is the representative airport of the end airport's city
	TopAirport AirportRecord
}
