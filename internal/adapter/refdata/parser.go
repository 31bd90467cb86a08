package refdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gabrieltaylor/qpx/internal/domain"
)

// nullField is how OpenFlights writes a missing value.
const nullField = `\N`

// cityAirportName marks the synthetic airport that stands for a whole city.
const cityAirportName = "All Airports"

// OpenFlights airports.dat columns.
const (
	airportColName = 1 + iota
	airportColCity
	airportColCountry
	airportColIATA
	airportColICAO
	airportColLatitude
	airportColLongitude
	airportColAltitude
	airportColUTCOffset
	airportColDST
	airportColTimezone
	airportColumns
)

// OpenFlights airlines.dat columns.
const (
	airlineColName = 1 + iota
	airlineColAlias
	airlineColIATA
	airlineColICAO
	airlineColCallSign
	airlineColCountry
	airlineColActive
	airlineColumns
)

// ParseAirports reads OpenFlights airports.dat rows. Rows without an IATA code are dropped.
func ParseAirports(r io.Reader) ([]domain.AirportRecord, error) {
	var airports []domain.AirportRecord
	err := readRecords(r, airportColumns, func(f []string) {
		code := field(f, airportColIATA)
		if code == "" {
			return
		}
		name := field(f, airportColName)
		airports = append(airports, domain.AirportRecord{
			IATACode:    code,
			ICAOCode:    field(f, airportColICAO),
			Name:        name,
			City:        field(f, airportColCity),
			Country:     field(f, airportColCountry),
			Latitude:    floatField(f, airportColLatitude),
			Longitude:   floatField(f, airportColLongitude),
			Altitude:    floatField(f, airportColAltitude),
			UTCOffset:   floatField(f, airportColUTCOffset),
			DST:         field(f, airportColDST),
			Timezone:    field(f, airportColTimezone),
			CityAirport: name == cityAirportName,
			FirstClass:  false,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse airports: %w", err)
	}
	return airports, nil
}

// ParseAirlines reads OpenFlights airlines.dat rows.
func ParseAirlines(r io.Reader) ([]domain.AirlineRecord, error) {
	var airlines []domain.AirlineRecord
	err := readRecords(r, airlineColumns, func(f []string) {
		airlines = append(airlines, domain.AirlineRecord{
			Name:     field(f, airlineColName),
			Alias:    field(f, airlineColAlias),
			IATACode: field(f, airlineColIATA),
			ICAOCode: field(f, airlineColICAO),
			CallSign: field(f, airlineColCallSign),
			Country:  field(f, airlineColCountry),
			Active:   field(f, airlineColActive) == "Y",
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse airlines: %w", err)
	}
	return airlines, nil
}

// readRecords calls fn for every row that has at least minFields fields.
// Shorter rows are skipped.
func readRecords(r io.Reader, minFields int, fn func([]string)) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if len(record) < minFields {
			continue
		}
		fn(record)
	}
}

func field(record []string, i int) string {
	v := strings.TrimSpace(record[i])
	if v == nullField {
		return ""
	}
	return v
}

func floatField(record []string, i int) float64 {
	v, err := strconv.ParseFloat(field(record, i), 64)
	if err != nil {
		return 0
	}
	return v
}
