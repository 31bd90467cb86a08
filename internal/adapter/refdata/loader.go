// Package refdata loads OpenFlights airport and airline data into the reference store.
package refdata

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/gabrieltaylor/qpx/internal/domain"
	"github.com/gabrieltaylor/qpx/internal/infrastructure/logger"
)

// Config holds the data file locations.
type Config struct {
	AirportsFile string
	AirlinesFile string

	// FirstClassAirports are the IATA codes flagged as default multi-search
	// destinations; empty leaves the stored flags untouched
	FirstClassAirports []string
}

// Loader fills empty reference tables from data files.
type Loader struct {
	airports domain.AirportRepository
	airlines domain.AirlineRepository
	config   Config
	logger   *logger.Logger
}

// NewLoader creates a Loader.
func NewLoader(airports domain.AirportRepository, airlines domain.AirlineRepository, cfg Config, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{
		airports: airports,
		airlines: airlines,
		config:   cfg,
		logger:   log.WithComponent("refdata"),
	}
}

// LoadAll loads airlines, then airports, then applies the first-class airports.
func (l *Loader) LoadAll(ctx context.Context) error {
	if err := l.LoadAirlines(ctx); err != nil {
		return err
	}
	if err := l.LoadAirports(ctx); err != nil {
		return err
	}
	if len(l.config.FirstClassAirports) == 0 {
		return nil
	}
	return l.ApplyFirstClass(ctx)
}

// ApplyFirstClass flags the configured first-class airports, clearing any others.
// It runs on every start so a changed list takes effect on an already loaded store.
func (l *Loader) ApplyFirstClass(ctx context.Context) error {
	codes := make([]string, 0, len(l.config.FirstClassAirports))
	for _, code := range l.config.FirstClassAirports {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" && !slices.Contains(codes, code) {
			codes = append(codes, code)
		}
	}

	flagged, err := l.airports.SetFirstClass(ctx, codes)
	if err != nil {
		return err
	}
	if flagged < len(codes) {
		l.logger.Warn().
			Strs("codes", codes).
			Int("flagged", flagged).
			Msg("Some first-class airports are not in the reference data")
	}
	l.logger.Info().Int("flagged", flagged).Msg("First-class airports applied")
	return nil
}

// LoadAirports fills the airports table unless it already has rows.
func (l *Loader) LoadAirports(ctx context.Context) error {
	n, err := l.airports.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		l.logger.Debug().Int("count", n).Msg("Airports already loaded")
		return nil
	}

	l.logger.Info().Str("file", l.config.AirportsFile).Msg("Reloading airports data")

	var records []domain.AirportRecord
	err = l.readFile(l.config.AirportsFile, func(r io.Reader) error {
		records, err = ParseAirports(r)
		return err
	})
	if err != nil {
		return err
	}

	inserted, err := l.airports.InsertMany(ctx, records)
	if err != nil {
		return err
	}
	l.logger.Info().Int("parsed", len(records)).Int("inserted", inserted).Msg("Airports loaded")
	return nil
}

// LoadAirlines fills the airlines table unless it already has rows.
func (l *Loader) LoadAirlines(ctx context.Context) error {
	n, err := l.airlines.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		l.logger.Debug().Int("count", n).Msg("Airlines already loaded")
		return nil
	}

	l.logger.Info().Str("file", l.config.AirlinesFile).Msg("Reloading airlines data")

	var records []domain.AirlineRecord
	err = l.readFile(l.config.AirlinesFile, func(r io.Reader) error {
		records, err = ParseAirlines(r)
		return err
	})
	if err != nil {
		return err
	}

	inserted, err := l.airlines.InsertMany(ctx, records)
	if err != nil {
		return err
	}
	l.logger.Info().Int("parsed", len(records)).Int("inserted", inserted).Msg("Airlines loaded")
	return nil
}

func (l *Loader) readFile(name string, fn func(io.Reader) error) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()
	return fn(f)
}
