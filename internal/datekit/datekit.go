package datekit

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lucax88x/datekit/cmd/cli/config"
	"github.com/lucax88x/datekit/internal/clock"
	"github.com/lucax88x/datekit/internal/dates"
	"github.com/lucax88x/datekit/internal/dates/joda"
	"github.com/lucax88x/datekit/internal/dates/strftime"
	"github.com/lucax88x/datekit/internal/stream"
)

var ErrUnknownBackend = errors.New("unknown backend")

type Datekit struct {
	Logger *slog.Logger
	Config *config.Cfg
	Clock  clock.Clock
	Dates  dates.Operations
	Stream *stream.Reader
}

func New(logger *slog.Logger, cfg *config.Cfg) (*Datekit, error) {
	loc, err := cfg.Location()

	if err != nil {
		return nil, err
	}

	systemClock := clock.NewSystemClock()

	facade, err := NewFacade(logger, systemClock, cfg.Backend, loc)

	if err != nil {
		return nil, err
	}

	logger.Debug(
		"datekit: ready",
		slog.String("backend", facade.Name()),
		slog.String("timezone", loc.String()),
	)

	return &Datekit{
		Logger: logger,
		Config: cfg,
		Clock:  systemClock,
		Dates:  facade,
		Stream: stream.NewReader(logger),
	}, nil
}

func Backends() []string {
	return []string{joda.Name, strftime.Name}
}

func NewFacade(
	logger *slog.Logger,
	clock clock.Clock,
	backend string,
	loc *time.Location,
) (dates.Operations, error) {
	switch backend {
	case joda.Name, "":
		return joda.New(logger, clock, loc), nil
	case strftime.Name:
		return strftime.New(logger, clock, loc), nil
	default:
		return nil, fmt.Errorf("datekit: %w '%s', expected one of %v", ErrUnknownBackend, backend, Backends())
	}
}
