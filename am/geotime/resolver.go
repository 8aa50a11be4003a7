package geotime

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/tongshu/errors"
	"github.com/teranos/tongshu/logger"
)

// Resolver turns zone identifiers into locations. Resolve never fails: an
// unknown identifier falls back to time.Local with a warning.
type Resolver struct {
	// Default is used when the identifier is empty. Falls back to DefaultTimezone.
	Default string
	// Lenient runs identifiers through NormalizeTimezone, so "kuala lumpur"
	// or "MYT" resolve as well as IANA names.
	Lenient bool
	// Logger receives fallback warnings. Nil uses the global logger.
	Logger *zap.SugaredLogger
}

// NewResolver returns a strict resolver with the given default zone.
func NewResolver(defaultZone string) *Resolver {
	return &Resolver{Default: defaultZone}
}

func (r *Resolver) log() *zap.SugaredLogger {
	if r.Logger != nil {
		return r.Logger
	}
	return logger.Logger
}

func (r *Resolver) defaultZone() string {
	if d := strings.TrimSpace(r.Default); d != "" {
		return d
	}
	return DefaultTimezone
}

// Load resolves id without falling back. An empty id resolves the default zone.
func (r *Resolver) Load(id string) (*time.Location, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = r.defaultZone()
	}

	if r.Lenient {
		normalized, err := NormalizeTimezone(id)
		if err != nil {
			return nil, err
		}
		id = normalized
	}

	if err := ValidateTimezone(id); err != nil {
		return nil, errors.Wrap(err, "load location")
	}
	return time.LoadLocation(id)
}

// Resolve returns the location for id, or time.Local when id is unknown.
func (r *Resolver) Resolve(id string) *time.Location {
	loc, err := r.Load(id)
	if err != nil {
		r.log().Warnw("Unknown timezone, falling back to local",
			logger.FieldTimezone, id,
			"fallback", LocalZoneName(),
			logger.FieldError, err)
		return time.Local
	}
	return loc
}

var defaultResolver = &Resolver{}

// Resolve resolves id strictly against DefaultTimezone, falling back to time.Local.
func Resolve(id string) *time.Location {
	return defaultResolver.Resolve(id)
}
