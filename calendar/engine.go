// Package calendar builds bilingual Chinese calendar snapshots.
//
// An Engine resolves a time zone, converts the date through a LunarCalendar,
// derives zodiac, stem-branch and lunar labels with fixed-table modular
// arithmetic, and asks a SolarTermIndexer for the term. None of this fails:
// unknown zones fall back to the local zone and out-of-range values wrap
// into the tables.
package calendar

import (
	"time"

	"go.uber.org/zap"

	"github.com/teranos/tongshu/am/geotime"
	"github.com/teranos/tongshu/lexicon"
	"github.com/teranos/tongshu/logger"
	"github.com/teranos/tongshu/sym"
)

// DefaultZone is the zone used when no zone id is given.
const DefaultZone = geotime.DefaultTimezone

// ZoneResolver turns a zone id into a location and never fails.
type ZoneResolver interface {
	Resolve(id string) *time.Location
}

// Snapshot is the calendar reading of one instant in one zone.
type Snapshot struct {
	Time         time.Time          `json:"time" yaml:"time"`
	Zone         string             `json:"zone" yaml:"zone"`
	Lunar        LunarDate          `json:"lunar" yaml:"lunar"`
	LunarText    lexicon.Bilingual  `json:"lunar_text" yaml:"lunar_text"`
	Zodiac       lexicon.Bilingual  `json:"zodiac" yaml:"zodiac"`
	GanzhiYear   string             `json:"ganzhi_year" yaml:"ganzhi_year"`
	GanzhiYearEN string             `json:"ganzhi_year_en" yaml:"ganzhi_year_en"`
	SolarTerm    *lexicon.Bilingual `json:"solar_term,omitempty" yaml:"solar_term,omitempty"`
}

// Date returns the civil date of the snapshot as YYYY-MM-DD.
func (s Snapshot) Date() string {
	return s.Time.Format(time.DateOnly)
}

// Engine derives snapshots. It is immutable after construction and safe for
// concurrent use.
type Engine struct {
	zones ZoneResolver
	lunar LunarCalendar
	terms SolarTermIndexer
	now   func() time.Time
	log   *zap.SugaredLogger
}

// Option configures an Engine.
type Option func(*Engine)

// WithZoneResolver replaces the strict default-zone resolver.
func WithZoneResolver(r ZoneResolver) Option {
	return func(e *Engine) { e.zones = r }
}

// WithLunarCalendar replaces the lunar-go conversion.
func WithLunarCalendar(c LunarCalendar) Option {
	return func(e *Engine) { e.lunar = c }
}

// WithSolarTerms replaces the half-month placeholder.
func WithSolarTerms(t SolarTermIndexer) Option {
	return func(e *Engine) { e.terms = t }
}

// WithClock replaces time.Now for Today.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the engine's logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine returns an engine using lunar-go, the half-month solar term
// placeholder and a strict resolver defaulting to Asia/Kuala_Lumpur.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		zones: geotime.NewResolver(DefaultZone),
		lunar: LunarGo{},
		terms: HalfMonthTerms{},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) componentLogger() *zap.SugaredLogger {
	if e.log != nil {
		return e.log
	}
	return logger.Logger.Named("calendar.engine")
}

// Location resolves zoneID the way Snapshot does.
func (e *Engine) Location(zoneID string) *time.Location {
	return e.zones.Resolve(zoneID)
}

// Now returns the engine clock's current instant.
func (e *Engine) Now() time.Time {
	return e.now()
}

// Today returns the snapshot for the current instant in zoneID.
func (e *Engine) Today(zoneID string) Snapshot {
	return e.Snapshot(e.now(), zoneID)
}

// Snapshot returns the calendar reading of date converted into zoneID.
// The civil date after conversion drives every field, so a UTC midnight
// may land on the previous day in a zone west of UTC.
func (e *Engine) Snapshot(date time.Time, zoneID string) Snapshot {
	loc := e.zones.Resolve(zoneID)
	local := date.In(loc)

	ld := e.lunar.ToLunar(local)
	zodiac := sym.Zodiac.Glyph(ZodiacIndex(ld.Year))
	ganzhi := GanzhiYear(ld.Year)
	lunarText := LunarText(ld.Month, ld.Day)

	s := Snapshot{
		Time:         local,
		Zone:         loc.String(),
		Lunar:        ld,
		LunarText:    lexicon.Bilingual{ZH: lunarText, EN: lexicon.LunarLabelToEnglish(lunarText)},
		Zodiac:       lexicon.Translate(lexicon.Zodiac, zodiac),
		GanzhiYear:   ganzhi,
		GanzhiYearEN: lexicon.GanzhiYearToEnglish(ganzhi, zodiac),
	}
	if i, ok := e.terms.TermIndex(local); ok {
		term := lexicon.Translate(lexicon.SolarTerm, sym.SolarTerms.Glyph(i))
		s.SolarTerm = &term
	}

	e.componentLogger().Debugw("Snapshot built",
		logger.FieldDate, s.Date(),
		logger.FieldTimezone, s.Zone,
		logger.FieldLunar, ld.String(),
		logger.FieldGanzhi, ganzhi)
	return s
}

var defaultEngine = NewEngine()

// Default returns the package-level engine.
func Default() *Engine {
	return defaultEngine
}

// Today returns the snapshot for now in zoneID using the default engine.
// An empty zoneID means Asia/Kuala_Lumpur.
func Today(zoneID string) Snapshot {
	return defaultEngine.Today(zoneID)
}

// SnapshotAt returns the snapshot for date in zoneID using the default engine.
func SnapshotAt(date time.Time, zoneID string) Snapshot {
	return defaultEngine.Snapshot(date, zoneID)
}
