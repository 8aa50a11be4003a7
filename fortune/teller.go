package fortune

import (
	"time"

	"go.uber.org/zap"

	"github.com/teranos/tongshu/calendar"
	"github.com/teranos/tongshu/logger"
	"github.com/teranos/tongshu/sym"
)

// Teller produces reports from a calendar engine. Safe for concurrent use.
type Teller struct {
	engine *calendar.Engine
	log    *zap.SugaredLogger
}

// TellerOption configures a Teller.
type TellerOption func(*Teller)

// WithLogger sets the teller's logger.
func WithLogger(l *zap.SugaredLogger) TellerOption {
	return func(t *Teller) { t.log = l }
}

// NewTeller returns a teller backed by engine, or by the default engine
// when engine is nil.
func NewTeller(engine *calendar.Engine, opts ...TellerOption) *Teller {
	if engine == nil {
		engine = calendar.Default()
	}
	t := &Teller{engine: engine}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Teller) componentLogger() *zap.SugaredLogger {
	if t.log != nil {
		return t.log
	}
	return logger.Logger.Named("fortune.teller")
}

// Engine returns the calendar engine behind the teller.
func (t *Teller) Engine() *calendar.Engine {
	return t.engine
}

// Daily returns the daily report for date converted into zoneID.
func (t *Teller) Daily(date time.Time, zoneID string) Daily {
	d := NewDaily(t.engine.Snapshot(date, zoneID))
	t.componentLogger().Debugw("Fortune cast",
		logger.FieldDate, d.Date(),
		logger.FieldZodiac, d.Zodiac.ZH,
		logger.FieldLuck, d.LuckIndex)
	return d
}

// Today returns the daily report for the engine's current instant.
func (t *Teller) Today(zoneID string) Daily {
	return t.Daily(t.engine.Now(), zoneID)
}

// Monthly returns the monthly skeleton for the lunar month containing date.
func (t *Teller) Monthly(date time.Time, zoneID string) Monthly {
	s := t.engine.Snapshot(date, zoneID)
	return MonthlySkeleton(s.Lunar.Year, s.Lunar.Month)
}

// Yearly returns the yearly skeleton for the lunar year containing date.
func (t *Teller) Yearly(date time.Time, zoneID string) Yearly {
	s := t.engine.Snapshot(date, zoneID)
	return YearlySkeleton(s.Lunar.Year)
}

func clashZodiac(dayCycleIndex int) string {
	return sym.Zodiac.Glyph(calendar.ClashIndex(dayCycleIndex))
}

var defaultTeller = NewTeller(nil)

// DailyFor returns the daily report for date in zoneID using the default
// engine. An empty zoneID means Asia/Kuala_Lumpur.
func DailyFor(date time.Time, zoneID string) Daily {
	return defaultTeller.Daily(date, zoneID)
}
