package calendar

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/teranos/tongshu/am/geotime"
	"github.com/teranos/tongshu/lexicon"
)

// fixedLunar always answers with the same lunar date.
func fixedLunar(d LunarDate) LunarCalendar {
	return LunarCalendarFunc(func(time.Time) LunarDate { return d })
}

func newTestEngine(opts ...Option) *Engine {
	base := []Option{
		WithLogger(zap.NewNop().Sugar()),
		WithZoneResolver(&geotime.Resolver{Logger: zap.NewNop().Sugar()}),
	}
	return NewEngine(append(base, opts...)...)
}

func TestSnapshotFields(t *testing.T) {
	e := newTestEngine(WithLunarCalendar(fixedLunar(LunarDate{Year: 1990, Month: 4, Day: 23})))

	s := e.Snapshot(time.Date(1990, 5, 17, 4, 0, 0, 0, time.UTC), "Asia/Kuala_Lumpur")

	assert.Equal(t, "Asia/Kuala_Lumpur", s.Zone)
	assert.Equal(t, "1990-05-17", s.Date())
	assert.Equal(t, 12, s.Time.Hour())
	assert.Equal(t, LunarDate{Year: 1990, Month: 4, Day: 23}, s.Lunar)
	assert.Equal(t, lexicon.Bilingual{ZH: "马", EN: "Horse"}, s.Zodiac)
	assert.Equal(t, lexicon.Bilingual{ZH: "四月廿三", EN: "Fourth Month, Day 23"}, s.LunarText)
	assert.Equal(t, "庚午年", s.GanzhiYear)
	assert.Equal(t, "Geng (Metal Yang)–Wu (Horse) Year (Horse)", s.GanzhiYearEN)
	require.NotNil(t, s.SolarTerm)
	assert.Equal(t, lexicon.Bilingual{ZH: "小满", EN: "Lesser Fullness of Grain"}, *s.SolarTerm)
}

func TestSnapshotWithLunarGo(t *testing.T) {
	e := newTestEngine()

	s := e.Snapshot(time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC), "")
	assert.Equal(t, DefaultZone, s.Zone)
	assert.Equal(t, LunarDate{Year: 2024, Month: 1, Day: 1}, s.Lunar)
	assert.Equal(t, "龙", s.Zodiac.ZH)
	assert.Equal(t, "Dragon", s.Zodiac.EN)
	assert.Equal(t, "甲辰年", s.GanzhiYear)
	assert.Equal(t, "正月初一", s.LunarText.ZH)
}

func TestSnapshotConvertsIntoZone(t *testing.T) {
	e := newTestEngine(WithLunarCalendar(LunarCalendarFunc(GregorianProxy)))

	// 20:00 UTC on Feb 9 is already Feb 10 in Kuala Lumpur
	instant := time.Date(2024, 2, 9, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, 10, e.Snapshot(instant, "Asia/Kuala_Lumpur").Lunar.Day)
	assert.Equal(t, 9, e.Snapshot(instant, "UTC").Lunar.Day)
}

func TestSnapshotUnknownZoneFallsBackToLocal(t *testing.T) {
	e := newTestEngine()

	s := e.Snapshot(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "Mars/Olympus_Mons")
	assert.Equal(t, time.Local.String(), s.Zone)
	assert.Equal(t, time.Local, s.Time.Location())
	assert.NotEmpty(t, s.Zodiac.EN)
}

func TestSnapshotWithoutSolarTerm(t *testing.T) {
	e := newTestEngine(WithSolarTerms(SolarTermIndexerFunc(func(time.Time) (int, bool) { return 0, false })))

	s := e.Snapshot(time.Now(), "UTC")
	assert.Nil(t, s.SolarTerm)
}

func TestSnapshotOutOfRangeLunarWraps(t *testing.T) {
	e := newTestEngine(WithLunarCalendar(fixedLunar(LunarDate{Year: -5, Month: 14, Day: 45})))

	s := e.Snapshot(time.Now(), "UTC")
	assert.Equal(t, "二月十五", s.LunarText.ZH)
	assert.Equal(t, "Second Month, Day 15", s.LunarText.EN)
	assert.Equal(t, "乙卯年", s.GanzhiYear)
	assert.Equal(t, "兔", s.Zodiac.ZH)
}

func TestTodayUsesClock(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, 2, 10, 3, 0, 0, 0, time.UTC) }
	e := newTestEngine(WithClock(clock))

	s := e.Today("")
	assert.Equal(t, "2024-02-10", s.Date())
	assert.Equal(t, clock().In(e.Location("")), e.Now().In(e.Location("")))
	assert.Equal(t, "甲辰年", s.GanzhiYear)
}

func TestSnapshotDeterministic(t *testing.T) {
	e := newTestEngine()
	date := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, e.Snapshot(date, "Asia/Kuala_Lumpur"), e.Snapshot(date, "Asia/Kuala_Lumpur"))
}

func TestSnapshotConcurrent(t *testing.T) {
	e := newTestEngine()
	date := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	want := e.Snapshot(date, "Asia/Singapore")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, e.Snapshot(date, "Asia/Singapore"))
		}()
	}
	wg.Wait()
}

func TestPackageLevelDefaults(t *testing.T) {
	s := SnapshotAt(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), "")
	assert.Equal(t, DefaultZone, s.Zone)
	assert.Equal(t, "甲辰年", s.GanzhiYear)

	assert.NotEmpty(t, Today("").Zodiac.EN)
	assert.Same(t, Default(), Default())
}
