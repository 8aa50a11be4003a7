package calendar

import (
	"time"

	"github.com/teranos/tongshu/sym"
)

// cycleAnchor is the offset that puts year 4 at 甲子 (Jia-Zi, the Rat).
// Zodiac, stem and branch all share it so they always agree.
const cycleAnchor = 4

// epochDayCycle is the sexagenary index of 1970-01-01 (辛巳).
const epochDayCycle = 17

const secondsPerDay = 24 * 60 * 60

// ZodiacIndex returns the index into sym.Zodiac for a lunar year.
func ZodiacIndex(lunarYear int) int {
	return sym.Mod(lunarYear-cycleAnchor, sym.Zodiac.Len())
}

// StemIndex returns the index into sym.Stems for a lunar year.
func StemIndex(lunarYear int) int {
	return sym.Mod(lunarYear-cycleAnchor, sym.Stems.Len())
}

// YearCycleIndex returns the position of a lunar year in the 60-year cycle.
func YearCycleIndex(lunarYear int) int {
	return sym.Mod(lunarYear-cycleAnchor, 60)
}

// CycleLabel renders a sexagenary index as stem+branch, e.g. 0 -> 甲子.
func CycleLabel(i int) string {
	return sym.Stems.Glyph(i) + sym.Branches.Glyph(i)
}

// GanzhiYear renders the stem-branch label of a lunar year: 1990 -> 庚午年.
func GanzhiYear(lunarYear int) string {
	return CycleLabel(YearCycleIndex(lunarYear)) + sym.YearSuffix
}

// LunarText renders a lunar month and day: (9, 13) -> 九月十三. Out-of-range
// values wrap into the tables instead of failing.
func LunarText(month, day int) string {
	return sym.LunarMonths.Glyph(month-1) + sym.LunarDays.Glyph(day-1)
}

// civilDays counts days from 1970-01-01 to the civil date of t in its own
// location.
func civilDays(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

// DayCycleIndex returns the position of t's civil date in the 60-day cycle.
func DayCycleIndex(t time.Time) int {
	return sym.Mod(epochDayCycle+civilDays(t), 60)
}

// DayGanzhi renders the stem-branch label of t's civil date: 2000-01-01 -> 戊午日.
func DayGanzhi(t time.Time) string {
	return CycleLabel(DayCycleIndex(t)) + sym.DaySuffix
}

// ClashIndex returns the branch (and zodiac) index opposite i on the
// twelve-branch circle.
func ClashIndex(i int) int {
	return sym.Mod(i+6, sym.Branches.Len())
}

// MonthBranchIndex returns the branch of a lunar month. The first month is
// 寅 (Tiger).
func MonthBranchIndex(lunarMonth int) int {
	return sym.Mod(lunarMonth+1, sym.Branches.Len())
}
