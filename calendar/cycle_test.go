package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/tongshu/lexicon"
	"github.com/teranos/tongshu/sym"
)

func TestZodiacIndexPeriodic(t *testing.T) {
	for y := -600; y <= 3000; y++ {
		require.Equal(t, ZodiacIndex(y), ZodiacIndex(y+12), "year %d", y)
		require.Equal(t, StemIndex(y), StemIndex(y+10), "year %d", y)

		i := ZodiacIndex(y)
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, 12)
	}
}

func TestZodiacAgreesWithBranch(t *testing.T) {
	for y := -600; y <= 3000; y++ {
		label := []rune(GanzhiYear(y))
		require.Len(t, label, 3, "year %d", y)
		assert.Equal(t, sym.Branches.Glyph(ZodiacIndex(y)), string(label[1]), "year %d", y)
		assert.Equal(t, sym.Stems.Glyph(StemIndex(y)), string(label[0]), "year %d", y)
	}
}

func TestGanzhiYear(t *testing.T) {
	tests := map[int]string{
		4:    "甲子年",
		3:    "癸亥年",
		1984: "甲子年",
		1990: "庚午年",
		2024: "甲辰年",
		2025: "乙巳年",
		-1:   "己未年",
	}
	for year, want := range tests {
		assert.Equal(t, want, GanzhiYear(year), "year %d", year)
	}

	assert.Equal(t, "马", sym.Zodiac.Glyph(ZodiacIndex(1990)))
	assert.Equal(t, "龙", sym.Zodiac.Glyph(ZodiacIndex(2024)))
	assert.Equal(t, "鼠", sym.Zodiac.Glyph(ZodiacIndex(4)))
}

func TestLunarText(t *testing.T) {
	assert.Equal(t, "九月十三", LunarText(9, 13))
	assert.Equal(t, "正月初一", LunarText(1, 1))
	assert.Equal(t, "腊月三十", LunarText(12, 30))

	// out of range wraps instead of failing
	assert.Equal(t, "正月初一", LunarText(13, 31))
	assert.Equal(t, "腊月三十", LunarText(0, 0))
}

func TestLunarTextTranslatesBack(t *testing.T) {
	for m := 1; m <= 12; m++ {
		for d := 1; d <= 30; d++ {
			want := sym.LunarMonths.At(m-1).English + ", " + sym.LunarDays.At(d-1).English
			assert.Equal(t, want, lexicon.LunarLabelToEnglish(LunarText(m, d)), "month %d day %d", m, d)
		}
	}
}

func TestDayGanzhi(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), "辛巳日"},
		{time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC), "庚辰日"},
		{time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), "戊午日"},
		{time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC), "戊午日"}, // 60 days later
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, DayGanzhi(tc.date), tc.date.String())
	}

	// the civil date in t's own location counts, not the UTC date
	kl, err := time.LoadLocation("Asia/Kuala_Lumpur")
	require.NoError(t, err)
	lateNight := time.Date(2000, 1, 1, 23, 30, 0, 0, kl)
	assert.Equal(t, "戊午日", DayGanzhi(lateNight))
	assert.Equal(t, "戊午日", DayGanzhi(time.Date(2000, 1, 1, 0, 30, 0, 0, kl)))
}

func TestDayCycleAdvancesDaily(t *testing.T) {
	start := time.Date(1899, 12, 1, 0, 0, 0, 0, time.UTC)
	prev := DayCycleIndex(start)
	for i := 1; i < 3*365; i++ {
		cur := DayCycleIndex(start.AddDate(0, 0, i))
		require.Equal(t, (prev+1)%60, cur, "day %d", i)
		prev = cur
	}
}

func TestClashAndMonthBranch(t *testing.T) {
	assert.Equal(t, 6, ClashIndex(0)) // 鼠 clashes with 马
	assert.Equal(t, 0, ClashIndex(6))
	assert.Equal(t, 5, ClashIndex(11))

	assert.Equal(t, "寅", sym.Branches.Glyph(MonthBranchIndex(1)))
	assert.Equal(t, "子", sym.Branches.Glyph(MonthBranchIndex(11)))
	assert.Equal(t, "丑", sym.Branches.Glyph(MonthBranchIndex(12)))
}

func TestCycleLabel(t *testing.T) {
	assert.Equal(t, "甲子", CycleLabel(0))
	assert.Equal(t, "癸亥", CycleLabel(59))
	assert.Equal(t, "甲子", CycleLabel(60))
}
