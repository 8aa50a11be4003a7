package fortune

import (
	"github.com/teranos/tongshu/calendar"
	"github.com/teranos/tongshu/errors"
	"github.com/teranos/tongshu/lexicon"
	"github.com/teranos/tongshu/sym"
)

// Default luck indices for caller-supplied reports.
const (
	DefaultMonthlyLuck = 3
	DefaultYearlyLuck  = 4
)

// Monthly is a caller-supplied report for one lunar month.
type Monthly struct {
	Year  int `json:"year" yaml:"year" toml:"year"`
	Month int `json:"month" yaml:"month" toml:"month"`

	// LunarMonthName is the month's earthly branch, e.g. 戌 (Xu).
	LunarMonthName  lexicon.Bilingual `json:"lunar_month_name" yaml:"lunar_month_name" toml:"lunar_month_name"`
	DominantElement lexicon.Bilingual `json:"dominant_element" yaml:"dominant_element" toml:"dominant_element"`
	LuckIndex       int               `json:"luck_index" yaml:"luck_index" toml:"luck_index"`

	Wealth  lexicon.Bilingual `json:"wealth" yaml:"wealth" toml:"wealth"`
	Love    lexicon.Bilingual `json:"love" yaml:"love" toml:"love"`
	Career  lexicon.Bilingual `json:"career" yaml:"career" toml:"career"`
	Health  lexicon.Bilingual `json:"health" yaml:"health" toml:"health"`
	Summary lexicon.Bilingual `json:"summary" yaml:"summary" toml:"summary"`
}

// Yearly is a caller-supplied report for one lunar year.
type Yearly struct {
	Year      int               `json:"year" yaml:"year" toml:"year"`
	Zodiac    lexicon.Bilingual `json:"zodiac" yaml:"zodiac" toml:"zodiac"`
	Element   lexicon.Bilingual `json:"element" yaml:"element" toml:"element"`
	LuckIndex int               `json:"luck_index" yaml:"luck_index" toml:"luck_index"`

	Wealth lexicon.Bilingual `json:"wealth" yaml:"wealth" toml:"wealth"`
	Career lexicon.Bilingual `json:"career" yaml:"career" toml:"career"`
	Love   lexicon.Bilingual `json:"love" yaml:"love" toml:"love"`
	Health lexicon.Bilingual `json:"health" yaml:"health" toml:"health"`

	LuckyDirection   lexicon.Bilingual `json:"lucky_direction" yaml:"lucky_direction" toml:"lucky_direction"`
	UnluckyDirection lexicon.Bilingual `json:"unlucky_direction" yaml:"unlucky_direction" toml:"unlucky_direction"`

	// BestMonths and CautionMonths name months by their zodiac: "Goat, Monkey".
	BestMonths    lexicon.Bilingual `json:"best_months" yaml:"best_months" toml:"best_months"`
	CautionMonths lexicon.Bilingual `json:"caution_months" yaml:"caution_months" toml:"caution_months"`

	Summary   lexicon.Bilingual `json:"summary" yaml:"summary" toml:"summary"`
	LuckCycle lexicon.Bilingual `json:"luck_cycle" yaml:"luck_cycle" toml:"luck_cycle"`
}

// NewMonthly returns an empty monthly report with the default luck index.
func NewMonthly() Monthly {
	return Monthly{LuckIndex: DefaultMonthlyLuck}
}

// NewYearly returns an empty yearly report with the default luck index.
func NewYearly() Yearly {
	return Yearly{LuckIndex: DefaultYearlyLuck}
}

// MonthlySkeleton pre-fills the date-derived fields of a lunar month: its
// branch (the first month is 寅) and that branch's element.
func MonthlySkeleton(lunarYear, lunarMonth int) Monthly {
	m := NewMonthly()
	m.Year = lunarYear
	m.Month = lunarMonth

	branch := sym.Branches.At(calendar.MonthBranchIndex(lunarMonth))
	m.LunarMonthName = lexicon.Bilingual{ZH: branch.Glyph, EN: branch.English}
	m.DominantElement = lexicon.Translate(lexicon.Element, branch.Element)
	return m
}

// YearlySkeleton pre-fills the zodiac and the element of the year's stem.
func YearlySkeleton(lunarYear int) Yearly {
	y := NewYearly()
	y.Year = lunarYear
	y.Zodiac = lexicon.Translate(lexicon.Zodiac, sym.Zodiac.Glyph(calendar.ZodiacIndex(lunarYear)))
	y.Element = lexicon.Translate(lexicon.Element, sym.Stems.At(calendar.StemIndex(lunarYear)).Element)
	return y
}

// completeTerm fills whichever side of b is empty through domain d.
func completeTerm(b *lexicon.Bilingual, d lexicon.Domain) {
	switch {
	case b.EN == "" && b.ZH != "":
		b.EN = lexicon.ToEnglish(d, b.ZH)
	case b.ZH == "" && b.EN != "":
		b.ZH = lexicon.ToSource(d, b.EN)
	}
}

// completeList fills whichever side of a delimited list is empty.
func completeList(b *lexicon.Bilingual, d lexicon.Domain) {
	switch {
	case b.EN == "" && b.ZH != "":
		b.EN = lexicon.CompositeToEnglish(d, b.ZH)
	case b.ZH == "" && b.EN != "":
		b.ZH = lexicon.CompositeToSource(d, b.EN)
	}
}

// completeBranch fills a branch name from either side.
func completeBranch(b *lexicon.Bilingual) {
	for _, e := range sym.Branches.Entries() {
		switch {
		case b.EN == "" && b.ZH == e.Glyph:
			b.EN = e.English
			return
		case b.ZH == "" && b.EN == e.English:
			b.ZH = e.Glyph
			return
		}
	}
}

// Complete fills empty translations of symbolic fields. Prose fields are
// left as supplied.
func (m *Monthly) Complete() {
	completeBranch(&m.LunarMonthName)
	completeTerm(&m.DominantElement, lexicon.Element)
}

// Complete fills empty translations of symbolic fields. Prose fields are
// left as supplied.
func (y *Yearly) Complete() {
	completeTerm(&y.Zodiac, lexicon.Zodiac)
	completeTerm(&y.Element, lexicon.Element)
	completeList(&y.LuckyDirection, lexicon.Direction)
	completeList(&y.UnluckyDirection, lexicon.Direction)
	completeList(&y.BestMonths, lexicon.Zodiac)
	completeList(&y.CautionMonths, lexicon.Zodiac)
}

func validateLuck(luck int) error {
	if luck < MinLuck || luck > MaxLuck {
		return errors.NewInvalidInputError("luck_index %d out of range %d-%d", luck, MinLuck, MaxLuck)
	}
	return nil
}

// Validate checks month and luck ranges.
func (m Monthly) Validate() error {
	if m.Month < 1 || m.Month > 12 {
		return errors.NewInvalidInputError("month %d out of range 1-12", m.Month)
	}
	return validateLuck(m.LuckIndex)
}

// Validate checks the luck range.
func (y Yearly) Validate() error {
	return validateLuck(y.LuckIndex)
}
