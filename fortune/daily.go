// Package fortune assembles bilingual almanac reports on top of calendar
// snapshots.
//
// Daily reports are derived: a luck index hashed from the zodiac and the
// day, fixed action and direction lists, the clash of the day's branch and
// prose chosen by luck. Monthly and yearly reports are supplied by the
// caller; this package pre-fills their date-derived fields, fills missing
// translations and loads them from TOML or YAML files.
package fortune

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/teranos/tongshu/calendar"
	"github.com/teranos/tongshu/lexicon"
)

// Luck index bounds.
const (
	MinLuck = 1
	MaxLuck = 5
)

// Daily is the almanac reading of one civil day.
type Daily struct {
	calendar.Snapshot `yaml:",inline"`

	LuckIndex int `json:"luck_index" yaml:"luck_index"`

	Good []lexicon.Bilingual `json:"good" yaml:"good"`
	Bad  []lexicon.Bilingual `json:"bad" yaml:"bad"`

	GoodDirection  lexicon.Bilingual `json:"good_direction" yaml:"good_direction"`
	GodOfHappiness lexicon.Bilingual `json:"god_of_happiness" yaml:"god_of_happiness"`
	GodOfWealth    lexicon.Bilingual `json:"god_of_wealth" yaml:"god_of_wealth"`
	GodOfBlessing  lexicon.Bilingual `json:"god_of_blessing" yaml:"god_of_blessing"`

	DayGanzhi   string            `json:"day_ganzhi" yaml:"day_ganzhi"`
	DayGanzhiEN string            `json:"day_ganzhi_en" yaml:"day_ganzhi_en"`
	ClashZodiac lexicon.Bilingual `json:"clash_zodiac" yaml:"clash_zodiac"`

	PengZuTaboo       []lexicon.Bilingual `json:"peng_zu_taboo" yaml:"peng_zu_taboo"`
	AuspiciousStars   []lexicon.Bilingual `json:"auspicious_stars" yaml:"auspicious_stars"`
	InauspiciousStars []lexicon.Bilingual `json:"inauspicious_stars" yaml:"inauspicious_stars"`

	Overall lexicon.Bilingual `json:"overall" yaml:"overall"`
}

var (
	goodActions = []string{"祈福", "祭拜", "出行", "理发", "纳财"}
	badActions  = []string{"诉讼", "搬家", "入宅", "开仓"}
)

const (
	luckyDirection     = "东南"
	happinessDirection = "南"
	wealthDirection    = "东南"
	blessingDirection  = "东北"
)

// LuckIndex scores a day from 1 to 5: (xxhash64(zodiac) + dayOfMonth) mod 5 + 1.
// The hash is stable across platforms and releases.
func LuckIndex(zodiac string, dayOfMonth int) int {
	sum := xxhash.Sum64String(zodiac) + uint64(dayOfMonth)
	return int(sum%MaxLuck) + MinLuck
}

// LuckSummary returns the prose sentence for a luck index. Values outside
// 2..5 read as a low energy day.
func LuckSummary(luck int) lexicon.Bilingual {
	switch luck {
	case 5:
		return lexicon.Bilingual{ZH: "大吉，诸事顺利。", EN: "Excellent luck — everything goes smoothly."}
	case 4:
		return lexicon.Bilingual{ZH: "吉祥如意，适合行动。", EN: "Good luck — suitable for actions and progress."}
	case 3:
		return lexicon.Bilingual{ZH: "平稳中带机遇，保持耐心。", EN: "Average luck — stay patient, opportunities arise."}
	case 2:
		return lexicon.Bilingual{ZH: "需谨慎行事，避免冲动。", EN: "Be cautious — avoid impulsive decisions."}
	default:
		return lexicon.Bilingual{ZH: "运势偏弱，宜静不宜动。", EN: "Low energy day — rest and plan ahead."}
	}
}

// OverallFortune renders the dated prose line for a luck index.
func OverallFortune(date string, luck int) lexicon.Bilingual {
	s := LuckSummary(luck)
	return lexicon.Bilingual{
		ZH: fmt.Sprintf("今日（%s）整体运势：%s", date, s.ZH),
		EN: fmt.Sprintf("Overall fortune for %s: %s", date, s.EN),
	}
}

// NewDaily derives the daily report from a snapshot.
func NewDaily(s calendar.Snapshot) Daily {
	luck := LuckIndex(s.Zodiac.ZH, s.Time.Day())
	dayIdx := calendar.DayCycleIndex(s.Time)
	dayGanzhi := calendar.DayGanzhi(s.Time)

	return Daily{
		Snapshot:          s,
		LuckIndex:         luck,
		Good:              lexicon.TranslateAll(lexicon.Action, goodActions),
		Bad:               lexicon.TranslateAll(lexicon.Action, badActions),
		GoodDirection:     lexicon.Translate(lexicon.Direction, luckyDirection),
		GodOfHappiness:    lexicon.Translate(lexicon.Direction, happinessDirection),
		GodOfWealth:       lexicon.Translate(lexicon.Direction, wealthDirection),
		GodOfBlessing:     lexicon.Translate(lexicon.Direction, blessingDirection),
		DayGanzhi:         dayGanzhi,
		DayGanzhiEN:       lexicon.StemBranchToEnglish(dayGanzhi),
		ClashZodiac:       lexicon.Translate(lexicon.Zodiac, clashZodiac(dayIdx)),
		PengZuTaboo:       []lexicon.Bilingual{},
		AuspiciousStars:   []lexicon.Bilingual{},
		InauspiciousStars: []lexicon.Bilingual{},
		Overall:           OverallFortune(s.Date(), luck),
	}
}
