// Package display renders calendar snapshots and fortune reports for the
// console with pterm, and encodes them as JSON, YAML or TOML.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/tongshu/calendar"
	"github.com/teranos/tongshu/fortune"
	"github.com/teranos/tongshu/lexicon"
)

// Renderer writes human-readable reports to w.
type Renderer struct {
	w    io.Writer
	lang Lang
}

// NewRenderer returns a renderer writing to w in lang.
func NewRenderer(w io.Writer, lang Lang) *Renderer {
	return &Renderer{w: w, lang: lang}
}

type rows [][]string

func (r *Renderer) row(rs rows, zh, en, value string) rows {
	if value == "" {
		return rs
	}
	return append(rs, []string{r.lang.Label(zh, en), value})
}

func (r *Renderer) section(title string) error {
	_, err := fmt.Fprint(r.w, pterm.DefaultSection.Sprint(title))
	return err
}

func (r *Renderer) table(rs rows) error {
	out, err := pterm.DefaultTable.WithData(pterm.TableData(rs)).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.w, out)
	return err
}

// LuckStars renders a luck index as five stars, "★★★☆☆ 3/5".
func LuckStars(luck int) string {
	filled := luck
	if filled < 0 {
		filled = 0
	}
	if filled > fortune.MaxLuck {
		filled = fortune.MaxLuck
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", fortune.MaxLuck-filled) +
		fmt.Sprintf(" %d/%d", luck, fortune.MaxLuck)
}

func (r *Renderer) snapshotRows(s calendar.Snapshot) rows {
	var rs rows
	rs = r.row(rs, "公历", "Date", fmt.Sprintf("%s %s (%s)", s.Date(), s.Time.Format("15:04"), s.Zone))
	rs = r.row(rs, "农历", "Lunar date", r.lang.Pick(s.LunarText))
	rs = r.row(rs, "生肖", "Zodiac", r.lang.Pick(s.Zodiac))
	rs = r.row(rs, "干支", "Year", r.lang.Pick(lexicon.Bilingual{ZH: s.GanzhiYear, EN: s.GanzhiYearEN}))
	term := "-"
	if s.SolarTerm != nil {
		term = r.lang.Pick(*s.SolarTerm)
	}
	return r.row(rs, "节气", "Solar term", term)
}

// Snapshot renders the calendar reading.
func (r *Renderer) Snapshot(s calendar.Snapshot) error {
	if err := r.section(r.lang.Label("今日", "Today")); err != nil {
		return err
	}
	return r.table(r.snapshotRows(s))
}

// Daily renders the calendar reading followed by the day's fortune.
func (r *Renderer) Daily(d fortune.Daily) error {
	if err := r.Snapshot(d.Snapshot); err != nil {
		return err
	}
	if err := r.section(r.lang.Label("黄历", "Almanac")); err != nil {
		return err
	}

	var rs rows
	rs = r.row(rs, "运势", "Luck", LuckStars(d.LuckIndex))
	rs = r.row(rs, "宜", "Good for", r.lang.PickList(d.Good))
	rs = r.row(rs, "忌", "Avoid", r.lang.PickList(d.Bad))
	rs = r.row(rs, "吉方", "Lucky direction", r.lang.Pick(d.GoodDirection))
	rs = r.row(rs, "喜神", "God of happiness", r.lang.Pick(d.GodOfHappiness))
	rs = r.row(rs, "财神", "God of wealth", r.lang.Pick(d.GodOfWealth))
	rs = r.row(rs, "福神", "God of blessing", r.lang.Pick(d.GodOfBlessing))
	rs = r.row(rs, "日柱", "Day", r.lang.Pick(lexicon.Bilingual{ZH: d.DayGanzhi, EN: d.DayGanzhiEN}))
	rs = r.row(rs, "冲", "Clash", r.lang.Pick(d.ClashZodiac))
	rs = r.row(rs, "彭祖百忌", "Peng Zu taboo", r.lang.PickList(d.PengZuTaboo))
	rs = r.row(rs, "吉神", "Auspicious stars", r.lang.PickList(d.AuspiciousStars))
	rs = r.row(rs, "凶煞", "Inauspicious stars", r.lang.PickList(d.InauspiciousStars))
	if err := r.table(rs); err != nil {
		return err
	}

	return r.prose(d.Overall)
}

// prose prints each language on its own line.
func (r *Renderer) prose(b lexicon.Bilingual) error {
	var lines []string
	switch r.lang {
	case English, Chinese:
		lines = []string{r.lang.Pick(b)}
	default:
		lines = []string{b.ZH, b.EN}
	}
	for _, l := range lines {
		if l == "" {
			continue
		}
		if _, err := fmt.Fprintln(r.w, l); err != nil {
			return err
		}
	}
	return nil
}

// Monthly renders a monthly report. Empty prose fields are skipped.
func (r *Renderer) Monthly(m fortune.Monthly) error {
	title := r.lang.Label(
		fmt.Sprintf("%d年 农历%d月", m.Year, m.Month),
		fmt.Sprintf("Lunar month %d, %d", m.Month, m.Year))
	if err := r.section(title); err != nil {
		return err
	}

	var rs rows
	rs = r.row(rs, "月建", "Month branch", r.lang.Pick(m.LunarMonthName))
	rs = r.row(rs, "五行", "Element", r.lang.Pick(m.DominantElement))
	rs = r.row(rs, "运势", "Luck", LuckStars(m.LuckIndex))
	rs = r.row(rs, "财运", "Wealth", r.lang.Pick(m.Wealth))
	rs = r.row(rs, "感情", "Love", r.lang.Pick(m.Love))
	rs = r.row(rs, "事业", "Career", r.lang.Pick(m.Career))
	rs = r.row(rs, "健康", "Health", r.lang.Pick(m.Health))
	if err := r.table(rs); err != nil {
		return err
	}
	return r.prose(m.Summary)
}

// Yearly renders a yearly report. Empty prose fields are skipped.
func (r *Renderer) Yearly(y fortune.Yearly) error {
	title := r.lang.Label(fmt.Sprintf("%d年", y.Year), fmt.Sprintf("Year %d", y.Year))
	if err := r.section(title); err != nil {
		return err
	}

	var rs rows
	rs = r.row(rs, "生肖", "Zodiac", r.lang.Pick(y.Zodiac))
	rs = r.row(rs, "五行", "Element", r.lang.Pick(y.Element))
	rs = r.row(rs, "运势", "Luck", LuckStars(y.LuckIndex))
	rs = r.row(rs, "财运", "Wealth", r.lang.Pick(y.Wealth))
	rs = r.row(rs, "事业", "Career", r.lang.Pick(y.Career))
	rs = r.row(rs, "感情", "Love", r.lang.Pick(y.Love))
	rs = r.row(rs, "健康", "Health", r.lang.Pick(y.Health))
	rs = r.row(rs, "吉方", "Lucky direction", r.lang.Pick(y.LuckyDirection))
	rs = r.row(rs, "凶方", "Unlucky direction", r.lang.Pick(y.UnluckyDirection))
	rs = r.row(rs, "旺月", "Best months", r.lang.Pick(y.BestMonths))
	rs = r.row(rs, "慎月", "Caution months", r.lang.Pick(y.CautionMonths))
	rs = r.row(rs, "大运", "Luck cycle", r.lang.Pick(y.LuckCycle))
	if err := r.table(rs); err != nil {
		return err
	}
	return r.prose(y.Summary)
}

// Glossary renders a two-column table of translation pairs.
func (r *Renderer) Glossary(title string, entries []lexicon.Bilingual) error {
	if err := r.section(title); err != nil {
		return err
	}
	rs := rows{{"中文", "English"}}
	for _, e := range entries {
		rs = append(rs, []string{e.ZH, e.EN})
	}
	return r.table(rs)
}
