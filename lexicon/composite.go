package lexicon

import (
	"fmt"
	"strings"

	"github.com/teranos/tongshu/sym"
)

// ideographicComma joins translated Chinese directions: 东、东南
const ideographicComma = "、"

// LunarLabelToEnglish translates a lunar date label such as "九月十三" into
// "Ninth Month, Day 13".
//
// Months are searched in table order and, for each month, days in table
// order. The first pair where both tokens occur in the label wins, so a label
// carrying two day tokens resolves to the one earlier in the day table.
// Labels without a month and a day token are returned unchanged.
func LunarLabelToEnglish(label string) string {
	months := sym.LunarMonths.Entries()
	days := sym.LunarDays.Entries()
	for _, m := range months {
		if !strings.Contains(label, m.Glyph) {
			continue
		}
		for _, d := range days {
			if strings.Contains(label, d.Glyph) {
				return m.English + ", " + d.English
			}
		}
	}
	return label
}

func isListDelimiter(r rune) bool {
	switch r {
	case '/', ',', '、', ' ':
		return true
	}
	return false
}

func splitList(text string) []string {
	var parts []string
	for _, p := range strings.FieldsFunc(text, isListDelimiter) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// CompositeToSource translates a delimited English list such as
// "Goat, Monkey" into "羊、猴". Parts are split on '/', ',', '、' and spaces,
// so multi-word glosses ("Move house") do not survive the split. Blank input
// is returned as is; input made only of delimiters yields "".
func CompositeToSource(d Domain, text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	return strings.Join(ToSourceBatch(d, splitList(text)), ideographicComma)
}

// CompositeToEnglish translates a delimited Chinese list such as "东、东南"
// into "East, Southeast".
func CompositeToEnglish(d Domain, text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	return strings.Join(ToEnglishBatch(d, splitList(text)), ", ")
}

// CompositeDirectionToSource translates "East / Southeast" into "东、东南".
func CompositeDirectionToSource(text string) string {
	return CompositeToSource(Direction, text)
}

// CompositeDirectionToEnglish translates "东、东南" into "East, Southeast".
func CompositeDirectionToEnglish(text string) string {
	return CompositeToEnglish(Direction, text)
}

// StemBranchToEnglish renders a stem-branch label such as "庚午年" as
// "Geng (Metal Yang)–Wu (Horse) Year", stem and branch joined by an en
// dash. A trailing 年 or 日 becomes Year or
// Day. Labels shorter than two runes are returned unchanged, and an unknown
// stem or branch glyph is kept as is.
func StemBranchToEnglish(label string) string {
	runes := []rune(label)
	if len(runes) < 2 {
		return label
	}
	stem, branch := string(runes[0]), string(runes[1])

	stemEN := stem
	if i, ok := sym.Stems.Index(stem); ok {
		e := sym.Stems.At(i)
		stemEN = fmt.Sprintf("%s (%s %s)", e.English, ToEnglish(Element, e.Element), e.Polarity)
	}
	branchEN := branch
	if i, ok := sym.Branches.Index(branch); ok {
		branchEN = fmt.Sprintf("%s (%s)", sym.Branches.At(i).English, sym.Zodiac.At(i).English)
	}

	out := stemEN + "–" + branchEN
	if len(runes) > 2 {
		switch string(runes[2]) {
		case sym.YearSuffix:
			out += " Year"
		case sym.DaySuffix:
			out += " Day"
		}
	}
	return out
}

// GanzhiYearToEnglish renders a stem-branch year with its zodiac animal:
// "庚午年", "马" becomes "Geng (Metal Yang)–Wu (Horse) Year (Horse)".
func GanzhiYearToEnglish(label, zodiac string) string {
	if len([]rune(label)) < 2 {
		return label
	}
	return fmt.Sprintf("%s (%s)", StemBranchToEnglish(label), ToEnglish(Zodiac, zodiac))
}
