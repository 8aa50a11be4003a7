// Package sym defines the canonical symbol tables of the Chinese calendar.
//
// Each table is a fixed, ordered list of Chinese glyphs with one canonical
// English gloss. The position in the table is the identity of the symbol:
// index i of Zodiac, Branches and the (year - 4) cycles all line up, so code
// elsewhere indexes tables with modular arithmetic instead of string lookups.
//
// Tables are built once at package load and never mutated. Callers get
// values, never the backing slices.
package sym

// Suffix glyphs appended to stem-branch labels.
const (
	YearSuffix = "年" // 庚午年
	DaySuffix  = "日" // 戊午日
)

// Polarity of a heavenly stem.
const (
	Yang = "Yang"
	Yin  = "Yin"
)

// Entry is one row of a symbol table.
type Entry struct {
	Glyph    string // canonical Chinese symbol
	English  string // canonical English gloss
	Pinyin   string
	Element  string // five-element glyph, stems and branches only
	Polarity string // Yang or Yin, stems only
}

// Table is an immutable ordered symbol table.
type Table struct {
	name    string
	entries []Entry
	index   map[string]int
}

func newTable(name string, entries []Entry) *Table {
	t := &Table{
		name:    name,
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		t.index[e.Glyph] = i
	}
	return t
}

// Name returns the table name, e.g. "zodiac".
func (t *Table) Name() string { return t.name }

// Len returns the fixed table size.
func (t *Table) Len() int { return len(t.entries) }

// At returns the entry at i, normalizing any integer into range with a
// non-negative modulo. At(-1) on the zodiac table is the Pig.
func (t *Table) At(i int) Entry {
	return t.entries[Mod(i, len(t.entries))]
}

// Glyph is shorthand for At(i).Glyph.
func (t *Table) Glyph(i int) string {
	return t.At(i).Glyph
}

// Index returns the position of a glyph in the table.
func (t *Table) Index(glyph string) (int, bool) {
	i, ok := t.index[glyph]
	return i, ok
}

// Entries returns a copy of the table rows in canonical order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Mod returns a mod n in the range [0, n). Go's % keeps the sign of the
// dividend, which would index out of range for years before the anchor.
func Mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Stems are the ten heavenly stems.
var Stems = newTable("stems", []Entry{
	{Glyph: "甲", English: "Jia", Pinyin: "jiǎ", Element: "木", Polarity: Yang},
	{Glyph: "乙", English: "Yi", Pinyin: "yǐ", Element: "木", Polarity: Yin},
	{Glyph: "丙", English: "Bing", Pinyin: "bǐng", Element: "火", Polarity: Yang},
	{Glyph: "丁", English: "Ding", Pinyin: "dīng", Element: "火", Polarity: Yin},
	{Glyph: "戊", English: "Wu", Pinyin: "wù", Element: "土", Polarity: Yang},
	{Glyph: "己", English: "Ji", Pinyin: "jǐ", Element: "土", Polarity: Yin},
	{Glyph: "庚", English: "Geng", Pinyin: "gēng", Element: "金", Polarity: Yang},
	{Glyph: "辛", English: "Xin", Pinyin: "xīn", Element: "金", Polarity: Yin},
	{Glyph: "壬", English: "Ren", Pinyin: "rén", Element: "水", Polarity: Yang},
	{Glyph: "癸", English: "Gui", Pinyin: "guǐ", Element: "水", Polarity: Yin},
})

// Branches are the twelve earthly branches. Branch i belongs to Zodiac i.
var Branches = newTable("branches", []Entry{
	{Glyph: "子", English: "Zi", Pinyin: "zǐ", Element: "水"},
	{Glyph: "丑", English: "Chou", Pinyin: "chǒu", Element: "土"},
	{Glyph: "寅", English: "Yin", Pinyin: "yín", Element: "木"},
	{Glyph: "卯", English: "Mao", Pinyin: "mǎo", Element: "木"},
	{Glyph: "辰", English: "Chen", Pinyin: "chén", Element: "土"},
	{Glyph: "巳", English: "Si", Pinyin: "sì", Element: "火"},
	{Glyph: "午", English: "Wu", Pinyin: "wǔ", Element: "火"},
	{Glyph: "未", English: "Wei", Pinyin: "wèi", Element: "土"},
	{Glyph: "申", English: "Shen", Pinyin: "shēn", Element: "金"},
	{Glyph: "酉", English: "You", Pinyin: "yǒu", Element: "金"},
	{Glyph: "戌", English: "Xu", Pinyin: "xū", Element: "土"},
	{Glyph: "亥", English: "Hai", Pinyin: "hài", Element: "水"},
})

// Zodiac are the twelve animals, index 0 = Rat.
var Zodiac = newTable("zodiac", []Entry{
	{Glyph: "鼠", English: "Rat", Pinyin: "shǔ"},
	{Glyph: "牛", English: "Ox", Pinyin: "niú"},
	{Glyph: "虎", English: "Tiger", Pinyin: "hǔ"},
	{Glyph: "兔", English: "Rabbit", Pinyin: "tù"},
	{Glyph: "龙", English: "Dragon", Pinyin: "lóng"},
	{Glyph: "蛇", English: "Snake", Pinyin: "shé"},
	{Glyph: "马", English: "Horse", Pinyin: "mǎ"},
	{Glyph: "羊", English: "Goat", Pinyin: "yáng"},
	{Glyph: "猴", English: "Monkey", Pinyin: "hóu"},
	{Glyph: "鸡", English: "Rooster", Pinyin: "jī"},
	{Glyph: "狗", English: "Dog", Pinyin: "gǒu"},
	{Glyph: "猪", English: "Pig", Pinyin: "zhū"},
})

// LunarMonths are the month names, index 0 = 正月.
var LunarMonths = newTable("lunar_months", []Entry{
	{Glyph: "正月", English: "First Month"},
	{Glyph: "二月", English: "Second Month"},
	{Glyph: "三月", English: "Third Month"},
	{Glyph: "四月", English: "Fourth Month"},
	{Glyph: "五月", English: "Fifth Month"},
	{Glyph: "六月", English: "Sixth Month"},
	{Glyph: "七月", English: "Seventh Month"},
	{Glyph: "八月", English: "Eighth Month"},
	{Glyph: "九月", English: "Ninth Month"},
	{Glyph: "十月", English: "Tenth Month"},
	{Glyph: "冬月", English: "Eleventh Month"},
	{Glyph: "腊月", English: "Twelfth Month"},
})

// LunarDays are the day names, index 0 = 初一.
var LunarDays = newTable("lunar_days", []Entry{
	{Glyph: "初一", English: "Day 1"},
	{Glyph: "初二", English: "Day 2"},
	{Glyph: "初三", English: "Day 3"},
	{Glyph: "初四", English: "Day 4"},
	{Glyph: "初五", English: "Day 5"},
	{Glyph: "初六", English: "Day 6"},
	{Glyph: "初七", English: "Day 7"},
	{Glyph: "初八", English: "Day 8"},
	{Glyph: "初九", English: "Day 9"},
	{Glyph: "初十", English: "Day 10"},
	{Glyph: "十一", English: "Day 11"},
	{Glyph: "十二", English: "Day 12"},
	{Glyph: "十三", English: "Day 13"},
	{Glyph: "十四", English: "Day 14"},
	{Glyph: "十五", English: "Day 15"},
	{Glyph: "十六", English: "Day 16"},
	{Glyph: "十七", English: "Day 17"},
	{Glyph: "十八", English: "Day 18"},
	{Glyph: "十九", English: "Day 19"},
	{Glyph: "二十", English: "Day 20"},
	{Glyph: "廿一", English: "Day 21"},
	{Glyph: "廿二", English: "Day 22"},
	{Glyph: "廿三", English: "Day 23"},
	{Glyph: "廿四", English: "Day 24"},
	{Glyph: "廿五", English: "Day 25"},
	{Glyph: "廿六", English: "Day 26"},
	{Glyph: "廿七", English: "Day 27"},
	{Glyph: "廿八", English: "Day 28"},
	{Glyph: "廿九", English: "Day 29"},
	{Glyph: "三十", English: "Day 30"},
})

// SolarTerms are the 24 terms in Gregorian order starting with 小寒 (early January).
var SolarTerms = newTable("solar_terms", []Entry{
	{Glyph: "小寒", English: "Minor Cold", Pinyin: "xiǎohán"},
	{Glyph: "大寒", English: "Major Cold", Pinyin: "dàhán"},
	{Glyph: "立春", English: "Beginning of Spring", Pinyin: "lìchūn"},
	{Glyph: "雨水", English: "Rain Water", Pinyin: "yǔshuǐ"},
	{Glyph: "惊蛰", English: "Awakening of Insects", Pinyin: "jīngzhé"},
	{Glyph: "春分", English: "Spring Equinox", Pinyin: "chūnfēn"},
	{Glyph: "清明", English: "Pure Brightness (Qingming)", Pinyin: "qīngmíng"},
	{Glyph: "谷雨", English: "Grain Rain", Pinyin: "gǔyǔ"},
	{Glyph: "立夏", English: "Beginning of Summer", Pinyin: "lìxià"},
	{Glyph: "小满", English: "Lesser Fullness of Grain", Pinyin: "xiǎomǎn"},
	{Glyph: "芒种", English: "Grain in Ear", Pinyin: "mángzhòng"},
	{Glyph: "夏至", English: "Summer Solstice", Pinyin: "xiàzhì"},
	{Glyph: "小暑", English: "Minor Heat", Pinyin: "xiǎoshǔ"},
	{Glyph: "大暑", English: "Major Heat", Pinyin: "dàshǔ"},
	{Glyph: "立秋", English: "Beginning of Autumn", Pinyin: "lìqiū"},
	{Glyph: "处暑", English: "End of Heat", Pinyin: "chǔshǔ"},
	{Glyph: "白露", English: "White Dew", Pinyin: "báilù"},
	{Glyph: "秋分", English: "Autumn Equinox", Pinyin: "qiūfēn"},
	{Glyph: "寒露", English: "Cold Dew", Pinyin: "hánlù"},
	{Glyph: "霜降", English: "Frost Descent", Pinyin: "shuāngjiàng"},
	{Glyph: "立冬", English: "Beginning of Winter", Pinyin: "lìdōng"},
	{Glyph: "小雪", English: "Minor Snow", Pinyin: "xiǎoxuě"},
	{Glyph: "大雪", English: "Major Snow", Pinyin: "dàxuě"},
	{Glyph: "冬至", English: "Winter Solstice", Pinyin: "dōngzhì"},
})

// Elements are the five phases in generating order.
var Elements = newTable("elements", []Entry{
	{Glyph: "木", English: "Wood", Pinyin: "mù"},
	{Glyph: "火", English: "Fire", Pinyin: "huǒ"},
	{Glyph: "土", English: "Earth", Pinyin: "tǔ"},
	{Glyph: "金", English: "Metal", Pinyin: "jīn"},
	{Glyph: "水", English: "Water", Pinyin: "shuǐ"},
})

// All lists every table, in the order they are documented above.
func All() []*Table {
	return []*Table{Stems, Branches, Zodiac, LunarMonths, LunarDays, SolarTerms, Elements}
}
