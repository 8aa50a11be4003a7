// Package lexicon translates Chinese calendar vocabulary between Chinese and
// English.
//
// Each Domain owns a forward (Chinese to English) and an inverse (English to
// Chinese) map, built once in init from the ordered tables in package sym and
// the registries below. A lookup miss returns the input unchanged; nothing in
// this package returns an error.
//
// A domain may accept several Chinese spellings for one concept (北 and 正北
// are both North). Aliases only exist in the forward map, so the inverse
// lookup always lands on the canonical spelling.
package lexicon

import (
	"strings"

	"github.com/teranos/tongshu/sym"
)

// Domain selects a translation table.
type Domain int

const (
	Zodiac Domain = iota
	Direction
	Action
	SolarTerm
	Element
)

var domainNames = map[Domain]string{
	Zodiac:    "zodiac",
	Direction: "direction",
	Action:    "action",
	SolarTerm: "term",
	Element:   "element",
}

func (d Domain) String() string {
	if name, ok := domainNames[d]; ok {
		return name
	}
	return "unknown"
}

// Domains lists every translation domain.
func Domains() []Domain {
	return []Domain{Zodiac, Direction, Action, SolarTerm, Element}
}

// ParseDomain maps a CLI-style name ("zodiac", "term", ...) to a Domain.
func ParseDomain(name string) (Domain, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "solarterm" || lower == "solar_term" || lower == "solar-term" {
		return SolarTerm, true
	}
	for d, n := range domainNames {
		if n == lower {
			return d, true
		}
	}
	return 0, false
}

// Bilingual is a Chinese value paired with its English rendering.
type Bilingual struct {
	ZH string `json:"zh" yaml:"zh" toml:"zh"`
	EN string `json:"en" yaml:"en" toml:"en"`
}

// Translate pairs a Chinese symbol with its English gloss from the domain.
func Translate(d Domain, zh string) Bilingual {
	return Bilingual{ZH: zh, EN: ToEnglish(d, zh)}
}

// TranslateAll pairs every symbol in zh with its English gloss.
func TranslateAll(d Domain, zh []string) []Bilingual {
	out := make([]Bilingual, len(zh))
	for i, s := range zh {
		out[i] = Translate(d, s)
	}
	return out
}

// IsZero reports whether both sides are empty.
func (b Bilingual) IsZero() bool {
	return b.ZH == "" && b.EN == ""
}

// String renders "龙 (Dragon)", or the non-empty side alone.
func (b Bilingual) String() string {
	switch {
	case b.ZH == "":
		return b.EN
	case b.EN == "" || b.EN == b.ZH:
		return b.ZH
	default:
		return b.ZH + " (" + b.EN + ")"
	}
}

// entry is one registry row: the canonical Chinese spelling, its English
// gloss, and any extra Chinese spellings that translate to the same gloss.
type entry struct {
	source  string
	english string
	aliases []string
}

var directionRegistry = []entry{
	{"北", "North", []string{"正北"}},
	{"东北", "Northeast", nil},
	{"东", "East", []string{"正东"}},
	{"东南", "Southeast", nil},
	{"南", "South", []string{"正南"}},
	{"西南", "Southwest", nil},
	{"西", "West", []string{"正西"}},
	{"西北", "Northwest", nil},
	{"北偏西", "North-Northwest", nil},
	{"中宫", "Center", nil},
}

var actionRegistry = []entry{
	{"出行", "Travel", nil},
	{"祈福", "Prayer", nil},
	{"祭拜", "Worship", nil},
	{"理发", "Haircut", nil},
	{"纳财", "Receive wealth", nil},
	{"谈判", "Negotiation", nil},
	{"签约", "Sign contract", nil},
	{"诉讼", "Lawsuit", nil},
	{"砍伐", "Tree cutting", nil},
	{"入宅", "Move into house", nil},
	{"搬家", "Move house", nil},
	{"安床", "Set up bed", nil},
	{"安葬", "Funeral", nil},
	{"开仓", "Open storage", nil},
}

type mapping struct {
	canonical []entry
	toEnglish map[string]string
	toSource  map[string]string
}

// Lookup tables built from the registries at init time.
var mappings map[Domain]*mapping

func init() {
	mappings = map[Domain]*mapping{
		Zodiac:    newMapping(fromTable(sym.Zodiac)),
		Direction: newMapping(directionRegistry),
		Action:    newMapping(actionRegistry),
		SolarTerm: newMapping(fromTable(sym.SolarTerms)),
		Element:   newMapping(fromTable(sym.Elements)),
	}
}

func fromTable(t *sym.Table) []entry {
	rows := t.Entries()
	out := make([]entry, len(rows))
	for i, e := range rows {
		out[i] = entry{source: e.Glyph, english: e.English}
	}
	return out
}

func newMapping(entries []entry) *mapping {
	m := &mapping{
		canonical: entries,
		toEnglish: make(map[string]string, len(entries)),
		toSource:  make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		m.toEnglish[e.source] = e.english
		m.toSource[e.english] = e.source
		for _, alias := range e.aliases {
			m.toEnglish[alias] = e.english
		}
	}
	return m
}

// ToEnglish translates a Chinese symbol. Unknown input is returned unchanged.
func ToEnglish(d Domain, zh string) string {
	if m, ok := mappings[d]; ok {
		if en, ok := m.toEnglish[zh]; ok {
			return en
		}
	}
	return zh
}

// ToSource translates an English gloss back to its canonical Chinese symbol.
// Unknown input is returned unchanged.
func ToSource(d Domain, en string) string {
	if m, ok := mappings[d]; ok {
		if zh, ok := m.toSource[en]; ok {
			return zh
		}
	}
	return en
}

// ToEnglishBatch translates element-wise.
func ToEnglishBatch(d Domain, zh []string) []string {
	out := make([]string, len(zh))
	for i, s := range zh {
		out[i] = ToEnglish(d, s)
	}
	return out
}

// ToSourceBatch translates element-wise.
func ToSourceBatch(d Domain, en []string) []string {
	out := make([]string, len(en))
	for i, s := range en {
		out[i] = ToSource(d, s)
	}
	return out
}

// Canonical returns the canonical (non-alias) pairs of a domain in registry order.
func Canonical(d Domain) []Bilingual {
	m, ok := mappings[d]
	if !ok {
		return nil
	}
	out := make([]Bilingual, len(m.canonical))
	for i, e := range m.canonical {
		out[i] = Bilingual{ZH: e.source, EN: e.english}
	}
	return out
}

// Aliases returns every alternate Chinese spelling of a domain mapped to its gloss.
func Aliases(d Domain) map[string]string {
	out := map[string]string{}
	m, ok := mappings[d]
	if !ok {
		return out
	}
	for _, e := range m.canonical {
		for _, alias := range e.aliases {
			out[alias] = e.english
		}
	}
	return out
}
