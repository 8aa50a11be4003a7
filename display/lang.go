package display

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/teranos/tongshu/errors"
	"github.com/teranos/tongshu/lexicon"
)

// Lang selects which side of bilingual values is shown.
type Lang int

const (
	Both Lang = iota
	English
	Chinese
)

func (l Lang) String() string {
	switch l {
	case English:
		return "en"
	case Chinese:
		return "zh"
	default:
		return "both"
	}
}

var langMatcher = language.NewMatcher([]language.Tag{language.English, language.Chinese})

// ParseLang maps "both" (or "") to Both and any language tag matching
// English or Chinese to that language. "zh-TW" and "en-GB" are accepted.
func ParseLang(s string) (Lang, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "both") {
		return Both, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return Both, errors.WithHint(
			errors.NewInvalidInputError("language %q is not a valid tag", s),
			`use "both", "en" or "zh"`)
	}

	_, idx, conf := langMatcher.Match(tag)
	if conf == language.No {
		return Both, errors.WithHint(
			errors.NewInvalidInputError("language %q is not supported", s),
			`use "both", "en" or "zh"`)
	}
	if idx == 1 {
		return Chinese, nil
	}
	return English, nil
}

// Pick renders b in the language. A missing side falls back to the other.
func (l Lang) Pick(b lexicon.Bilingual) string {
	switch l {
	case English:
		if b.EN != "" {
			return b.EN
		}
		return b.ZH
	case Chinese:
		if b.ZH != "" {
			return b.ZH
		}
		return b.EN
	default:
		return b.String()
	}
}

// PickList renders a list with the language's separator.
func (l Lang) PickList(items []lexicon.Bilingual) string {
	parts := make([]string, len(items))
	for i, b := range items {
		parts[i] = l.Pick(b)
	}
	if l == Chinese {
		return strings.Join(parts, "、")
	}
	return strings.Join(parts, ", ")
}

// Label renders a field label.
func (l Lang) Label(zh, en string) string {
	switch l {
	case English:
		return en
	case Chinese:
		return zh
	default:
		return zh + " " + en
	}
}
