package commands

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/teranos/tongshu/display"
	"github.com/teranos/tongshu/errors"
	"github.com/teranos/tongshu/lexicon"
)

// Translation kinds beyond the single-symbol lexicon domains.
const (
	kindLunar      = "lunar"
	kindDirections = "directions"
	kindGanzhi     = "ganzhi"
)

// Translation directions for --to.
const (
	toEnglish = "en"
	toChinese = "zh"
)

// Translation is one translated term.
type Translation struct {
	Kind   string `json:"kind" yaml:"kind"`
	To     string `json:"to" yaml:"to"`
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// NewTranslateCmd builds the translate command.
func NewTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <kind> [text...]",
		Short: "Translate almanac vocabulary between Chinese and English",
		Long: `Translate almanac vocabulary between Chinese and English.

Kinds:
  zodiac, direction, action, term, element   single symbols, both ways
  directions                                 delimited direction lists, both ways
  lunar                                      lunar date labels (九月十三), to English
  ganzhi                                     stem-branch labels (庚午年), to English

The direction is detected from the text (Chinese characters translate to
English) unless --to is given. Unknown terms are echoed unchanged. Without
text, the canonical entries of a single-symbol kind are listed.

Examples:
  tongshu translate zodiac 龙
  tongshu translate direction Northeast
  tongshu translate directions 东南、西北
  tongshu translate lunar 九月十三
  tongshu translate ganzhi 庚午年
  tongshu translate term`,
		Args: cobra.MinimumNArgs(1),
		RunE: runTranslate,
	}
	cmd.Flags().String("to", "", "Target language: en or zh (default: detect)")
	return cmd
}

func runTranslate(cmd *cobra.Command, args []string) error {
	env, err := envFrom(cmd)
	if err != nil {
		return err
	}
	kind := strings.ToLower(strings.TrimSpace(args[0]))
	text := strings.TrimSpace(strings.Join(args[1:], " "))

	if text == "" {
		d, ok := lexicon.ParseDomain(kind)
		if !ok {
			return errors.WithHint(
				errors.NewInvalidInputError("nothing to translate for %q", kind),
				"pass the text to translate, or a single-symbol kind to list its entries")
		}
		entries := lexicon.Canonical(d)
		return env.Output(cmd.OutOrStdout(), entries, func(r *display.Renderer) error {
			return r.Glossary(d.String(), entries)
		})
	}

	to, _ := cmd.Flags().GetString("to")
	to, err = translationTarget(to, text)
	if err != nil {
		return err
	}

	out, err := Translate(kind, text, to)
	if err != nil {
		return err
	}
	result := Translation{Kind: kind, To: to, Input: text, Output: out}
	return env.Output(cmd.OutOrStdout(), result, func(r *display.Renderer) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	})
}

// translationTarget normalizes --to, or detects it from text when empty.
func translationTarget(to, text string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(to)) {
	case "":
		if containsHan(text) {
			return toEnglish, nil
		}
		return toChinese, nil
	case "en", "english":
		return toEnglish, nil
	case "zh", "chinese", "source":
		return toChinese, nil
	default:
		return "", errors.WithHint(
			errors.NewInvalidInputError("unknown target language %q", to),
			"use --to en or --to zh")
	}
}

func containsHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// Translate converts text of the given kind into the target language.
func Translate(kind, text, to string) (string, error) {
	switch kind {
	case kindLunar, kindGanzhi:
		if to != toEnglish {
			return "", errors.WithHint(
				errors.NewInvalidInputError("%s labels only translate to English", kind),
				"drop --to or use --to en")
		}
		if kind == kindLunar {
			return lexicon.LunarLabelToEnglish(text), nil
		}
		return lexicon.StemBranchToEnglish(text), nil
	case kindDirections:
		if to == toEnglish {
			return lexicon.CompositeDirectionToEnglish(text), nil
		}
		return lexicon.CompositeDirectionToSource(text), nil
	}

	d, ok := lexicon.ParseDomain(kind)
	if !ok {
		return "", errors.WithHint(
			errors.NewInvalidInputError("unknown kind %q", kind),
			"use zodiac, direction, action, term, element, directions, lunar or ganzhi")
	}
	if to == toEnglish {
		return lexicon.ToEnglish(d, text), nil
	}
	return lexicon.ToSource(d, text), nil
}
