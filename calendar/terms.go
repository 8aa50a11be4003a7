package calendar

import (
	"strings"
	"time"

	lunar "github.com/6tail/lunar-go/calendar"

	"github.com/teranos/tongshu/errors"
	"github.com/teranos/tongshu/sym"
)

// SolarTermIndexer picks the solar term for a civil date as an index into
// sym.SolarTerms. ok is false when the date carries no term.
type SolarTermIndexer interface {
	TermIndex(t time.Time) (index int, ok bool)
}

// SolarTermIndexerFunc adapts a plain function to SolarTermIndexer.
type SolarTermIndexerFunc func(t time.Time) (int, bool)

func (f SolarTermIndexerFunc) TermIndex(t time.Time) (int, bool) { return f(t) }

// HalfMonthTerms is a placeholder that assigns two terms per civil month,
// switching on the 15th. It ignores solar longitude, so it can be a few
// days off the real term boundaries.
type HalfMonthTerms struct{}

func (HalfMonthTerms) TermIndex(t time.Time) (int, bool) {
	half := 0
	if t.Day() >= 15 {
		half = 1
	}
	return sym.Mod((int(t.Month())-1)*2+half, sym.SolarTerms.Len()), true
}

// ExactTerms reports a term only on the day it begins, as computed by
// lunar-go. Every other day has no term.
type ExactTerms struct{}

func (ExactTerms) TermIndex(t time.Time) (i int, ok bool) {
	defer func() {
		if recover() != nil {
			i, ok = 0, false
		}
	}()

	name := lunar.NewSolarFromYmd(t.Year(), int(t.Month()), t.Day()).GetLunar().GetJieQi()
	if name == "" {
		return 0, false
	}
	return sym.SolarTerms.Index(name)
}

// Solar term indexer names accepted by ParseSolarTermIndexer.
const (
	TermsHalfMonth = "half-month"
	TermsExact     = "exact"
)

// ParseSolarTermIndexer maps a configured name to an indexer.
func ParseSolarTermIndexer(name string) (SolarTermIndexer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", TermsHalfMonth:
		return HalfMonthTerms{}, nil
	case TermsExact:
		return ExactTerms{}, nil
	default:
		return nil, errors.WithHintf(
			errors.NewInvalidInputError("unknown solar term indexer %q", name),
			"use %q or %q", TermsHalfMonth, TermsExact)
	}
}
