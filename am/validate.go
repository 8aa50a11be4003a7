package am

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/teranos/tongshu/am/geotime"
	"github.com/teranos/tongshu/calendar"
	"github.com/teranos/tongshu/errors"
	"github.com/teranos/tongshu/logger"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Empty timezone means the built-in default
	if tz := c.Calendar.Timezone; tz != "" {
		r := geotime.Resolver{Lenient: c.Calendar.LenientTimezones}
		if _, err := r.Load(tz); err != nil {
			return errors.WithHint(
				errors.NewInvalidConfigError("calendar.timezone %q is not a known zone", tz),
				errors.FlattenHints(err))
		}
	}

	if _, err := calendar.ParseSolarTermIndexer(c.Calendar.SolarTerms); err != nil {
		return errors.WithHintf(
			errors.NewInvalidConfigError("calendar.solar_terms %q is not supported", c.Calendar.SolarTerms),
			"use %q or %q", calendar.TermsHalfMonth, calendar.TermsExact)
	}

	if lang := strings.TrimSpace(c.Display.Lang); lang != "" && !strings.EqualFold(lang, DefaultLang) {
		if _, err := language.Parse(lang); err != nil {
			return errors.WithHint(
				errors.NewInvalidConfigError("display.lang %q is not a language tag", lang),
				`use "both", "en" or "zh"`)
		}
	}

	switch strings.ToLower(c.Display.Format) {
	case "", FormatText, FormatJSON, FormatYAML:
	default:
		return errors.WithHintf(
			errors.NewInvalidConfigError("display.format %q is not supported", c.Display.Format),
			"use %q, %q or %q", FormatText, FormatJSON, FormatYAML)
	}

	if theme := c.Log.Theme; theme != "" && !isKnownTheme(theme) {
		return errors.WithHintf(
			errors.NewInvalidConfigError("log.theme %q is not a known theme", theme),
			"use one of: %s", strings.Join(logger.Themes(), ", "))
	}

	return nil
}

func isKnownTheme(name string) bool {
	for _, t := range logger.Themes() {
		if t == name {
			return true
		}
	}
	return false
}
