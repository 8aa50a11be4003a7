package am

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/teranos/tongshu/am/geotime"
	"github.com/teranos/tongshu/calendar"
)

// Default values
const (
	DefaultLang     = "both"
	DefaultFormat   = FormatText
	DefaultLogTheme = "everforest"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Calendar defaults
	v.SetDefault("calendar.timezone", geotime.DefaultTimezone)
	v.SetDefault("calendar.lenient_timezones", false)
	v.SetDefault("calendar.solar_terms", calendar.TermsHalfMonth)

	// Display defaults
	v.SetDefault("display.lang", DefaultLang)
	v.SetDefault("display.format", DefaultFormat)

	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", DefaultLogTheme)
}

// BindEnvVars explicitly binds the short environment variable names
func BindEnvVars(v *viper.Viper) {
	v.BindEnv("calendar.timezone", "TONGSHU_TZ", "TONGSHU_CALENDAR_TIMEZONE")
	v.BindEnv("display.lang", "TONGSHU_LANG", "TONGSHU_DISPLAY_LANG")
	v.BindEnv("log.theme", "TONGSHU_LOG_THEME")
}

// Defaults returns the configuration with only built-in defaults applied
func Defaults() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// defaults always unmarshal
		panic(err)
	}
	return cfg
}

// GetTimezone returns the default zone id (default: Asia/Kuala_Lumpur)
func (c *Config) GetTimezone() string {
	if c.Calendar.Timezone == "" {
		return geotime.DefaultTimezone
	}
	return c.Calendar.Timezone
}

// GetLogTheme returns the log theme (default: everforest)
func (c *Config) GetLogTheme() string {
	if c.Log.Theme == "" {
		return DefaultLogTheme
	}
	return c.Log.Theme
}

// GetFormat returns the output format (default: text)
func (c *Config) GetFormat() string {
	if c.Display.Format == "" {
		return DefaultFormat
	}
	return c.Display.Format
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Calendar: {Timezone: %s, SolarTerms: %s}, Display: {Lang: %s, Format: %s}, Log: {Theme: %s}}",
		c.GetTimezone(), c.Calendar.SolarTerms, c.Display.Lang, c.GetFormat(), c.GetLogTheme())
}
