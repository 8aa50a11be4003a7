// Package am holds tongshu's configuration ("I am"): the viper cascade of
// defaults, config files and TONGSHU_* environment variables, validation,
// persistence of user settings and a file watcher for live reloads.
package am

// Config represents the tongshu configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar" toml:"calendar" json:"calendar" yaml:"calendar"`
	Display  DisplayConfig  `mapstructure:"display" toml:"display" json:"display" yaml:"display"`
	Log      LogConfig      `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// CalendarConfig configures the calendar engine
type CalendarConfig struct {
	Timezone         string `mapstructure:"timezone" toml:"timezone" json:"timezone" yaml:"timezone"`                                 // IANA zone used when none is given (default: Asia/Kuala_Lumpur)
	LenientTimezones bool   `mapstructure:"lenient_timezones" toml:"lenient_timezones" json:"lenient_timezones" yaml:"lenient_timezones"` // Accept city names and abbreviations such as "MYT"
	SolarTerms       string `mapstructure:"solar_terms" toml:"solar_terms" json:"solar_terms" yaml:"solar_terms"`                     // half-month or exact
}

// DisplayConfig configures report rendering
type DisplayConfig struct {
	Lang   string `mapstructure:"lang" toml:"lang" json:"lang" yaml:"lang"`         // both, or a language tag matched to en/zh
	Format string `mapstructure:"format" toml:"format" json:"format" yaml:"format"` // text, json, yaml
}

// LogConfig configures log output
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
	Theme string `mapstructure:"theme" toml:"theme" json:"theme" yaml:"theme"` // Color theme: everforest, gruvbox
}

// Output formats accepted by display.format
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// Config locations
const (
	EnvPrefix         = "TONGSHU"
	SystemConfigPath  = "/etc/tongshu/config.toml"
	UserConfigDirName = ".tongshu"
	ConfigFileName    = "am.toml"
)
