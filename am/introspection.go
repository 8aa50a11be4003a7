package am

import (
	"os"
	"sort"
	"strings"

	"github.com/teranos/tongshu/errors"
)

// ConfigSource represents where a configuration value came from
type ConfigSource string

const (
	SourceDefault     ConfigSource = "default"
	SourceSystem      ConfigSource = "system"      // /etc/tongshu/config.toml
	SourceUser        ConfigSource = "user"        // ~/.tongshu/am.toml
	SourceProject     ConfigSource = "project"     // nearest am.toml above the working directory
	SourceEnvironment ConfigSource = "environment" // TONGSHU_* env vars
)

// SettingInfo contains metadata about a configuration setting
type SettingInfo struct {
	Key        string       `json:"key" yaml:"key"`
	Value      interface{}  `json:"value" yaml:"value"`
	Source     ConfigSource `json:"source" yaml:"source"`
	SourcePath string       `json:"source_path,omitempty" yaml:"source_path,omitempty"` // File path or env var name
}

// ConfigIntrospection provides metadata about the active configuration
type ConfigIntrospection struct {
	ConfigFiles []string      `json:"config_files" yaml:"config_files"` // Merged files, lowest precedence first
	Settings    []SettingInfo `json:"settings" yaml:"settings"`         // All settings with sources
}

// SourceInfo tracks where a configuration value originated
type SourceInfo struct {
	Source ConfigSource // The type of config source (default, system, user, project)
	Path   string       // File path or environment variable name
}

// shortEnvNames are the extra variables bound in BindEnvVars
var shortEnvNames = map[string][]string{
	"calendar.timezone": {"TONGSHU_TZ"},
	"display.lang":      {"TONGSHU_LANG"},
}

// GetConfigIntrospection returns detailed information about active configuration
// using the sources tracked during actual configuration loading
func GetConfigIntrospection() (*ConfigIntrospection, error) {
	if _, err := Load(); err != nil {
		return nil, errors.Wrap(err, "failed to load config for introspection")
	}

	v := GetViper()

	mu.Lock()
	sources := make(map[string]SourceInfo, len(ConfigSources))
	for k, si := range ConfigSources {
		sources[k] = si
	}
	files := make([]string, len(loadedFiles))
	copy(files, loadedFiles)
	mu.Unlock()

	introspection := &ConfigIntrospection{
		ConfigFiles: files,
		Settings:    make([]SettingInfo, 0),
	}

	keys := v.AllKeys()
	sort.Strings(keys)
	for _, key := range keys {
		introspection.Settings = append(introspection.Settings, settingInfo(key, v.Get(key), sources))
	}

	return introspection, nil
}

// settingInfo assigns the source of one flattened key
func settingInfo(key string, value interface{}, sources map[string]SourceInfo) SettingInfo {
	info := SourceInfo{Source: SourceDefault, Path: "built-in default"}
	if si, ok := sources[key]; ok {
		info = si
	}

	// Environment variables override every file
	if envKey, ok := envOverride(key); ok {
		info = SourceInfo{Source: SourceEnvironment, Path: envKey}
	}

	return SettingInfo{
		Key:        key,
		Value:      value,
		Source:     info.Source,
		SourcePath: info.Path,
	}
}

// envOverride returns the environment variable that sets key, if any
func envOverride(key string) (string, bool) {
	candidates := append([]string{}, shortEnvNames[key]...)
	candidates = append(candidates, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")))
	for _, envKey := range candidates {
		if os.Getenv(envKey) != "" {
			return envKey, true
		}
	}
	return "", false
}

// GetConfigSummary returns the number of settings per source
func GetConfigSummary() map[string]interface{} {
	counts := map[string]int{
		string(SourceDefault):     0,
		string(SourceSystem):      0,
		string(SourceUser):        0,
		string(SourceProject):     0,
		string(SourceEnvironment): 0,
	}
	summary := map[string]interface{}{
		"config_files": []string{},
		"sources":      counts,
	}

	introspection, err := GetConfigIntrospection()
	if err != nil {
		return summary
	}

	summary["config_files"] = introspection.ConfigFiles
	for _, setting := range introspection.Settings {
		counts[string(setting.Source)]++
	}
	return summary
}
