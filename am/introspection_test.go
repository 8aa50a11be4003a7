package am

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingByKey(t *testing.T, in *ConfigIntrospection, key string) SettingInfo {
	t.Helper()
	for _, s := range in.Settings {
		if s.Key == key {
			return s
		}
	}
	t.Fatalf("setting %q not found", key)
	return SettingInfo{}
}

func TestGetConfigIntrospection(t *testing.T) {
	home, _ := isolate(t)
	userPath := filepath.Join(home, ".tongshu", "am.toml")
	writeTOML(t, userPath, `
[calendar]
timezone = "Asia/Singapore"
`)
	t.Setenv("TONGSHU_LANG", "zh")

	in, err := GetConfigIntrospection()
	require.NoError(t, err)

	assert.Equal(t, []string{userPath}, in.ConfigFiles)

	tz := settingByKey(t, in, "calendar.timezone")
	assert.Equal(t, "Asia/Singapore", tz.Value)
	assert.Equal(t, SourceUser, tz.Source)
	assert.Equal(t, userPath, tz.SourcePath)

	lang := settingByKey(t, in, "display.lang")
	assert.Equal(t, "zh", lang.Value)
	assert.Equal(t, SourceEnvironment, lang.Source)
	assert.Equal(t, "TONGSHU_LANG", lang.SourcePath)

	theme := settingByKey(t, in, "log.theme")
	assert.Equal(t, "everforest", theme.Value)
	assert.Equal(t, SourceDefault, theme.Source)
	assert.Equal(t, "built-in default", theme.SourcePath)

	// settings come sorted by key
	for i := 1; i < len(in.Settings); i++ {
		assert.Less(t, in.Settings[i-1].Key, in.Settings[i].Key)
	}
}

func TestEnvOverrideNames(t *testing.T) {
	t.Setenv("TONGSHU_TZ", "")
	t.Setenv("TONGSHU_CALENDAR_TIMEZONE", "")
	_, ok := envOverride("calendar.timezone")
	assert.False(t, ok)

	t.Setenv("TONGSHU_CALENDAR_TIMEZONE", "Asia/Tokyo")
	name, ok := envOverride("calendar.timezone")
	assert.True(t, ok)
	assert.Equal(t, "TONGSHU_CALENDAR_TIMEZONE", name)

	t.Setenv("TONGSHU_TZ", "Asia/Seoul")
	name, _ = envOverride("calendar.timezone")
	assert.Equal(t, "TONGSHU_TZ", name, "short name is bound first")
}

func TestGetConfigSummary(t *testing.T) {
	home, _ := isolate(t)
	writeTOML(t, filepath.Join(home, ".tongshu", "am.toml"), "[log]\njson = true\ntheme = \"gruvbox\"\n")

	summary := GetConfigSummary()
	counts, ok := summary["sources"].(map[string]int)
	require.True(t, ok)

	assert.Equal(t, 2, counts["user"])
	// seven keys in total, two of them from the user file
	assert.Equal(t, 5, counts["default"])
	assert.Equal(t, 0, counts["environment"])
}
