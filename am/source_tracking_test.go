package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascadePrecedence(t *testing.T) {
	home, work := isolate(t)

	writeTOML(t, systemConfigPath, `
[calendar]
timezone = "Asia/Tokyo"

[display]
lang = "en"
`)
	userPath := filepath.Join(home, ".tongshu", "am.toml")
	writeTOML(t, userPath, `
[calendar]
timezone = "Asia/Singapore"
`)
	projectPath := filepath.Join(work, "am.toml")
	writeTOML(t, projectPath, `
[display]
format = "json"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Asia/Singapore", cfg.Calendar.Timezone, "user file wins over system")
	assert.Equal(t, "en", cfg.Display.Lang, "system value survives when nothing overrides it")
	assert.Equal(t, "json", cfg.Display.Format, "project file applies")
	assert.Equal(t, "everforest", cfg.Log.Theme, "defaults fill the rest")

	assert.Equal(t, SourceInfo{Source: SourceUser, Path: userPath}, ConfigSources["calendar.timezone"])
	assert.Equal(t, SourceInfo{Source: SourceSystem, Path: systemConfigPath}, ConfigSources["display.lang"])
	assert.Equal(t, SourceInfo{Source: SourceProject, Path: projectPath}, ConfigSources["display.format"])
	_, tracked := ConfigSources["log.theme"]
	assert.False(t, tracked)

	assert.Equal(t, []string{systemConfigPath, userPath, projectPath}, LoadedFiles())
}

func TestProjectConfigFoundAboveWorkingDirectory(t *testing.T) {
	_, work := isolate(t)

	projectPath := filepath.Join(work, "am.toml")
	writeTOML(t, projectPath, "[log]\ntheme = \"gruvbox\"\n")

	nested := filepath.Join(work, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	t.Chdir(nested)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gruvbox", cfg.Log.Theme)
	assert.Equal(t, SourceProject, ConfigSources["log.theme"].Source)
}

func TestProjectWalkFromHomeCountsAsUser(t *testing.T) {
	home, _ := isolate(t)
	userPath := filepath.Join(home, ".tongshu", "am.toml")
	writeTOML(t, userPath, "[display]\nlang = \"zh\"\n")

	// Walking up from ~/.tongshu finds the user file itself
	t.Chdir(filepath.Dir(userPath))

	_, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SourceUser, ConfigSources["display.lang"].Source)
	assert.Equal(t, []string{userPath}, LoadedFiles())
}

func TestEnvironmentOverridesFiles(t *testing.T) {
	home, _ := isolate(t)
	writeTOML(t, filepath.Join(home, ".tongshu", "am.toml"), `
[calendar]
timezone = "Asia/Singapore"

[display]
format = "json"
`)

	t.Setenv("TONGSHU_TZ", "Asia/Tokyo")
	t.Setenv("TONGSHU_DISPLAY_FORMAT", "yaml")
	t.Setenv("TONGSHU_LOG_JSON", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", cfg.Calendar.Timezone)
	assert.Equal(t, "yaml", cfg.Display.Format)
	assert.True(t, cfg.Log.JSON)
}

func TestLongEnvironmentNameForTimezone(t *testing.T) {
	isolate(t)
	t.Setenv("TONGSHU_CALENDAR_TIMEZONE", "Europe/London")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", cfg.Calendar.Timezone)
}

func TestMalformedFileIsSkipped(t *testing.T) {
	home, _ := isolate(t)
	writeTOML(t, systemConfigPath, "[calendar]\ntimezone = \"Asia/Tokyo\"\n")
	writeTOML(t, filepath.Join(home, ".tongshu", "am.toml"), "[calendar\ntimezone = ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", cfg.Calendar.Timezone)
	assert.Equal(t, []string{systemConfigPath}, LoadedFiles())
}
