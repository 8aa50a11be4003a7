package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/tongshu/am"
	"github.com/teranos/tongshu/errors"
	"github.com/teranos/tongshu/logger"
)

// isolate points HOME and the working directory at temp dirs, clears
// TONGSHU_* variables and resets the cached config.
func isolate(t *testing.T) (home, work string) {
	t.Helper()

	am.Reset()
	t.Cleanup(am.Reset)

	home = t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{
		"TONGSHU_TZ", "TONGSHU_LANG",
		"TONGSHU_CALENDAR_TIMEZONE", "TONGSHU_CALENDAR_LENIENT_TIMEZONES", "TONGSHU_CALENDAR_SOLAR_TERMS",
		"TONGSHU_DISPLAY_LANG", "TONGSHU_DISPLAY_FORMAT",
		"TONGSHU_LOG_JSON", "TONGSHU_LOG_THEME",
	} {
		t.Setenv(k, "")
	}

	work = t.TempDir()
	t.Chdir(work)
	return home, work
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return pterm.RemoveColorFromString(out.String()), err
}

func decodeJSON(t *testing.T, out string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &m), out)
	return m
}

func bilingual(zh, en string) map[string]interface{} {
	return map[string]interface{}{"zh": zh, "en": en}
}

func TestFortuneJSON(t *testing.T) {
	isolate(t)

	out, err := execute(t, "fortune", "1990-05-17", "--json")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	assert.Equal(t, "Asia/Kuala_Lumpur", got["zone"])
	assert.Equal(t, "庚午年", got["ganzhi_year"])
	assert.Equal(t, bilingual("马", "Horse"), got["zodiac"])
	assert.Equal(t, "壬午日", got["day_ganzhi"])
	assert.Equal(t, bilingual("鼠", "Rat"), got["clash_zodiac"])
	assert.Len(t, got["good"], 5)
	assert.Len(t, got["bad"], 4)

	luck, ok := got["luck_index"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, luck, 1.0)
	assert.LessOrEqual(t, luck, 5.0)
	assert.True(t, strings.HasPrefix(got["time"].(string), "1990-05-17T00:00:00"))
}

func TestFortuneTextEnglish(t *testing.T) {
	isolate(t)

	out, err := execute(t, "fortune", "1990-05-17", "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "Good for")
	assert.Contains(t, out, "Prayer, Worship, Travel, Haircut, Receive wealth")
	assert.Contains(t, out, "Horse")
	assert.NotContains(t, out, "祈福")
}

func TestFortuneYAMLFromConfig(t *testing.T) {
	_, work := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(work, am.ConfigFileName),
		[]byte("[display]\nformat = \"yaml\"\n"), 0644))

	out, err := execute(t, "fortune", "2024-02-10")
	require.NoError(t, err)
	assert.Contains(t, out, "ganzhi_year: 甲辰年")
	assert.Contains(t, out, "luck_index:")
}

func TestFortuneInvalidDate(t *testing.T) {
	isolate(t)

	_, err := execute(t, "fortune", "17/05/1990")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestTodayWithDateAndZone(t *testing.T) {
	isolate(t)

	out, err := execute(t, "today", "--date", "2024-02-10", "--tz", "Asia/Tokyo", "--format", "json")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	assert.Equal(t, "Asia/Tokyo", got["zone"])
	assert.Equal(t, bilingual("龙", "Dragon"), got["zodiac"])
	assert.Equal(t, "甲辰年", got["ganzhi_year"])
	assert.True(t, strings.HasPrefix(got["time"].(string), "2024-02-10T00:00:00+09:00"))
}

func TestTodayZoneFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TONGSHU_TZ", "Europe/London")

	out, err := execute(t, "today", "--date", "2024-02-10", "--json")
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", decodeJSON(t, out)["zone"])
}

func TestTodayText(t *testing.T) {
	isolate(t)

	out, err := execute(t, "today", "--date", "2024-02-10", "--lang", "zh")
	require.NoError(t, err)
	assert.Contains(t, out, "今日")
	assert.Contains(t, out, "甲辰年")
	assert.Contains(t, out, "龙")
	assert.NotContains(t, out, "Dragon")
}

func TestTodayWatchNeedsConfigFile(t *testing.T) {
	isolate(t)

	_, err := execute(t, "today", "--date", "2024-02-10", "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no config file to watch")
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestInvalidLangFails(t *testing.T) {
	isolate(t)

	_, err := execute(t, "today", "--lang", "not a tag!")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestMonthSkeleton(t *testing.T) {
	isolate(t)

	out, err := execute(t, "month", "--year", "2025", "--month", "9", "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "Lunar month 9, 2025")
	assert.Contains(t, out, "Xu")
	assert.Contains(t, out, "Earth")

	_, err = execute(t, "month", "--year", "2025")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))

	_, err = execute(t, "month", "--year", "2025", "--month", "13")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestMonthCurrentJSON(t *testing.T) {
	isolate(t)

	out, err := execute(t, "month", "--json")
	require.NoError(t, err)
	got := decodeJSON(t, out)
	assert.Equal(t, float64(3), got["luck_index"])
	assert.NotEmpty(t, got["lunar_month_name"])
}

func TestYearFromFile(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "2025.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`year: 2025
zodiac:
  zh: 蛇
luck_index: 5
best_months:
  en: Goat, Monkey
summary:
  en: A year of steady growth.
`), 0644))

	out, err := execute(t, "year", "--file", path, "--json")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	assert.Equal(t, float64(2025), got["year"])
	assert.Equal(t, float64(5), got["luck_index"])
	assert.Equal(t, bilingual("蛇", "Snake"), got["zodiac"])
	assert.Equal(t, bilingual("羊、猴", "Goat, Monkey"), got["best_months"])
}

func TestYearSkeleton(t *testing.T) {
	isolate(t)

	out, err := execute(t, "year", "--year", "2024", "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "Year 2024")
	assert.Contains(t, out, "Dragon")
	assert.Contains(t, out, "Wood")
	assert.Contains(t, out, "★★★★☆ 4/5")
}

func TestYearMissingFile(t *testing.T) {
	_, work := isolate(t)

	_, err := execute(t, "year", "--file", filepath.Join(work, "missing.toml"))
	require.Error(t, err)

	_, err = execute(t, "year", "--file", filepath.Join(work, "report.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnsupportedFormat))
}

func TestTranslate(t *testing.T) {
	isolate(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"translate", "zodiac", "龙"}, "Dragon"},
		{[]string{"translate", "zodiac", "Dragon"}, "龙"},
		{[]string{"translate", "term", "立春"}, "Beginning of Spring"},
		{[]string{"translate", "action", "Prayer"}, "祈福"},
		{[]string{"translate", "direction", "正北"}, "North"},
		{[]string{"translate", "direction", "Northeast"}, "东北"},
		{[]string{"translate", "directions", "东、东南"}, "East, Southeast"},
		{[]string{"translate", "directions", "East", "/", "Southeast"}, "东、东南"},
		{[]string{"translate", "lunar", "九月十三"}, "Ninth Month, Day 13"},
		{[]string{"translate", "ganzhi", "庚午年"}, "Geng (Metal Yang)–Wu (Horse) Year"},
		{[]string{"translate", "zodiac", "龙", "--to", "zh"}, "龙"},
		{[]string{"translate", "zodiac", "unicorn"}, "unicorn"},
	}
	for _, tt := range tests {
		out, err := execute(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want+"\n", out, tt.args)
	}
}

func TestTranslateJSON(t *testing.T) {
	isolate(t)

	out, err := execute(t, "translate", "zodiac", "龙", "--json")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"kind":   "zodiac",
		"to":     "en",
		"input":  "龙",
		"output": "Dragon",
	}, decodeJSON(t, out))
}

func TestTranslateErrors(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{
		{"translate", "planet", "火星"},
		{"translate", "lunar", "九月十三", "--to", "zh"},
		{"translate", "zodiac", "龙", "--to", "fr"},
		{"translate", "lunar"},
	} {
		_, err := execute(t, args...)
		require.Error(t, err, args)
		assert.True(t, errors.Is(err, errors.ErrInvalidInput), args)
	}
}

func TestTranslateListsDomain(t *testing.T) {
	isolate(t)

	out, err := execute(t, "translate", "zodiac")
	require.NoError(t, err)
	for _, s := range []string{"鼠", "Rat", "猪", "Pig"} {
		assert.Contains(t, out, s)
	}
}

func TestTranslateTarget(t *testing.T) {
	to, err := translationTarget("", "龙")
	require.NoError(t, err)
	assert.Equal(t, "en", to)

	to, err = translationTarget("", "Dragon")
	require.NoError(t, err)
	assert.Equal(t, "zh", to)

	to, err = translationTarget("English", "龙")
	require.NoError(t, err)
	assert.Equal(t, "en", to)
}

func TestAmGet(t *testing.T) {
	isolate(t)

	out, err := execute(t, "am", "get", "calendar.timezone")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kuala_Lumpur\n", out)

	t.Setenv("TONGSHU_TZ", "Asia/Tokyo")
	am.Reset()
	out, err = execute(t, "am", "get", "calendar.timezone")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo\n", out)

	_, err = execute(t, "am", "get", "calendar.nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestAmSetAndInit(t *testing.T) {
	home, _ := isolate(t)
	userPath := filepath.Join(home, am.UserConfigDirName, am.ConfigFileName)

	out, err := execute(t, "am", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+userPath)
	assert.FileExists(t, userPath)

	am.Reset()
	out, err = execute(t, "am", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	am.Reset()
	_, err = execute(t, "am", "set", "display.lang", "en")
	require.NoError(t, err)

	out, err = execute(t, "am", "get", "display.lang")
	require.NoError(t, err)
	assert.Equal(t, "en\n", out)

	_, err = execute(t, "am", "set", "calendar.lenient_timezones", "true")
	require.NoError(t, err)
	cfg, err := am.LoadFromFile(userPath)
	require.NoError(t, err)
	assert.True(t, cfg.Calendar.LenientTimezones)
	assert.Equal(t, "en", cfg.Display.Lang)
}

func TestAmValidate(t *testing.T) {
	_, work := isolate(t)

	out, err := execute(t, "am", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")

	require.NoError(t, os.WriteFile(filepath.Join(work, am.ConfigFileName),
		[]byte("[calendar]\ntimezone = \"Mars/Olympus_Mons\"\n"), 0644))
	am.Reset()

	_, err = execute(t, "am", "validate")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfigError(err))

	// Inspection still works on an invalid configuration
	am.Reset()
	out, err = execute(t, "am", "get", "calendar.timezone")
	require.NoError(t, err)
	assert.Equal(t, "Mars/Olympus_Mons\n", out)
}

func TestAmValidateFile(t *testing.T) {
	_, work := isolate(t)
	good := filepath.Join(work, "good.toml")
	bad := filepath.Join(work, "bad.toml")
	require.NoError(t, os.WriteFile(good, []byte("[calendar]\ntimezone = \"Asia/Tokyo\"\n"), 0644))
	require.NoError(t, os.WriteFile(bad, []byte("[display]\nformat = \"xml\"\n"), 0644))

	out, err := execute(t, "am", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, good+" is valid")

	_, err = execute(t, "am", "validate", bad)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfigError(err))

	_, err = execute(t, "am", "validate", filepath.Join(work, "missing.toml"))
	require.Error(t, err)
}

func TestAmShow(t *testing.T) {
	isolate(t)

	out, err := execute(t, "am", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# tongshu configuration")
	assert.Contains(t, out, "[calendar]")
	assert.Contains(t, out, "Asia/Kuala_Lumpur")

	out, err = execute(t, "am", "show", "--format", "json")
	require.NoError(t, err)
	got := decodeJSON(t, out)
	assert.Contains(t, got, "calendar")
	assert.Contains(t, got, "display")

	out, err = execute(t, "am", "show", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "timezone: Asia/Kuala_Lumpur")
}

func TestAmWhere(t *testing.T) {
	_, work := isolate(t)
	projectPath := filepath.Join(work, am.ConfigFileName)
	require.NoError(t, os.WriteFile(projectPath, []byte("[display]\nlang = \"zh\"\n"), 0644))
	t.Setenv("TONGSHU_TZ", "Asia/Tokyo")
	t.Setenv("TZ", "Asia/Seoul")

	out, err := execute(t, "am", "where")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration cascade")
	assert.Contains(t, out, "settings from environment variables")
	assert.Contains(t, out, "calendar.timezone = Asia/Tokyo (TONGSHU_TZ)")
	assert.Contains(t, out, "display.lang = zh")
	assert.Contains(t, out, "log.theme = everforest")
	assert.Contains(t, out, "Settings per source: default 5, system 0, user 0, project 1, environment 1")
	assert.Contains(t, out, "Host zone (used for unknown zone ids): Asia/Seoul")
}

func TestVerboseFlagHelp(t *testing.T) {
	usage := NewRootCmd().PersistentFlags().Lookup("verbose").Usage
	assert.Contains(t, usage, "-v: "+logger.VerbosityDescription(logger.VerbosityInfo))
	assert.Contains(t, usage, "-vvv: "+logger.VerbosityDescription(logger.VerbosityTrace))
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tongshu")
	assert.Contains(t, out, "Platform:")

	out, err = execute(t, "version", "--json")
	require.NoError(t, err)
	got := decodeJSON(t, out)
	assert.Contains(t, got, "go_version")
	assert.Contains(t, got, "commit_hash")
	assert.Contains(t, got, "lunar")
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, true, parseValue("true"))
	assert.Equal(t, false, parseValue("false"))
	assert.Equal(t, "Asia/Tokyo", parseValue("Asia/Tokyo"))
}
