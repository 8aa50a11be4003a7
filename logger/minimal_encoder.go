package logger

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// Almanac verdict glyphs highlighted in messages
const (
	glyphAuspicious   = "吉"
	glyphInauspicious = "凶"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// palette is one theme's set of ANSI colors.
type palette struct {
	fg        string
	time      string
	primary   string // calendar and fortune operations
	secondary string // config lifecycle
	accent    string // brackets and components
	id        string
	number    string
	good      string
	bad       string
	warn      string
	warnBg    string
	err       string
	errBg     string
}

// Everforest Dark (natural forest greens)
var everforest = palette{
	fg:        "\x1b[38;5;223m", // Soft beige (#d3c6aa)
	time:      "\x1b[38;5;107m", // Mid green (#83c092)
	primary:   "\x1b[38;5;108m", // Bright green (#a7c080)
	secondary: "\x1b[38;5;65m",  // Deep green
	accent:    "\x1b[38;5;208m", // Autumn orange (#e69875)
	id:        "\x1b[38;5;109m", // Blue-green (#7fbbb3)
	number:    "\x1b[38;5;108m",
	good:      "\x1b[38;5;108m",
	bad:       "\x1b[38;5;167m",
	warn:      "\x1b[38;5;179m", // Soft yellow (#dbbc7f)
	warnBg:    "\x1b[48;5;58m",
	err:       "\x1b[38;5;167m", // Warm red (#e67e80)
	errBg:     "\x1b[48;5;52m",
}

// Gruvbox Dark (warm, muted)
var gruvbox = palette{
	fg:        "\x1b[38;5;223m", // Soft cream (#ebdbb2)
	time:      "\x1b[38;5;108m", // Muted cyan-green (#8ec07c)
	primary:   "\x1b[38;5;142m", // Muted green (#b8bb26)
	secondary: "\x1b[38;5;208m", // Warm orange (#fe8019)
	accent:    "\x1b[38;5;214m", // Soft yellow (#fabd2f)
	id:        "\x1b[38;5;109m", // Soft blue (#83a598)
	number:    "\x1b[38;5;175m", // Muted purple (#d3869b)
	good:      "\x1b[38;5;142m",
	bad:       "\x1b[38;5;167m",
	warn:      "\x1b[38;5;214m",
	warnBg:    "\x1b[48;5;58m",
	err:       "\x1b[38;5;167m", // Warm red (#fb4934)
	errBg:     "\x1b[48;5;88m",
}

// Current active theme (set from config or TONGSHU_LOG_THEME)
var currentTheme = "everforest"

// Themes lists the accepted theme names.
func Themes() []string {
	return []string{"everforest", "gruvbox"}
}

// SetTheme configures the color scheme for log output. Unknown names are ignored.
func SetTheme(theme string) {
	if theme == "everforest" || theme == "gruvbox" {
		currentTheme = theme
	}
}

// Theme returns the active theme name.
func Theme() string {
	return currentTheme
}

func colors() palette {
	if currentTheme == "gruvbox" {
		return gruvbox
	}
	return everforest
}

func colorMessage(msg string) string {
	lower := strings.ToLower(msg)
	c := colors()

	switch {
	case containsAny(lower, "snapshot", "fortune", "lunar", "calendar", "solar term"):
		return c.primary
	case containsAny(lower, "config", "reload", "watch", "timezone"):
		return c.secondary
	default:
		return c.fg
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

var bracketPattern = regexp.MustCompile(`\[([^\]]+)\]`)

// colorizeMessage colors bracketed contexts like [today] and the verdict
// glyphs 吉 and 凶 inside a log message.
func colorizeMessage(msg string) string {
	c := colors()
	base := colorMessage(msg)

	var result strings.Builder
	lastIndex := 0

	for _, match := range bracketPattern.FindAllStringIndex(msg, -1) {
		if before := msg[lastIndex:match[0]]; before != "" {
			result.WriteString(base)
			result.WriteString(colorizeGlyphs(before, base))
			result.WriteString(colorReset)
		}
		result.WriteString(c.accent)
		result.WriteString(msg[match[0]:match[1]])
		result.WriteString(colorReset)
		lastIndex = match[1]
	}

	if remaining := msg[lastIndex:]; remaining != "" {
		result.WriteString(base)
		result.WriteString(colorizeGlyphs(remaining, base))
		result.WriteString(colorReset)
	}

	return result.String()
}

// colorizeGlyphs highlights verdict glyphs, restoring base color afterwards
func colorizeGlyphs(text, base string) string {
	c := colors()
	text = strings.ReplaceAll(text, glyphAuspicious, c.good+glyphAuspicious+colorReset+base)
	text = strings.ReplaceAll(text, glyphInauspicious, c.bad+glyphInauspicious+colorReset+base)
	return text
}

func colorComponent(name string) string {
	// Hash for consistent color per component
	hash := 0
	for _, r := range name {
		hash += int(r)
	}
	c := colors()
	switch hash % 3 {
	case 0:
		return c.primary
	case 1:
		return c.secondary
	default:
		return c.accent
	}
}

// minimalEncoder implements a calm, compact console encoder with theme support
// Format: "13:04:35  c.engine  Snapshot built  2024-02-10 Asia/Kuala_Lumpur"
//
// Fields attached with Logger.With land in the embedded map encoder and are
// rendered ahead of the entry's own fields.
type minimalEncoder struct {
	*zapcore.MapObjectEncoder
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder()}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	clone := zapcore.NewMapObjectEncoder()
	for k, v := range enc.Fields {
		clone.Fields[k] = v
	}
	return &minimalEncoder{MapObjectEncoder: clone}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := buffer.NewPool().Get()

	final.AppendString(colors().time)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only show for non-info levels
	if ent.Level != zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorComponent(ent.LoggerName))
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(colorizeMessage(ent.Message))

	if values := extractFieldValues(enc.Fields, fields); values != "" {
		final.AppendString("  ")
		final.AppendString(values)
	}

	final.AppendString("\n")
	return final, nil
}

// levelColorString returns bold + colored + background for non-info levels
func levelColorString(level zapcore.Level) string {
	c := colors()
	switch level {
	case zapcore.DebugLevel:
		return c.id + "DEBUG" + colorReset
	case zapcore.WarnLevel:
		return colorBold + c.warnBg + c.warn + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + c.errBg + c.err + "ERROR" + colorReset
	default:
		return colorBold + c.errBg + c.err + level.CapitalString() + colorReset
	}
}

// abbreviateName shortens component names: calendar.engine -> c.engine
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 && parts[0] != "" {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

// sortedPairs renders a map of encoded fields as key/value pairs in key order.
func sortedPairs(m map[string]interface{}) [][2]string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([][2]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, [2]string{k, fmt.Sprintf("%v", m[k])})
	}
	return pairs
}

// fieldPairs flattens one zap field. Most fields produce one pair; error
// fields may also add an "errorVerbose" pair.
func fieldPairs(field zapcore.Field) [][2]string {
	m := zapcore.NewMapObjectEncoder()
	field.AddTo(m)
	return sortedPairs(m.Fields)
}

// extractFieldValues renders context fields then entry fields with
// theme-aware colors. Calendar fields are shown bare
// ("2024-02-10 Asia/Kuala_Lumpur luck 4/5"); every other field appears as
// key=value so nothing is silently dropped. Stack traces ("errorVerbose")
// are left to the JSON encoder.
func extractFieldValues(context map[string]interface{}, fields []zapcore.Field) string {
	pairs := sortedPairs(context)
	for _, field := range fields {
		pairs = append(pairs, fieldPairs(field)...)
	}

	c := colors()
	var values []string
	for _, kv := range pairs {
		key, val := kv[0], kv[1]
		switch key {
		case "errorVerbose":
			continue
		case FieldDate, FieldTimezone:
			values = append(values, c.id+val+colorReset)
		case FieldLuck:
			values = append(values, c.fg+"luck "+c.number+val+colorReset+c.fg+"/5"+colorReset)
		case FieldDurationMS:
			values = append(values, c.number+val+colorReset+"ms")
		case FieldError:
			values = append(values, c.err+key+"="+val+colorReset)
		default:
			values = append(values, c.fg+key+"="+colorReset+val)
		}
	}

	return strings.Join(values, " ")
}
