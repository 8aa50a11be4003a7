package geotime

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	// Embedded zone database so Asia/Kuala_Lumpur resolves the same on every host.
	_ "time/tzdata"

	"github.com/teranos/tongshu/errors"
)

// DefaultTimezone is the zone used when a caller passes an empty identifier.
const DefaultTimezone = "Asia/Kuala_Lumpur"

var locationKeywordTimezones = map[string]string{
	"kuala lumpur":   "Asia/Kuala_Lumpur",
	"malaysia":       "Asia/Kuala_Lumpur",
	"penang":         "Asia/Kuala_Lumpur",
	"johor":          "Asia/Kuala_Lumpur",
	"kuching":        "Asia/Kuching",
	"singapore":      "Asia/Singapore",
	"beijing":        "Asia/Shanghai",
	"shanghai":       "Asia/Shanghai",
	"guangzhou":      "Asia/Shanghai",
	"shenzhen":       "Asia/Shanghai",
	"chengdu":        "Asia/Shanghai",
	"china":          "Asia/Shanghai",
	"hong kong":      "Asia/Hong_Kong",
	"macau":          "Asia/Macau",
	"macao":          "Asia/Macau",
	"taipei":         "Asia/Taipei",
	"taiwan":         "Asia/Taipei",
	"jakarta":        "Asia/Jakarta",
	"bangkok":        "Asia/Bangkok",
	"manila":         "Asia/Manila",
	"ho chi minh":    "Asia/Ho_Chi_Minh",
	"hanoi":          "Asia/Bangkok",
	"vietnam":        "Asia/Ho_Chi_Minh",
	"seoul":          "Asia/Seoul",
	"korea":          "Asia/Seoul",
	"tokyo":          "Asia/Tokyo",
	"japan":          "Asia/Tokyo",
	"india":          "Asia/Kolkata",
	"mumbai":         "Asia/Kolkata",
	"dubai":          "Asia/Dubai",
	"sydney":         "Australia/Sydney",
	"melbourne":      "Australia/Sydney",
	"australia":      "Australia/Sydney",
	"auckland":       "Pacific/Auckland",
	"new zealand":    "Pacific/Auckland",
	"london":         "Europe/London",
	"united kingdom": "Europe/London",
	"paris":          "Europe/Paris",
	"berlin":         "Europe/Berlin",
	"amsterdam":      "Europe/Amsterdam",
	"new york":       "America/New_York",
	"toronto":        "America/Toronto",
	"vancouver":      "America/Vancouver",
	"san francisco":  "America/Los_Angeles",
	"los angeles":    "America/Los_Angeles",
	"chinatown":      "America/New_York",
}

var countryCodeTimezones = map[string]string{
	"my": "Asia/Kuala_Lumpur",
	"sg": "Asia/Singapore",
	"cn": "Asia/Shanghai",
	"hk": "Asia/Hong_Kong",
	"mo": "Asia/Macau",
	"tw": "Asia/Taipei",
	"id": "Asia/Jakarta",
	"th": "Asia/Bangkok",
	"ph": "Asia/Manila",
	"vn": "Asia/Ho_Chi_Minh",
	"kr": "Asia/Seoul",
	"jp": "Asia/Tokyo",
	"in": "Asia/Kolkata",
	"ae": "Asia/Dubai",
	"au": "Australia/Sydney",
	"nz": "Pacific/Auckland",
	"gb": "Europe/London",
	"uk": "Europe/London",
	"fr": "Europe/Paris",
	"de": "Europe/Berlin",
	"nl": "Europe/Amsterdam",
	"us": "America/New_York",
	"ca": "America/Toronto",
}

var timezoneByAbbreviation = map[string]string{
	"myt":  "Asia/Kuala_Lumpur",
	"sgt":  "Asia/Singapore",
	"hkt":  "Asia/Hong_Kong",
	"jst":  "Asia/Tokyo",
	"kst":  "Asia/Seoul",
	"wib":  "Asia/Jakarta",
	"ict":  "Asia/Bangkok",
	"pht":  "Asia/Manila",
	"ist":  "Asia/Kolkata",
	"aest": "Australia/Sydney",
	"bst":  "Europe/London",
	"cet":  "Europe/Berlin",
	"cest": "Europe/Berlin",
	"est":  "America/New_York",
	"edt":  "America/New_York",
	"pst":  "America/Los_Angeles",
	"pdt":  "America/Los_Angeles",
}

// NormalizeTimezone attempts to resolve user input into a valid IANA timezone.
// It accepts IANA names in any case, zone abbreviations, city or country
// names, and two-letter country codes.
func NormalizeTimezone(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", errors.Wrap(errors.ErrUnknownTimezone, "timezone cannot be empty")
	}

	// First, check if the input is already a valid timezone
	if isValidTimezone(trimmed) {
		if canonicalized := canonicalizeValidTimezone(trimmed); canonicalized != "" {
			return canonicalized, nil
		}
		return trimmed, nil
	}

	// Try sanitizing only if the raw input isn't valid
	candidate := sanitizeTimezone(trimmed)
	if isValidTimezone(candidate) {
		return candidate, nil
	}

	lower := strings.ToLower(trimmed)
	if tz, ok := timezoneByAbbreviation[lower]; ok {
		return tz, nil
	}

	if tz := GuessTimezoneFromCountryCode(lower); tz != "" {
		return tz, nil
	}

	if tz := GuessTimezoneFromLocation(lower); tz != "" {
		return tz, nil
	}

	return "", errors.NewUnknownTimezoneError(input)
}

// GuessTimezoneFromLocation uses keyword heuristics to derive a timezone.
// The longest matching keyword wins so "hong kong" beats "kong"-like overlaps
// and results do not depend on map iteration order.
func GuessTimezoneFromLocation(location string) string {
	lower := strings.ToLower(strings.TrimSpace(location))
	best, bestLen := "", 0
	for keyword, timezone := range locationKeywordTimezones {
		if len(keyword) > bestLen && strings.Contains(lower, keyword) {
			best, bestLen = timezone, len(keyword)
		}
	}
	return best
}

// GuessTimezoneFromCountryCode maps ISO-like country codes to timezones.
func GuessTimezoneFromCountryCode(code string) string {
	lower := strings.ToLower(strings.TrimSpace(code))
	if tz, ok := countryCodeTimezones[lower]; ok {
		return tz
	}
	return ""
}

// localZoneSources are consulted in order by DetectLocalTimezone. Each
// returns a candidate IANA name, or an error when the source is absent.
var localZoneSources = []func() (string, error){
	func() (string, error) { return os.Getenv("TZ"), nil },
	func() (string, error) { return time.Local.String(), nil },
	func() (string, error) {
		data, err := os.ReadFile("/etc/timezone")
		return string(data), err
	},
	func() (string, error) { return zoneFromLink("/etc/localtime") },
	func() (string, error) { return zoneFromLink("/var/db/timezone/zoneinfo/localtime") },
}

// DetectLocalTimezone names the host zone: the TZ variable, the Go runtime's
// local zone, /etc/timezone, then the /etc/localtime link.
func DetectLocalTimezone() (string, error) {
	for _, source := range localZoneSources {
		tz, err := source()
		if err != nil {
			continue
		}
		tz = strings.TrimSpace(tz)
		if tz == "Local" || !isValidTimezone(tz) {
			continue
		}
		return tz, nil
	}
	return "", errors.WithHint(
		errors.Wrap(errors.ErrUnknownTimezone, "could not detect the host zone"),
		"set TZ or calendar.timezone")
}

// LocalZoneName is the name reported for time.Local fallbacks.
func LocalZoneName() string {
	if tz, err := DetectLocalTimezone(); err == nil {
		return tz
	}
	return time.Local.String()
}

// zoneFromLink reads the zone id from a symlink into a zoneinfo tree, such as
// /etc/localtime -> /usr/share/zoneinfo/Asia/Kuala_Lumpur.
func zoneFromLink(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	_, zone, ok := strings.Cut(filepath.ToSlash(resolved), "zoneinfo/")
	if !ok {
		return "", errors.Newf("%s does not point into a zoneinfo tree", path)
	}
	return zone, nil
}

func sanitizeTimezone(tz string) string {
	trimmed := strings.TrimSpace(tz)
	trimmed = strings.Trim(trimmed, "\"'")
	trimmed = strings.ReplaceAll(trimmed, " ", "_")
	if strings.Contains(trimmed, "/") {
		parts := strings.Split(trimmed, "/")
		for i, part := range parts {
			parts[i] = titleWords(part)
		}
		return strings.Join(parts, "/")
	}
	return titleWords(trimmed)
}

// titleWords capitalizes each underscore-separated word: kuala_lumpur -> Kuala_Lumpur
func titleWords(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		words[i] = title(w)
	}
	return strings.Join(words, "_")
}

func title(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func isValidTimezone(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// canonicalizeValidTimezone returns the canonical IANA spelling for inputs
// with broken capitalization ("asia/kuala_lumpur"), or "" when the input is
// already properly formatted (e.g. "America/Port_of_Spain").
func canonicalizeValidTimezone(tz string) string {
	if strings.ToLower(tz) == tz || hasIncorrectCapitalization(tz) {
		candidate := sanitizeTimezone(tz)
		if isValidTimezone(candidate) && candidate != tz {
			return candidate
		}
	}
	return ""
}

// hasIncorrectCapitalization detects timezones that need case correction
func hasIncorrectCapitalization(tz string) bool {
	if strings.ToLower(tz) == tz {
		return true
	}

	if strings.Contains(tz, "/") {
		for _, part := range strings.Split(tz, "/") {
			if len(part) > 0 && part[0] >= 'a' && part[0] <= 'z' {
				return true
			}
		}
	}

	return false
}

// ValidateTimezone ensures the timezone string maps to a valid IANA entry.
func ValidateTimezone(tz string) error {
	if !isValidTimezone(tz) {
		return errors.NewUnknownTimezoneError(tz)
	}
	return nil
}
