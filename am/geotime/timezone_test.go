package geotime

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeTimezone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Asia/Kuala_Lumpur", "Asia/Kuala_Lumpur"},
		{"asia/kuala_lumpur", "Asia/Kuala_Lumpur"},
		{"europe/berlin", "Europe/Berlin"},
		{"MYT", "Asia/Kuala_Lumpur"},
		{"PST", "America/Los_Angeles"},
		{"Kuala Lumpur", "Asia/Kuala_Lumpur"},
		{"Hong Kong", "Asia/Hong_Kong"},
		{"Beijing", "Asia/Shanghai"},
		{"TW", "Asia/Taipei"},
		{"SG", "Asia/Singapore"},
		// valid IANA names with lowercase articles stay as they are
		{"America/Port_of_Spain", "America/Port_of_Spain"},
		{"Europe/Isle_of_Man", "Europe/Isle_of_Man"},
		{"Pacific/Port_Moresby", "Pacific/Port_Moresby"},
	}

	for _, tc := range tests {
		actual, err := NormalizeTimezone(tc.input)
		if err != nil {
			t.Fatalf("expected timezone for %q, got error: %v", tc.input, err)
		}
		if actual != tc.expected {
			t.Fatalf("expected %s for input %q, got %s", tc.expected, tc.input, actual)
		}
	}
}

func TestNormalizeTimezoneRejects(t *testing.T) {
	for _, input := range []string{"", "   ", "Mars/Olympus_Mons", "zz"} {
		if tz, err := NormalizeTimezone(input); err == nil {
			t.Fatalf("expected error for %q, got %s", input, tz)
		}
	}
}

func TestGuessTimezoneHelpers(t *testing.T) {
	if tz := GuessTimezoneFromLocation("Based in Penang, Malaysia"); tz != "Asia/Kuala_Lumpur" {
		t.Fatalf("expected Penang to map to Asia/Kuala_Lumpur, got %s", tz)
	}

	if tz := GuessTimezoneFromLocation("Causeway Bay, Hong Kong"); tz != "Asia/Hong_Kong" {
		t.Fatalf("expected Hong Kong to map to Asia/Hong_Kong, got %s", tz)
	}

	if tz := GuessTimezoneFromLocation("somewhere"); tz != "" {
		t.Fatalf("expected no guess, got %s", tz)
	}

	if tz := GuessTimezoneFromCountryCode(" MY "); tz != "Asia/Kuala_Lumpur" {
		t.Fatalf("expected MY to map to Asia/Kuala_Lumpur, got %s", tz)
	}
}

func TestValidateTimezone(t *testing.T) {
	if err := ValidateTimezone("Asia/Singapore"); err != nil {
		t.Fatalf("expected Asia/Singapore to validate, got %v", err)
	}
	if err := ValidateTimezone("Not/AZone"); err == nil {
		t.Fatal("expected error for Not/AZone")
	}
}

func TestDetectLocalTimezoneFromTZ(t *testing.T) {
	t.Setenv("TZ", "Asia/Tokyo")
	tz, err := DetectLocalTimezone()
	if err != nil {
		t.Fatalf("DetectLocalTimezone: %v", err)
	}
	if tz != "Asia/Tokyo" {
		t.Errorf("DetectLocalTimezone() = %q, want Asia/Tokyo", tz)
	}
	if got := LocalZoneName(); got != "Asia/Tokyo" {
		t.Errorf("LocalZoneName() = %q, want Asia/Tokyo", got)
	}
}

func TestZoneFromLink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "zoneinfo", "America", "Port_of_Spain")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte("TZif"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "localtime")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	tz, err := zoneFromLink(link)
	if err != nil {
		t.Fatalf("zoneFromLink: %v", err)
	}
	if tz != "America/Port_of_Spain" {
		t.Errorf("zoneFromLink() = %q, want America/Port_of_Spain", tz)
	}

	plain := filepath.Join(dir, "plain")
	if err := os.WriteFile(plain, []byte("TZif"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := zoneFromLink(plain); err == nil {
		t.Error("zoneFromLink accepted a file outside any zoneinfo tree")
	}
}
