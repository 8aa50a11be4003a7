package display

import (
	"strings"

	"github.com/spf13/cobra"
)

// OutputFormat picks the format for a command: --json wins, then an
// explicit --format, then fallback (usually display.format from config).
func OutputFormat(cmd *cobra.Command, fallback string) string {
	if fallback == "" {
		fallback = FormatText
	}
	// Handle nil command gracefully
	if cmd == nil {
		return strings.ToLower(fallback)
	}

	if cmd.Flags().Changed("json") {
		if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
			return FormatJSON
		}
	}

	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		return strings.ToLower(f.Value.String())
	}
	return strings.ToLower(fallback)
}
