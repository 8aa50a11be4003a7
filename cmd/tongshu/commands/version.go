package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/tongshu/display"
	"github.com/teranos/tongshu/version"
)

// NewVersionCmd builds the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show tongshu version information",
		Long:        `Display version, build time, commit hash, and platform information for the tongshu binary.`,
		Args:        cobra.NoArgs,
		Annotations: configOnly(),
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			if format := display.OutputFormat(cmd, display.FormatText); format != display.FormatText {
				return display.Encode(out, format, info)
			}
			fmt.Fprintln(out, info.String())
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			return nil
		},
	}
}
