package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the tongshu command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tongshu",
		Short: "通书 Tong Shu - bilingual Chinese almanac",
		Long: `通书 Tong Shu - bilingual Chinese almanac

Reads the Chinese calendar for a date and time zone: lunar date, zodiac,
stem-branch year and solar term, plus a daily almanac with a luck index.
Every label is rendered in Chinese, English or both.

Available commands:
  today     - Show today's calendar reading
  fortune   - Show the daily almanac for a date
  month     - Show a monthly report
  year      - Show a yearly report
  translate - Translate almanac vocabulary
  am        - Manage tongshu configuration ("I am")

Examples:
  tongshu today                          # Calendar reading for now
  tongshu fortune 1990-05-17 --lang en   # Almanac in English
  tongshu translate zodiac 龙            # Dragon
  tongshu am where                       # Where configuration comes from`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return prepareContext(cmd)
		},
	}

	AddGlobalFlags(root)

	root.AddCommand(NewTodayCmd())
	root.AddCommand(NewFortuneCmd())
	root.AddCommand(NewMonthCmd())
	root.AddCommand(NewYearCmd())
	root.AddCommand(NewTranslateCmd())
	root.AddCommand(NewAmCmd())
	root.AddCommand(NewVersionCmd())
	return root
}

func configOnly() map[string]string {
	return map[string]string{annotationConfigOnly: "true"}
}
