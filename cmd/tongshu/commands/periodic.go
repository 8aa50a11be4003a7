package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/tongshu/display"
	"github.com/teranos/tongshu/errors"
	"github.com/teranos/tongshu/fortune"
	"github.com/teranos/tongshu/logger"
)

// NewMonthCmd builds the month command.
func NewMonthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show a monthly report",
		Long: `Show a monthly report for a lunar month.

A report file (.toml or .yaml) supplies the prose; missing translations of
the month branch and element are filled in. Without a file, a skeleton with
the date-derived fields is shown for --year/--month or the current lunar
month.

Examples:
  tongshu month
  tongshu month --year 2025 --month 9
  tongshu month --file 2025-09.toml --lang zh`,
		Args: cobra.NoArgs,
		RunE: runMonth,
	}
	cmd.Flags().String("file", "", "Monthly report file (.toml, .yaml)")
	cmd.Flags().Int("year", 0, "Lunar year")
	cmd.Flags().Int("month", 0, "Lunar month (1-12)")
	return cmd
}

// NewYearCmd builds the year command.
func NewYearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "year",
		Short: "Show a yearly report",
		Long: `Show a yearly report for a lunar year.

A report file (.toml or .yaml) supplies the prose; missing translations of
the zodiac, element, directions and month lists are filled in. Without a
file, a skeleton is shown for --year or the current lunar year.

Examples:
  tongshu year
  tongshu year --year 2025
  tongshu year --file 2025.yaml --json`,
		Args: cobra.NoArgs,
		RunE: runYear,
	}
	cmd.Flags().String("file", "", "Yearly report file (.toml, .yaml)")
	cmd.Flags().Int("year", 0, "Lunar year")
	return cmd
}

func runMonth(cmd *cobra.Command, args []string) error {
	env, err := envFrom(cmd)
	if err != nil {
		return err
	}
	file, _ := cmd.Flags().GetString("file")
	yearSet := cmd.Flags().Changed("year")
	monthSet := cmd.Flags().Changed("month")

	var report fortune.Monthly
	switch {
	case file != "":
		if report, err = fortune.LoadMonthly(file); err != nil {
			return err
		}
		logger.LoggerFromContext(cmd.Context()).Infow("Monthly report loaded", logger.FieldFile, file)
	case yearSet && monthSet:
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")
		report = fortune.MonthlySkeleton(year, month)
		if err := report.Validate(); err != nil {
			return err
		}
	case yearSet || monthSet:
		return errors.WithHint(
			errors.NewInvalidInputError("--year and --month must be given together"),
			"omit both to use the current lunar month")
	default:
		report = env.Teller.Monthly(env.Engine.Now(), "")
	}

	return env.Output(cmd.OutOrStdout(), report, func(r *display.Renderer) error {
		return r.Monthly(report)
	})
}

func runYear(cmd *cobra.Command, args []string) error {
	env, err := envFrom(cmd)
	if err != nil {
		return err
	}
	file, _ := cmd.Flags().GetString("file")

	var report fortune.Yearly
	switch {
	case file != "":
		if report, err = fortune.LoadYearly(file); err != nil {
			return err
		}
		logger.LoggerFromContext(cmd.Context()).Infow("Yearly report loaded", logger.FieldFile, file)
	case cmd.Flags().Changed("year"):
		year, _ := cmd.Flags().GetInt("year")
		report = fortune.YearlySkeleton(year)
	default:
		report = env.Teller.Yearly(env.Engine.Now(), "")
	}

	return env.Output(cmd.OutOrStdout(), report, func(r *display.Renderer) error {
		return r.Yearly(report)
	})
}
