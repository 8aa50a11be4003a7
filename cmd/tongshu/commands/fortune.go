package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/tongshu/display"
	"github.com/teranos/tongshu/logger"
)

// NewFortuneCmd builds the fortune command.
func NewFortuneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fortune [YYYY-MM-DD]",
		Short: "Show the daily almanac for a date",
		Long: `Show the daily almanac: good and bad activities, lucky directions,
the day pillar, the clashing zodiac and a luck index from 1 to 5.

Without a date the almanac is cast for now in the configured time zone.

Examples:
  tongshu fortune
  tongshu fortune 1990-05-17 --lang en
  tongshu fortune 2024-02-10 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFortune,
	}
}

func runFortune(cmd *cobra.Command, args []string) error {
	env, err := envFrom(cmd)
	if err != nil {
		return err
	}
	var dateArg string
	if len(args) == 1 {
		dateArg = args[0]
	}

	start := time.Now()
	date, err := env.ParseDate(dateArg)
	if err != nil {
		return err
	}
	daily := env.Teller.Daily(date, "")

	log := logger.LoggerFromContext(cmd.Context())
	if logger.ShouldOutput(env.Verbosity, logger.OutputTiming) {
		log.Debugw("Fortune cast",
			logger.FieldDate, daily.Date(),
			logger.FieldLuck, daily.LuckIndex,
			logger.FieldDurationMS, time.Since(start).Milliseconds())
	}
	if logger.ShouldOutput(env.Verbosity, logger.OutputDataDump) {
		log.Debugw("Daily record", "daily", daily)
	}

	return env.Output(cmd.OutOrStdout(), daily, func(r *display.Renderer) error {
		return r.Daily(daily)
	})
}
