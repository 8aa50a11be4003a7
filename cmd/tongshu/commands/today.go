package commands

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/tongshu/am"
	"github.com/teranos/tongshu/display"
	"github.com/teranos/tongshu/errors"
	"github.com/teranos/tongshu/logger"
)

// NewTodayCmd builds the today command.
func NewTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the calendar reading for now or a given date",
		Long: `Show the lunar date, zodiac, stem-branch year and solar term.

With --watch the reading is printed again whenever the active config file
changes, so edits to calendar.timezone or display.lang show up live.

Examples:
  tongshu today
  tongshu today --date 2024-02-10 --tz Asia/Shanghai
  tongshu today --watch`,
		Args: cobra.NoArgs,
		RunE: runToday,
	}
	cmd.Flags().String("date", "", "Date to read (YYYY-MM-DD, default now)")
	cmd.Flags().Bool("watch", false, "Re-render when the config file changes")
	return cmd
}

func runToday(cmd *cobra.Command, args []string) error {
	env, err := envFrom(cmd)
	if err != nil {
		return err
	}
	dateArg, _ := cmd.Flags().GetString("date")
	watch, _ := cmd.Flags().GetBool("watch")

	if err := showToday(cmd, env, dateArg); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	return watchToday(cmd, env, dateArg)
}

func showToday(cmd *cobra.Command, env *Env, dateArg string) error {
	start := time.Now()
	date, err := env.ParseDate(dateArg)
	if err != nil {
		return err
	}
	snap := env.Engine.Snapshot(date, "")

	if logger.ShouldOutput(env.Verbosity, logger.OutputTiming) {
		logger.LoggerFromContext(cmd.Context()).Debugw("Snapshot computed",
			logger.FieldDate, snap.Date(),
			logger.FieldTimezone, snap.Zone,
			logger.FieldDurationMS, time.Since(start).Milliseconds())
	}
	return env.Output(cmd.OutOrStdout(), snap, func(r *display.Renderer) error {
		return r.Snapshot(snap)
	})
}

func watchToday(cmd *cobra.Command, env *Env, dateArg string) error {
	files := am.LoadedFiles()
	if len(files) == 0 {
		return errors.WithHint(
			errors.New("no config file to watch"),
			"run 'tongshu am init' to create ~/.tongshu/am.toml")
	}
	path := files[len(files)-1]

	watcher, err := am.NewConfigWatcher(path)
	if err != nil {
		return err
	}
	am.SetGlobalWatcher(watcher)
	defer am.SetGlobalWatcher(nil)
	defer watcher.Stop()

	var mu sync.Mutex
	ctx := logger.WithComponent(commandContext(cmd), "today.watch")
	log := logger.ChildLogger(logger.LoggerFromContext(ctx), logger.FieldFile, path)
	watcher.OnReload(func(cfg *am.Config) error {
		next, err := NewEnv(applyFlags(cmd, cfg), env.Verbosity)
		if err != nil {
			return err
		}
		mu.Lock()
		defer mu.Unlock()
		if logger.ShouldOutput(env.Verbosity, logger.OutputReload) {
			log.Infow("Re-rendering after config change",
				logger.FieldTimezone, next.Config.GetTimezone())
		}
		return showToday(cmd, next, dateArg)
	})
	watcher.Start()

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl-C to stop)\n", path)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}
