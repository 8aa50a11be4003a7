// Package commands implements the tongshu CLI.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/tongshu/am"
	"github.com/teranos/tongshu/am/geotime"
	"github.com/teranos/tongshu/calendar"
	"github.com/teranos/tongshu/display"
	"github.com/teranos/tongshu/errors"
	"github.com/teranos/tongshu/fortune"
	"github.com/teranos/tongshu/logger"
)

// Env is the resolved state shared by every command of one invocation.
type Env struct {
	Config    *am.Config
	Engine    *calendar.Engine
	Teller    *fortune.Teller
	Lang      display.Lang
	Verbosity int
}

// AddGlobalFlags registers the persistent flags on the root command.
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().CountP("verbose", "v", verboseUsage())
	root.PersistentFlags().String("tz", "", "Time zone (IANA name; city names and abbreviations with calendar.lenient_timezones)")
	root.PersistentFlags().String("lang", "", "Output language: both, en, zh")
	root.PersistentFlags().String("format", "", "Output format: text, json, yaml")
	root.PersistentFlags().Bool("json", false, "Shorthand for --format json")
}

func verboseUsage() string {
	return fmt.Sprintf("Increase output verbosity (-v: %s; -vv: %s; -vvv: %s)",
		logger.VerbosityDescription(logger.VerbosityInfo),
		logger.VerbosityDescription(logger.VerbosityDebug),
		logger.VerbosityDescription(logger.VerbosityTrace))
}

// applyFlags copies explicitly set persistent flags over the loaded config.
func applyFlags(cmd *cobra.Command, cfg *am.Config) *am.Config {
	out := *cfg
	if f := cmd.Flags().Lookup("tz"); f != nil && f.Changed {
		out.Calendar.Timezone = f.Value.String()
	}
	if f := cmd.Flags().Lookup("lang"); f != nil && f.Changed {
		out.Display.Lang = f.Value.String()
	}
	out.Display.Format = display.OutputFormat(cmd, cfg.GetFormat())
	return &out
}

// initLogging loads configuration, applies flags and initializes the
// global logger.
func initLogging(cmd *cobra.Command) (*am.Config, int, error) {
	verbosity, _ := cmd.Flags().GetCount("verbose")

	loaded, err := am.Load()
	if err != nil {
		return nil, verbosity, errors.Wrap(err, "failed to load config")
	}
	cfg := applyFlags(cmd, loaded)

	logger.SetTheme(cfg.GetLogTheme())
	if err := logger.InitializeWithVerbosity(cfg.Log.JSON, verbosity); err != nil {
		return nil, verbosity, errors.Wrap(err, "failed to initialize logger")
	}
	return cfg, verbosity, nil
}

// Prepare loads configuration, applies flags, initializes logging and
// builds the engine.
func Prepare(cmd *cobra.Command) (*Env, error) {
	cfg, verbosity, err := initLogging(cmd)
	if err != nil {
		return nil, err
	}

	if logger.ShouldOutput(verbosity, logger.OutputConfig) {
		logger.Logger.Infow("Configuration loaded",
			logger.FieldCommand, cmd.Name(),
			logger.FieldTimezone, cfg.GetTimezone(),
			logger.FieldFormat, cfg.Display.Format,
			logger.FieldCount, len(am.LoadedFiles()),
			"verbosity", logger.LevelName(verbosity),
			"shows", logger.VerbosityDescription(verbosity),
			"output", logger.EnabledCategories(verbosity))
	}

	return NewEnv(cfg, verbosity)
}

// NewEnv builds the engine, teller and language for cfg.
func NewEnv(cfg *am.Config, verbosity int) (*Env, error) {
	engine, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	lang, err := display.ParseLang(cfg.Display.Lang)
	if err != nil {
		return nil, err
	}
	return &Env{
		Config:    cfg,
		Engine:    engine,
		Teller:    fortune.NewTeller(engine, fortune.WithLogger(logger.ComponentLogger("fortune.teller"))),
		Lang:      lang,
		Verbosity: verbosity,
	}, nil
}

// NewEngine builds a calendar engine from the calendar section of cfg.
func NewEngine(cfg *am.Config) (*calendar.Engine, error) {
	terms, err := calendar.ParseSolarTermIndexer(cfg.Calendar.SolarTerms)
	if err != nil {
		return nil, errors.Wrap(err, "calendar.solar_terms")
	}
	resolver := &geotime.Resolver{
		Default: cfg.GetTimezone(),
		Lenient: cfg.Calendar.LenientTimezones,
		Logger:  logger.ComponentLogger("geotime"),
	}
	return calendar.NewEngine(
		calendar.WithZoneResolver(resolver),
		calendar.WithSolarTerms(terms),
		calendar.WithLogger(logger.ComponentLogger("calendar.engine")),
	), nil
}

// ParseDate parses YYYY-MM-DD as midnight in the default zone. An empty
// string is now.
func (e *Env) ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return e.Engine.Now(), nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, e.Engine.Location(""))
	if err != nil {
		return time.Time{}, errors.WithHint(
			errors.NewInvalidInputError("invalid date %q", s),
			"use YYYY-MM-DD, for example 2024-02-10")
	}
	return t, nil
}

// Output renders v as text with render, or encodes it in the configured
// structured format.
func (e *Env) Output(w io.Writer, v interface{}, render func(*display.Renderer) error) error {
	switch format := e.Config.GetFormat(); format {
	case display.FormatText:
		return render(display.NewRenderer(w, e.Lang))
	default:
		return display.Encode(w, format, v)
	}
}

type envKey struct{}

// annotationConfigOnly marks commands that must run with an invalid
// configuration, so only logging is initialized for them.
const annotationConfigOnly = "tongshu/config-only"

// prepareContext runs Prepare and stores the Env and command name on the
// command's context.
func prepareContext(cmd *cobra.Command) error {
	ctx := logger.WithCommand(commandContext(cmd), cmd.Name())

	if cmd.Annotations[annotationConfigOnly] == "true" {
		if _, _, err := initLogging(cmd); err != nil {
			return err
		}
		cmd.SetContext(ctx)
		return nil
	}

	env, err := Prepare(cmd)
	if err != nil {
		return err
	}
	cmd.SetContext(context.WithValue(ctx, envKey{}, env))
	return nil
}

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// envFrom returns the Env stored by prepareContext, preparing one if the
// command ran without the root's pre-run hook.
func envFrom(cmd *cobra.Command) (*Env, error) {
	if ctx := cmd.Context(); ctx != nil {
		if env, ok := ctx.Value(envKey{}).(*Env); ok {
			return env, nil
		}
	}
	return Prepare(cmd)
}
