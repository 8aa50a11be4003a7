package commands

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teranos/tongshu/am"
	"github.com/teranos/tongshu/am/geotime"
	"github.com/teranos/tongshu/display"
	"github.com/teranos/tongshu/errors"
)

// NewAmCmd builds the am (configuration) command.
func NewAmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "am",
		Short: "Manage tongshu configuration",
		Long: `am - Manage tongshu configuration ("I am")

Display and manage tongshu configuration settings.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (TONGSHU_* prefix, TONGSHU_TZ, TONGSHU_LANG)
3. Project config (nearest ./am.toml, searching up directories)
4. User config (~/.tongshu/am.toml)
5. System config (/etc/tongshu/config.toml)
6. Default values

Examples:
  tongshu am show                    # Show current configuration
  tongshu am show --format json      # Show configuration in JSON format
  tongshu am get calendar.timezone   # Get specific config value
  tongshu am set display.lang en     # Write a value to ~/.tongshu/am.toml
  tongshu am validate                # Validate current configuration
  tongshu am validate ./draft.toml   # Validate one file on top of the defaults`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:         "show",
		Short:       "Show current configuration",
		Long:        "Display the current tongshu configuration from all sources (TOML unless --format is given)",
		Args:        cobra.NoArgs,
		Annotations: configOnly(),
		RunE:        runAmShow,
	})
	cmd.AddCommand(&cobra.Command{
		Use:         "get <key>",
		Short:       "Get a specific configuration value",
		Long:        "Get a specific configuration value using dot notation (e.g., calendar.timezone, display.lang)",
		Args:        cobra.ExactArgs(1),
		Annotations: configOnly(),
		RunE:        runAmGet,
	})
	cmd.AddCommand(&cobra.Command{
		Use:         "set <key> <value>",
		Short:       "Set a configuration value in the user config",
		Long:        "Write a value to ~/.tongshu/am.toml, keeping other settings and rotating backups",
		Args:        cobra.ExactArgs(2),
		Annotations: configOnly(),
		RunE:        runAmSet,
	})
	cmd.AddCommand(&cobra.Command{
		Use:         "validate [file]",
		Short:       "Validate current configuration",
		Long:        "Validate the current tongshu configuration, or a single config file on top of the defaults",
		Args:        cobra.MaximumNArgs(1),
		Annotations: configOnly(),
		RunE:        runAmValidate,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "where",
		Short: "Show where configuration is loaded from",
		Long: `Show the configuration cascade and where each active setting
comes from: a file, an environment variable or the built-in defaults.`,
		Args:        cobra.NoArgs,
		Annotations: configOnly(),
		RunE:        runAmWhere,
	})
	cmd.AddCommand(&cobra.Command{
		Use:         "init",
		Short:       "Create ~/.tongshu/am.toml with the defaults",
		Long:        "Write the default configuration to ~/.tongshu/am.toml unless the file already exists",
		Args:        cobra.NoArgs,
		Annotations: configOnly(),
		RunE:        runAmInit,
	})
	return cmd
}

func runAmShow(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	format := display.OutputFormat(cmd, display.FormatTOML)
	if format == display.FormatText {
		format = display.FormatTOML
	}

	out := cmd.OutOrStdout()
	if format != display.FormatJSON {
		fmt.Fprintln(out, "# tongshu configuration")
	}
	return display.Encode(out, format, cfg)
}

func runAmGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if _, err := am.Load(); err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if !am.IsSet(key) {
		return errors.WithHint(
			errors.NewInvalidInputError("configuration key %q not found", key),
			"run 'tongshu am where' to list every key")
	}
	fmt.Fprintln(cmd.OutOrStdout(), am.Get(key))
	return nil
}

// parseValue keeps booleans typed in the written TOML.
func parseValue(s string) interface{} {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

func runAmSet(cmd *cobra.Command, args []string) error {
	path := am.UserConfigPath()
	if path == "" {
		return errors.New("could not determine home directory")
	}
	if err := am.SetValue(path, args[0], parseValue(args[1])); err != nil {
		return err
	}

	am.Reset()
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to reload config")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s = %s (%s)\n", args[0], args[1], path)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: configuration is now invalid: %v\n", err)
	}
	return nil
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	load := am.Load
	if len(args) == 1 {
		load = func() (*am.Config, error) { return am.LoadFromFile(args[0]) }
	}
	cfg, err := load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}
	if len(args) == 1 {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", args[0])
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
	return nil
}

func runAmInit(cmd *cobra.Command, args []string) error {
	path, created, err := am.InitUserConfig()
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
	}
	return nil
}

func runAmWhere(cmd *cobra.Command, args []string) error {
	intro, err := am.GetConfigIntrospection()
	if err != nil {
		return errors.Wrap(err, "failed to get config introspection")
	}
	out := cmd.OutOrStdout()
	printWhere(out, intro)

	counts, _ := am.GetConfigSummary()["sources"].(map[string]int)
	fmt.Fprintf(out, "\nSettings per source: default %d, system %d, user %d, project %d, environment %d\n",
		counts[string(am.SourceDefault)], counts[string(am.SourceSystem)], counts[string(am.SourceUser)],
		counts[string(am.SourceProject)], counts[string(am.SourceEnvironment)])
	fmt.Fprintf(out, "Host zone (used for unknown zone ids): %s\n", geotime.LocalZoneName())
	return nil
}

func printWhere(out io.Writer, intro *am.ConfigIntrospection) {
	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
	fmt.Fprintln(out, "  2. [SYSTEM]   "+am.SystemConfigPath)
	fmt.Fprintln(out, "  3. [USER]     ~/.tongshu/am.toml")
	fmt.Fprintln(out, "  4. [PROJECT]  ./am.toml (searches up directories)")
	fmt.Fprintln(out, "  5. [ENV]      TONGSHU_* environment variables")
	fmt.Fprintln(out)

	// Group settings by file path, or by source for defaults and env vars
	type fileGroup struct {
		source   am.ConfigSource
		path     string
		settings []am.SettingInfo
	}
	groups := make(map[string]*fileGroup)
	for _, setting := range intro.Settings {
		path := setting.SourcePath
		if setting.Source == am.SourceDefault || setting.Source == am.SourceEnvironment {
			path = ""
		}
		key := path
		if key == "" {
			key = string(setting.Source)
		}
		group, ok := groups[key]
		if !ok {
			group = &fileGroup{source: setting.Source, path: path}
			groups[key] = group
		}
		group.settings = append(group.settings, setting)
	}

	sourceOrder := []am.ConfigSource{
		am.SourceDefault,
		am.SourceSystem,
		am.SourceUser,
		am.SourceProject,
		am.SourceEnvironment,
	}

	fmt.Fprintln(out, "Active configuration:")
	for _, source := range sourceOrder {
		var matched []*fileGroup
		for _, group := range groups {
			if group.source == source {
				matched = append(matched, group)
			}
		}
		sort.Slice(matched, func(i, j int) bool { return matched[i].path < matched[j].path })

		for _, group := range matched {
			switch {
			case group.path != "":
				fmt.Fprintf(out, "\n%s: %d settings from %s\n", source, len(group.settings), group.path)
			case source == am.SourceEnvironment:
				fmt.Fprintf(out, "\n%s: %d settings from environment variables\n", source, len(group.settings))
			default:
				fmt.Fprintf(out, "\n%s: %d settings\n", source, len(group.settings))
			}

			for _, setting := range group.settings {
				valueStr := fmt.Sprintf("%v", setting.Value)
				if len(valueStr) > 50 {
					valueStr = valueStr[:47] + "..."
				}
				if source == am.SourceEnvironment {
					fmt.Fprintf(out, "  %s = %s (%s)\n", setting.Key, valueStr, setting.SourcePath)
					continue
				}
				fmt.Fprintf(out, "  %s = %s\n", setting.Key, valueStr)
			}
		}
	}
}
