package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
//	0 (default) - results and errors
//	1 (-v)      - + config sources, watcher reloads
//	2 (-vv)     - + timing, resolved zones and lunar dates
//	3 (-vvv)    - + full record dumps

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	OutputResults OutputCategory = iota // Command output
	OutputErrors                        // Errors with hints

	OutputConfig // Config files merged, values applied
	OutputReload // Config watcher reloads

	OutputTiming   // Operation timing
	OutputInternal // Zone resolution, lunar conversion

	OutputDataDump // Full record contents
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults: VerbosityUser,
	OutputErrors:  VerbosityUser,

	OutputConfig: VerbosityInfo,
	OutputReload: VerbosityInfo,

	OutputTiming:   VerbosityDebug,
	OutputInternal: VerbosityDebug,

	OutputDataDump: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputResults:  "results",
	OutputErrors:   "errors",
	OutputConfig:   "config",
	OutputReload:   "reload",
	OutputTiming:   "timing",
	OutputInternal: "internal",
	OutputDataDump: "data-dump",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}

// EnabledCategories names the output categories shown at verbosity, in
// category order.
func EnabledCategories(verbosity int) []string {
	var names []string
	for c := OutputResults; c <= OutputDataDump; c++ {
		if ShouldOutput(verbosity, c) {
			names = append(names, CategoryName(c))
		}
	}
	return names
}

// VerbosityDescription returns a description of what's shown at each level
func VerbosityDescription(verbosity int) string {
	switch verbosity {
	case VerbosityUser:
		return "results and errors only"
	case VerbosityInfo:
		return "results, errors, config sources and reloads"
	case VerbosityDebug:
		return "above + timing and calendar internals"
	case VerbosityTrace:
		return "full output including record dumps"
	default:
		if verbosity > VerbosityTrace {
			return "maximum verbosity"
		}
		return "unknown verbosity level"
	}
}
