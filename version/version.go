package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build information, set with -ldflags "-X github.com/teranos/tongshu/version.Version=...".
var (
	CommitHash = "dev"
	BuildTime  = "unknown"
	Version    = "dev"
)

// LunarModule is the lunar conversion library whose release is reported
// next to the tongshu build.
const LunarModule = "github.com/6tail/lunar-go"

// Info describes the running binary and the almanac data it was built with.
type Info struct {
	Version    string `json:"version" yaml:"version"`
	CommitHash string `json:"commit_hash" yaml:"commit_hash"`
	BuildTime  string `json:"build_time" yaml:"build_time"`
	Lunar      string `json:"lunar" yaml:"lunar"`
	GoVersion  string `json:"go_version" yaml:"go_version"`
	Platform   string `json:"platform" yaml:"platform"`
}

// Get returns the current build information.
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Lunar:      lunarVersion(debug.ReadBuildInfo()),
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// lunarVersion finds the linked lunar-go release. Test binaries and builds
// without module info report "unknown".
func lunarVersion(bi *debug.BuildInfo, ok bool) string {
	if !ok || bi == nil {
		return "unknown"
	}
	for _, dep := range bi.Deps {
		if dep.Path != LunarModule {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}

// String is the one-line banner printed by `tongshu version`.
func (i Info) String() string {
	return fmt.Sprintf("tongshu %s (commit %s, built %s, lunar-go %s)", i.Version, i.Short(), i.BuildTime, i.Lunar)
}

// Short returns the abbreviated commit hash.
func (i Info) Short() string {
	if len(i.CommitHash) > 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
