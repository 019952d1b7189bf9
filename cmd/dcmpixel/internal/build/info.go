// Package build carries the CLI's version metadata, injected at link time
// via -ldflags and surfaced through the --version flag.
package build

import (
	"fmt"
	"runtime"
)

// Info is the CLI's build-time metadata.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Platform  string
}

var info *Info

// SetBuildInfo records the values injected at build time.
func SetBuildInfo(version, commit, date string) {
	info = &Info{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Get returns the current build info, or defaults if SetBuildInfo was never
// called.
func Get() Info {
	if info == nil {
		return Info{
			Version:   "dev",
			Commit:    "none",
			BuildDate: "unknown",
			GoVersion: runtime.Version(),
			Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		}
	}
	return *info
}

// String renders the build info as a one-line summary.
func (i Info) String() string {
	return fmt.Sprintf("dcmpixel %s (commit %s, built %s, %s, %s)",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
