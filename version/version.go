package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Release builds stamp these via ldflags:
//
//	go build -ldflags "-X github.com/teranos/protodts/version.Version=v0.4.0"
//
// A plain `go install` leaves them unset, and Get falls back to the module
// version and VCS stamps the toolchain embeds.
var (
	CommitHash = "dev"
	BuildTime  = "unknown"
	Version    = "dev"
)

const dirtySuffix = "-dirty"

// Info describes the running protodts binary.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Module     string `json:"module,omitempty"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

func Get() Info {
	info := Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = withBuildInfo(info, bi)
	}
	return info
}

// withBuildInfo fills fields the linker left at their defaults. Stamped
// values always win.
func withBuildInfo(info Info, bi *debug.BuildInfo) Info {
	info.Module = bi.Main.Path
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	var revision, modified string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			if info.BuildTime == "unknown" && s.Value != "" {
				info.BuildTime = s.Value
			}
		}
	}
	if info.CommitHash == "dev" && revision != "" {
		info.CommitHash = revision
		if modified == "true" {
			info.CommitHash += dirtySuffix
		}
	}
	return info
}

func (i Info) String() string {
	return fmt.Sprintf("protodts %s (commit %s, built %s)", i.Version, i.Short(), i.BuildTime)
}

// Short abbreviates the commit to seven characters, keeping a dirty marker.
func (i Info) Short() string {
	hash, dirty := i.CommitHash, ""
	if n := len(hash) - len(dirtySuffix); n > 0 && hash[n:] == dirtySuffix {
		hash, dirty = hash[:n], dirtySuffix
	}
	if len(hash) > 7 {
		hash = hash[:7]
	}
	return hash + dirty
}
