// Build metadata for the -version flag

package version

import (
	"runtime/debug"
	"time"
)

// Info is the VCS metadata stamped into the binary.
type Info struct {
	Revision string
	Time     time.Time
}

// FromBuildInfo extracts the short commit hash and commit time recorded by
// the Go toolchain. Reports false when the binary was built outside a VCS
// checkout.
func FromBuildInfo() (Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}, false
	}

	var info Info
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
			if len(info.Revision) > 7 {
				info.Revision = info.Revision[:7]
			}
		case "vcs.time":
			info.Time, _ = time.Parse(time.RFC3339, s.Value)
		}
	}
	if info.Revision == "" || info.Time.IsZero() {
		return Info{}, false
	}
	return info, true
}
