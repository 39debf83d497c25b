package version

import (
	"fmt"
	"runtime/debug"
)

// Version is the library release version. Overridable at build time using
// -ldflags "-X github.com/mobilevikings/viking-go/version.Version=...".
var Version = "2.0.0"

// modulePath identifies this module in the consumer's build info.
const modulePath = "github.com/mobilevikings/viking-go"

// Info describes the library build.
type Info struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

// Get returns version information for the library. When the library is
// consumed as a dependency, the module version recorded in the consumer's
// build info takes precedence over the compiled-in default.
func Get() Info {
	info := Info{Version: Version}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, dep := range bi.Deps {
			if dep.Path == modulePath && dep.Version != "" && dep.Version != "(devel)" {
				info.Version = dep.Version
			}
		}
	}

	return info
}

// UserAgent returns the User-Agent value sent with every API request.
func UserAgent() string {
	return fmt.Sprintf("viking-go/%s", Get().Version)
}
