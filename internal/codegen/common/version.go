package common

import (
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
)

// Version is set via ldflags at build time: -ldflags "-X github.com/Alia5/keytab/internal/codegen/common.Version=x.y.z"
var Version = ""

const devVersion = "0.0.1-dev"

// GetVersion returns the ldflags version, then the module version recorded
// by `go install`, then "0.0.1-dev".
func GetVersion() (string, error) {
	v := Version
	if v == "" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			v = bi.Main.Version
		}
	}
	if v == "" {
		return devVersion, nil
	}

	v = strings.TrimPrefix(v, "v")
	base := strings.SplitN(v, "-", 2)[0]
	if strings.Count(base, ".") != 2 {
		return "", fmt.Errorf("invalid version format: %s (expected x.y.z)", v)
	}
	return v, nil
}

// ParseVersion splits "1.2.3" or "1.2.3-dirty" into its numeric parts.
// Missing or malformed parts are zero.
func ParseVersion(version string) (major, minor, patch int) {
	nums := strings.Split(strings.SplitN(version, "-", 2)[0], ".")
	parts := []*int{&major, &minor, &patch}
	for i := 0; i < len(nums) && i < len(parts); i++ {
		*parts[i], _ = strconv.Atoi(nums[i])
	}
	return
}
