package internal

import "runtime/debug"

// CurrentVersion is overwritten by ldflags during release builds:
//
//	-ldflags "-X github.com/chukul/mfaws/internal.CurrentVersion=v1.2.3"
var CurrentVersion = "dev"

// Version returns CurrentVersion, falling back to the module version when
// installed with `go install`.
func Version() string {
	if CurrentVersion != "dev" {
		return CurrentVersion
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return CurrentVersion
}
