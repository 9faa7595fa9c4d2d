package pipeline

import "fmt"

// One of the fixed supported operating-system identifiers the native
// pipeline builds for.
//
// The platform determines which conditional steps execute and which binary
// filename rule applies. The empty platform marks a platform-independent
// job.
type Platform string

const (
	Linux   Platform = "linux"
	Windows Platform = "windows"
	MacOS   Platform = "macos"
)

// Returns the full set of native build targets, in declaration order.
//
// Adding a platform means adding one value here plus its conditional step
// bindings.
func Matrix() []Platform {
	return []Platform{Linux, Windows, MacOS}
}

func (p Platform) String() string {
	return string(p)
}

// Applies the platform filename rule to a binary base name: ".exe" suffix
// on Windows, bare name everywhere else.
func (p Platform) BinaryName(base string) string {
	if p == Windows {
		return base + ".exe"
	}
	return base
}

// Parses a platform name from user input.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case Linux, Windows, MacOS:
		return Platform(s), nil
	}
	return "", fmt.Errorf("unknown platform %q", s)
}
