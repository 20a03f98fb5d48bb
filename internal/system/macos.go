package system

import (
	"fmt"
	"strconv"
	"strings"
)

// MacOSVersion is a parsed macOS product version such as 10.15.7 or 14.2.
type MacOSVersion struct {
	Major int
	Minor int
	Patch int
}

// String formats the version the way sw_vers prints it.
func (v MacOSVersion) String() string {
	if v.Patch != 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// NewerThan reports whether v is strictly newer than major.minor.
func (v MacOSVersion) NewerThan(major, minor int) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor > minor
}

// ParseMacOSVersion parses "major[.minor[.patch]]".
func ParseMacOSVersion(s string) (MacOSVersion, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MacOSVersion{}, fmt.Errorf("empty macOS version")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return MacOSVersion{}, fmt.Errorf("invalid macOS version: %s", s)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return MacOSVersion{}, fmt.Errorf("invalid macOS version: %s", s)
		}
		nums[i] = n
	}

	return MacOSVersion{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// ProductVersion asks sw_vers for the running macOS version.
func ProductVersion(runner CommandRunner) (MacOSVersion, error) {
	output, err := runner.Run("sw_vers", "-productVersion")
	if err != nil {
		return MacOSVersion{}, fmt.Errorf("failed to query product version: %w", err)
	}
	return ParseMacOSVersion(output)
}
