// Copyright (c) 2025-2026 The fips186 developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version
// information for the fips186 binary.
package version

import (
	"fmt"
	"regexp"
	"strconv"
)

// semverRE is a regular expression used to parse a semantic version string
// into its constituent parts.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// These variables define the application version and follow the semantic
// versioning 2.0.0 spec (https://semver.org/).
var (
	// Version is the application version per the semantic versioning 2.0.0
	// spec.
	//
	// It is defined as a variable so it can be overridden during the build
	// process with:
	// '-ldflags "-X github.com/Degroshka/fips186/internal/version.Version=fullsemver"'
	// if needed.
	Version = "1.0.0-pre"

	// NOTE: The following values are set via init by parsing the above
	// Version string.

	// These fields are the individual semantic version components that
	// define the application version.
	Major      uint
	Minor      uint
	Patch      uint
	PreRelease string
)

// parseUint converts the passed string to an unsigned integer or returns an
// error if it is invalid.
func parseUint(s string, fieldName string) (uint, error) {
	val, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("malformed semver %s: %w", fieldName, err)
	}
	return uint(val), nil
}

// parseSemVer parses various semver components from the provided string.
func parseSemVer(s string) (uint, uint, uint, string, error) {
	matches := semverRE.FindStringSubmatch(s)
	if matches == nil {
		return 0, 0, 0, "", fmt.Errorf("malformed version string %q", s)
	}

	major, err := parseUint(matches[1], "major")
	if err != nil {
		return 0, 0, 0, "", err
	}
	minor, err := parseUint(matches[2], "minor")
	if err != nil {
		return 0, 0, 0, "", err
	}
	patch, err := parseUint(matches[3], "patch")
	if err != nil {
		return 0, 0, 0, "", err
	}
	return major, minor, patch, matches[4], nil
}

func init() {
	var err error
	Major, Minor, Patch, PreRelease, err = parseSemVer(Version)
	if err != nil {
		panic(err)
	}
}

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec.
func String() string {
	return Version
}
