// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package dotnet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// targetFrameworkPattern matches the supported moniker shape: the "net"
// prefix followed by a dotted numeric major.minor, e.g. "net8.0". Older
// styles ("netcoreapp3.1", "net48") and library targets ("netstandard2.0")
// are not buildable here and fail validation.
var targetFrameworkPattern = regexp.MustCompile(`^net(\d+)\.(\d+)$`)

type frameworkVersion struct {
	major int
	minor int
}

func (v frameworkVersion) newerThan(other frameworkVersion) bool {
	if v.major != other.major {
		return v.major > other.major
	}

	return v.minor > other.minor
}

// parseTargetFramework validates a framework moniker and extracts its
// version pair. An OS qualifier ("net6.0-ios15.0") is rejected before shape
// validation so the caller sees the more specific error.
func parseTargetFramework(moniker string) (frameworkVersion, error) {
	if strings.Contains(moniker, "-") {
		return frameworkVersion{}, &UnsupportedTargetFrameworkError{Moniker: moniker}
	}

	match := targetFrameworkPattern.FindStringSubmatch(moniker)
	if match == nil {
		return frameworkVersion{}, &InvalidTargetFrameworkError{Moniker: moniker}
	}

	major, err := strconv.Atoi(match[1])
	if err != nil {
		return frameworkVersion{}, &InvalidTargetFrameworkError{Moniker: moniker}
	}

	minor, err := strconv.Atoi(match[2])
	if err != nil {
		return frameworkVersion{}, &InvalidTargetFrameworkError{Moniker: moniker}
	}

	return frameworkVersion{major: major, minor: minor}, nil
}

// ConstraintFromTargetFramework derives the SDK version constraint implied
// by a target framework moniker: any SDK in the same major line, at or above
// the moniker's minor. "net6.0" maps to "^6.0".
func ConstraintFromTargetFramework(moniker string) (VersionConstraint, error) {
	version, err := parseTargetFramework(moniker)
	if err != nil {
		return VersionConstraint{}, err
	}

	return newVersionConstraint(fmt.Sprintf("^%d.%d", version.major, version.minor))
}

// DefaultTargetFramework returns the framework moniker an SDK release
// targets by default. SDK 8.0.404 builds for "net8.0" when a project does
// not say otherwise.
func DefaultTargetFramework(sdkVersion string) (string, error) {
	majorPart, _, found := strings.Cut(sdkVersion, ".")
	if !found {
		return "", &MalformedVersionError{
			Value: sdkVersion,
			Err:   fmt.Errorf("expected a major.minor.patch version"),
		}
	}

	major, err := strconv.Atoi(majorPart)
	if err != nil {
		return "", &MalformedVersionError{Value: sdkVersion, Err: err}
	}

	return fmt.Sprintf("net%d.0", major), nil
}
