// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package internal

import (
	"strings"

	"github.com/blang/semver/v4"
)

// Version is the version string reported by the version command. It is
// replaced at build time via:
//
//	-ldflags="-X 'github.com/heroku/buildpacks-dotnet-sub000/internal.Version=<version> (commit <sha>)'"
var Version = "0.0.0-dev.0 (commit 0000000000000000000000000000000000000000)"

// VersionSpec is the structured form of Version.
type VersionSpec struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// VersionInfo parses Version into its number and commit parts. An
// unparseable version number is reported as "unknown".
func VersionInfo() VersionSpec {
	number, remainder, _ := strings.Cut(Version, " ")
	spec := VersionSpec{Version: "unknown"}

	if _, err := semver.Parse(number); err == nil {
		spec.Version = number
	}

	remainder = strings.TrimSpace(remainder)
	if commit, ok := strings.CutPrefix(remainder, "(commit "); ok {
		spec.Commit = strings.TrimSuffix(commit, ")")
	}

	return spec
}

// GetVersionNumber returns just the semantic version number, or "unknown"
// when the build stamped something unparseable.
func GetVersionNumber() string {
	return VersionInfo().Version
}
