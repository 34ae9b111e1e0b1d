// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package dotnet

import (
	"fmt"

	"github.com/heroku/buildpacks-dotnet-sub000/pkg/msbuild"
)

// UnsupportedTargetFrameworkError reports a framework moniker carrying an
// OS-specific qualifier, e.g. "net6.0-ios15.0". OS-qualified targets cannot
// be built here.
type UnsupportedTargetFrameworkError struct {
	Moniker string
}

func (e *UnsupportedTargetFrameworkError) Error() string {
	return fmt.Sprintf("OS-specific target framework monikers are not supported: %s", e.Moniker)
}

// InvalidTargetFrameworkError reports a framework moniker that does not
// follow the net<major>.<minor> form.
type InvalidTargetFrameworkError struct {
	Moniker string
}

func (e *InvalidTargetFrameworkError) Error() string {
	return fmt.Sprintf("unrecognized target framework moniker: %s", e.Moniker)
}

// MalformedVersionError reports a version or constraint expression that
// failed to parse. Value holds the offending string.
type MalformedVersionError struct {
	Value string
	Err   error
}

func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("malformed version %q: %s", e.Value, e.Err.Error())
}

func (e *MalformedVersionError) Unwrap() error {
	return e.Err
}

// MissingPinnedVersionError reports a global.json without an sdk version
// field. A pin file that pins nothing is treated as a mistake rather than
// silently ignored.
type MissingPinnedVersionError struct{}

func (e *MissingPinnedVersionError) Error() string {
	return "global.json does not declare an sdk version"
}

// RollForwardPolicyError reports an unrecognized rollForward policy name in
// a global.json.
type RollForwardPolicyError struct {
	Policy string
}

func (e *RollForwardPolicyError) Error() string {
	return fmt.Sprintf("unrecognized rollForward policy: %s", e.Policy)
}

// InvalidProjectTypeError reports a publish or launch computation requested
// for a project kind that does not produce an executable.
type InvalidProjectTypeError struct {
	Path string
	Kind msbuild.ProjectKind
}

func (e *InvalidProjectTypeError) Error() string {
	return fmt.Sprintf("project %s is a %s project and does not produce an executable", e.Path, e.Kind)
}

// UnresolvedFrameworkError reports a publish-path computation for a project
// whose framework moniker is still unknown, such as a bare source file
// before an SDK has been selected.
type UnresolvedFrameworkError struct {
	Path string
}

func (e *UnresolvedFrameworkError) Error() string {
	return fmt.Sprintf("project %s has no resolved target framework", e.Path)
}

// UnsupportedPlatformError reports an OS and architecture combination with
// no known runtime identifier.
type UnsupportedPlatformError struct {
	OS   string
	Arch string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported target platform: %s/%s", e.OS, e.Arch)
}

// InvalidVerbosityError reports an MSBuild verbosity name outside the
// accepted set.
type InvalidVerbosityError struct {
	Value string
}

func (e *InvalidVerbosityError) Error() string {
	return fmt.Sprintf(
		"invalid MSBuild verbosity level %q: expected quiet, minimal, normal, detailed or diagnostic", e.Value)
}
