// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package dotnet

import (
	"path/filepath"
	"strings"

	"github.com/heroku/buildpacks-dotnet-sub000/pkg/msbuild"
)

// DefaultConfiguration is the build configuration used when none is set.
const DefaultConfiguration = "Release"

// Verbosity is an MSBuild output verbosity level.
type Verbosity string

const (
	VerbosityQuiet      Verbosity = "quiet"
	VerbosityMinimal    Verbosity = "minimal"
	VerbosityNormal     Verbosity = "normal"
	VerbosityDetailed   Verbosity = "detailed"
	VerbosityDiagnostic Verbosity = "diagnostic"
)

// ParseVerbosity maps a configured verbosity name to a level,
// case-insensitively. An empty value means minimal.
func ParseVerbosity(value string) (Verbosity, error) {
	if value == "" {
		return VerbosityMinimal, nil
	}

	switch strings.ToLower(value) {
	case "quiet":
		return VerbosityQuiet, nil
	case "minimal":
		return VerbosityMinimal, nil
	case "normal":
		return VerbosityNormal, nil
	case "detailed":
		return VerbosityDetailed, nil
	case "diagnostic":
		return VerbosityDiagnostic, nil
	default:
		return "", &InvalidVerbosityError{Value: value}
	}
}

// ExecutablePath computes where publish places a project's binary:
//
//	<project dir>/bin/<configuration>/<framework>/<rid>/publish/<assembly>
//
// Only kinds that produce an executable have a publish path; asking for a
// library or unrecognized project is an error, though callers iterating a
// whole solution may choose to skip those members instead.
func ExecutablePath(project *msbuild.Project, configuration string, runtimeIdentifier string) (string, error) {
	if !project.Kind.Executable() {
		return "", &InvalidProjectTypeError{Path: project.Path, Kind: project.Kind}
	}

	if project.TargetFramework == "" {
		return "", &UnresolvedFrameworkError{Path: project.Path}
	}

	return filepath.Join(
		filepath.Dir(project.Path),
		"bin",
		configuration,
		project.TargetFramework,
		runtimeIdentifier,
		"publish",
		project.AssemblyName,
	), nil
}

// PublishCommand returns the dotnet argument vector that builds a solution's
// publish outputs in the layout ExecutablePath expects.
func PublishCommand(solution *msbuild.Solution, configuration string, runtimeIdentifier string, verbosity Verbosity) []string {
	return []string{
		"publish",
		solution.Path,
		"--runtime", runtimeIdentifier,
		"--configuration", configuration,
		"--verbosity", string(verbosity),
	}
}
