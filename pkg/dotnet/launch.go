// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package dotnet

import (
	"regexp"
	"strings"

	"github.com/heroku/buildpacks-dotnet-sub000/pkg/msbuild"
)

// Process describes one launchable unit derived from an executable project.
type Process struct {
	Type    string
	Command []string
	Default bool
}

// invalidProcessTypeChars matches everything outside the process type
// alphabet; matched characters are dropped during sanitization.
var invalidProcessTypeChars = regexp.MustCompile(`[^a-z0-9._-]`)

// Processes derives the launch process list for a solution's executable
// members, in declaration order. Library and unrecognized projects produce
// no process. The first web application becomes the default process; a
// solution without one has no default.
func Processes(solution *msbuild.Solution, configuration string, runtimeIdentifier string) ([]Process, error) {
	var processes []Process
	haveDefault := false

	for _, project := range solution.Projects {
		if !project.Kind.Executable() {
			continue
		}

		executable, err := ExecutablePath(project, configuration, runtimeIdentifier)
		if err != nil {
			return nil, err
		}

		process := Process{
			Type:    processType(project.AssemblyName),
			Command: []string{executable},
		}

		if project.Kind == msbuild.WebApplication && !haveDefault {
			process.Default = true
			haveDefault = true
		}

		processes = append(processes, process)
	}

	return processes, nil
}

// processType derives a process type name from an assembly name by
// lowercasing and dropping characters the launcher does not accept.
func processType(assemblyName string) string {
	return invalidProcessTypeChars.ReplaceAllString(strings.ToLower(assemblyName), "")
}
