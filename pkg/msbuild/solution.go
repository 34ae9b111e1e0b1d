// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package msbuild

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/multierr"
)

// Solution owns an ordered set of member projects. The order matches the
// declaration order in the solution descriptor. For a project or single-file
// application discovered on its own, an ephemeral single-member Solution
// gives downstream consumers one shape to work with.
type Solution struct {
	// Path is the solution descriptor, or the member project's own path for
	// ephemeral records.
	Path     string
	Projects []*Project
}

// projectLinePattern matches a project declaration in a legacy solution
// file, capturing the quoted relative path of the member:
//
//	Project("{GUID}") = "Name", "src\App\App.csproj", "{GUID}"
//
// Solution folders use the same declaration shape with a non-file "path" and
// are filtered out by requiring a dot-extension segment in the capture.
var projectLinePattern = regexp.MustCompile(`^\s*Project\("\{[^}]*\}"\)\s*=\s*"[^"]*",\s*"([^"]+)",\s*"\{[^}]*\}"`)

// LoadSolution reads the solution descriptor at path and loads every member
// project it declares. Member paths are resolved relative to the solution's
// directory. Member parse failures are collected in declaration order and
// returned together; a failed member always fails the whole load.
func LoadSolution(path string) (*Solution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading solution file: %w", err)
	}

	var memberPaths []string
	if strings.EqualFold(filepath.Ext(path), ".slnx") {
		memberPaths, err = parseSolutionXMLProjects(data)
		if err != nil {
			return nil, &MalformedDescriptorError{Path: path, Err: err}
		}
	} else {
		memberPaths = parseSolutionProjects(data)
	}

	if len(memberPaths) == 0 {
		return nil, &EmptySolutionError{Path: path}
	}

	solution := &Solution{Path: path}
	dir := filepath.Dir(path)

	var loadErr error
	for _, member := range memberPaths {
		project, err := LoadProject(filepath.Join(dir, filepath.FromSlash(member)))
		if err != nil {
			loadErr = multierr.Append(loadErr, err)
			continue
		}

		solution.Projects = append(solution.Projects, project)
	}

	if loadErr != nil {
		return nil, fmt.Errorf("loading solution %s: %w", path, loadErr)
	}

	return solution, nil
}

// parseSolutionProjects walks a legacy solution file line by line and returns
// the declared member project paths in declaration order, backslashes
// normalized to forward slashes. Entries without a file extension are
// solution folders, not projects, and are excluded. Duplicates are preserved.
// The content is split in memory, so declarations survive neighboring lines
// of any length.
func parseSolutionProjects(data []byte) []string {
	var paths []string

	for _, line := range strings.Split(string(data), "\n") {
		match := projectLinePattern.FindStringSubmatch(strings.TrimSuffix(line, "\r"))
		if match == nil {
			continue
		}

		member := strings.ReplaceAll(match[1], "\\", "/")
		if filepath.Ext(member) == "" {
			continue
		}

		paths = append(paths, member)
	}

	return paths
}

// NewSolutionFromProject wraps an individually discovered project in an
// ephemeral single-member solution.
func NewSolutionFromProject(project *Project) *Solution {
	return &Solution{
		Path:     project.Path,
		Projects: []*Project{project},
	}
}

// NewSolutionFromSourceFile builds the implicit project backing a
// single-file application and wraps it in an ephemeral solution. No
// descriptor exists for such a file: the assembly name falls back to the
// file stem and the framework moniker stays empty until an SDK is selected.
func NewSolutionFromSourceFile(path string) *Solution {
	return NewSolutionFromProject(&Project{
		Path:         path,
		Kind:         ConsoleApplication,
		AssemblyName: fileStem(path),
	})
}
