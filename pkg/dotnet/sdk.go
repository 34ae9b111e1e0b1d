// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package dotnet derives SDK version constraints, publish paths and launch
// processes from resolved solution records.
package dotnet

import (
	"fmt"
	"path/filepath"

	"github.com/heroku/buildpacks-dotnet-sub000/pkg/msbuild"
	"github.com/heroku/buildpacks-dotnet-sub000/pkg/osutil"
)

// GlobalJSONFileName is the SDK pin file searched for near a solution.
const GlobalJSONFileName = "global.json"

// SolutionConstraint derives the SDK version constraint for a whole
// solution. A global.json found in the solution's directory or any ancestor
// always wins. Otherwise the highest target framework among the members
// decides, with ties broken by declaration order. A solution whose members
// declare no framework at all, such as a bare source file, accepts any SDK.
func SolutionConstraint(solution *msbuild.Solution) (VersionConstraint, error) {
	globalJSONPath, ok, err := osutil.SearchUp(filepath.Dir(solution.Path), GlobalJSONFileName)
	if err != nil {
		return VersionConstraint{}, err
	}

	if ok {
		doc, err := LoadGlobalJSON(globalJSONPath)
		if err != nil {
			return VersionConstraint{}, err
		}

		constraint, err := doc.Constraint()
		if err != nil {
			return VersionConstraint{}, fmt.Errorf("deriving sdk constraint from %s: %w", globalJSONPath, err)
		}

		return constraint, nil
	}

	var highest *frameworkVersion
	for _, project := range solution.Projects {
		if project.TargetFramework == "" {
			continue
		}

		version, err := parseTargetFramework(project.TargetFramework)
		if err != nil {
			return VersionConstraint{}, fmt.Errorf("project %s: %w", project.Path, err)
		}

		if highest == nil || version.newerThan(*highest) {
			highest = &version
		}
	}

	if highest == nil {
		return newVersionConstraint("*")
	}

	return newVersionConstraint(fmt.Sprintf("^%d.%d", highest.major, highest.minor))
}
