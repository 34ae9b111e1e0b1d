// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/heroku/buildpacks-dotnet-sub000/pkg/appdetect"
	"github.com/heroku/buildpacks-dotnet-sub000/pkg/dotnet"
	"github.com/heroku/buildpacks-dotnet-sub000/pkg/msbuild"
	"github.com/heroku/buildpacks-dotnet-sub000/pkg/output"
	"github.com/spf13/cobra"
)

type inspectFlags struct {
	outputFormat  string
	configuration string
}

type descriptorResult struct {
	Kind string `json:"kind"`
	Path string `json:"path"`
}

type projectResult struct {
	Path            string `json:"path"`
	TargetFramework string `json:"targetFramework,omitempty"`
	Kind            string `json:"kind"`
	AssemblyName    string `json:"assemblyName"`
}

type processResult struct {
	Type    string   `json:"type"`
	Command []string `json:"command"`
	Default bool     `json:"default"`
}

type inspectResult struct {
	Descriptor    descriptorResult `json:"descriptor"`
	Projects      []projectResult  `json:"projects"`
	SdkConstraint string           `json:"sdkConstraint"`
	PublishArgs   []string         `json:"publishArgs"`
	Processes     []processResult  `json:"processes,omitempty"`
}

func newInspectCommand() *cobra.Command {
	flags := &inspectFlags{}

	inspectCmd := &cobra.Command{
		Use:   "inspect [path]",
		Short: "Show the resolved build layout for an application source tree",
		Long: heredoc.Doc(`
			Inspect discovers the authoritative build descriptor for a source
			tree, loads the projects it declares and reports the derived SDK
			constraint, publish invocation and launch processes.

			The path may be a directory to scan or an explicit solution,
			project or source file.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			return runInspectAction(cmd, flags, path)
		},
	}

	inspectCmd.Flags().StringVarP(
		&flags.outputFormat,
		"output", "o", string(output.JsonFormat),
		"Output format (json or none).",
	)
	inspectCmd.Flags().StringVarP(
		&flags.configuration,
		"configuration", "c", "",
		"Build configuration. Defaults to BUILD_CONFIGURATION, then Release.",
	)

	return inspectCmd
}

func runInspectAction(cmd *cobra.Command, flags *inspectFlags, path string) error {
	formatter, err := output.NewFormatter(flags.outputFormat)
	if err != nil {
		return err
	}

	descriptor, err := appdetect.Detect(path)
	if err != nil {
		return err
	}

	solution, err := appdetect.Load(descriptor)
	if err != nil {
		return err
	}

	constraint, err := dotnet.SolutionConstraint(solution)
	if err != nil {
		return err
	}

	runtimeIdentifier, err := dotnet.RuntimeIdentifier(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	verbosity, err := dotnet.ParseVerbosity(os.Getenv("MSBUILD_VERBOSITY_LEVEL"))
	if err != nil {
		return err
	}

	configuration := buildConfiguration(flags.configuration)

	result := inspectResult{
		Descriptor: descriptorResult{
			Kind: string(descriptor.Kind),
			Path: descriptor.Path,
		},
		SdkConstraint: constraint.String(),
		PublishArgs: append(
			[]string{"dotnet"},
			dotnet.PublishCommand(solution, configuration, runtimeIdentifier, verbosity)...),
	}

	for _, project := range solution.Projects {
		result.Projects = append(result.Projects, projectResult{
			Path:            project.Path,
			TargetFramework: project.TargetFramework,
			Kind:            string(project.Kind),
			AssemblyName:    project.AssemblyName,
		})
	}

	processes, err := deriveProcesses(solution, configuration, runtimeIdentifier)
	if err != nil {
		return err
	}
	result.Processes = processes

	if formatter.Kind() == output.NoneFormat {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d projects, sdk %s\n",
			descriptor.Kind, descriptor.Path, len(solution.Projects), constraint)
		return nil
	}

	return formatter.Format(result, cmd.OutOrStdout())
}

// deriveProcesses computes launch processes for the solution. A solution
// whose framework is not yet resolvable, such as a bare source file before
// SDK selection, yields no processes rather than an error.
func deriveProcesses(
	solution *msbuild.Solution,
	configuration string,
	runtimeIdentifier string,
) ([]processResult, error) {
	processes, err := dotnet.Processes(solution, configuration, runtimeIdentifier)
	if err != nil {
		var unresolvedErr *dotnet.UnresolvedFrameworkError
		if errors.As(err, &unresolvedErr) {
			return nil, nil
		}

		return nil, err
	}

	results := make([]processResult, 0, len(processes))
	for _, process := range processes {
		results = append(results, processResult{
			Type:    process.Type,
			Command: process.Command,
			Default: process.Default,
		})
	}

	return results, nil
}
