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
	"github.com/heroku/buildpacks-dotnet-sub000/pkg/inventory"
	"github.com/heroku/buildpacks-dotnet-sub000/pkg/msbuild"
	"github.com/heroku/buildpacks-dotnet-sub000/pkg/osutil"
	"github.com/heroku/buildpacks-dotnet-sub000/pkg/output"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

type detectFlags struct {
	outputFormat  string
	configuration string
	inventoryPath string
	buildPlanPath string
	launchPath    string
}

type sdkResult struct {
	Version  string `json:"version"`
	URL      string `json:"url"`
	Checksum string `json:"checksum"`
}

type detectResult struct {
	Descriptor    descriptorResult `json:"descriptor"`
	SdkConstraint string           `json:"sdkConstraint"`
	Sdk           *sdkResult       `json:"sdk,omitempty"`
	PublishArgs   []string         `json:"publishArgs"`
	Processes     []processResult  `json:"processes,omitempty"`
}

func newDetectCommand() *cobra.Command {
	flags := &detectFlags{}

	detectCmd := &cobra.Command{
		Use:   "detect [path]",
		Short: "Detect a .NET application and emit buildpack plan files",
		Long: heredoc.Doc(`
			Detect determines whether the source tree holds exactly one
			buildable .NET application, derives its SDK version constraint
			and optionally writes the build plan and launch process table.

			When the tree holds no solution, project or source file the
			command exits with status 100 so the platform can move on to
			the next buildpack.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			return runDetectAction(cmd, flags, path)
		},
	}

	detectCmd.Flags().StringVarP(
		&flags.outputFormat,
		"output", "o", string(output.JsonFormat),
		"Output format (json or none).",
	)
	detectCmd.Flags().StringVarP(
		&flags.configuration,
		"configuration", "c", "",
		"Build configuration. Defaults to BUILD_CONFIGURATION, then Release.",
	)
	detectCmd.Flags().StringVar(
		&flags.inventoryPath,
		"inventory", "",
		"SDK inventory file used to resolve the constraint to a concrete release.",
	)
	detectCmd.Flags().StringVar(
		&flags.buildPlanPath,
		"build-plan", "",
		"Write the build plan to this file.",
	)
	detectCmd.Flags().StringVar(
		&flags.launchPath,
		"launch", "",
		"Write the launch process table to this file.",
	)

	return detectCmd
}

func runDetectAction(cmd *cobra.Command, flags *detectFlags, path string) error {
	formatter, err := output.NewFormatter(flags.outputFormat)
	if err != nil {
		return err
	}

	descriptor, err := appdetect.Detect(path)
	if err != nil {
		var notFoundErr *appdetect.NoDescriptorFoundError
		if errors.As(err, &notFoundErr) {
			return &ExitCodeError{Code: DetectFailedExitCode, Err: err}
		}

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

	result := detectResult{
		Descriptor: descriptorResult{
			Kind: string(descriptor.Kind),
			Path: descriptor.Path,
		},
		SdkConstraint: constraint.String(),
	}

	if flags.inventoryPath != "" {
		artifact, err := resolveArtifact(flags.inventoryPath, constraint)
		if err != nil {
			return err
		}

		result.Sdk = &sdkResult{
			Version:  artifact.Version,
			URL:      artifact.URL,
			Checksum: artifact.Checksum,
		}

		if err := fillDefaultFrameworks(solution, artifact.Version); err != nil {
			return err
		}
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
	result.PublishArgs = append(
		[]string{"dotnet"},
		dotnet.PublishCommand(solution, configuration, runtimeIdentifier, verbosity)...)

	processes, err := deriveProcesses(solution, configuration, runtimeIdentifier)
	if err != nil {
		return err
	}
	result.Processes = processes

	if flags.buildPlanPath != "" {
		if err := writeBuildPlan(flags.buildPlanPath, constraint); err != nil {
			return err
		}
	}

	if flags.launchPath != "" {
		if err := writeLaunchTable(flags.launchPath, processes); err != nil {
			return err
		}
	}

	if formatter.Kind() == output.NoneFormat {
		fmt.Fprintf(cmd.OutOrStdout(), "detected %s %s (sdk %s)\n",
			descriptor.Kind, descriptor.Path, constraint)
		return nil
	}

	return formatter.Format(result, cmd.OutOrStdout())
}

func resolveArtifact(
	inventoryPath string,
	constraint dotnet.VersionConstraint,
) (*inventory.Artifact, error) {
	inv, err := inventory.Load(inventoryPath)
	if err != nil {
		return nil, err
	}

	return inv.Resolve(constraint, runtime.GOOS, runtime.GOARCH)
}

// fillDefaultFrameworks assigns the resolved SDK's default framework to
// members that declare none, such as the implicit project behind a bare
// source file. Members with their own moniker are left untouched.
func fillDefaultFrameworks(solution *msbuild.Solution, sdkVersion string) error {
	defaultFramework := ""
	for i, project := range solution.Projects {
		if project.TargetFramework != "" {
			continue
		}

		if defaultFramework == "" {
			framework, err := dotnet.DefaultTargetFramework(sdkVersion)
			if err != nil {
				return err
			}
			defaultFramework = framework
		}

		resolved := *project
		resolved.TargetFramework = defaultFramework
		solution.Projects[i] = &resolved
	}

	return nil
}

type buildPlan struct {
	Provides []buildPlanProvide `toml:"provides"`
	Requires []buildPlanRequire `toml:"requires"`
}

type buildPlanProvide struct {
	Name string `toml:"name"`
}

type buildPlanRequire struct {
	Name     string            `toml:"name"`
	Metadata map[string]string `toml:"metadata,omitempty"`
}

func writeBuildPlan(path string, constraint dotnet.VersionConstraint) error {
	plan := buildPlan{
		Provides: []buildPlanProvide{{Name: "dotnet"}},
		Requires: []buildPlanRequire{{
			Name:     "dotnet",
			Metadata: map[string]string{"version": constraint.String()},
		}},
	}

	data, err := toml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encoding build plan: %w", err)
	}

	if err := os.WriteFile(path, data, osutil.PermissionFile); err != nil {
		return fmt.Errorf("writing build plan: %w", err)
	}

	return nil
}

type launchTable struct {
	Processes []launchProcess `toml:"processes"`
}

type launchProcess struct {
	Type    string   `toml:"type"`
	Command []string `toml:"command"`
	Default bool     `toml:"default,omitempty"`
}

func writeLaunchTable(path string, processes []processResult) error {
	table := launchTable{}
	for _, process := range processes {
		table.Processes = append(table.Processes, launchProcess{
			Type:    process.Type,
			Command: process.Command,
			Default: process.Default,
		})
	}

	data, err := toml.Marshal(table)
	if err != nil {
		return fmt.Errorf("encoding launch table: %w", err)
	}

	if err := os.WriteFile(path, data, osutil.PermissionFile); err != nil {
		return fmt.Errorf("writing launch table: %w", err)
	}

	return nil
}
