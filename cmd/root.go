// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"os"

	"github.com/heroku/buildpacks-dotnet-sub000/pkg/dotnet"
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dotnet-buildpack <command> [options]",
		Short:         "Discovers and resolves .NET build descriptors for buildpack builds.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newDetectCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// buildConfiguration resolves the effective build configuration: the flag
// value when set, then the BUILD_CONFIGURATION environment variable, then
// Release.
func buildConfiguration(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if env := os.Getenv("BUILD_CONFIGURATION"); env != "" {
		return env
	}

	return dotnet.DefaultConfiguration
}
