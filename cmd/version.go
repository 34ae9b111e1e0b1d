// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"

	"github.com/heroku/buildpacks-dotnet-sub000/internal"
	"github.com/heroku/buildpacks-dotnet-sub000/pkg/output"
	"github.com/spf13/cobra"
)

type versionFlags struct {
	outputFormat string
}

func newVersionCommand() *cobra.Command {
	flags := &versionFlags{}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dotnet-buildpack.",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := output.NewFormatter(flags.outputFormat)
			if err != nil {
				return err
			}

			if formatter.Kind() == output.JsonFormat {
				return formatter.Format(internal.VersionInfo(), cmd.OutOrStdout())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "dotnet-buildpack version %s\n", internal.Version)
			return nil
		},
	}

	versionCmd.Flags().StringVarP(
		&flags.outputFormat,
		"output", "o", string(output.NoneFormat),
		"Output format (json or none).",
	)

	return versionCmd
}
