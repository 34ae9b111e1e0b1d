// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/heroku/buildpacks-dotnet-sub000/cmd"
)

func init() {
	forceColorVal, has := os.LookupEnv("FORCE_COLOR")
	if has && forceColorVal == "1" {
		color.NoColor = false
	}
}

func main() {
	ctx := context.Background()
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *cmd.ExitCodeError
		if errors.As(err, &exitErr) {
			color.Yellow("%v", err)
			os.Exit(exitErr.Code)
		}

		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
