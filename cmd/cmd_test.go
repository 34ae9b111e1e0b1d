// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/heroku/buildpacks-dotnet-sub000/pkg/dotnet"
	"github.com/heroku/buildpacks-dotnet-sub000/pkg/osutil"
	"github.com/stretchr/testify/require"
)

const webProjectXML = `<Project Sdk="Microsoft.NET.Sdk.Web">
  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
  </PropertyGroup>
</Project>
`

const consoleProjectXML = `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
    <OutputType>Exe</OutputType>
  </PropertyGroup>
</Project>
`

const solutionText = `
Microsoft Visual Studio Solution File, Format Version 12.00
Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Api", "Api\Api.csproj", "{11111111-1111-1111-1111-111111111111}"
EndProject
Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Jobs", "Jobs\Jobs.csproj", "{22222222-2222-2222-2222-222222222222}"
EndProject
`

const sampleInventoryTOML = `
[[artifacts]]
version = "8.0.404"
os = "linux"
arch = "amd64"
url = "https://builds.dotnet.example.com/sdk-8.0.404-linux-x64.tar.gz"
checksum = "sha512:aa11"

[[artifacts]]
version = "8.0.404"
os = "linux"
arch = "arm64"
url = "https://builds.dotnet.example.com/sdk-8.0.404-linux-arm64.tar.gz"
checksum = "sha512:bb22"
`

// executeCommand runs the root command with args and captures its combined
// output. Build environment variables are pinned so results do not depend
// on the caller's shell.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Setenv("BUILD_CONFIGURATION", "")
	t.Setenv("MSBUILD_VERBOSITY_LEVEL", "")

	buf := &bytes.Buffer{}
	rootCmd := NewRootCommand()
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func writeTestFile(t *testing.T, root string, name string, content string) string {
	path := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), osutil.PermissionDirectory))
	require.NoError(t, os.WriteFile(path, []byte(content), osutil.PermissionFile))
	return path
}

// writeSolutionTree lays out a two project solution: a web API and a console
// worker, both targeting net8.0.
func writeSolutionTree(t *testing.T, root string) string {
	writeTestFile(t, root, "Api/Api.csproj", webProjectXML)
	writeTestFile(t, root, "Jobs/Jobs.csproj", consoleProjectXML)
	return writeTestFile(t, root, "App.sln", solutionText)
}

func requireSupportedPlatform(t *testing.T) {
	if _, err := dotnet.RuntimeIdentifier(runtime.GOOS, runtime.GOARCH); err != nil {
		t.Skipf("unsupported test platform %s/%s", runtime.GOOS, runtime.GOARCH)
	}
}
