// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package msbuild

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/heroku/buildpacks-dotnet-sub000/pkg/osutil"
	"github.com/stretchr/testify/require"
)

const webProjectXML = `<Project Sdk="Microsoft.NET.Sdk.Web">
	<PropertyGroup>
		<TargetFramework>net8.0</TargetFramework>
	</PropertyGroup>
</Project>`

const consoleProjectXML = `<Project Sdk="Microsoft.NET.Sdk">
	<PropertyGroup>
		<OutputType>Exe</OutputType>
		<TargetFramework>net8.0</TargetFramework>
	</PropertyGroup>
</Project>`

const libraryProjectXML = `<Project Sdk="Microsoft.NET.Sdk">
	<PropertyGroup>
		<TargetFramework>net8.0</TargetFramework>
	</PropertyGroup>
</Project>`

func writeDescriptor(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), osutil.PermissionDirectory))
	require.NoError(t, os.WriteFile(path, []byte(content), osutil.PermissionFile))
}

func TestLoadSolution(t *testing.T) {
	dir := t.TempDir()
	solutionPath := filepath.Join(dir, "App.sln")
	writeDescriptor(t, solutionPath, `Microsoft Visual Studio Solution File, Format Version 12.00
# Visual Studio Version 17
VisualStudioVersion = 17.5.002.0
MinimumVisualStudioVersion = 10.0.40219.1
Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Api", "src\Api\Api.csproj", "{8E7E3429-1F6F-4A44-A4E8-7E0F3F1B4C11}"
EndProject
Project("{2150E333-8FDC-42A3-9474-1A3956D46DE8}") = "docs", "docs", "{D5ECA823-B9F4-4F8B-9C76-1C9F1E2B0001}"
EndProject
Project("{F184B08F-C81C-45F6-A57F-5ABD9991F28F}") = "Jobs", "src\Jobs\Jobs.vbproj", "{9A19103F-16F7-4668-BE54-9A1E7A4F7556}"
EndProject
Global
	GlobalSection(SolutionConfigurationPlatforms) = preSolution
		Debug|Any CPU = Debug|Any CPU
	EndGlobalSection
EndGlobal
`)
	writeDescriptor(t, filepath.Join(dir, "src", "Api", "Api.csproj"), webProjectXML)
	writeDescriptor(t, filepath.Join(dir, "src", "Jobs", "Jobs.vbproj"), consoleProjectXML)

	solution, err := LoadSolution(solutionPath)
	require.NoError(t, err)
	require.Equal(t, solutionPath, solution.Path)

	// The docs entry is a solution folder, not a project, and must not be
	// resolved as a member.
	require.Len(t, solution.Projects, 2)
	require.Equal(t, filepath.Join(dir, "src", "Api", "Api.csproj"), solution.Projects[0].Path)
	require.Equal(t, WebApplication, solution.Projects[0].Kind)
	require.Equal(t, filepath.Join(dir, "src", "Jobs", "Jobs.vbproj"), solution.Projects[1].Path)
	require.Equal(t, ConsoleApplication, solution.Projects[1].Kind)
}

func TestLoadSolutionLongLines(t *testing.T) {
	dir := t.TempDir()
	solutionPath := filepath.Join(dir, "App.sln")

	// Solution files carry free-form lines of any length, for example
	// comment banners or GlobalSection payloads. A member declared after one
	// must still be loaded.
	writeDescriptor(t, solutionPath, `Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "First", "src\First\First.csproj", "{8E7E3429-1F6F-4A44-A4E8-7E0F3F1B4C11}"
EndProject
# `+strings.Repeat("x", 128*1024)+`
Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Second", "src\Second\Second.csproj", "{9A19103F-16F7-4668-BE54-9A1E7A4F7556}"
EndProject
`)
	writeDescriptor(t, filepath.Join(dir, "src", "First", "First.csproj"), webProjectXML)
	writeDescriptor(t, filepath.Join(dir, "src", "Second", "Second.csproj"), consoleProjectXML)

	solution, err := LoadSolution(solutionPath)
	require.NoError(t, err)

	require.Len(t, solution.Projects, 2)
	require.Equal(t, filepath.Join(dir, "src", "First", "First.csproj"), solution.Projects[0].Path)
	require.Equal(t, filepath.Join(dir, "src", "Second", "Second.csproj"), solution.Projects[1].Path)
}

func TestLoadSolutionXML(t *testing.T) {
	dir := t.TempDir()
	solutionPath := filepath.Join(dir, "App.slnx")
	writeDescriptor(t, solutionPath, `<Solution>
	<Folder Name="/src/">
		<Project Path="src/Api/Api.csproj" />
		<Folder Name="/jobs/">
			<Project Path="src/Jobs/Jobs.csproj" />
		</Folder>
	</Folder>
	<Properties Name="Visual Studio">
		<Property Name="OpenWith" Value="17" />
	</Properties>
	<Project Path="tool\Tool.csproj">
		<Platform Solution="*|Any CPU" Project="*|Any CPU" />
	</Project>
</Solution>`)
	writeDescriptor(t, filepath.Join(dir, "src", "Api", "Api.csproj"), webProjectXML)
	writeDescriptor(t, filepath.Join(dir, "src", "Jobs", "Jobs.csproj"), consoleProjectXML)
	writeDescriptor(t, filepath.Join(dir, "tool", "Tool.csproj"), libraryProjectXML)

	solution, err := LoadSolution(solutionPath)
	require.NoError(t, err)

	require.Len(t, solution.Projects, 3)
	require.Equal(t, filepath.Join(dir, "src", "Api", "Api.csproj"), solution.Projects[0].Path)
	require.Equal(t, filepath.Join(dir, "src", "Jobs", "Jobs.csproj"), solution.Projects[1].Path)
	require.Equal(t, filepath.Join(dir, "tool", "Tool.csproj"), solution.Projects[2].Path)
	require.Equal(t, Library, solution.Projects[2].Kind)
}

func TestLoadSolutionErrors(t *testing.T) {
	t.Run("EmptyLegacySolution", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "Empty.sln")
		writeDescriptor(t, path, `Microsoft Visual Studio Solution File, Format Version 12.00
Global
EndGlobal
`)

		_, err := LoadSolution(path)
		var emptyErr *EmptySolutionError
		require.ErrorAs(t, err, &emptyErr)
		require.Equal(t, path, emptyErr.Path)
	})

	t.Run("EmptySolutionXML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "Empty.slnx")
		writeDescriptor(t, path, `<Solution>
	<Folder Name="/src/" />
</Solution>`)

		_, err := LoadSolution(path)
		var emptyErr *EmptySolutionError
		require.ErrorAs(t, err, &emptyErr)
	})

	t.Run("MissingMemberAbortsLoad", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "App.sln")
		writeDescriptor(t, path, `Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Api", "src\Api\Api.csproj", "{8E7E3429-1F6F-4A44-A4E8-7E0F3F1B4C11}"
EndProject
Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Gone", "src\Gone\Gone.csproj", "{9A19103F-16F7-4668-BE54-9A1E7A4F7556}"
EndProject
`)
		writeDescriptor(t, filepath.Join(dir, "src", "Api", "Api.csproj"), webProjectXML)

		_, err := LoadSolution(path)
		require.ErrorIs(t, err, os.ErrNotExist)
		require.ErrorContains(t, err, "Gone.csproj")
	})

	t.Run("MemberErrorsAggregated", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "App.sln")
		writeDescriptor(t, path, `Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "NoTfm", "NoTfm\NoTfm.csproj", "{8E7E3429-1F6F-4A44-A4E8-7E0F3F1B4C11}"
EndProject
Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Broken", "Broken\Broken.csproj", "{9A19103F-16F7-4668-BE54-9A1E7A4F7556}"
EndProject
`)
		writeDescriptor(t, filepath.Join(dir, "NoTfm", "NoTfm.csproj"), `<Project Sdk="Microsoft.NET.Sdk">
	<PropertyGroup>
		<OutputType>Exe</OutputType>
	</PropertyGroup>
</Project>`)
		writeDescriptor(t, filepath.Join(dir, "Broken", "Broken.csproj"), "<Project><PropertyGroup>")

		_, err := LoadSolution(path)
		require.Error(t, err)

		var missingErr *MissingTargetFrameworkError
		require.ErrorAs(t, err, &missingErr)
		var malformedErr *MalformedDescriptorError
		require.ErrorAs(t, err, &malformedErr)
	})

	t.Run("ProjectElementWithoutPath", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "App.slnx")
		writeDescriptor(t, path, `<Solution>
	<Project />
</Solution>`)

		_, err := LoadSolution(path)
		var malformedErr *MalformedDescriptorError
		require.ErrorAs(t, err, &malformedErr)
		require.ErrorContains(t, err, "path attribute")
	})

	t.Run("MalformedSolutionXML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "App.slnx")
		writeDescriptor(t, path, "<Solution><Folder>")

		_, err := LoadSolution(path)
		var malformedErr *MalformedDescriptorError
		require.ErrorAs(t, err, &malformedErr)
	})
}

func TestNewSolutionFromProject(t *testing.T) {
	project := &Project{
		Path:            filepath.Join("src", "App", "App.csproj"),
		TargetFramework: "net8.0",
		Kind:            ConsoleApplication,
		AssemblyName:    "App",
	}

	solution := NewSolutionFromProject(project)
	require.Equal(t, project.Path, solution.Path)
	require.Equal(t, []*Project{project}, solution.Projects)
}

func TestNewSolutionFromSourceFile(t *testing.T) {
	path := filepath.Join("src", "app", "Program.cs")

	solution := NewSolutionFromSourceFile(path)
	require.Equal(t, path, solution.Path)
	require.Equal(t, []*Project{{
		Path:         path,
		Kind:         ConsoleApplication,
		AssemblyName: "Program",
	}}, solution.Projects)
}
