// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package msbuild parses the MSBuild descriptor formats that declare how a
// .NET application is built: project files (.csproj, .vbproj, .fsproj), the
// legacy line-oriented solution format (.sln) and the XML solution format
// (.slnx).
//
// Descriptors are read-only inputs. Parsing a descriptor yields an immutable
// record; a Solution owns its member Project records in declaration order.
package msbuild

// ProjectKind describes what a project produces, inferred from its SDK
// identifier and output type.
type ProjectKind string

const (
	ConsoleApplication ProjectKind = "console"
	WebApplication     ProjectKind = "web"
	Library            ProjectKind = "library"
	Unknown            ProjectKind = "unknown"
)

// Executable reports whether the project kind produces a runnable binary.
func (k ProjectKind) Executable() bool {
	switch k {
	case ConsoleApplication, WebApplication:
		return true
	}

	return false
}

// SDK identifiers recognized during project classification. Web-flavored
// SDKs (razor, blazor, worker included) all classify as WebApplication.
const (
	sdkDefault           = "Microsoft.NET.Sdk"
	sdkWeb               = "Microsoft.NET.Sdk.Web"
	sdkRazor             = "Microsoft.NET.Sdk.Razor"
	sdkBlazorWebAssembly = "Microsoft.NET.Sdk.BlazorWebAssembly"
	sdkWorker            = "Microsoft.NET.Sdk.Worker"
)
