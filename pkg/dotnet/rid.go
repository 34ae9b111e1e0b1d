// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package dotnet

// RuntimeIdentifier yields the .NET runtime identifier for a target
// platform, given GOOS/GOARCH style names. Only Linux targets have build
// outputs here.
func RuntimeIdentifier(targetOS string, targetArch string) (string, error) {
	switch targetOS + "/" + targetArch {
	case "linux/amd64":
		return "linux-x64", nil
	case "linux/arm64":
		return "linux-arm64", nil
	default:
		return "", &UnsupportedPlatformError{OS: targetOS, Arch: targetArch}
	}
}
