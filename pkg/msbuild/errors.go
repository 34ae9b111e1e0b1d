// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package msbuild

import "fmt"

// MalformedDescriptorError indicates a descriptor file whose markup failed to
// parse. Path names the offending file for diagnostics.
type MalformedDescriptorError struct {
	Path string
	Err  error
}

func (e *MalformedDescriptorError) Error() string {
	return fmt.Sprintf("malformed descriptor %s: %s", e.Path, e.Err.Error())
}

func (e *MalformedDescriptorError) Unwrap() error {
	return e.Err
}

// MissingTargetFrameworkError indicates a project descriptor that parsed but
// does not declare a target framework, which makes it unbuildable.
type MissingTargetFrameworkError struct {
	Path string
}

func (e *MissingTargetFrameworkError) Error() string {
	return fmt.Sprintf("project file %s is missing a <TargetFramework> property", e.Path)
}

// EmptySolutionError indicates a solution descriptor that declares no member
// projects. An empty solution cannot be published and is never silently
// accepted.
type EmptySolutionError struct {
	Path string
}

func (e *EmptySolutionError) Error() string {
	return fmt.Sprintf("solution file %s contains no projects", e.Path)
}
