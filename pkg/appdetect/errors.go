// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package appdetect

import (
	"fmt"
	"strings"
)

// AmbiguityError reports two or more candidate descriptors of the same kind
// in one directory. Discovery never picks one arbitrarily; the caller must
// point at a single descriptor instead.
type AmbiguityError struct {
	Kind  DescriptorKind
	Paths []string
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("multiple %s files found: %s", e.Kind, strings.Join(e.Paths, ", "))
}

// NoDescriptorFoundError reports a directory with no descriptor of any kind.
type NoDescriptorFoundError struct {
	Path string
}

func (e *NoDescriptorFoundError) Error() string {
	return fmt.Sprintf("no solution, project, or source files found in %s", e.Path)
}

// InvalidPathError reports a path that is neither an existing file nor an
// existing directory.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("%s is not an existing file or directory", e.Path)
}

// UnrecognizedExtensionError reports an explicit file whose extension maps
// to no descriptor kind.
type UnrecognizedExtensionError struct {
	Path string
}

func (e *UnrecognizedExtensionError) Error() string {
	return fmt.Sprintf("%s is not a recognized solution, project, or source file", e.Path)
}
