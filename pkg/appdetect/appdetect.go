// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package appdetect locates the authoritative build descriptor for an
// application source tree.
//
// Discovery follows a strict precedence: a solution file outranks a project
// file, and a project file outranks a bare source file. Within one kind,
// more than one candidate is an error rather than a guess.
//
// - `Detect()` to discover the descriptor for a directory or explicit file.
// - `Load()` to resolve a discovered descriptor into a solution record.
package appdetect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/heroku/buildpacks-dotnet-sub000/pkg/msbuild"
)

type DescriptorKind string

const (
	Solution              DescriptorKind = "solution"
	Project               DescriptorKind = "project"
	SingleFileApplication DescriptorKind = "source file"
)

// Descriptor identifies the one file that declares how to build the
// application. Exactly one kind applies to any discovered path.
type Descriptor struct {
	Kind DescriptorKind
	Path string
}

type descriptorFinder struct {
	kind       DescriptorKind
	extensions []string
}

// finders holds the descriptor kinds in precedence order. A solution
// enumerates its members explicitly, making it the most authoritative
// descriptor when present; a bare source file is the most implicit.
var finders = []descriptorFinder{
	{kind: Solution, extensions: []string{".sln", ".slnx"}},
	{kind: Project, extensions: []string{".csproj", ".vbproj", ".fsproj"}},
	{kind: SingleFileApplication, extensions: []string{".cs"}},
}

func (f descriptorFinder) find(dir string, entries []fs.DirEntry) []string {
	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if f.matchesExtension(entry.Name()) {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}

	return matches
}

func (f descriptorFinder) matchesExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, candidate := range f.extensions {
		if ext == candidate {
			return true
		}
	}

	return false
}

// Detect determines the build descriptor for path, which may be a directory
// to scan or an explicit descriptor file.
//
// For a directory, each finder runs in precedence order against the
// directory's immediate entries. The first kind with exactly one match wins
// and lower-precedence kinds are never consulted; two or more matches of one
// kind fail with AmbiguityError before any lower-precedence kind is tried.
//
// For a file, the extension alone classifies it, case-insensitively.
func Detect(path string) (*Descriptor, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &InvalidPathError{Path: path}
	} else if err != nil {
		return nil, fmt.Errorf("inspecting path: %w", err)
	}

	switch {
	case info.IsDir():
		return detectDirectory(path)
	case info.Mode().IsRegular():
		return classifyFile(path)
	default:
		return nil, &InvalidPathError{Path: path}
	}
}

func detectDirectory(dir string) (*Descriptor, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	for _, finder := range finders {
		matches := finder.find(dir, entries)
		switch len(matches) {
		case 0:
			continue
		case 1:
			return &Descriptor{Kind: finder.kind, Path: matches[0]}, nil
		default:
			return nil, &AmbiguityError{Kind: finder.kind, Paths: matches}
		}
	}

	return nil, &NoDescriptorFoundError{Path: dir}
}

func classifyFile(path string) (*Descriptor, error) {
	for _, finder := range finders {
		if finder.matchesExtension(path) {
			return &Descriptor{Kind: finder.kind, Path: path}, nil
		}
	}

	return nil, &UnrecognizedExtensionError{Path: path}
}

// Load resolves a discovered descriptor into a solution record. Project and
// source-file descriptors load as ephemeral single-member solutions so every
// caller downstream works against one shape.
func Load(descriptor *Descriptor) (*msbuild.Solution, error) {
	switch descriptor.Kind {
	case Solution:
		return msbuild.LoadSolution(descriptor.Path)
	case Project:
		project, err := msbuild.LoadProject(descriptor.Path)
		if err != nil {
			return nil, err
		}

		return msbuild.NewSolutionFromProject(project), nil
	case SingleFileApplication:
		return msbuild.NewSolutionFromSourceFile(descriptor.Path), nil
	default:
		return nil, fmt.Errorf("unsupported descriptor kind: %s", descriptor.Kind)
	}
}
