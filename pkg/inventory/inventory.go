// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package inventory reads the SDK release inventory and resolves version
// constraints against it.
package inventory

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"

	"github.com/heroku/buildpacks-dotnet-sub000/pkg/dotnet"
)

// Artifact is one downloadable SDK release.
type Artifact struct {
	Version  string `toml:"version"`
	OS       string `toml:"os"`
	Arch     string `toml:"arch"`
	URL      string `toml:"url"`
	Checksum string `toml:"checksum"`
}

// Inventory lists the known SDK releases.
type Inventory struct {
	Artifacts []Artifact `toml:"artifacts"`
}

// Load reads and parses an inventory file.
func Load(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading inventory: %w", err)
	}

	return Parse(data)
}

// Parse parses inventory TOML content.
func Parse(data []byte) (*Inventory, error) {
	var inv Inventory
	if err := toml.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("parsing inventory: %w", err)
	}

	return &inv, nil
}

// Resolve picks the newest artifact for the target platform that satisfies
// the constraint. The returned artifact is a copy and does not alias the
// inventory.
func (i *Inventory) Resolve(
	constraint dotnet.VersionConstraint,
	targetOS string,
	targetArch string,
) (*Artifact, error) {
	var best *Artifact
	var bestVersion *semver.Version

	for idx := range i.Artifacts {
		artifact := &i.Artifacts[idx]
		if artifact.OS != targetOS || artifact.Arch != targetArch {
			continue
		}

		version, err := semver.NewVersion(artifact.Version)
		if err != nil {
			return nil, fmt.Errorf("inventory artifact %q: %w", artifact.Version, err)
		}

		if !constraint.Check(version) {
			continue
		}

		if bestVersion == nil || version.GreaterThan(bestVersion) {
			best = artifact
			bestVersion = version
		}
	}

	if best == nil {
		return nil, &NoMatchingArtifactError{
			Constraint: constraint.String(),
			OS:         targetOS,
			Arch:       targetArch,
		}
	}

	resolved := *best
	return &resolved, nil
}

// ParseChecksum splits the artifact checksum into its algorithm and digest
// parts, e.g. "sha512:0a1b..." into ("sha512", "0a1b...").
func (a *Artifact) ParseChecksum() (algorithm string, digest string, err error) {
	algorithm, digest, found := strings.Cut(a.Checksum, ":")
	if !found || algorithm == "" || digest == "" {
		return "", "", fmt.Errorf("malformed checksum %q", a.Checksum)
	}

	return algorithm, digest, nil
}

// NoMatchingArtifactError reports a constraint that no inventory artifact
// satisfies for the requested platform.
type NoMatchingArtifactError struct {
	Constraint string
	OS         string
	Arch       string
}

func (e *NoMatchingArtifactError) Error() string {
	return fmt.Sprintf("no SDK release satisfies %s for %s/%s", e.Constraint, e.OS, e.Arch)
}
