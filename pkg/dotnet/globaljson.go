// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package dotnet

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/blang/semver/v4"
)

// GlobalJSON is the parsed form of a global.json SDK pin.
type GlobalJSON struct {
	SDK struct {
		Version     string `json:"version"`
		RollForward string `json:"rollForward"`
	} `json:"sdk"`
}

// LoadGlobalJSON reads and parses the global.json file at path.
func LoadGlobalJSON(path string) (*GlobalJSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading global.json: %w", err)
	}

	return ParseGlobalJSON(data)
}

// ParseGlobalJSON parses global.json content. Fields other than the sdk
// section are ignored.
func ParseGlobalJSON(data []byte) (*GlobalJSON, error) {
	var doc GlobalJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing global.json: %w", err)
	}

	return &doc, nil
}

// Constraint derives the SDK version constraint expressed by the pin. The
// rollForward policy widens or narrows the range around the pinned version;
// when unset it defaults to "patch". Policy names match the documented
// camelCase spellings exactly; anything else is rejected rather than
// guessed at.
func (g *GlobalJSON) Constraint() (VersionConstraint, error) {
	raw := strings.TrimSpace(g.SDK.Version)
	if raw == "" {
		return VersionConstraint{}, &MissingPinnedVersionError{}
	}

	pin, err := semver.Parse(raw)
	if err != nil {
		return VersionConstraint{}, &MalformedVersionError{Value: raw, Err: err}
	}

	policy := g.SDK.RollForward
	if policy == "" {
		policy = "patch"
	}

	switch policy {
	case "patch", "latestPatch":
		// Stay inside the pinned feature band: the hundred-block of the
		// patch component. The lower bound keeps any pre-release qualifier
		// so a pinned pre-release stays resolvable.
		band := pin.Patch / 100 * 100
		return newVersionConstraint(fmt.Sprintf(">=%s <%d.%d.%d", raw, pin.Major, pin.Minor, band+100))
	case "feature", "latestFeature":
		return newVersionConstraint(fmt.Sprintf("~%d.%d", pin.Major, pin.Minor))
	case "minor", "latestMinor":
		return newVersionConstraint(fmt.Sprintf("^%d.%d", pin.Major, pin.Minor))
	case "major", "latestMajor":
		return newVersionConstraint("*")
	case "disable":
		return newVersionConstraint("=" + raw)
	default:
		return VersionConstraint{}, &RollForwardPolicyError{Policy: policy}
	}
}
