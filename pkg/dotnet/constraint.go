// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package dotnet

import (
	"github.com/Masterminds/semver/v3"
)

// VersionConstraint is a range expression over SDK versions, derived from a
// target framework moniker or a global.json pin. The zero value matches
// nothing and should not be used.
type VersionConstraint struct {
	raw        string
	constraint *semver.Constraints
}

func newVersionConstraint(raw string) (VersionConstraint, error) {
	constraint, err := semver.NewConstraint(raw)
	if err != nil {
		return VersionConstraint{}, &MalformedVersionError{Value: raw, Err: err}
	}

	return VersionConstraint{raw: raw, constraint: constraint}, nil
}

// String returns the constraint expression, e.g. "^8.0".
func (c VersionConstraint) String() string {
	return c.raw
}

// Check reports whether version satisfies the constraint.
func (c VersionConstraint) Check(version *semver.Version) bool {
	return c.constraint.Check(version)
}
