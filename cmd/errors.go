// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

// DetectFailedExitCode is the exit status for a source tree with no
// buildable application, matching the buildpack detect contract.
const DetectFailedExitCode = 100

// ExitCodeError carries a specific process exit code for main to use in
// place of the generic failure code.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}
