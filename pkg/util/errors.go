// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package util

import (
	"strings"
)

// Errors aggregates errors collected while cleaning up after a publish,
// when returning early would leave processes behind.
type Errors []error

// String returns a string representation for the Errors type.
func (e Errors) String() string {
	if len(e) == 0 {
		return ""
	}

	out := make([]string, len(e))
	for i := range e {
		out[i] = e[i].Error()
	}

	return strings.Join(out, ", ")
}

// Error implements the error interface.
func (e Errors) Error() string {
	return e.String()
}

// ErrorOrNil returns nil if no errors were collected.
func (e Errors) ErrorOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
