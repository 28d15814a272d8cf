// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package util

import (
	"errors"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		errors   Errors
		expected string
	}{
		{
			nil,
			"",
		},
		{
			Errors{
				errors.New("a"),
			},
			"a",
		},
		{
			Errors{
				errors.New("a"),
				errors.New("b"),
			},
			"a, b",
		},
	}

	for _, test := range tests {
		if actual := test.errors.String(); actual != test.expected {
			t.Errorf("expected %s but got %s", test.expected, actual)
		}
	}
}

func TestErrorOrNil(t *testing.T) {
	var errs Errors
	if err := errs.ErrorOrNil(); err != nil {
		t.Errorf("expected nil but got %v", err)
	}

	errs = append(errs, errors.New("kill failed"))
	err := errs.ErrorOrNil()
	if err == nil {
		t.Fatal("expected an error but got nil")
	}
	if err.Error() != "kill failed" {
		t.Errorf("expected kill failed but got %s", err.Error())
	}
}
