// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package graph

import (
	"strings"
	"time"

	"github.com/trujunzhang/dockerpub/pkg/constants"
	"github.com/trujunzhang/dockerpub/util"
)

// Step is a single command line of a Plan.
type Step struct {
	// ID is the 1-based position of the step in its plan.
	ID int
	// Line is the trimmed command line.
	Line string
	// Args are the whitespace separated fields of Line.
	Args []string
	// Secret steps are executed but never echoed.
	Secret bool
	// StdIn is written to the command's standard input, if set.
	StdIn string

	StartTime  time.Time
	EndTime    time.Time
	StepStatus StepStatus
}

// NewStep creates a Step from a trimmed, non-empty command line.
func NewStep(id int, line string) *Step {
	return &Step{
		ID:         id,
		Line:       line,
		Args:       strings.Fields(line),
		Secret:     strings.Contains(line, constants.LoginMarker),
		StepStatus: Pending,
	}
}

// IsLogin returns true if the step runs `docker login`.
func (s *Step) IsLogin() bool {
	return len(s.Args) >= 2 && s.Args[1] == constants.LoginMarker
}

// UsesPasswordStdin returns true if the step reads its password from standard input.
func (s *Step) UsesPasswordStdin() bool {
	for _, arg := range s.Args {
		if arg == "--password-stdin" {
			return true
		}
	}
	return false
}

// Display returns the step's line with every argument equal to a secret obfuscated.
func (s *Step) Display(secrets ...string) string {
	return util.ObfuscateLine(s.Args, secrets...)
}

// Duration returns how long the step took, or zero if it hasn't finished.
func (s *Step) Duration() time.Duration {
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}
