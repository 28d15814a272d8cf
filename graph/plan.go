// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package graph

import (
	"strings"

	"github.com/pkg/errors"
)

var errEmptyPlan = errors.New("the rendered template doesn't contain any commands")

// Plan is the ordered list of commands rendered from a template.
type Plan struct {
	Steps []*Step
}

// NewPlan parses a newline delimited list of commands. Every line is trimmed
// and blank lines are dropped.
func NewPlan(rendered string) *Plan {
	p := &Plan{}
	for _, line := range strings.Split(strings.TrimSpace(rendered), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p.Steps = append(p.Steps, NewStep(len(p.Steps)+1, line))
	}
	return p
}

// Validate returns an error if the plan has nothing to run.
func (p *Plan) Validate() error {
	if p == nil || len(p.Steps) == 0 {
		return errEmptyPlan
	}
	return nil
}

// SetLoginPassword feeds the password to every login step which reads it from standard input.
func (p *Plan) SetLoginPassword(password string) {
	for _, s := range p.Steps {
		if s.IsLogin() && s.UsesPasswordStdin() {
			s.StdIn = password + "\n"
		}
	}
}

// Lines returns the lines which would be echoed while running the plan.
// Every occurrence of the secrets is obfuscated.
func (p *Plan) Lines(secrets ...string) []string {
	lines := make([]string, 0, len(p.Steps))
	for _, s := range p.Steps {
		lines = append(lines, s.Display(secrets...))
	}
	return lines
}
