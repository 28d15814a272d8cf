// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package publisher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/trujunzhang/dockerpub/graph"
	"github.com/trujunzhang/dockerpub/util"
)

// Runner runs a process and waits for it to exit.
type Runner interface {
	Run(ctx context.Context,
		args []string,
		stdIn io.Reader,
		stdOut io.Writer,
		stdErr io.Writer,
		cmdDir string) error
}

// Options configures a Publisher.
type Options struct {
	// Out receives the echoed command lines and their captured output. Defaults to os.Stdout.
	Out io.Writer
	// ErrOut receives the commands' standard error. Defaults to os.Stderr.
	ErrOut io.Writer
	// Retries is the number of times a failed step is retried.
	Retries int
	// WorkingDirectory is the directory the commands run in. Defaults to the current directory.
	WorkingDirectory string
	// Secrets are obfuscated in every message the publisher emits.
	Secrets []string
}

// Publisher runs the steps of a plan one after another.
type Publisher struct {
	runner  Runner
	out     io.Writer
	errOut  io.Writer
	retries int
	workDir string
	secrets []string
	runID   string
}

// NewPublisher creates a new Publisher.
func NewPublisher(runner Runner, opts Options) *Publisher {
	p := &Publisher{
		runner:  runner,
		out:     opts.Out,
		errOut:  opts.ErrOut,
		retries: opts.Retries,
		workDir: opts.WorkingDirectory,
		secrets: opts.Secrets,
		runID:   uuid.New().String(),
	}
	if p.out == nil {
		p.out = os.Stdout
	}
	if p.errOut == nil {
		p.errOut = os.Stderr
	}
	if p.retries < 0 {
		p.retries = 0
	}
	return p
}

// RunID returns the unique identifier of this publisher's run.
func (p *Publisher) RunID() string {
	return p.runID
}

// Publish runs every step of the plan in order. Steps which aren't secret are echoed
// before they run, and each step's captured output is written once it exits.
// The first failing step aborts the plan; the remaining steps are marked as skipped.
func (p *Publisher) Publish(ctx context.Context, plan *graph.Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	log := logrus.WithField("run", p.runID)
	log.Debugf("Publishing %d steps", len(plan.Steps))

	for i, step := range plan.Steps {
		if !step.Secret {
			fmt.Fprintln(p.out, step.Line)
		}

		step.StepStatus = graph.InProgress
		step.StartTime = time.Now()
		output, err := p.runStepWithRetries(ctx, step)
		step.EndTime = time.Now()

		if err != nil {
			step.StepStatus = graph.Failed
			for _, s := range plan.Steps[i+1:] {
				s.StepStatus = graph.Skipped
			}
			return errors.Wrapf(err, "failed to run step %d: %s", step.ID, step.Display(p.secrets...))
		}

		step.StepStatus = graph.Successful
		fmt.Fprintln(p.out, output)
		log.Debugf("Step ID %v marked as %v (elapsed time in seconds: %f)", step.ID, step.StepStatus, step.Duration().Seconds())
	}

	return nil
}

func (p *Publisher) runStepWithRetries(ctx context.Context, step *graph.Step) (string, error) {
	log := logrus.WithFields(logrus.Fields{"run": p.runID, "step": step.ID})

	var buf bytes.Buffer
	var err error
	for attempt := 0; attempt <= p.retries; attempt++ {
		if attempt > 0 {
			log.Warnf("Step failed: %v, waiting %s before retrying...", err, util.GetExponentialBackoff(attempt))
			if waitErr := util.WaitBackoff(ctx, attempt); waitErr != nil {
				return "", waitErr
			}
		}

		buf.Reset()
		var stdIn io.Reader
		if step.StdIn != "" {
			stdIn = strings.NewReader(step.StdIn)
		}

		if err = p.runner.Run(ctx, step.Args, stdIn, &buf, p.errOut, p.workDir); err == nil {
			return buf.String(), nil
		}
		if ctx.Err() != nil {
			return "", err
		}
	}

	if p.retries > 0 {
		return "", errors.Wrap(err, "ran out of retries")
	}
	return "", err
}
