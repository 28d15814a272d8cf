// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package publisher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/trujunzhang/dockerpub/graph"
	"github.com/trujunzhang/dockerpub/pkg/procmanager"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

const (
	repo     = "trujunzhang/new_ieatta_react_native_android"
	password = "s3cret"
	plan     = `
docker login -u alice -p s3cret

docker build -t trujunzhang/new_ieatta_react_native_android .
docker push trujunzhang/new_ieatta_react_native_android
`
)

type fakeRunner struct {
	calls    []string
	stdIns   []string
	outputs  map[string]string
	failures map[string]int
	err      error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outputs:  map[string]string{},
		failures: map[string]int{},
	}
}

func (f *fakeRunner) Run(ctx context.Context, args []string, stdIn io.Reader, stdOut io.Writer, _ io.Writer, _ string) error {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	if stdIn != nil {
		b, _ := ioutil.ReadAll(stdIn)
		f.stdIns = append(f.stdIns, string(b))
	}
	if f.err != nil {
		return f.err
	}
	if n := f.failures[key]; n > 0 {
		f.failures[key] = n - 1
		fmt.Fprint(stdOut, "partial output")
		return errors.New("exit status 1")
	}
	fmt.Fprint(stdOut, f.outputs[key])
	return nil
}

func TestPublish(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs["docker login -u alice -p s3cret"] = "Login Succeeded"
	runner.outputs["docker build -t "+repo+" ."] = "built"
	runner.outputs["docker push "+repo] = "pushed"

	var out bytes.Buffer
	p := NewPublisher(runner, Options{Out: &out, Secrets: []string{password}})
	pl := graph.NewPlan(plan)
	assert.NilError(t, p.Publish(context.Background(), pl))

	assert.Check(t, is.DeepEqual([]string{
		"docker login -u alice -p s3cret",
		"docker build -t " + repo + " .",
		"docker push " + repo,
	}, runner.calls))

	expected := "Login Succeeded\n" +
		"docker build -t " + repo + " .\n" +
		"built\n" +
		"docker push " + repo + "\n" +
		"pushed\n"
	assert.Equal(t, expected, out.String())
	assert.Check(t, !strings.Contains(out.String(), "login"))
	assert.Check(t, !strings.Contains(out.String(), password))

	for _, s := range pl.Steps {
		assert.Equal(t, graph.Successful, s.StepStatus)
	}
}

func TestPublish_AbortsOnFailure(t *testing.T) {
	runner := newFakeRunner()
	runner.failures["docker build -t "+repo+" ."] = 1

	var out bytes.Buffer
	p := NewPublisher(runner, Options{Out: &out, Secrets: []string{password}})
	pl := graph.NewPlan(plan)
	err := p.Publish(context.Background(), pl)
	assert.ErrorContains(t, err, "failed to run step 2: docker build -t "+repo+" .: exit status 1")

	assert.Equal(t, 2, len(runner.calls))
	assert.Check(t, !strings.Contains(out.String(), "partial output"))
	assert.Check(t, !strings.Contains(out.String(), "docker push"))
	assert.Equal(t, graph.Successful, pl.Steps[0].StepStatus)
	assert.Equal(t, graph.Failed, pl.Steps[1].StepStatus)
	assert.Equal(t, graph.Skipped, pl.Steps[2].StepStatus)
}

func TestPublish_LoginFailureIsObfuscated(t *testing.T) {
	runner := newFakeRunner()
	runner.failures["docker login -u alice -p s3cret"] = 1

	var out bytes.Buffer
	p := NewPublisher(runner, Options{Out: &out, Secrets: []string{password}})
	err := p.Publish(context.Background(), graph.NewPlan(plan))
	assert.ErrorContains(t, err, "failed to run step 1: docker login -u alice -p *************")
	assert.Check(t, !strings.Contains(err.Error(), password))
	assert.Equal(t, 1, len(runner.calls))
	assert.Equal(t, "", out.String())
}

func TestPublish_Retries(t *testing.T) {
	runner := newFakeRunner()
	runner.failures["docker push "+repo] = 1
	runner.outputs["docker push "+repo] = "pushed"

	var out bytes.Buffer
	p := NewPublisher(runner, Options{Out: &out, Retries: 1})
	assert.NilError(t, p.Publish(context.Background(), graph.NewPlan(plan)))
	assert.Equal(t, 4, len(runner.calls))
	assert.Check(t, strings.HasSuffix(out.String(), "docker push "+repo+"\npushed\n"))
	assert.Check(t, !strings.Contains(out.String(), "partial output"))
}

func TestPublish_RanOutOfRetries(t *testing.T) {
	runner := newFakeRunner()
	runner.failures["docker push "+repo] = 2

	p := NewPublisher(runner, Options{Out: ioutil.Discard, Retries: 1})
	err := p.Publish(context.Background(), graph.NewPlan(plan))
	assert.ErrorContains(t, err, "ran out of retries")
	assert.Equal(t, 4, len(runner.calls))
}

func TestPublish_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := newFakeRunner()
	runner.err = context.Canceled

	p := NewPublisher(runner, Options{Out: ioutil.Discard, Retries: 3})
	err := p.Publish(ctx, graph.NewPlan(plan))
	assert.Equal(t, context.Canceled, errors.Cause(err))
	assert.Equal(t, 1, len(runner.calls))
}

func TestPublish_PasswordStdin(t *testing.T) {
	runner := newFakeRunner()
	pl := graph.NewPlan("docker login -u alice --password-stdin\ndocker push " + repo)
	pl.SetLoginPassword(password)

	p := NewPublisher(runner, Options{Out: ioutil.Discard})
	assert.NilError(t, p.Publish(context.Background(), pl))
	assert.Check(t, is.DeepEqual([]string{password + "\n"}, runner.stdIns))
}

func TestPublish_EmptyPlan(t *testing.T) {
	runner := newFakeRunner()
	p := NewPublisher(runner, Options{Out: ioutil.Discard})
	assert.Check(t, p.Publish(context.Background(), graph.NewPlan("\n  \n")) != nil)
	assert.Equal(t, 0, len(runner.calls))
}

func TestPublish_ProcManager(t *testing.T) {
	var out bytes.Buffer
	p := NewPublisher(procmanager.NewProcManager(false), Options{Out: &out, ErrOut: ioutil.Discard})
	err := p.Publish(context.Background(), graph.NewPlan("echo hello\n\n  echo login-ok  \n"))
	assert.NilError(t, err)
	assert.Equal(t, "echo hello\nhello\n\nlogin-ok\n\n", out.String())
}

func TestPublish_ProcManagerFailure(t *testing.T) {
	var out bytes.Buffer
	p := NewPublisher(procmanager.NewProcManager(false), Options{Out: &out, ErrOut: ioutil.Discard})
	err := p.Publish(context.Background(), graph.NewPlan("false\necho never"))
	assert.ErrorContains(t, err, "failed to run step 1: false")
	assert.Equal(t, "false\n", out.String())
}

func TestNewPublisher_Defaults(t *testing.T) {
	p := NewPublisher(newFakeRunner(), Options{Retries: -1})
	assert.Equal(t, 0, p.retries)
	assert.Check(t, p.out != nil)
	assert.Check(t, p.errOut != nil)
	assert.Check(t, p.RunID() != "")
}

func TestPublish_FailureKeepsRepositoryIntact(t *testing.T) {
	runner := newFakeRunner()
	runner.failures["docker push "+repo] = 1

	p := NewPublisher(runner, Options{Out: ioutil.Discard, Secrets: []string{"react"}})
	err := p.Publish(context.Background(), graph.NewPlan("docker login -u alice -p react\ndocker push "+repo))
	assert.ErrorContains(t, err, "failed to run step 2: docker push "+repo+": exit status 1")
	assert.Check(t, !strings.Contains(err.Error(), "*"))
}
