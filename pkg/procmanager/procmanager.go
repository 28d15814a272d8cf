// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procmanager

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/trujunzhang/dockerpub/pkg/constants"
	"github.com/trujunzhang/dockerpub/pkg/util"
	rootutil "github.com/trujunzhang/dockerpub/util"
)

// ProcManager is a wrapper for os.Process.
type ProcManager struct {
	DryRun    bool
	mu        sync.Mutex
	processes map[int]*os.Process
	secrets   []string
}

// NewProcManager creates a new ProcManager.
func NewProcManager(dryRun bool) *ProcManager {
	return &ProcManager{
		DryRun:    dryRun,
		processes: map[int]*os.Process{},
		mu:        sync.Mutex{},
	}
}

// AddSecrets registers values which must never show up in the manager's logs.
func (pm *ProcManager) AddSecrets(secrets ...string) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	for _, s := range secrets {
		if s != "" {
			pm.secrets = append(pm.secrets, s)
		}
	}
}

// Run runs an exec.Command based on the specified args.
// stdIn, stdOut, stdErr, and cmdDir can be attached to the created exec.Command.
func (pm *ProcManager) Run(
	ctx context.Context,
	args []string,
	stdIn io.Reader,
	stdOut io.Writer,
	stdErr io.Writer,
	cmdDir string) error {
	if args == nil {
		return nil
	}

	displayArgs := pm.obfuscate(args)
	hidden := isLoginCommand(args)
	if pm.DryRun {
		if hidden {
			logrus.Info("[DRY RUN] Skipping login command")
		} else {
			logrus.Infof("[DRY RUN] Args: %v", displayArgs)
		}
		return nil
	}
	if hidden {
		logrus.Debug("Running login command")
	} else {
		logrus.Debugf("Running command %s", strings.Join(displayArgs, " "))
	}

	cmd := exec.Command(args[0], args[1:]...)
	if cmdDir != "" {
		cmd.Dir = cmdDir
	}

	cmd.Stdin = stdIn
	cmd.Stdout = stdOut
	cmd.Stderr = stdErr

	if err := cmd.Start(); err != nil {
		return err
	}

	pid := cmd.Process.Pid

	pm.mu.Lock()
	pm.processes[pid] = cmd.Process
	pm.mu.Unlock()

	defer pm.DeletePid(pid)
	errChan := make(chan error, 1)
	go func() {
		errChan <- cmd.Wait()
	}()

	select {
	case err := <-errChan:
		return err

	case <-ctx.Done():
		go func() {
			if err := cmd.Process.Kill(); err != nil {
				logrus.Warnf("Failed to kill process. Path: %s, Err: %v", cmd.Path, err)
			}
		}()

		return ctx.Err()
	}
}

// DeletePid deletes the specified pid from the internal map.
func (pm *ProcManager) DeletePid(pid int) {
	pm.mu.Lock()
	delete(pm.processes, pid)
	pm.mu.Unlock()
}

// Stop stops the process manager and tries to kill any remaining processes
// in its internal map. Any errors encountered during kill will be return as
// a list of errors.
func (pm *ProcManager) Stop() util.Errors {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	var errs util.Errors
	for pid, process := range pm.processes {
		if err := process.Kill(); err != nil {
			errs = append(errs, err)
		}
		delete(pm.processes, pid)
	}
	return errs
}

func (pm *ProcManager) obfuscate(args []string) []string {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	return rootutil.ObfuscateArgs(args, pm.secrets...)
}

// isLoginCommand reports whether the args form a login line, whose arguments are never logged.
func isLoginCommand(args []string) bool {
	return strings.Contains(strings.Join(args, " "), constants.LoginMarker)
}
