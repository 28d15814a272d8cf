// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package publish

import (
	gocontext "context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/trujunzhang/dockerpub/cmd/dockerpub/commands/shared"
	"github.com/trujunzhang/dockerpub/pkg/constants"
	"github.com/trujunzhang/dockerpub/pkg/procmanager"
	"github.com/trujunzhang/dockerpub/publisher"
	"github.com/urfave/cli"
)

// Command logs into the registry, builds the image and pushes it.
var Command = cli.Command{
	Name:  "publish",
	Usage: "log into the registry, build the image and push it",
	Flags: append([]cli.Flag{
		cli.IntFlag{
			Name:  constants.ArgNameRetries,
			Usage: "the number of times a failed command is retried",
		},
		cli.StringFlag{
			Name:  "working-directory",
			Usage: "the directory the commands run in",
		},
		cli.BoolFlag{
			Name:  constants.ArgNameDryRun,
			Usage: "evaluates the commands, but doesn't execute them",
		},
	}, shared.PlanFlags...),
	Action: func(context *cli.Context) error {
		var (
			retries    = context.Int(constants.ArgNameRetries)
			workingDir = context.String("working-directory")
			dryRun     = context.Bool(constants.ArgNameDryRun)
		)

		if err := validateRetries(retries); err != nil {
			return err
		}

		planOpts := shared.PlanOptionsFromContext(context)
		plan, cred, err := planOpts.CreatePlan()
		if err != nil {
			return errors.Wrap(err, "failed to create a publish plan")
		}

		ctx, cancel := gocontext.WithCancel(gocontext.Background())
		defer cancel()
		stop := registerShutdownHandler(ctx, cancel)
		defer stop()

		pm := procmanager.NewProcManager(dryRun)
		pm.AddSecrets(cred.RegistryPassword)
		defer func() {
			if err := pm.Stop().ErrorOrNil(); err != nil {
				logrus.Warnf("Failed to stop processes: %v", err)
			}
		}()

		p := publisher.NewPublisher(pm, publisher.Options{
			Out:              context.App.Writer,
			ErrOut:           context.App.ErrWriter,
			Retries:          retries,
			WorkingDirectory: workingDir,
			Secrets:          []string{cred.RegistryPassword},
		})

		start := time.Now()
		if err := p.Publish(ctx, plan); err != nil {
			return err
		}
		logrus.WithField("run", p.RunID()).Debugf("Published in %s", time.Since(start))
		return nil
	},
}

// registerShutdownHandler translates term signals into a context cancel,
// which kills the running command. The returned func unregisters the handler.
func registerShutdownHandler(ctx gocontext.Context, cancel gocontext.CancelFunc) func() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-c:
			logrus.Warn("Received termination signal, aborting")
			cancel()
		case <-ctx.Done():
		}
	}()
	return func() {
		signal.Stop(c)
	}
}
