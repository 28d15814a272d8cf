// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package render

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/trujunzhang/dockerpub/cmd/dockerpub/commands/shared"
	"github.com/urfave/cli"
)

// Command renders the commands publish would run, with the credentials obfuscated.
var Command = cli.Command{
	Name:   "render",
	Usage:  "print the commands publish would run",
	Flags:  shared.PlanFlags,
	Action: func(context *cli.Context) error {
		plan, cred, err := shared.PlanOptionsFromContext(context).CreatePlan()
		if err != nil {
			return errors.Wrap(err, "failed to render the publish plan")
		}
		for _, line := range plan.Lines(cred.RegistryPassword) {
			fmt.Fprintln(context.App.Writer, line)
		}
		return nil
	},
}
