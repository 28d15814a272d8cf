// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	gocontext "context"
	"fmt"
	"os"
	"strings"

	publishCmd "github.com/trujunzhang/dockerpub/cmd/dockerpub/commands/publish"
	renderCmd "github.com/trujunzhang/dockerpub/cmd/dockerpub/commands/render"
	versionCmd "github.com/trujunzhang/dockerpub/cmd/dockerpub/commands/version"
	"github.com/trujunzhang/dockerpub/version"
	"github.com/urfave/cli"
)

func main() {
	app := New()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, formatErrorMessage(err))
		os.Exit(1)
	}
}

// New returns a *cli.App instance.
func New() *cli.App {
	app := cli.NewApp()
	app.Name = "dockerpub"
	app.Usage = "log into a container registry, build an image and push it"
	app.Version = version.Version
	app.Commands = []cli.Command{
		publishCmd.Command,
		renderCmd.Command,
		versionCmd.Command,
	}
	return app
}

// formatErrorMessage rewords errors which are confusing for a user.
func formatErrorMessage(err error) string {
	return strings.Replace(err.Error(), gocontext.DeadlineExceeded.Error(), "timed out", -1)
}
