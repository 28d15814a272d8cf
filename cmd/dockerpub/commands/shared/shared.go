// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package shared

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/trujunzhang/dockerpub/graph"
	"github.com/trujunzhang/dockerpub/pkg/constants"
	"github.com/trujunzhang/dockerpub/templating"
	"github.com/trujunzhang/dockerpub/util"
	"github.com/urfave/cli"
)

const dockerHubDomain = "docker.io"

// PlanFlags are the flags shared by every command which renders a plan.
var PlanFlags = []cli.Flag{
	cli.StringFlag{
		Name:   constants.ArgNameRepository,
		Usage:  "the image repository to build and push (default: " + constants.DefaultRepository + ")",
		EnvVar: "DOCKERPUB_REPOSITORY",
	},
	cli.StringFlag{
		Name:   constants.ArgNameRegistry + ",r",
		Usage:  "the registry to log into, docker's default registry if empty",
		EnvVar: "DOCKERPUB_REGISTRY",
	},
	cli.StringFlag{
		Name:  constants.ArgNameContext + ",c",
		Usage: "the docker build context (default: " + constants.DefaultContext + ")",
	},
	cli.StringFlag{
		Name:  constants.ArgNameDockerfile + ",f",
		Usage: "the path to the Dockerfile, docker uses " + constants.DefaultDockerfile + " in the build context if empty",
	},
	cli.StringFlag{
		Name:  constants.ArgNameTemplate,
		Usage: "the path to a newline delimited command template",
	},
	cli.BoolFlag{
		Name:  constants.ArgNameStrict,
		Usage: "fail rendering when the template refers to an unknown value",
	},
	cli.StringFlag{
		Name:  constants.ArgNameValues,
		Usage: "the path to a YAML values file",
	},
	cli.StringFlag{
		Name:  constants.ArgNameUserEnv,
		Usage: "the environment variable holding the registry username",
		Value: constants.DefaultUserEnv,
	},
	cli.StringFlag{
		Name:  constants.ArgNamePasswordEnv,
		Usage: "the environment variable holding the registry password",
		Value: constants.DefaultPasswordEnv,
	},
	cli.StringFlag{
		Name:  "credential",
		Usage: "login credentials in the form registry;username;password, overrides the environment variables",
	},
	cli.BoolFlag{
		Name:  constants.ArgNamePasswordStdin,
		Usage: "pass the password to docker login through stdin instead of the command line",
	},
	cli.BoolFlag{
		Name:  constants.ArgNameDebug,
		Usage: "enables diagnostic logging",
	},
}

// PlanOptions describe how to render a plan.
type PlanOptions struct {
	Repository    string
	Registry      string
	Context       string
	Dockerfile    string
	TemplateFile  string
	ValuesFile    string
	UserEnv       string
	PasswordEnv   string
	Credential    string
	PasswordStdin bool
	Strict        bool
}

// PlanOptionsFromContext reads the PlanFlags from the command line.
func PlanOptionsFromContext(context *cli.Context) *PlanOptions {
	if context.Bool(constants.ArgNameDebug) {
		logrus.SetLevel(logrus.DebugLevel)
	}

	return &PlanOptions{
		Repository:    context.String(constants.ArgNameRepository),
		Registry:      context.String(constants.ArgNameRegistry),
		Context:       context.String(constants.ArgNameContext),
		Dockerfile:    context.String(constants.ArgNameDockerfile),
		TemplateFile:  context.String(constants.ArgNameTemplate),
		ValuesFile:    context.String(constants.ArgNameValues),
		UserEnv:       context.String(constants.ArgNameUserEnv),
		PasswordEnv:   context.String(constants.ArgNamePasswordEnv),
		Credential:    context.String("credential"),
		PasswordStdin: context.Bool(constants.ArgNamePasswordStdin),
		Strict:        context.Bool(constants.ArgNameStrict),
	}
}

// CreatePlan resolves the options against the values file and the defaults,
// reads the credential and renders the plan.
func (o *PlanOptions) CreatePlan() (*graph.Plan, *graph.Credential, error) {
	config, err := templating.DeserializeFromFile(o.ValuesFile)
	if err != nil {
		return nil, nil, err
	}

	repository := templating.Coalesce(o.Repository, config.Repository, constants.DefaultRepository)
	if _, err := util.NormalizeImage(repository); err != nil {
		return nil, nil, err
	}

	registry := templating.Coalesce(o.Registry, config.Registry)
	if registry == "" {
		// Log into the repository's own registry unless it lives on Docker Hub.
		if domain, err := util.RegistryFromImage(repository); err == nil && domain != dockerHubDomain {
			registry = domain
		}
	}

	cred, err := o.credential(registry)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read registry credentials")
	}

	tmpl, err := config.LoadTemplate(o.TemplateFile, constants.DefaultTemplate)
	if err != nil {
		return nil, nil, err
	}

	renderOpts := &templating.RenderOptions{
		Repository:    repository,
		Registry:      cred.RegistryName,
		Context:       templating.Coalesce(o.Context, config.Context, constants.DefaultContext),
		File:          templating.Coalesce(o.Dockerfile, config.File),
		Username:      cred.RegistryUsername,
		Password:      cred.RegistryPassword,
		PasswordStdin: o.PasswordStdin,
	}
	engine := templating.New()
	engine.StrictMode = o.Strict
	rendered, err := engine.Render("publish", tmpl, renderOpts.Values())
	if err != nil {
		return nil, nil, err
	}

	plan := graph.NewPlan(rendered)
	if err := plan.Validate(); err != nil {
		return nil, nil, err
	}
	if o.PasswordStdin {
		plan.SetLoginPassword(cred.RegistryPassword)
	}
	return plan, cred, nil
}

func (o *PlanOptions) credential(registry string) (*graph.Credential, error) {
	if o.Credential != "" {
		cred, err := graph.CreateCredentialFromString(o.Credential)
		if err != nil {
			return nil, err
		}
		if cred.RegistryName == "" {
			cred.RegistryName = registry
		}
		return cred, nil
	}
	return graph.CredentialFromEnv(registry, o.UserEnv, o.PasswordEnv)
}
