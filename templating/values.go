// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package templating

// Values represents a map of render values.
type Values map[string]interface{}

// RenderOptions holds everything the command template can refer to.
type RenderOptions struct {
	// Repository is the image repository to build and push. Required.
	Repository string
	// Registry is the registry to log into. Optional, docker defaults to Docker Hub.
	Registry string
	// Context is the docker build context.
	Context string
	// File is the path to the Dockerfile. Optional.
	File string
	// Username is the registry username.
	Username string
	// Password is the registry password.
	Password string
	// PasswordStdin makes the login read the password from stdin instead of its arguments.
	PasswordStdin bool
}

// Values converts the options into Values. Every key is always present so
// templates can compare against it.
func (o *RenderOptions) Values() Values {
	return Values{
		"Repository":    o.Repository,
		"Registry":      o.Registry,
		"Context":       o.Context,
		"File":          o.File,
		"Username":      o.Username,
		"Password":      o.Password,
		"PasswordStdin": o.PasswordStdin,
	}
}
