// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package constants

const (
	// DefaultRepository is the repository published when none is configured.
	DefaultRepository = "trujunzhang/new_ieatta_react_native_android"

	// DefaultUserEnv is the environment variable holding the registry username.
	DefaultUserEnv = "DOCKER_USER"

	// DefaultPasswordEnv is the environment variable holding the registry password.
	DefaultPasswordEnv = "DOCKER_PASS"

	// DefaultTemplate is the newline delimited list of commands run by publish.
	// Lines are trimmed and blank lines are ignored.
	DefaultTemplate = `
docker login -u {{ .Username }} {{ if .PasswordStdin }}--password-stdin{{ else }}-p {{ .Password }}{{ end }}{{ with .Registry }} {{ . }}{{ end }}
docker build -t {{ .Repository }}{{ with .File }} -f {{ . }}{{ end }} {{ .Context }}
docker push {{ .Repository }}
`
)
