// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package constants

const (
	// ObfuscationString is the string is used to hide sensitive data such as passwords in logs
	ObfuscationString = "*************"

	// DefaultDockerfile is the name of the default dockerfile
	DefaultDockerfile = "Dockerfile"

	// DefaultContext is the default docker build context
	DefaultContext = "."

	// LoginMarker marks a plan line as secret. Secret lines are executed but never echoed.
	LoginMarker = "login"
)
