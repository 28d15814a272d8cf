// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package constants

// We put parameter names into a constant file so we can refer to them in any error messages

const ArgNameRepository = "repository"
const ArgNameRegistry = "registry"
const ArgNameContext = "context"
const ArgNameDockerfile = "file"
const ArgNameTemplate = "template"
const ArgNameValues = "values"
const ArgNameStrict = "strict"
const ArgNameUserEnv = "username-env"
const ArgNamePasswordEnv = "password-env"
const ArgNamePasswordStdin = "password-stdin"
const ArgNameRetries = "retries"
const ArgNameDryRun = "dry-run"
const ArgNameDebug = "debug"
