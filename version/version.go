// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package version

var (
	// Version is the version of dockerpub, set at link time.
	Version = "0.1.0-dev"

	// Revision is the git commit dockerpub was built from, set at link time.
	Revision = "unknown"
)
