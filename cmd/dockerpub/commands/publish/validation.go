// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package publish

import (
	"fmt"
)

func validateRetries(retries int) error {
	if retries < 0 {
		return fmt.Errorf("invalid retries: %d, must be zero or greater", retries)
	}
	return nil
}
