// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package util

import (
	"strings"

	"github.com/trujunzhang/dockerpub/pkg/constants"
)

// ObfuscateArgs returns a copy of args where every argument equal to one of the secrets
// is replaced with the obfuscation string. For key=value arguments only the value is hidden.
func ObfuscateArgs(args []string, secrets ...string) []string {
	ret := make([]string, len(args))
	copy(ret, args)
	if len(secrets) == 0 {
		return ret
	}

	for i := 0; i < len(ret); i++ {
		for _, secret := range secrets {
			if secret == "" {
				continue
			}
			if ret[i] == secret {
				ret[i] = constants.ObfuscationString
				break
			}
			if index := strings.Index(ret[i], "="); index >= 0 && ret[i][index+1:] == secret {
				ret[i] = ret[i][:index+1] + constants.ObfuscationString
				break
			}
		}
	}
	return ret
}

// ObfuscateLine returns the args joined with spaces, with the secret arguments obfuscated.
// Secrets are only matched against whole arguments, never against substrings.
func ObfuscateLine(args []string, secrets ...string) string {
	return strings.Join(ObfuscateArgs(args, secrets...), " ")
}
