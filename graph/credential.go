// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package graph

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

var (
	errInvalidUsername   = errors.New("username can't be empty")
	errInvalidPassword   = errors.New("password can't be empty")
	errInsufficientCreds = errors.New("need to provide registry name, username, and password in a string delimited by ';'")
)

// Credential defines a combination of registry, username and password.
// An empty RegistryName means the docker CLI's default registry.
type Credential struct {
	RegistryName     string
	RegistryUsername string
	RegistryPassword string
}

// NewCredential creates a new Credential.
func NewCredential(regName, regUser, regPw string) (*Credential, error) {
	if regUser == "" {
		return nil, errInvalidUsername
	}
	if regPw == "" {
		return nil, errInvalidPassword
	}

	return &Credential{
		RegistryName:     regName,
		RegistryUsername: regUser,
		RegistryPassword: regPw,
	}, nil
}

// CreateCredentialFromString creates a Credential object from a string in the form registry;username;password.
func CreateCredentialFromString(str string) (*Credential, error) {
	strs := strings.SplitN(str, ";", 3)

	if len(strs) != 3 {
		return nil, errInsufficientCreds
	}

	return NewCredential(strs[0], strs[1], strs[2])
}

// CredentialFromEnv creates a Credential for the registry from the specified environment variables.
func CredentialFromEnv(regName, userEnv, passwordEnv string) (*Credential, error) {
	user := os.Getenv(userEnv)
	if user == "" {
		return nil, errors.Wrapf(errInvalidUsername, "environment variable %s is not set", userEnv)
	}
	pw := os.Getenv(passwordEnv)
	if pw == "" {
		return nil, errors.Wrapf(errInvalidPassword, "environment variable %s is not set", passwordEnv)
	}
	return NewCredential(regName, user, pw)
}

func (c Credential) String() string {
	return fmt.Sprintf("%s %s", c.RegistryName, c.RegistryUsername)
}
