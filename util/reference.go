// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package util

import (
	"github.com/docker/distribution/reference"
	"github.com/pkg/errors"
)

// NormalizeImage validates the specified image repository and returns its fully qualified form,
// i.e. "docker.io/library/ubuntu" for "ubuntu".
func NormalizeImage(img string) (string, error) {
	if img == "" {
		return "", errors.New("image repository can't be empty")
	}
	named, err := reference.ParseNormalizedNamed(img)
	if err != nil {
		return "", errors.Wrapf(err, "invalid image repository %q", img)
	}
	return named.String(), nil
}

// RegistryFromImage returns the registry domain of the specified image, i.e. "docker.io" for "ubuntu".
func RegistryFromImage(img string) (string, error) {
	named, err := reference.ParseNormalizedNamed(img)
	if err != nil {
		return "", errors.Wrapf(err, "invalid image repository %q", img)
	}
	return reference.Domain(named), nil
}
