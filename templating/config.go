// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package templating

import (
	"io/ioutil"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Config represents a values file. Every field is optional; command line flags take precedence.
type Config struct {
	Repository string `yaml:"repository,omitempty"`
	Registry   string `yaml:"registry,omitempty"`
	Context    string `yaml:"context,omitempty"`
	File       string `yaml:"file,omitempty"`
	Template   string `yaml:"template,omitempty"`
}

// Deserialize converts the specified bytes to a Config.
func Deserialize(b []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalStrict(b, c); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize values")
	}
	return c, nil
}

// DeserializeFromFile parses the specified file name and converts it to a Config.
// An empty file name results in an empty Config.
func DeserializeFromFile(fileName string) (*Config, error) {
	if fileName == "" {
		return &Config{}, nil
	}
	b, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read values file %s", fileName)
	}
	return Deserialize(b)
}

// LoadTemplate returns the command template to use. A template file wins over
// the config's inline template, which wins over the fallback.
func (c *Config) LoadTemplate(templateFile string, fallback string) (string, error) {
	if templateFile != "" {
		b, err := ioutil.ReadFile(templateFile)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read template file %s", templateFile)
		}
		return string(b), nil
	}
	if c != nil && c.Template != "" {
		return c.Template, nil
	}
	return fallback, nil
}

// Coalesce returns the first non-empty string.
func Coalesce(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
