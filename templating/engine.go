// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package templating

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Engine is a wrapper around Go templates.
type Engine struct {
	FuncMap    template.FuncMap
	StrictMode bool
}

// New creates a new engine.
func New() *Engine {
	return &Engine{
		FuncMap: FuncMap(),
	}
}

// FuncMap returns a FuncMap representing all of the functionality of the engine.
func FuncMap() template.FuncMap {
	return sprig.TxtFuncMap()
}

// Render renders the named template with the specified values.
func (e *Engine) Render(name string, tmpl string, values Values) (rendered string, err error) {
	if values == nil {
		return "", errors.New("values is required")
	}

	// If a template panics, recover the engine.
	defer func() {
		if r := recover(); r != nil {
			logrus.Warnf("Template rendering recovered. Value: %v", r)
			err = errors.Errorf("failed to render template: %s", name)
		}
	}()

	t := template.New(name).Funcs(e.FuncMap)
	if e.StrictMode {
		t.Option("missingkey=error")
	} else {
		// NB: zero will attempt to add default values for types it knows.
		// It still emits <no value> for others. This is corrected below.
		t.Option("missingkey=zero")
	}

	if _, err := t.Parse(tmpl); err != nil {
		return "", errors.Wrapf(err, "failed to parse template: %s", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, values); err != nil {
		return "", errors.Wrapf(err, "failed to execute template: %s", name)
	}

	// NB: handle `missingkey=zero` by removing the string.
	return strings.Replace(buf.String(), "<no value>", "", -1), nil
}
