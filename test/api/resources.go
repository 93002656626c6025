/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

//go:embed resources
var resources embed.FS

// LoadResource reads a JSON fixture e.g. endpoint/newEndpoint.json.  Files are
// read from the configured resource directory when set, otherwise from the
// copies embedded in the test binary.
func LoadResource(config *TestConfig, name string) (json.RawMessage, error) {
	var (
		data []byte
		err  error
	)

	if config.ResourceDir != "" {
		data, err = os.ReadFile(filepath.Join(config.ResourceDir, filepath.FromSlash(name)))
	} else {
		data, err = resources.ReadFile(path.Join("resources", name))
	}

	if err != nil {
		return nil, fmt.Errorf("loading resource %s: %w", name, err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("loading resource %s: %w", name, ErrInvalidResource)
	}

	return json.RawMessage(data), nil
}

// LoadEndpointResource reads an endpoint fixture by file name.
func LoadEndpointResource(config *TestConfig, file string) (json.RawMessage, error) {
	return LoadResource(config, path.Join("endpoint", file))
}
