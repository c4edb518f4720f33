// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	App struct {
		LogLevel       string `json:"log_level"`
		StrictNotFound *bool  `json:"strict_not_found"`
	} `json:"app,omitempty"`

	Input struct {
		Path string `json:"path"`
	} `json:"input,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	decoder := json.NewDecoder(jsonFile)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
		},
		Input: Input{
			Path: jsonCfg.Input.Path,
		},
		JSONFilePath: "",
	}

	if jsonCfg.App.StrictNotFound != nil {
		cfg.App.StrictNotFound = *jsonCfg.App.StrictNotFound
		cfg.strictNotFoundSet = true
	}

	return cfg, nil
}
