// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// defaultDotEnvFile is loaded when no dotenv path is configured and the file
// exists in the working directory.
const defaultDotEnvFile = ".env"

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	jsonPath := b.firstPath(func(cfg *StructuredConfig) string { return cfg.JSONFilePath })

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

func (b *configBuilder) withDotEnv() *configBuilder {
	dotEnvPath := b.firstPath(func(cfg *StructuredConfig) string { return cfg.DotEnvFilePath })

	if dotEnvPath == "" {
		if _, err := os.Stat(defaultDotEnvFile); err != nil {
			return b
		}
		dotEnvPath = defaultDotEnvFile
	}

	dotEnvCfg, err := parseDotEnv(dotEnvPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, dotEnvCfg)
	return b
}

// firstPath returns the first non-empty path among the collected sources,
// matching the priority build uses to merge them.
func (b *configBuilder) firstPath(path func(*StructuredConfig) string) string {
	for _, cfg := range b.configs {
		if p := path(cfg); p != "" {
			return p
		}
	}
	return ""
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, Defaults())
	return b
}
