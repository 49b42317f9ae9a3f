// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Report   ReportConfig   `yaml:"report"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig for the HTTP API.
type ServerConfig struct {
	Bind string `yaml:"bind"`
}

// PipelineConfig describes the observed rip pipeline.
type PipelineConfig struct {
	// LogPath is the pipeline's activity log, replayed on every query.
	LogPath string `yaml:"log_path"`
	// ProcessName is the encoder binary name looked up for system stats.
	ProcessName string `yaml:"process_name"`
	// AllowPaths/BlockPaths gate per-request log path overrides.
	AllowPaths []string `yaml:"allow_paths"`
	BlockPaths []string `yaml:"block_paths"`
}

// ReportConfig for the log tail endpoint.
type ReportConfig struct {
	TailLines int `yaml:"tail_lines"`
}

// LoggingConfig for the service's own log.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Bind: ":8090"},
		Pipeline: PipelineConfig{LogPath: "/var/log/ripper/activity.log", ProcessName: "HandBrakeCLI"},
		Report:   ReportConfig{TailLines: 100},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Bind == "" {
		cfg.Server.Bind = ":8090"
	}
	if cfg.Pipeline.LogPath == "" {
		cfg.Pipeline.LogPath = "/var/log/ripper/activity.log"
	}
	if cfg.Pipeline.ProcessName == "" {
		cfg.Pipeline.ProcessName = "HandBrakeCLI"
	}
	if cfg.Report.TailLines <= 0 {
		cfg.Report.TailLines = 100
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	return cfg, nil
}
