// Package config loads pdfdigest settings from an optional YAML file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thywilljoshua/pdf-digest/internal/outline"
	"github.com/thywilljoshua/pdf-digest/internal/rank"
)

const (
	dockerInput  = "/app/input"
	dockerOutput = "/app/output"
)

type Config struct {
	InputDir    string `yaml:"input_dir"`
	OutputDir   string `yaml:"output_dir"`
	PersonaFile string `yaml:"persona_file"`
	JobFile     string `yaml:"job_file"`
	OutputName  string `yaml:"output_name"`
	XLSX        bool   `yaml:"xlsx"`
	CachePath   string `yaml:"cache_path"`

	AI      AIConfig       `yaml:"ai"`
	Outline outline.Params `yaml:"outline"`
	Rank    rank.Params    `yaml:"rank"`
}

type AIConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.defaults()
	return c
}

func (c *Config) defaults() {
	if c.InputDir == "" || c.OutputDir == "" {
		in, out := detectDirs()
		if c.InputDir == "" {
			c.InputDir = in
		}
		if c.OutputDir == "" {
			c.OutputDir = out
		}
	}
	if c.PersonaFile == "" {
		c.PersonaFile = "persona.txt"
	}
	if c.JobFile == "" {
		c.JobFile = "job_to_be_done.txt"
	}
	if c.OutputName == "" {
		c.OutputName = "digest_output.json"
	}
	if c.AI.Provider == "" {
		c.AI.Provider = "off"
	}
	c.Outline = c.Outline.WithDefaults()
	c.Rank = c.Rank.WithDefaults()
}

// detectDirs prefers the container layout when both mount points exist.
func detectDirs() (string, string) {
	if isDir(dockerInput) && isDir(dockerOutput) {
		return dockerInput, dockerOutput
	}
	return "./input", "./output"
}

func isDir(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.IsDir()
}

// LoadFile reads a YAML config file; unset fields take their defaults.
// Heuristic params start from their defaults so an explicit zero in the
// file is kept.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{Outline: outline.DefaultParams(), Rank: rank.DefaultParams()}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.defaults()
	return cfg, nil
}

// Load returns LoadFile(path), or Default when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
