//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config reads gcalc settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/timburks/gcalc/pkg/calculator"
)

// DefaultFilename is looked up in the home directory when no --config is given.
const DefaultFilename = ".gcalc.yaml"

type Config struct {
	Separator      string `yaml:"separator"`
	FractionDigits *int   `yaml:"fraction_digits,omitempty"`
	ErrorText      string `yaml:"error_text,omitempty"`
	LogFile        string `yaml:"log_file,omitempty"`
	Theme          Theme  `yaml:"theme"`
	Window         Window `yaml:"window"`
}

// Theme holds termbox 256-color palette indexes.
type Theme struct {
	Display  int `yaml:"display"`
	History  int `yaml:"history"`
	Digit    int `yaml:"digit"`
	Operator int `yaml:"operator"`
	Function int `yaml:"function"`
	Equals   int `yaml:"equals"`
}

type Window struct {
	Scale int    `yaml:"scale"`
	Title string `yaml:"title,omitempty"`
}

func Default() *Config {
	digits := 3
	return &Config{
		Separator:      ",",
		FractionDigits: &digits,
		ErrorText:      calculator.DefaultErrorText,
		Theme: Theme{
			Display:  231,
			History:  245,
			Digit:    238,
			Operator: 208,
			Function: 250,
			Equals:   208,
		},
		Window: Window{Scale: 1, Title: "gcalc"},
	}
}

// DefaultPath returns ~/.gcalc.yaml, or "" if there is no home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFilename)
}

// Load reads a config file over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (cfg *Config) Save(path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (cfg *Config) Validate() error {
	if len([]rune(cfg.Separator)) != 1 {
		return fmt.Errorf("separator must be a single character, got %q", cfg.Separator)
	}
	if cfg.Separator == "-" || (cfg.Separator >= "0" && cfg.Separator <= "9") {
		return fmt.Errorf("separator %q can't be used in numbers", cfg.Separator)
	}
	if _, ok := cfg.Format().Parse(cfg.ErrorText); ok {
		return fmt.Errorf("error_text %q reads as a number", cfg.ErrorText)
	}
	if cfg.FractionDigits != nil && (*cfg.FractionDigits < 0 || *cfg.FractionDigits > 15) {
		return fmt.Errorf("fraction_digits must be between 0 and 15, got %d", *cfg.FractionDigits)
	}
	if cfg.Window.Scale < 1 {
		cfg.Window.Scale = 1
	}
	return nil
}

// Format returns the number format described by the config.
func (cfg *Config) Format() calculator.Format {
	f := calculator.DefaultFormat()
	if cfg.Separator != "" {
		f.Separator = cfg.Separator
	}
	if cfg.FractionDigits != nil {
		f.MaxFractionDigits = *cfg.FractionDigits
	}
	return f
}

// Apply configures a calculator.
func (cfg *Config) Apply(c *calculator.Calculator) {
	c.SetFormat(cfg.Format())
	c.SetErrorText(cfg.ErrorText)
}

// LogPath returns the log file, defaulting to ~/.gcalclog.
func (cfg *Config) LogPath() string {
	if cfg.LogFile != "" {
		return cfg.LogFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gcalclog"
	}
	return filepath.Join(home, ".gcalclog")
}
