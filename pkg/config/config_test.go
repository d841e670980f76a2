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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/timburks/gcalc/pkg/calculator"
)

func writeConfig(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "gcalc.yaml")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("Failed to write config: %+v", err)
	}
	return path
}

func TestMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Unexpected error for a missing file: %+v", err)
	}
	if f := cfg.Format(); f != calculator.DefaultFormat() {
		t.Errorf("Unexpected default format: %+v", f)
	}
	if cfg.ErrorText != calculator.DefaultErrorText {
		t.Errorf("Unexpected default error text: '%s'", cfg.ErrorText)
	}
	cfg, err = Load("")
	if err != nil || cfg == nil {
		t.Errorf("Unexpected result for an empty path: %+v %+v", cfg, err)
	}
}

func TestOverrides(t *testing.T) {
	path := writeConfig(t, `
separator: "."
fraction_digits: 0
error_text: Ошибка
theme:
  operator: 33
window:
  scale: 2
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %+v", err)
	}
	f := cfg.Format()
	if f.Separator != "." || f.MaxFractionDigits != 0 {
		t.Errorf("Unexpected format: %+v", f)
	}
	if cfg.Theme.Operator != 33 {
		t.Errorf("Unexpected operator color: %d", cfg.Theme.Operator)
	}
	if cfg.Theme.Digit != Default().Theme.Digit {
		t.Errorf("Unset digit color lost its default: %d", cfg.Theme.Digit)
	}
	if cfg.Window.Scale != 2 {
		t.Errorf("Unexpected window scale: %d", cfg.Window.Scale)
	}

	c := calculator.NewCalculator()
	cfg.Apply(c)
	c.Digit("1")
	c.Operator("/")
	c.Digit("0")
	c.Equals()
	if display := c.Display(); display != "Ошибка" {
		t.Errorf("Unexpected error text: '%s'", display)
	}
}

func TestInvalidConfig(t *testing.T) {
	bad := []string{
		"separator: \"::\"\n",
		"separator: \"5\"\n",
		"fraction_digits: -1\n",
		"separator: [\n",
		"error_text: \"1\"\n",
		"error_text: \"-0,5\"\n",
		"separator: \".\"\nerror_text: \"2.5\"\n",
	}
	for _, text := range bad {
		if _, err := Load(writeConfig(t, text)); err == nil {
			t.Errorf("Expected an error for %q", text)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := Default()
	cfg.LogFile = "/tmp/gcalc.log"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Failed to save config: %+v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load saved config: %+v", err)
	}
	if loaded.LogPath() != "/tmp/gcalc.log" {
		t.Errorf("Unexpected log path: '%s'", loaded.LogPath())
	}
}

func TestNumericErrorTextIsRejected(t *testing.T) {
	_, err := Load(writeConfig(t, "error_text: \"1\"\n"))
	if err == nil {
		t.Fatalf("Expected an error for a numeric error_text")
	}
	// the same text is fine when it can't be read with the configured separator
	cfg, err := Load(writeConfig(t, "separator: \".\"\nerror_text: \"1,5\"\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	c := calculator.NewCalculator()
	cfg.Apply(c)
	c.Digit("1")
	c.Digit("2")
	if display := c.Display(); display != "12" {
		t.Errorf("Unexpected display after typing 1 and 2: '%s'", display)
	}
}
