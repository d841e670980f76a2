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
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/timburks/gcalc/pkg/calculator"
	"github.com/timburks/gcalc/pkg/commander"
	"github.com/timburks/gcalc/pkg/config"
	"github.com/timburks/gcalc/pkg/screen"
	"github.com/timburks/gcalc/pkg/touch"
)

type options struct {
	script     string // evaluate this file and exit
	configPath string
	touch      bool // use the touch keypad window instead of the terminal
}

func parseArgs(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		argi := args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(args) {
				opts.script = args[i]
			} else {
				return opts, errors.New("no file specified for --eval option")
			}
		case "--config":
			i++
			if i < len(args) {
				opts.configPath = args[i]
			} else {
				return opts, errors.New("no file specified for --config option")
			}
		case "--touch":
			opts.touch = true
		default:
			return opts, fmt.Errorf("unknown option %s", argi)
		}
	}
	if opts.configPath == "" {
		opts.configPath = config.DefaultPath()
	}
	return opts, nil
}

// runScript evaluates a script with a fresh calculator and writes the
// resulting history (if any) and display to w.
func runScript(filename string, cfg *config.Config, w io.Writer) error {
	calc := calculator.NewCalculator()
	cfg.Apply(calc)
	c := commander.NewCommander(calc)
	if err := c.ParseEvalFile(filename); err != nil {
		return err
	}
	if history := calc.History(); history != "" {
		fmt.Fprintln(w, history)
	}
	fmt.Fprintln(w, calc.Display())
	return nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Output(1, err.Error())
		os.Exit(2)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		log.Output(1, err.Error())
		os.Exit(1)
	}

	if opts.script != "" {
		// Run a gcalc script and exit.
		if err := runScript(opts.script, cfg, os.Stdout); err != nil {
			log.Output(1, err.Error())
			os.Exit(1)
		}
		return
	}

	// The calculator holds the display and the history.
	calc := calculator.NewCalculator()
	cfg.Apply(calc)

	// The commander converts user inputs into commands for the calculator.
	c := commander.NewCommander(calc)

	// Open a log file.
	f, err := os.OpenFile(cfg.LogPath(), os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	if opts.touch {
		if err := touch.Run(calc, c, cfg); err != nil {
			log.Output(1, err.Error())
		}
		return
	}

	// Create a screen to manage display.
	s := screen.NewScreen(cfg.Theme)
	if s == nil {
		return
	}
	defer s.Close()

	// Run the main event loop.
	for c.IsRunning() {
		c.SetKeypad(s.Render(calc, c))
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
}
