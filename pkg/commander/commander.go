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

package commander

import (
	"fmt"
	"log"

	"github.com/timburks/gcalc/pkg/keypad"
	gcalc "github.com/timburks/gcalc/pkg/types"
)

// The Commander converts user input into commands to the calculator.
type Commander struct {
	calculator gcalc.Calculator
	mode       int             // commander mode
	debug      bool            // debug mode logs every key with the resulting display
	lispText   string          // lisp command as it is being typed
	message    string          // status message
	keypad     []keypad.Placed // where the front end drew the buttons
	lastKey    gcalc.Key       // last key pressed
	lastCh     rune            // last character pressed (if key == 0)
}

// NewCommander creates a commander and binds the lisp primitives to it.
// golisp primitives are global, so the most recently created commander
// receives commands from scripts.
func NewCommander(calc gcalc.Calculator) *Commander {
	c := &Commander{calculator: calc, mode: gcalc.ModeCalculate}
	c.bindPrimitives()
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) getModeName() string {
	switch c.mode {
	case gcalc.ModeCalculate:
		return "calculate"
	case gcalc.ModeLisp:
		return "lisp"
	case gcalc.ModeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

func (c *Commander) IsRunning() bool {
	return c.mode != gcalc.ModeQuit
}

// SetKeypad tells the commander where buttons are so that pointer events
// can be matched to them.
func (c *Commander) SetKeypad(placed []keypad.Placed) {
	c.keypad = placed
}

func (c *Commander) ProcessEvent(event *gcalc.Event) error {
	switch event.Type {
	case gcalc.EventKey:
		return c.processKey(event)
	case gcalc.EventMouse, gcalc.EventTouch:
		return c.processPointer(event)
	case gcalc.EventResize:
		return nil
	default:
		return nil
	}
}

// Press performs the command of a keypad button.
func (c *Commander) Press(b keypad.Button) {
	c.message = ""
	c.parseEval(b.Command)
}

func (c *Commander) processPointer(event *gcalc.Event) error {
	if event.Type == gcalc.EventMouse && event.Key != gcalc.KeyMouseLeft {
		return nil
	}
	if c.mode != gcalc.ModeCalculate {
		return nil
	}
	b, ok := keypad.HitTest(c.keypad, gcalc.Point{Row: event.Y, Col: event.X})
	if ok {
		c.Press(b)
	}
	return nil
}

func (c *Commander) processKeyCalculateMode(event *gcalc.Event) error {
	key := event.Key
	ch := event.Ch

	c.lastKey = event.Key
	c.lastCh = event.Ch

	if key != 0 {
		switch key {
		case gcalc.KeyEnter:
			c.parseEval("(equals)")
		case gcalc.KeyEsc, gcalc.KeyBackspace, gcalc.KeyDelete:
			c.parseEval("(clear)")
		case gcalc.KeyCtrlC:
			c.parseEval("(quit)")
		}
	}
	if ch != 0 {
		c.message = ""
		switch ch {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			c.parseEval(fmt.Sprintf(`(digit "%c")`, ch))
		//
		// both separators are accepted from the keyboard
		//
		case ',', '.':
			c.parseEval("(separator)")
		case '+', '-', '/', '%':
			c.parseEval(fmt.Sprintf(`(operator "%c")`, ch))
		case '*', 'x', 'X':
			c.parseEval(`(operator "x")`)
		case '=':
			c.parseEval("(equals)")
		case 'c', 'C':
			c.parseEval("(clear)")
		case 'n', '~', '_':
			c.parseEval("(change-sign)")
		//
		// lisp commands go to the message bar
		//
		case '(':
			c.parseEval("(lisp-mode)")
		case 'q':
			c.parseEval("(quit)")
		}
	}
	return nil
}

func (c *Commander) processKeyLispMode(event *gcalc.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gcalc.KeyEsc:
			c.lispText = ""
			c.mode = gcalc.ModeCalculate
		case gcalc.KeyEnter:
			text := c.lispText
			c.lispText = ""
			c.message = c.parseEval(text)
			// if evaluation didn't change the mode, set it back to calculate
			if c.mode == gcalc.ModeLisp {
				c.mode = gcalc.ModeCalculate
			}
		case gcalc.KeyBackspace, gcalc.KeyDelete:
			if len(c.lispText) > 0 {
				runes := []rune(c.lispText)
				c.lispText = string(runes[:len(runes)-1])
			}
		case gcalc.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

func (c *Commander) processKey(event *gcalc.Event) error {
	var err error
	switch c.mode {
	case gcalc.ModeCalculate:
		err = c.processKeyCalculateMode(event)
	case gcalc.ModeLisp:
		err = c.processKeyLispMode(event)
	}
	if c.debug {
		c.logState()
	}
	return err
}

func (c *Commander) getLispText() string {
	return c.lispText
}

func (c *Commander) getMessage() string {
	return c.message
}

func (c *Commander) GetMessageBarText(length int) string {
	var line string
	switch c.GetMode() {
	case gcalc.ModeLisp:
		line += c.getLispText()
	default:
		line += c.getMessage()
	}
	runes := []rune(line)
	if len(runes) > length {
		line = string(runes[0:length])
	}
	return line
}

func (c *Commander) logState() {
	log.Printf("mode=%s key=%d ch=%q display=%q", c.getModeName(), c.lastKey, c.lastCh, c.calculator.Display())
}
