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

package calculator

import (
	"math"
	"strconv"
	"strings"
)

// DefaultErrorText is shown in the display after a failed evaluation.
const DefaultErrorText = "Error"

// State tells whether the last evaluation failed.
type State int

const (
	Entering State = iota
	Failed
)

func (s State) String() string {
	switch s {
	case Entering:
		return "entering"
	case Failed:
		return "error"
	default:
		return "unknown"
	}
}

// An Observer is told about every change to the display and history text.
type Observer interface {
	ResultUpdated(text string)
	HistoryUpdated(text string)
}

// The Calculator holds the display buffer and the history of the expression
// being entered. It is not safe for concurrent use; front ends call it from
// their event loop.
type Calculator struct {
	format      Format
	errorText   string
	observer    Observer
	state       State
	display     string  // number being entered or last result
	historyText string  // rendering of the last successful evaluation
	history     History // operands and operators since the last evaluation
}

// NewCalculator returns a calculator showing "0" with an empty history.
func NewCalculator() *Calculator {
	return &Calculator{
		format:    DefaultFormat(),
		errorText: DefaultErrorText,
		display:   "0",
	}
}

func (c *Calculator) SetFormat(f Format) {
	c.format = f
}

func (c *Calculator) GetFormat() Format {
	return c.format
}

// SetErrorText changes the text shown after a failed evaluation. Empty text,
// and text that reads as a number, are ignored.
func (c *Calculator) SetErrorText(text string) {
	if _, ok := c.format.Parse(text); ok {
		return
	}
	if text != "" {
		c.errorText = text
	}
}

func (c *Calculator) GetErrorText() string {
	return c.errorText
}

func (c *Calculator) SetObserver(o Observer) {
	c.observer = o
}

func (c *Calculator) State() State {
	return c.state
}

func (c *Calculator) Display() string {
	return c.display
}

func (c *Calculator) History() string {
	return c.historyText
}

// Pending returns a copy of the operands and operators awaiting evaluation.
func (c *Calculator) Pending() History {
	return append(History(nil), c.history...)
}

// Digit handles a digit button or the decimal separator.
// Anything else is ignored.
func (c *Calculator) Digit(token string) {
	sep := c.format.separator()
	if token != sep && (token == "" || !isDigits(token)) {
		return
	}
	text := c.display
	if c.state == Failed {
		text = "0"
		c.state = Entering
	}
	if token == sep {
		if text == "0" {
			text = "0" + sep
		} else if !strings.Contains(text, sep) {
			text += sep
		}
	} else {
		if text == "0" {
			text = token
		} else {
			text += token
		}
	}
	c.updateResult(text)
}

// Separator is the same as pressing the decimal separator button.
func (c *Calculator) Separator() {
	c.Digit(c.format.separator())
}

// Operator commits the displayed number and the operator to the history.
// Unknown symbols and unparseable displays are ignored.
func (c *Calculator) Operator(symbol string) {
	op, ok := OperatorForSymbol(symbol)
	if !ok {
		return
	}
	n, ok := c.format.Parse(c.display)
	if !ok {
		return
	}
	c.state = Entering
	c.history = append(c.history, NumberItem(n), OperatorItem(op))
	c.updateResult("0")
}

// Equals commits the displayed number and evaluates the history.
// The history is emptied whether or not evaluation succeeds.
func (c *Calculator) Equals() {
	n, ok := c.format.Parse(c.display)
	if !ok {
		return
	}
	c.state = Entering
	c.history = append(c.history, NumberItem(n))
	result, err := c.history.Evaluate()
	if err != nil {
		c.state = Failed
		c.updateResult(c.errorText)
	} else if text, ok := c.format.Format(result); ok {
		c.updateResult(text)
		c.updateHistory(c.history.Text(c.format))
	}
	c.history = nil
}

// Clear empties the history and resets the display to "0".
func (c *Calculator) Clear() {
	c.history = nil
	c.state = Entering
	c.updateResult("0")
}

// ChangeSign negates the displayed number. Whole numbers are shown without
// a fraction.
func (c *Calculator) ChangeSign() {
	n, ok := c.format.Parse(c.display)
	if !ok {
		return
	}
	n = -n
	var text string
	if n == math.Trunc(n) && math.Abs(n) < math.MaxInt64 {
		text = strconv.FormatInt(int64(n), 10)
	} else if s, ok := c.format.Format(n); ok {
		text = s
	} else {
		text = "0"
	}
	c.updateResult(text)
}

func (c *Calculator) updateResult(text string) {
	c.display = text
	if c.observer != nil {
		c.observer.ResultUpdated(text)
	}
}

func (c *Calculator) updateHistory(text string) {
	c.historyText = text
	if c.observer != nil {
		c.observer.HistoryUpdated(text)
	}
}
