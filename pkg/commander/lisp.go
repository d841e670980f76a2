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
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/steelseries/golisp"
	"github.com/timburks/gcalc/pkg/keypad"
	gcalc "github.com/timburks/gcalc/pkg/types"
)

func (c *Commander) bindPrimitives() {
	golisp.MakePrimitiveFunction("digit", "1", c.digitImpl)
	golisp.MakePrimitiveFunction("separator", "0", c.separatorImpl)
	golisp.MakePrimitiveFunction("operator", "1", c.operatorImpl)
	golisp.MakePrimitiveFunction("equals", "0", c.equalsImpl)
	golisp.MakePrimitiveFunction("clear", "0", c.clearImpl)
	golisp.MakePrimitiveFunction("change-sign", "0", c.changeSignImpl)
	golisp.MakePrimitiveFunction("display", "0", c.displayImpl)
	golisp.MakePrimitiveFunction("history", "0", c.historyImpl)
	golisp.MakePrimitiveFunction("press", "1", c.pressImpl)
	golisp.MakePrimitiveFunction("lisp-mode", "0", c.lispModeImpl)
	golisp.MakePrimitiveFunction("debug", "0", c.debugImpl)
	golisp.MakePrimitiveFunction("quit", "0", c.quitImpl)
}

// Digits may be given as strings or integers: (digit "7") or (digit 7).
func (c *Commander) digitImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	switch {
	case golisp.StringP(val):
		c.calculator.Digit(golisp.StringValue(val))
	case golisp.IntegerP(val):
		n := golisp.IntegerValue(val)
		if n < 0 {
			return nil, fmt.Errorf("digit requires a non-negative integer, got %d", n)
		}
		c.calculator.Digit(fmt.Sprintf("%d", n))
	default:
		return nil, errors.New("digit requires a string or integer argument")
	}
	return c.display(), nil
}

func (c *Commander) separatorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c.calculator.Separator()
	return c.display(), nil
}

func (c *Commander) operatorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("operator requires a string argument")
	}
	c.calculator.Operator(golisp.StringValue(val))
	return c.display(), nil
}

func (c *Commander) equalsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c.calculator.Equals()
	return c.display(), nil
}

func (c *Commander) clearImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c.calculator.Clear()
	return c.display(), nil
}

func (c *Commander) changeSignImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c.calculator.ChangeSign()
	return c.display(), nil
}

func (c *Commander) displayImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return c.display(), nil
}

func (c *Commander) historyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.StringWithValue(c.calculator.History()), nil
}

// (press "AC") performs a keypad button by its label.
func (c *Commander) pressImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("press requires a string argument")
	}
	label := golisp.StringValue(val)
	b, ok := keypad.Find(label)
	if !ok {
		return nil, fmt.Errorf("no button labelled %q", label)
	}
	if _, err := golisp.ParseAndEval(b.Command); err != nil {
		return nil, err
	}
	return c.display(), nil
}

func (c *Commander) lispModeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c.mode = gcalc.ModeLisp
	c.lispText = "("
	return golisp.LispTrue, nil
}

func (c *Commander) debugImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c.debug = !c.debug
	return golisp.BooleanWithValue(c.debug), nil
}

func (c *Commander) quitImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c.mode = gcalc.ModeQuit
	return golisp.LispTrue, nil
}

func (c *Commander) display() *golisp.Data {
	return golisp.StringWithValue(c.calculator.Display())
}

// parseEval evaluates a lisp expression and returns the text of its value,
// or of the error if evaluation failed.
func (c *Commander) parseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		c.message = err.Error()
		return c.message
	}
	return valueText(value)
}

// ParseEvalFile evaluates every expression in a script file.
func (c *Commander) ParseEvalFile(filename string) error {
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	if _, err := golisp.ParseAndEvalAll(string(source)); err != nil {
		return fmt.Errorf("eval %s: %w", filename, err)
	}
	return nil
}

func valueText(value *golisp.Data) string {
	if value == nil {
		return ""
	}
	if golisp.StringP(value) {
		return golisp.StringValue(value)
	}
	return golisp.String(value)
}
