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
	"errors"
	"testing"
)

func TestOperatorSymbols(t *testing.T) {
	for _, symbol := range []string{"+", "-", "x", "/", "%"} {
		op, ok := OperatorForSymbol(symbol)
		if !ok {
			t.Errorf("No operator for '%s'", symbol)
			continue
		}
		if op.String() != symbol {
			t.Errorf("Unexpected symbol for %s: '%s'", symbol, op.String())
		}
	}
	for _, symbol := range []string{"*", "÷", "", "^"} {
		if _, ok := OperatorForSymbol(symbol); ok {
			t.Errorf("Unexpected operator for '%s'", symbol)
		}
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		op       Operator
		a, b     float64
		expected float64
	}{
		{Add, 1, 2, 3},
		{Subtract, 1, 2, -1},
		{Multiply, 3, 4, 12},
		{Divide, 9, 2, 4.5},
		{Remainder, 5, 2, 1},
		{Remainder, -5, 2, -1},
		{Remainder, 5.5, 2, 1.5},
	}
	for _, test := range tests {
		v, err := test.op.Apply(test.a, test.b)
		if err != nil {
			t.Errorf("%g %s %g failed: %+v", test.a, test.op, test.b, err)
		} else if v != test.expected {
			t.Errorf("%g %s %g = %g (expected %g)", test.a, test.op, test.b, v, test.expected)
		}
	}
	for _, op := range []Operator{Divide, Remainder} {
		if _, err := op.Apply(1, 0); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Unexpected error for 1 %s 0: %+v", op, err)
		}
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		history  History
		expected float64
	}{
		{"empty", History{}, 0},
		{"single", History{NumberItem(4)}, 4},
		{"leading operator", History{OperatorItem(Add), NumberItem(4)}, 0},
		{"left to right", History{NumberItem(2), OperatorItem(Add), NumberItem(3), OperatorItem(Multiply), NumberItem(4)}, 20},
		{"trailing operator", History{NumberItem(2), OperatorItem(Add), NumberItem(3), OperatorItem(Multiply)}, 5},
		{"broken pairing", History{NumberItem(2), OperatorItem(Add), NumberItem(3), NumberItem(7), NumberItem(1)}, 5},
		{"double operator", History{NumberItem(2), OperatorItem(Add), OperatorItem(Add), NumberItem(1)}, 2},
	}
	for _, test := range tests {
		v, err := test.history.Evaluate()
		if err != nil {
			t.Errorf("%s: unexpected error %+v", test.name, err)
		} else if v != test.expected {
			t.Errorf("%s: got %g (expected %g)", test.name, v, test.expected)
		}
	}
	h := History{NumberItem(6), OperatorItem(Divide), NumberItem(0), OperatorItem(Add), NumberItem(1)}
	if _, err := h.Evaluate(); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Unexpected error for division by zero: %+v", err)
	}
}

func TestHistoryText(t *testing.T) {
	h := History{NumberItem(1.5), OperatorItem(Multiply), NumberItem(-2), OperatorItem(Remainder), NumberItem(1)}
	expected := "1,5 x -2 % 1 "
	if text := h.Text(DefaultFormat()); text != expected {
		t.Errorf("Unexpected history text: '%s'", text)
	}
	if text := (History{}).Text(DefaultFormat()); text != "" {
		t.Errorf("Unexpected text for empty history: '%s'", text)
	}
}
