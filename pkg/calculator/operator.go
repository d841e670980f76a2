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
	"fmt"
	"math"
)

// ErrDivisionByZero is returned when a divide or remainder has a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// An Operator is one of the four arithmetic functions or remainder.
type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
	Remainder
)

var symbols = map[Operator]string{
	Add:       "+",
	Subtract:  "-",
	Multiply:  "x",
	Divide:    "/",
	Remainder: "%",
}

// OperatorForSymbol returns the operator displayed as symbol.
func OperatorForSymbol(symbol string) (Operator, bool) {
	for op, s := range symbols {
		if s == symbol {
			return op, true
		}
	}
	return 0, false
}

func (op Operator) String() string {
	if s, ok := symbols[op]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// Apply computes a op b.
func (op Operator) Apply(a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, fmt.Errorf("%g %s %g: %w", a, op, b, ErrDivisionByZero)
		}
		return a / b, nil
	case Remainder:
		if b == 0 {
			return 0, fmt.Errorf("%g %s %g: %w", a, op, b, ErrDivisionByZero)
		}
		// truncates toward zero, so the result has the sign of a
		return math.Mod(a, b), nil
	default:
		return 0, fmt.Errorf("unknown operator %d", int(op))
	}
}
