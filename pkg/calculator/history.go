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
	"strings"
)

// An Item is one entry of the history: either a number or an operator.
type Item struct {
	isOperator bool
	number     float64
	operator   Operator
}

// NumberItem returns a history item holding n.
func NumberItem(n float64) Item {
	return Item{number: n}
}

// OperatorItem returns a history item holding op.
func OperatorItem(op Operator) Item {
	return Item{isOperator: true, operator: op}
}

// Number returns the item's value and true if the item is a number.
func (it Item) Number() (float64, bool) {
	return it.number, !it.isOperator
}

// Operator returns the item's operator and true if the item is an operator.
func (it Item) Operator() (Operator, bool) {
	return it.operator, it.isOperator
}

// History is the sequence of operands and operators entered since the last
// evaluation. It should alternate number, operator, number, ...
type History []Item

// Evaluate reduces the history from left to right.
// An empty history, or one that starts with an operator, evaluates to 0.
// Evaluation stops quietly at the first break in the number/operator
// alternation, so a trailing operator is ignored.
func (h History) Evaluate() (float64, error) {
	if len(h) == 0 {
		return 0, nil
	}
	result, ok := h[0].Number()
	if !ok {
		return 0, nil
	}
	for i := 1; i+1 < len(h); i += 2 {
		op, ok := h[i].Operator()
		if !ok {
			break
		}
		n, ok := h[i+1].Number()
		if !ok {
			break
		}
		var err error
		result, err = op.Apply(result, n)
		if err != nil {
			return 0, err
		}
	}
	return result, nil
}

// Text renders the history as space separated tokens with a trailing space,
// eg. "1 + 2 ". Numbers that f cannot format are left out.
func (h History) Text(f Format) string {
	var b strings.Builder
	for _, it := range h {
		if n, ok := it.Number(); ok {
			if s, ok := f.Format(n); ok {
				b.WriteString(s)
				b.WriteString(" ")
			}
			continue
		}
		op, _ := it.Operator()
		b.WriteString(op.String())
		b.WriteString(" ")
	}
	return b.String()
}
