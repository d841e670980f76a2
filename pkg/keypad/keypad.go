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

// Package keypad describes the calculator's buttons and where they go.
// The terminal and touch front ends share this layout; they differ only in
// the size of a unit (a character cell or a pixel).
package keypad

import (
	gcalc "github.com/timburks/gcalc/pkg/types"
)

type Kind int

const (
	KindDigit Kind = iota
	KindOperator
	KindFunction
	KindEquals
)

const (
	Rows = 5
	Cols = 4
)

type Button struct {
	Label   string
	Command string // lisp expression evaluated when the button is pressed
	Kind    Kind
	Row     int
	Col     int
	Span    int // number of columns covered
}

// Buttons is the standard layout, row by row.
var Buttons = []Button{
	{"AC", "(clear)", KindFunction, 0, 0, 1},
	{"±", "(change-sign)", KindFunction, 0, 1, 1},
	{"%", `(operator "%")`, KindOperator, 0, 2, 1},
	{"/", `(operator "/")`, KindOperator, 0, 3, 1},

	{"7", `(digit "7")`, KindDigit, 1, 0, 1},
	{"8", `(digit "8")`, KindDigit, 1, 1, 1},
	{"9", `(digit "9")`, KindDigit, 1, 2, 1},
	{"x", `(operator "x")`, KindOperator, 1, 3, 1},

	{"4", `(digit "4")`, KindDigit, 2, 0, 1},
	{"5", `(digit "5")`, KindDigit, 2, 1, 1},
	{"6", `(digit "6")`, KindDigit, 2, 2, 1},
	{"-", `(operator "-")`, KindOperator, 2, 3, 1},

	{"1", `(digit "1")`, KindDigit, 3, 0, 1},
	{"2", `(digit "2")`, KindDigit, 3, 1, 1},
	{"3", `(digit "3")`, KindDigit, 3, 2, 1},
	{"+", `(operator "+")`, KindOperator, 3, 3, 1},

	{"0", `(digit "0")`, KindDigit, 4, 0, 2},
	{",", "(separator)", KindDigit, 4, 2, 1},
	{"=", "(equals)", KindEquals, 4, 3, 1},
}

// Find returns the button with a label.
func Find(label string) (Button, bool) {
	for _, b := range Buttons {
		if b.Label == label {
			return b, true
		}
	}
	return Button{}, false
}

// A Placed button has a position on a screen.
type Placed struct {
	Button
	Frame gcalc.Rect
}

// Layout divides bounds into the button grid with gap units between
// buttons. Space left over by integer division goes to the right and bottom
// edges.
func Layout(bounds gcalc.Rect, gap int) []Placed {
	cellRows := (bounds.Size.Rows - gap*(Rows-1)) / Rows
	cellCols := (bounds.Size.Cols - gap*(Cols-1)) / Cols
	if cellRows < 1 || cellCols < 1 {
		return nil
	}
	placed := make([]Placed, 0, len(Buttons))
	for _, b := range Buttons {
		span := b.Span
		if span < 1 {
			span = 1
		}
		frame := gcalc.Rect{
			Origin: gcalc.Point{
				Row: bounds.Origin.Row + b.Row*(cellRows+gap),
				Col: bounds.Origin.Col + b.Col*(cellCols+gap),
			},
			Size: gcalc.Size{
				Rows: cellRows,
				Cols: span*cellCols + (span-1)*gap,
			},
		}
		placed = append(placed, Placed{Button: b, Frame: frame})
	}
	return placed
}

// HitTest returns the button under p, if any.
func HitTest(placed []Placed, p gcalc.Point) (Button, bool) {
	for _, pb := range placed {
		if pb.Frame.Contains(p) {
			return pb.Button, true
		}
	}
	return Button{}, false
}
