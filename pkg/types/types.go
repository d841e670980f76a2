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

package types

// Commander modes
const (
	ModeCalculate = 0
	ModeLisp      = 1
	ModeQuit      = 9999
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventMouse  = 2
	EventTouch  = 3
)

type Key int

// Keys that front ends translate into events. Printable input arrives as Ch.
const (
	KeyUnsupported Key = iota
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEsc
	KeySpace
	KeyCtrlC
	KeyMouseLeft
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
	X    int // pointer position for mouse and touch events
	Y    int
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.Row >= r.Origin.Row && p.Row < r.Origin.Row+r.Size.Rows &&
		p.Col >= r.Origin.Col && p.Col < r.Origin.Col+r.Size.Cols
}

// Calculator is the input state that commands act on.
type Calculator interface {
	Digit(token string)
	Separator()
	Operator(symbol string)
	Equals()
	Clear()
	ChangeSign()
	Display() string
	History() string
}

// Commander is what front ends need to draw the message bar and drive the loop.
type Commander interface {
	ProcessEvent(event *Event) error
	IsRunning() bool
	GetMode() int
	GetMessageBarText(length int) string
}
