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

// Package screen draws gcalc in a terminal with termbox.
package screen

import (
	"log"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/timburks/gcalc/pkg/config"
	"github.com/timburks/gcalc/pkg/keypad"
	gcalc "github.com/timburks/gcalc/pkg/types"
)

const (
	headerRows = 4 // history, blank, display, blank
	footerRows = 1 // message bar
	buttonGap  = 1
)

// The Screen draws the state of a calculator.
type Screen struct {
	size  gcalc.Size // screen size
	theme config.Theme
}

func NewScreen(theme config.Theme) *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	termbox.HideCursor()
	return &Screen{theme: theme}
}

func (s *Screen) Close() {
	termbox.Close()
}

// KeypadFrame is the part of a screen of the given size used for buttons.
func KeypadFrame(size gcalc.Size) gcalc.Rect {
	return gcalc.Rect{
		Origin: gcalc.Point{Row: headerRows, Col: 0},
		Size:   gcalc.Size{Rows: size.Rows - headerRows - footerRows, Cols: size.Cols},
	}
}

// Render draws the calculator and returns where the keypad buttons went.
func (s *Screen) Render(calc gcalc.Calculator, c gcalc.Commander) []keypad.Placed {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	var screenSize gcalc.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	s.renderRight(0, calc.History(), s.color(s.theme.History))
	s.renderRight(2, calc.Display(), s.color(s.theme.Display)|termbox.AttrBold)
	placed := keypad.Layout(KeypadFrame(s.size), buttonGap)
	for _, pb := range placed {
		s.renderButton(pb)
	}
	s.RenderMessageBar(c)
	termbox.Flush()
	return placed
}

// renderRight draws text right aligned on a row, keeping the rightmost
// part when it is too long.
func (s *Screen) renderRight(row int, text string, fg termbox.Attribute) {
	width := s.size.Cols - 1
	if width < 1 {
		return
	}
	for runewidth.StringWidth(text) > width {
		_, size := firstRune(text)
		text = text[size:]
	}
	x := width - runewidth.StringWidth(text)
	for _, ch := range text {
		termbox.SetCell(x, row, ch, fg, termbox.ColorBlack)
		x += runewidth.RuneWidth(ch)
	}
}

func (s *Screen) renderButton(pb keypad.Placed) {
	bg := s.buttonColor(pb.Kind)
	fg := termbox.ColorBlack
	if pb.Kind == keypad.KindDigit {
		fg = termbox.ColorWhite
	}
	frame := pb.Frame
	for i := 0; i < frame.Size.Rows; i++ {
		for j := 0; j < frame.Size.Cols; j++ {
			termbox.SetCell(frame.Origin.Col+j, frame.Origin.Row+i, ' ', fg, bg)
		}
	}
	row := frame.Origin.Row + frame.Size.Rows/2
	col := frame.Origin.Col + (frame.Size.Cols-runewidth.StringWidth(pb.Label))/2
	for _, ch := range pb.Label {
		termbox.SetCell(col, row, ch, fg|termbox.AttrBold, bg)
		col += runewidth.RuneWidth(ch)
	}
}

func (s *Screen) buttonColor(kind keypad.Kind) termbox.Attribute {
	switch kind {
	case keypad.KindOperator:
		return s.color(s.theme.Operator)
	case keypad.KindFunction:
		return s.color(s.theme.Function)
	case keypad.KindEquals:
		return s.color(s.theme.Equals)
	default:
		return s.color(s.theme.Digit)
	}
}

// color converts a 256-color palette index to a termbox attribute.
// In Output256 mode attribute n selects palette entry n-1.
func (s *Screen) color(index int) termbox.Attribute {
	if index < 0 || index > 255 {
		return termbox.ColorDefault
	}
	return termbox.Attribute(index + 1)
}

func (s *Screen) RenderMessageBar(c gcalc.Commander) {
	line := c.GetMessageBarText(s.size.Cols)
	x := 0
	for _, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
		x += runewidth.RuneWidth(ch)
	}
	if c.GetMode() == gcalc.ModeLisp {
		termbox.SetCursor(x, s.size.Rows-1)
	} else {
		termbox.HideCursor()
	}
}

func (s *Screen) GetNextEvent() *gcalc.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventResize:
		termbox.Flush()
		return &gcalc.Event{Type: gcalc.EventResize}
	case termbox.EventMouse:
		return &gcalc.Event{
			Type: gcalc.EventMouse,
			Key:  key(event.Key),
			X:    event.MouseX,
			Y:    event.MouseY,
		}
	default:
		return &gcalc.Event{
			Type: gcalc.EventKey,
			Key:  key(event.Key),
			Ch:   event.Ch,
		}
	}
}

func key(k termbox.Key) gcalc.Key {
	switch k {
	case 0:
		return 0
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gcalc.KeyBackspace
	case termbox.KeyDelete:
		return gcalc.KeyDelete
	case termbox.KeyCtrlC:
		return gcalc.KeyCtrlC
	case termbox.KeyEnter:
		return gcalc.KeyEnter
	case termbox.KeyEsc:
		return gcalc.KeyEsc
	case termbox.KeySpace:
		return gcalc.KeySpace
	case termbox.MouseLeft:
		return gcalc.KeyMouseLeft
	default:
		return gcalc.KeyUnsupported
	}
}

func firstRune(s string) (rune, int) {
	for _, ch := range s {
		return ch, len(string(ch))
	}
	return 0, 0
}
