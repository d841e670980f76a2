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

// Package touch runs gcalc in a window with a touch keypad.
package touch

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/timburks/gcalc/pkg/config"
	"github.com/timburks/gcalc/pkg/keypad"
	gcalc "github.com/timburks/gcalc/pkg/types"
)

// Logical screen size. ebiten scales it to the window.
const (
	Width  = 320
	Height = 480
)

// Size of a character in the ebitenutil debug font.
const (
	charWidth  = 6
	charHeight = 16
)

const (
	margin       = 12
	keypadTop    = 160
	buttonGap    = 10
	displayScale = 4
)

// Controller is the part of the commander the touch front end drives.
type Controller interface {
	gcalc.Commander
	SetKeypad(placed []keypad.Placed)
}

type Game struct {
	calc    gcalc.Calculator
	c       Controller
	theme   config.Theme
	placed  []keypad.Placed
	touches []ebiten.TouchID
	chars   []rune

	displayText string
	displayImg  *ebiten.Image
}

func NewGame(calc gcalc.Calculator, c Controller, theme config.Theme) *Game {
	g := &Game{calc: calc, c: c, theme: theme}
	g.placed = keypad.Layout(KeypadFrame(), buttonGap)
	c.SetKeypad(g.placed)
	return g
}

// KeypadFrame is the area of the logical screen used for buttons.
func KeypadFrame() gcalc.Rect {
	return gcalc.Rect{
		Origin: gcalc.Point{Row: keypadTop, Col: margin},
		Size:   gcalc.Size{Rows: Height - keypadTop - margin, Cols: Width - 2*margin},
	}
}

// Run opens a window and blocks until it closes or the commander quits.
func Run(calc gcalc.Calculator, c Controller, cfg *config.Config) error {
	g := NewGame(calc, c, cfg.Theme)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(Width*cfg.Window.Scale, Height*cfg.Window.Scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

func (g *Game) Update() error {
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.process(&gcalc.Event{Type: gcalc.EventTouch, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.process(&gcalc.Event{Type: gcalc.EventMouse, Key: gcalc.KeyMouseLeft, X: x, Y: y})
	}

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.process(&gcalc.Event{Type: gcalc.EventKey, Ch: r})
	}
	keys := []struct {
		key ebiten.Key
		k   gcalc.Key
	}{
		{ebiten.KeyEnter, gcalc.KeyEnter},
		{ebiten.KeyNumpadEnter, gcalc.KeyEnter},
		{ebiten.KeyEscape, gcalc.KeyEsc},
		{ebiten.KeyBackspace, gcalc.KeyBackspace},
		{ebiten.KeyDelete, gcalc.KeyDelete},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.process(&gcalc.Event{Type: gcalc.EventKey, Key: k.k})
		}
	}
	if !g.c.IsRunning() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) process(event *gcalc.Event) {
	if err := g.c.ProcessEvent(event); err != nil {
		log.Output(1, err.Error())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	history := g.calc.History()
	ebitenutil.DebugPrintAt(screen, history, rightAligned(history, 1), margin)

	g.drawDisplay(screen)

	for _, pb := range g.placed {
		g.drawButton(screen, pb)
	}

	message := g.c.GetMessageBarText((Width - 2*margin) / charWidth)
	ebitenutil.DebugPrintAt(screen, message, margin, keypadTop-charHeight-4)
}

// drawDisplay draws the display text enlarged. The text image is only
// rebuilt when the text changes.
func (g *Game) drawDisplay(screen *ebiten.Image) {
	text := g.calc.Display()
	maxChars := (Width - 2*margin) / (charWidth * displayScale)
	if runes := []rune(text); len(runes) > maxChars {
		text = string(runes[len(runes)-maxChars:])
	}
	if g.displayImg == nil || text != g.displayText {
		if g.displayImg != nil {
			g.displayImg.Deallocate()
		}
		w := len([]rune(text))*charWidth + 1
		g.displayImg = ebiten.NewImage(w, charHeight)
		ebitenutil.DebugPrintAt(g.displayImg, text, 0, 0)
		g.displayText = text
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(displayScale, displayScale)
	op.GeoM.Translate(float64(rightAligned(text, displayScale)), float64(margin+charHeight+8))
	op.ColorScale.ScaleWithColor(palette(g.theme.Display))
	screen.DrawImage(g.displayImg, op)
}

// drawButton draws a capsule whose corner radius is half its height.
func (g *Game) drawButton(screen *ebiten.Image, pb keypad.Placed) {
	x := float32(pb.Frame.Origin.Col)
	y := float32(pb.Frame.Origin.Row)
	w := float32(pb.Frame.Size.Cols)
	h := float32(pb.Frame.Size.Rows)
	r := h / 2
	if w < h {
		r = w / 2
	}
	clr := palette(g.buttonColor(pb.Kind))
	vector.DrawFilledRect(screen, x+r, y, w-2*r, h, clr, true)
	vector.DrawFilledRect(screen, x, y+r, w, h-2*r, clr, true)
	vector.DrawFilledCircle(screen, x+r, y+r, r, clr, true)
	vector.DrawFilledCircle(screen, x+w-r, y+r, r, clr, true)
	vector.DrawFilledCircle(screen, x+r, y+h-r, r, clr, true)
	vector.DrawFilledCircle(screen, x+w-r, y+h-r, r, clr, true)

	label := caption(pb.Label)
	lx := pb.Frame.Origin.Col + (pb.Frame.Size.Cols-len(label)*charWidth)/2
	ly := pb.Frame.Origin.Row + (pb.Frame.Size.Rows-charHeight)/2
	ebitenutil.DebugPrintAt(screen, label, lx, ly)
}

func (g *Game) buttonColor(kind keypad.Kind) int {
	switch kind {
	case keypad.KindOperator:
		return g.theme.Operator
	case keypad.KindFunction:
		return g.theme.Function
	case keypad.KindEquals:
		return g.theme.Equals
	default:
		return g.theme.Digit
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return Width, Height
}

// caption replaces labels the debug font can't draw.
func caption(label string) string {
	switch label {
	case "±":
		return "+/-"
	default:
		return label
	}
}

// rightAligned returns the x position of text drawn at a scale so that it
// ends at the right margin.
func rightAligned(text string, scale int) int {
	x := Width - margin - len([]rune(text))*charWidth*scale
	if x < margin {
		return margin
	}
	return x
}
