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

package touch

import (
	"image/color"
	"testing"

	"github.com/timburks/gcalc/pkg/keypad"
)

func TestPalette(t *testing.T) {
	tests := map[int]color.RGBA{
		0:   {0x00, 0x00, 0x00, 0xff},
		15:  {0xff, 0xff, 0xff, 0xff},
		208: {0xff, 0x87, 0x00, 0xff},
		231: {0xff, 0xff, 0xff, 0xff},
		232: {0x08, 0x08, 0x08, 0xff},
		255: {0xee, 0xee, 0xee, 0xff},
	}
	for index, expected := range tests {
		if c := palette(index); c != expected {
			t.Errorf("Unexpected color for palette entry %d: %+v", index, c)
		}
	}
}

func TestKeypadFitsScreen(t *testing.T) {
	placed := keypad.Layout(KeypadFrame(), buttonGap)
	if len(placed) != len(keypad.Buttons) {
		t.Fatalf("Keypad did not fit the screen: %d buttons", len(placed))
	}
	for _, pb := range placed {
		if pb.Frame.Origin.Col+pb.Frame.Size.Cols > Width || pb.Frame.Origin.Row+pb.Frame.Size.Rows > Height {
			t.Errorf("Button '%s' is off screen: %+v", pb.Label, pb.Frame)
		}
		if w := len(caption(pb.Label)) * charWidth; w > pb.Frame.Size.Cols {
			t.Errorf("Caption of '%s' is wider than its button", pb.Label)
		}
	}
}

func TestRightAligned(t *testing.T) {
	if x := rightAligned("123", 1); x != Width-margin-18 {
		t.Errorf("Unexpected position for short text: %d", x)
	}
	if x := rightAligned("12345678901234567890", displayScale); x != margin {
		t.Errorf("Long text was not clamped to the margin: %d", x)
	}
}
