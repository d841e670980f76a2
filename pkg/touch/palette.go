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
)

var ansi16 = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xff}, {0x80, 0x00, 0x00, 0xff}, {0x00, 0x80, 0x00, 0xff}, {0x80, 0x80, 0x00, 0xff},
	{0x00, 0x00, 0x80, 0xff}, {0x80, 0x00, 0x80, 0xff}, {0x00, 0x80, 0x80, 0xff}, {0xc0, 0xc0, 0xc0, 0xff},
	{0x80, 0x80, 0x80, 0xff}, {0xff, 0x00, 0x00, 0xff}, {0x00, 0xff, 0x00, 0xff}, {0xff, 0xff, 0x00, 0xff},
	{0x00, 0x00, 0xff, 0xff}, {0xff, 0x00, 0xff, 0xff}, {0x00, 0xff, 0xff, 0xff}, {0xff, 0xff, 0xff, 0xff},
}

var cubeLevels = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// palette converts an xterm 256-color index, as used by the terminal
// theme, to RGB so both front ends share one config.
func palette(index int) color.RGBA {
	switch {
	case index < 0 || index > 255:
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	case index < 16:
		return ansi16[index]
	case index < 232:
		i := index - 16
		return color.RGBA{cubeLevels[i/36], cubeLevels[(i/6)%6], cubeLevels[i%6], 0xff}
	default:
		v := uint8(8 + (index-232)*10)
		return color.RGBA{v, v, v, 0xff}
	}
}
