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
	"math"
	"strconv"
	"strings"
)

// A Format converts between numbers and display text using a fixed decimal
// separator and no digit grouping.
type Format struct {
	Separator         string // decimal separator, a single character
	MaxFractionDigits int    // results are rounded to this many fraction digits
}

// DefaultFormat uses a comma separator and at most three fraction digits.
func DefaultFormat() Format {
	return Format{Separator: ",", MaxFractionDigits: 3}
}

func (f Format) separator() string {
	if f.Separator == "" {
		return ","
	}
	return f.Separator
}

// Parse reads text written as an optional minus sign, digits, and an
// optional separator followed by more digits. "12," is accepted.
func (f Format) Parse(text string) (float64, bool) {
	sep := f.separator()
	s := text
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	whole, fraction, _ := strings.Cut(s, sep)
	if !isDigits(whole) || !isDigits(fraction) {
		return 0, false
	}
	if whole == "" && fraction == "" {
		return 0, false
	}
	if whole == "" {
		whole = "0"
	}
	if fraction == "" {
		fraction = "0"
	}
	v, err := strconv.ParseFloat(whole+"."+fraction, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		v = -v
	}
	return v, true
}

// Format renders v rounded to MaxFractionDigits without trailing zeros.
func (f Format) Format(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "", false
	case math.IsInf(v, 1):
		return "∞", true
	case math.IsInf(v, -1):
		return "-∞", true
	}
	digits := f.MaxFractionDigits
	if digits < 0 {
		digits = 0
	}
	s := strconv.FormatFloat(v, 'f', digits, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return strings.Replace(s, ".", f.separator(), 1), true
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
