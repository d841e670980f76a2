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

// Package calculator implements the input state of gcalc.
// A Calculator owns the display buffer (the number being typed or the last
// result) and a flat history of operands and operators. Pressing equals
// reduces the history strictly left to right; there is no operator precedence.
package calculator
