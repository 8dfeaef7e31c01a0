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
package editor

import (
	gview "github.com/timburks/gview/pkg/types"
)

// MoveCursor moves the cursor within the viewport. The cursor stops at the
// edges: the last row is Rows-1, but the last column is Cols, one past
// the last cell drawn. Row lengths are not consulted.
func (e *Editor) MoveCursor(key gview.Key) {
	lastRow := e.size.Rows - 1
	if lastRow < 0 {
		lastRow = 0
	}
	lastCol := e.size.Cols
	if lastCol < 0 {
		lastCol = 0
	}
	switch key {
	case gview.KeyArrowUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case gview.KeyArrowDown:
		if e.Cursor.Row < lastRow {
			e.Cursor.Row++
		}
	case gview.KeyArrowLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		}
	case gview.KeyArrowRight:
		if e.Cursor.Col < lastCol {
			e.Cursor.Col++
		}
	case gview.KeyPgup:
		e.Cursor.Row = 0
	case gview.KeyPgdn:
		e.Cursor.Row = lastRow
	case gview.KeyHome:
		e.Cursor.Col = 0
	case gview.KeyEnd:
		e.Cursor.Col = lastCol
	}
}
