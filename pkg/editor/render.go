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
	"fmt"

	gview "github.com/timburks/gview/pkg/types"
)

// RefreshScreen redraws every row of the viewport and places the cursor.
func (e *Editor) RefreshScreen() error {
	size, err := e.surface.Size()
	if err != nil {
		return terminalError("size", err)
	}
	e.size = size

	if err := e.surface.HideCursor(); err != nil {
		return terminalError("hide cursor", err)
	}
	if err := e.surface.MoveCursor(gview.Point{}); err != nil {
		return terminalError("move cursor", err)
	}
	if err := e.drawRows(); err != nil {
		return err
	}
	if err := e.surface.MoveCursor(e.Cursor); err != nil {
		return terminalError("move cursor", err)
	}
	if err := e.surface.ShowCursor(); err != nil {
		return terminalError("show cursor", err)
	}
	if e.quit {
		return terminalError("print", e.surface.Print(exitBanner))
	}
	return nil
}

// draw each row with its number in the gutter; rows past the end of the
// document show only the gutter
func (e *Editor) drawRows() error {
	width := GutterWidth(e.size.Rows)
	for i := 0; i < e.size.Rows; i++ {
		if err := e.surface.MoveCursor(gview.Point{Col: 0, Row: i}); err != nil {
			return terminalError("move cursor", err)
		}
		if err := e.surface.ClearLine(); err != nil {
			return terminalError("clear line", err)
		}
		line := fmt.Sprintf("%*d ", width-1, i)
		if row, ok := e.document.Row(i); ok {
			line += row.Render(0, e.size.Cols)
		}
		if err := e.surface.Print(line); err != nil {
			return terminalError("print", err)
		}
	}
	return nil
}

// GutterWidth returns the width of the line number gutter for a viewport
// with the given number of rows, including the trailing space.
func GutterWidth(rows int) int {
	return digitCount(rows) + 1
}

func digitCount(n int) int {
	if n < 0 {
		n = -n
	}
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}
