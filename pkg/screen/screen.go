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

// Package screen draws gview on a terminal with termbox.
package screen

import (
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	gview "github.com/timburks/gview/pkg/types"
)

// The Screen is a Surface backed by the controlling terminal.
// termbox keeps a back buffer; it is flushed once per frame, when the
// cursor is shown again, and after ClearScreen.
type Screen struct {
	cursor  gview.Point  // where the next Print starts
	visible bool         // is the terminal cursor shown
	flush   func() error // sends the back buffer to the terminal
}

// NewScreen puts the terminal in raw mode. Close must be called to restore it.
func NewScreen() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.OutputNormal)
	return &Screen{flush: termbox.Flush}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Size() (gview.Size, error) {
	cols, rows := termbox.Size()
	return gview.Size{Cols: cols, Rows: rows}, nil
}

func (s *Screen) MoveCursor(p gview.Point) error {
	s.cursor = p
	if s.visible {
		termbox.SetCursor(p.Col, p.Row)
	}
	return nil
}

func (s *Screen) ClearScreen() error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	return s.flush()
}

// ClearLine blanks the row that the cursor is on.
func (s *Screen) ClearLine() error {
	cols, _ := termbox.Size()
	for x := 0; x < cols; x++ {
		termbox.SetCell(x, s.cursor.Row, ' ', termbox.ColorDefault, termbox.ColorDefault)
	}
	return nil
}

func (s *Screen) HideCursor() error {
	s.visible = false
	termbox.HideCursor()
	return nil
}

func (s *Screen) ShowCursor() error {
	s.visible = true
	termbox.SetCursor(s.cursor.Col, s.cursor.Row)
	return s.flush()
}

// Print writes text at the cursor and leaves the cursor after it.
// Cells past the right edge are dropped by termbox. Nothing is flushed.
func (s *Screen) Print(text string) error {
	for _, c := range text {
		w := runewidth.RuneWidth(c)
		if w == 0 {
			continue
		}
		termbox.SetCell(s.cursor.Col, s.cursor.Row, c, termbox.ColorDefault, termbox.ColorDefault)
		s.cursor.Col += w
	}
	if s.visible {
		termbox.SetCursor(s.cursor.Col, s.cursor.Row)
	}
	return nil
}

// ReadKey blocks until a key is pressed or the terminal is resized.
// Other terminal events are skipped.
func (s *Screen) ReadKey() (gview.Event, error) {
	for {
		event := termbox.PollEvent()
		switch event.Type {
		case termbox.EventKey:
			return keyEvent(event), nil
		case termbox.EventResize:
			return gview.Event{Type: gview.EventResize}, nil
		case termbox.EventError:
			return gview.Event{}, event.Err
		}
	}
}
