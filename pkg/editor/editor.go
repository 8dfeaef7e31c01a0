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
	"unicode"

	"github.com/tliron/commonlog"

	gview "github.com/timburks/gview/pkg/types"
)

const exitBanner = "Exiting gview!"

// ExitMessage is printed after a normal quit.
const ExitMessage = "Exiting gview"

// The Editor shows a Document on a Surface and moves a cursor over it.
// There is one Editor per process and it is the only user of its Surface.
type Editor struct {
	Cursor   gview.Point   // cursor position, relative to the viewport
	document *Document     // document being viewed
	surface  gview.Surface // terminal that the editor draws on
	size     gview.Size    // viewport size seen by the last refresh
	quit     bool          // set when the user asks to exit
}

func NewEditor(s gview.Surface, d *Document) *Editor {
	if d == nil {
		d = NewDocument()
	}
	return &Editor{surface: s, document: d}
}

// NewEditorForFile creates an Editor for the file at path.
// If path is empty or the file can't be read, the document is empty.
func NewEditorForFile(s gview.Surface, path string) *Editor {
	d := NewDocument()
	if path != "" {
		doc, err := Open(path)
		if err != nil {
			logger().Infof("%s; starting with an empty document", err)
		} else {
			d = doc
			logger().Debugf("read %d rows from %s", d.RowCount(), path)
		}
	}
	return NewEditor(s, d)
}

func logger() commonlog.Logger {
	return commonlog.GetLogger("gview.editor")
}

func (e *Editor) Document() *Document {
	return e.document
}

func (e *Editor) State() gview.State {
	if e.quit {
		return gview.StateQuitting
	}
	return gview.StateRunning
}

// SetSize sets the viewport size used for cursor movement.
// RefreshScreen replaces it with the size reported by the Surface.
func (e *Editor) SetSize(s gview.Size) {
	e.size = s
}

func (e *Editor) Size() gview.Size {
	return e.size
}

// Run draws the screen and processes keys until the user quits.
// A failure of the Surface stops the loop with a *FatalError.
func (e *Editor) Run() error {
	for {
		if err := e.RefreshScreen(); err != nil {
			return e.die(err)
		}
		if e.quit {
			return e.exit()
		}
		if err := e.ProcessKeypress(); err != nil {
			return e.die(err)
		}
	}
}

func (e *Editor) exit() error {
	if err := e.surface.ClearScreen(); err != nil {
		return e.die(terminalError("clear screen", err))
	}
	if err := e.surface.MoveCursor(gview.Point{}); err != nil {
		return e.die(terminalError("move cursor", err))
	}
	if err := e.surface.Print(ExitMessage); err != nil {
		return e.die(terminalError("print", err))
	}
	logger().Info("quit")
	return nil
}

// die clears the screen as well as it can and wraps err as fatal.
func (e *Editor) die(err error) error {
	logger().Errorf("%s", err)
	_ = e.surface.ClearScreen()
	_ = e.surface.MoveCursor(gview.Point{})
	return &FatalError{Err: err}
}

// ProcessKeypress waits for one event from the Surface and handles it.
func (e *Editor) ProcessKeypress() error {
	event, err := e.surface.ReadKey()
	if err != nil {
		return terminalError("read key", err)
	}
	return e.ProcessEvent(event)
}

func (e *Editor) ProcessEvent(event gview.Event) error {
	if event.Type != gview.EventKey {
		return nil
	}
	switch {
	case event.IsCtrl('c'), event.IsCtrl('q'):
		e.quit = true
	case event.Key == gview.KeyNone && unicode.IsPrint(event.Ch):
		// typed characters are echoed but not added to the document,
		// chords echo their bare character
		return terminalError("print", e.surface.Print(string(event.Ch)))
	default:
		switch event.Key {
		case gview.KeyArrowUp, gview.KeyArrowDown, gview.KeyArrowLeft, gview.KeyArrowRight,
			gview.KeyPgup, gview.KeyPgdn, gview.KeyHome, gview.KeyEnd:
			e.MoveCursor(event.Key)
		}
	}
	return nil
}
