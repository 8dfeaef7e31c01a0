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
package screen

import (
	"github.com/nsf/termbox-go"

	gview "github.com/timburks/gview/pkg/types"
)

var specialKeys = map[termbox.Key]gview.Key{
	termbox.KeyArrowUp:    gview.KeyArrowUp,
	termbox.KeyArrowDown:  gview.KeyArrowDown,
	termbox.KeyArrowLeft:  gview.KeyArrowLeft,
	termbox.KeyArrowRight: gview.KeyArrowRight,
	termbox.KeyPgup:       gview.KeyPgup,
	termbox.KeyPgdn:       gview.KeyPgdn,
	termbox.KeyHome:       gview.KeyHome,
	termbox.KeyEnd:        gview.KeyEnd,
	termbox.KeyInsert:     gview.KeyInsert,
	termbox.KeyDelete:     gview.KeyDelete,
	termbox.KeyEnter:      gview.KeyEnter,
	termbox.KeyEsc:        gview.KeyEsc,
	termbox.KeyTab:        gview.KeyTab,
	termbox.KeyBackspace:  gview.KeyBackspace,
	termbox.KeyBackspace2: gview.KeyBackspace,
}

// keyEvent converts a termbox key event. Control chords on letters are
// reported as the lowercase letter with ModCtrl set; termbox gives some of
// them (Ctrl-H, Ctrl-I, Ctrl-M, Ctrl-[) the same codes as special keys, and
// those are reported as the special key.
func keyEvent(event termbox.Event) gview.Event {
	var mod gview.Modifier
	if event.Mod&termbox.ModAlt != 0 {
		mod |= gview.ModAlt
	}
	if event.Ch != 0 {
		return gview.CharEvent(event.Ch, mod)
	}
	if k, ok := specialKeys[event.Key]; ok {
		e := gview.KeyEvent(k)
		e.Mod = mod
		return e
	}
	switch {
	case event.Key == termbox.KeySpace:
		return gview.CharEvent(' ', mod)
	case event.Key >= termbox.KeyCtrlA && event.Key <= termbox.KeyCtrlZ:
		return gview.CharEvent('a'+rune(event.Key-termbox.KeyCtrlA), mod|gview.ModCtrl)
	default:
		e := gview.KeyEvent(gview.KeyUnsupported)
		e.Mod = mod
		return e
	}
}
