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
package types

// Event types
const (
	EventKey = iota
	EventResize
)

type Key int

// Special keys. Character keys are reported with KeyNone and a rune in Event.Ch.
const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyPgup
	KeyPgdn
	KeyHome
	KeyEnd
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyUnsupported
)

type Modifier int

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
	Mod  Modifier
}

// IsCtrl reports whether the event is the Control chord for the letter c.
func (e Event) IsCtrl(c rune) bool {
	return e.Type == EventKey && e.Key == KeyNone && e.Ch == c && e.Mod&ModCtrl != 0
}

// KeyEvent returns a key event for a special key.
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// CharEvent returns a key event for a character with optional modifiers.
func CharEvent(c rune, mod Modifier) Event {
	return Event{Type: EventKey, Ch: c, Mod: mod}
}
