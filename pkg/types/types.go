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

// Package types holds the values shared between the editor and the screen
// that draws it.
package types

// Editor states
type State int

const (
	StateRunning State = iota
	StateQuitting
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// A Point is a cell position; Col is x and Row is y.
type Point struct {
	Col int
	Row int
}

type Size struct {
	Cols int
	Rows int
}

// A Surface is a terminal that can be drawn on and read from.
// All methods are synchronous; ReadKey blocks until an event arrives.
type Surface interface {
	Size() (Size, error)
	MoveCursor(p Point) error
	ClearScreen() error
	ClearLine() error
	HideCursor() error
	ShowCursor() error
	Print(text string) error
	ReadKey() (Event, error)
}
