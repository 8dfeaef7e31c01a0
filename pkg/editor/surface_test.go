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
	"errors"
	"fmt"
	"io"
	"strings"

	gview "github.com/timburks/gview/pkg/types"
)

var errFake = errors.New("fake terminal failure")

// fakeSurface records every call and keeps the text printed on each row.
type fakeSurface struct {
	size   gview.Size
	keys   []gview.Event // returned by ReadKey in order, then io.EOF
	reads  int
	cursor gview.Point
	lines  map[int]string
	calls  []string
	failOn string // calls starting with this fail with errFake
}

func newFakeSurface(cols, rows int, keys ...gview.Event) *fakeSurface {
	return &fakeSurface{
		size:  gview.Size{Cols: cols, Rows: rows},
		keys:  keys,
		lines: make(map[int]string),
	}
}

func (s *fakeSurface) record(call string) error {
	s.calls = append(s.calls, call)
	if s.failOn != "" && strings.HasPrefix(call, s.failOn) {
		return errFake
	}
	return nil
}

func (s *fakeSurface) Size() (gview.Size, error) {
	return s.size, s.record("size")
}

func (s *fakeSurface) MoveCursor(p gview.Point) error {
	s.cursor = p
	return s.record(fmt.Sprintf("move %d,%d", p.Col, p.Row))
}

func (s *fakeSurface) ClearScreen() error {
	s.lines = make(map[int]string)
	return s.record("clear screen")
}

func (s *fakeSurface) ClearLine() error {
	s.lines[s.cursor.Row] = ""
	return s.record("clear line")
}

func (s *fakeSurface) HideCursor() error {
	return s.record("hide cursor")
}

func (s *fakeSurface) ShowCursor() error {
	return s.record("show cursor")
}

func (s *fakeSurface) Print(text string) error {
	if err := s.record("print " + text); err != nil {
		return err
	}
	s.lines[s.cursor.Row] += text
	s.cursor.Col += len(text)
	return nil
}

func (s *fakeSurface) ReadKey() (gview.Event, error) {
	if err := s.record("read key"); err != nil {
		return gview.Event{}, err
	}
	if s.reads >= len(s.keys) {
		return gview.Event{}, io.EOF
	}
	event := s.keys[s.reads]
	s.reads++
	return event, nil
}

func (s *fakeSurface) lastCalls(n int) []string {
	if n > len(s.calls) {
		n = len(s.calls)
	}
	return s.calls[len(s.calls)-n:]
}
