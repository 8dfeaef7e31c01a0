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
	"os"
	"strings"
)

// A Document holds the rows of a file, in file order.
type Document struct {
	rows     []*Row
	fileName string
}

func NewDocument() *Document {
	return &Document{rows: make([]*Row, 0)}
}

// Open reads the file at path into a new Document.
func Open(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &DocumentOpenError{Path: path, Err: err}
	}
	d := NewDocument()
	d.LoadBytes(b)
	d.fileName = path
	return d, nil
}

// LoadBytes replaces the rows of the document with the lines of b.
// A final line terminator does not start another row, and a carriage
// return before a newline is dropped.
func (d *Document) LoadBytes(b []byte) {
	s := string(b)
	s = strings.TrimSuffix(s, "\n")
	d.rows = make([]*Row, 0)
	if len(b) == 0 {
		return
	}
	for _, line := range strings.Split(s, "\n") {
		d.rows = append(d.rows, NewRow(strings.TrimSuffix(line, "\r")))
	}
}

func (d *Document) FileName() string {
	return d.fileName
}

func (d *Document) RowCount() int {
	return len(d.rows)
}

// Row returns the row at index, or false if there is none.
func (d *Document) Row(index int) (*Row, bool) {
	if index < 0 || index >= len(d.rows) {
		return nil, false
	}
	return d.rows[index], true
}
