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
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const tabWidth = 8

// A row of text in the document.
// Rows are never modified after they are created.
type Row struct {
	text  string
	width int  // display width in cells
	ascii bool // every byte is one printable cell
}

// We replace any tabs with spaces
func NewRow(text string) *Row {
	r := &Row{text: expandTabs(text)}
	r.ascii = isPrintableASCII(r.text)
	if r.ascii {
		r.width = len(r.text)
	} else {
		r.width = displayWidth(r.text)
	}
	return r
}

func (r *Row) String() string {
	return r.text
}

// Len returns the width of the row in display cells.
func (r *Row) Len() int {
	return r.width
}

// Render returns the part of the row that covers display columns [start, end).
// The range is clipped to the row; a wide character that would be cut by
// either edge is left out.
func (r *Row) Render(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > r.width {
		end = r.width
	}
	if start >= end {
		return ""
	}
	if r.ascii {
		return r.text[start:end]
	}
	var b strings.Builder
	col := 0
	g := uniseg.NewGraphemes(r.text)
	for col < end && g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if col >= start && col+w <= end {
			b.WriteString(cluster)
		}
		col += w
	}
	return b.String()
}

func expandTabs(text string) string {
	if !strings.ContainsRune(text, '\t') {
		return text
	}
	var b strings.Builder
	col := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		if cluster == "\t" {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteString(cluster)
		col += runewidth.StringWidth(cluster)
	}
	return b.String()
}

func displayWidth(text string) int {
	width := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

func isPrintableASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < 0x20 || c >= utf8.RuneSelf || c == 0x7f {
			return false
		}
	}
	return true
}
