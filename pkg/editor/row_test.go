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
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestRenderClipsToWidth(t *testing.T) {
	row := NewRow("hello world")
	if got := row.Render(0, 10); got != "hello worl" {
		t.Errorf("Render(0, 10) = %q", got)
	}
	if got := row.Render(5, 20); got != " world" {
		t.Errorf("Render(5, 20) = %q", got)
	}
}

func TestRenderOutOfRange(t *testing.T) {
	row := NewRow("abc")
	tests := []struct {
		start, end int
		want       string
	}{
		{0, 3, "abc"},
		{1, 2, "b"},
		{3, 10, ""},
		{10, 20, ""},
		{2, 1, ""},
		{-5, 2, "ab"},
		{0, 0, ""},
		{0, -1, ""},
	}
	for _, tt := range tests {
		if got := row.Render(tt.start, tt.end); got != tt.want {
			t.Errorf("Render(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

// The rendered width never exceeds the requested range or what is left
// of the row after start.
func TestRenderWidthIsBounded(t *testing.T) {
	for _, text := range []string{"", "a", "hello world", "日本語テキスト", "mixed 日本 text", "été"} {
		row := NewRow(text)
		for start := 0; start <= row.Len()+2; start++ {
			for end := start; end <= row.Len()+4; end++ {
				got := row.Render(start, end)
				width := runewidth.StringWidth(got)
				if width > end-start {
					t.Fatalf("%q Render(%d, %d) = %q is wider than the range", text, start, end, got)
				}
				if start >= row.Len() {
					if got != "" {
						t.Fatalf("%q Render(%d, %d) = %q, want empty", text, start, end, got)
					}
				} else if width > row.Len()-start {
					t.Fatalf("%q Render(%d, %d) = %q runs past the row", text, start, end, got)
				}
			}
		}
	}
}

func TestRenderWideCharacters(t *testing.T) {
	row := NewRow("日本語")
	if row.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", row.Len())
	}
	if got := row.Render(0, 4); got != "日本" {
		t.Errorf("Render(0, 4) = %q", got)
	}
	// a wide character cut by either edge is dropped
	if got := row.Render(1, 5); got != "本" {
		t.Errorf("Render(1, 5) = %q", got)
	}
}

func TestRenderKeepsCombiningMarks(t *testing.T) {
	row := NewRow("cafe\u0301!")
	if row.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", row.Len())
	}
	if got := row.Render(3, 4); got != "e\u0301" {
		t.Errorf("Render(3, 4) = %q", got)
	}
}

func TestTabsAreExpanded(t *testing.T) {
	row := NewRow("a\tb")
	if row.String() != "a       b" {
		t.Errorf("String() = %q", row.String())
	}
	if row.Len() != 9 {
		t.Errorf("Len() = %d, want 9", row.Len())
	}
}
