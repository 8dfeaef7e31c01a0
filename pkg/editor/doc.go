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

// Package editor implements the core of gview.
// A Document is read once from a file and never changes. The Editor
// draws the document's rows into the viewport of a Surface, each row
// behind a line number gutter, and turns key events from the Surface
// into cursor movement or a request to quit. The cursor is relative to
// the viewport, not the document.
package editor
