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

// Package commander runs Lisp scripts against gview without a terminal.
// Scripts can read the rows of the document, render them as the screen
// would, and move the cursor with the same rules as the arrow keys.
// Cursor movement needs a viewport; scripts set one with (set-size cols rows).
package commander
