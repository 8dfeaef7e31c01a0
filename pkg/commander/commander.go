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
package commander

import (
	"fmt"
	"strconv"

	"github.com/steelseries/golisp"
	"github.com/tliron/commonlog"

	"github.com/timburks/gview/pkg/editor"
	gview "github.com/timburks/gview/pkg/types"
)

// The Commander evaluates Lisp expressions against an Editor.
type Commander struct {
	editor *editor.Editor
}

// NewCommander binds the gview primitives to e.
// golisp primitives are global, so the most recently created Commander
// receives every call.
func NewCommander(e *editor.Editor) *Commander {
	c := &Commander{editor: e}
	c.bindPrimitives()
	return c
}

// Eval parses and evaluates expr and returns its value as text.
func (c *Commander) Eval(expr string) (string, error) {
	value, err := golisp.ParseAndEval(expr)
	if err != nil {
		commonlog.GetLogger("gview.commander").Errorf("eval %q: %s", expr, err)
		return "", err
	}
	return format(value), nil
}

func format(d *golisp.Data) string {
	switch {
	case golisp.NilP(d):
		return "nil"
	case golisp.StringP(d):
		return golisp.StringValue(d)
	case golisp.IntegerP(d):
		return strconv.FormatInt(golisp.IntegerValue(d), 10)
	default:
		return golisp.String(d)
	}
}

func (c *Commander) bindPrimitives() {
	golisp.MakePrimitiveFunction("row-count", "0", c.rowCount)
	golisp.MakePrimitiveFunction("row-text", "1", c.rowText)
	golisp.MakePrimitiveFunction("render-row", "3", c.renderRow)
	golisp.MakePrimitiveFunction("gutter-width", "1", c.gutterWidth)
	golisp.MakePrimitiveFunction("set-size", "2", c.setSize)
	golisp.MakePrimitiveFunction("cursor-col", "0", c.cursorCol)
	golisp.MakePrimitiveFunction("cursor-row", "0", c.cursorRow)

	moves := map[string]gview.Key{
		"up":        gview.KeyArrowUp,
		"down":      gview.KeyArrowDown,
		"left":      gview.KeyArrowLeft,
		"right":     gview.KeyArrowRight,
		"page-up":   gview.KeyPgup,
		"page-down": gview.KeyPgdn,
		"home":      gview.KeyHome,
		"end":       gview.KeyEnd,
	}
	for name, key := range moves {
		golisp.MakePrimitiveFunction(name, "0", c.move(key))
	}
}

func (c *Commander) rowCount(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(c.editor.Document().RowCount())), nil
}

func (c *Commander) rowText(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	index, err := integerArg(golisp.Car(args), "row-text")
	if err != nil {
		return nil, err
	}
	row, ok := c.editor.Document().Row(index)
	if !ok {
		return nil, nil
	}
	return golisp.StringWithValue(row.String()), nil
}

func (c *Commander) renderRow(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	index, err := integerArg(golisp.Car(args), "render-row")
	if err != nil {
		return nil, err
	}
	start, err := integerArg(golisp.Cadr(args), "render-row")
	if err != nil {
		return nil, err
	}
	end, err := integerArg(golisp.Caddr(args), "render-row")
	if err != nil {
		return nil, err
	}
	row, ok := c.editor.Document().Row(index)
	if !ok {
		return nil, nil
	}
	return golisp.StringWithValue(row.Render(start, end)), nil
}

func (c *Commander) gutterWidth(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	rows, err := integerArg(golisp.Car(args), "gutter-width")
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(editor.GutterWidth(rows))), nil
}

func (c *Commander) setSize(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	cols, err := integerArg(golisp.Car(args), "set-size")
	if err != nil {
		return nil, err
	}
	rows, err := integerArg(golisp.Cadr(args), "set-size")
	if err != nil {
		return nil, err
	}
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("set-size requires a positive size, got %dx%d", cols, rows)
	}
	c.editor.SetSize(gview.Size{Cols: cols, Rows: rows})
	return nil, nil
}

func (c *Commander) cursorCol(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(c.editor.Cursor.Col)), nil
}

func (c *Commander) cursorRow(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(c.editor.Cursor.Row)), nil
}

func (c *Commander) move(key gview.Key) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		c.editor.MoveCursor(key)
		return nil, nil
	}
}

func integerArg(d *golisp.Data, name string) (int, error) {
	if !golisp.IntegerP(d) {
		return 0, fmt.Errorf("%s requires integer arguments", name)
	}
	return int(golisp.IntegerValue(d)), nil
}
