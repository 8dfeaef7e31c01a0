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
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/timburks/gview/pkg/commander"
	"github.com/timburks/gview/pkg/editor"
	"github.com/timburks/gview/pkg/screen"
	gview "github.com/timburks/gview/pkg/types"
)

// A terminal is a Surface that must be restored when the editor is done.
type terminal interface {
	gview.Surface
	Close()
}

func openScreen() (terminal, error) {
	s, err := screen.NewScreen()
	if err != nil {
		return nil, err
	}
	return s, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, openScreen))
}

func run(args []string, stdout, stderr io.Writer, open func() (terminal, error)) int {
	flags := flag.NewFlagSet("gview", flag.ContinueOnError)
	flags.SetOutput(stderr)
	logfile := flags.String("logfile", "", "Path to log file")
	script := flags.String("eval", "", "Evaluate a Lisp expression against the file and exit")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: gview [-logfile path] [-eval expr] [file]\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return 2
	}
	filename := flags.Arg(0)

	// The terminal belongs to the editor, so logs only ever go to a file.
	if *logfile != "" {
		commonlog.Configure(2, logfile)
	} else {
		devnull := os.DevNull
		commonlog.Configure(-4, &devnull)
	}
	log := commonlog.GetLogger("gview")

	if *script != "" {
		// Run a script and exit.
		e := editor.NewEditorForFile(nil, filename)
		out, err := commander.NewCommander(e).Eval(*script)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stdout, out)
		return 0
	}

	t, err := open()
	if err != nil {
		log.Errorf("%s", err)
		fmt.Fprintln(stderr, err)
		return 1
	}
	e := editor.NewEditorForFile(t, filename)
	err = e.Run()
	// Close leaves the alternate screen, so anything printed after this
	// stays in the user's scrollback.
	t.Close()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, editor.ExitMessage)
	return 0
}
