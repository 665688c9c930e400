/*
File    : rebar-go/repl/repl.go

Package repl implements the interactive shell. Each input line is compiled
against a persistent Environment and called immediately, so globals survive
across lines. The readline library provides history and line editing;
colored output separates results, errors, and informational text.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/Buckell/rebar-go/env"
	"github.com/Buckell/rebar-go/objects"
)

// Color definitions for REPL output.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive session over an Environment.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string

	Env *env.Environment
}

// NewRepl creates a REPL bound to an environment.
func NewRepl(environment *env.Environment, banner, version, line, prompt string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Line:    line,
		Prompt:  prompt,
		Env:     environment,
	}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-eval-print loop until '.exit' or EOF.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line)
	}
}

// executeWithRecovery compiles and runs one line, reporting diagnostics
// instead of letting a bad input take down the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	compiled, err := r.Env.CompileString(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}

	result := objects.Call(r.Env, compiled, nil)
	switch {
	case result.IsError():
		redColor.Fprintf(writer, "%s\n", result.ToString())
	case !result.IsNull():
		yellowColor.Fprintf(writer, "%s\n", result.Inspect())
	}
}
