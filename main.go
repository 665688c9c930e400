/*
File    : rebar-go/main.go
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/Buckell/rebar-go/env"
	"github.com/Buckell/rebar-go/eval"
	"github.com/Buckell/rebar-go/lexer"
	"github.com/Buckell/rebar-go/objects"
	"github.com/Buckell/rebar-go/repl"
)

const version = "0.1.0"

const banner = `
   ____  ____ _/ /  ___ _ ____
  / __/ / __// _ \/ _ '// __/
 / /   /_/   \___/\__,_//_/
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

// installHostFunctions registers the host-side natives scripts can call.
// It demonstrates the embedding surface: Bind wraps a Go function in a
// callable function value, which is then placed in the global table.
func installHostFunctions(e *env.Environment) {
	printFn := e.Bind(func(e *env.Environment) objects.Value {
		parts := make([]string, 0, e.ArgCount())
		for i := 0; i < e.ArgCount(); i++ {
			parts = append(parts, e.Arg(i).ToString())
		}
		fmt.Println(strings.Join(parts, " "))
		return objects.Null
	})
	e.GlobalTable().Set(e.Intern("print"), printFn)
}

// runFile compiles and executes a script file.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	environment := eval.NewEnvironment()
	installHostFunctions(environment)

	compiled, err := environment.CompileString(string(source))
	if err != nil {
		redColor.Fprintln(os.Stderr, err.Error())
		return fmt.Errorf("compilation failed")
	}

	result := objects.Call(environment, compiled, nil)
	if result.IsError() {
		redColor.Fprintln(os.Stderr, result.ToString())
		return fmt.Errorf("execution failed")
	}
	if !result.IsNull() {
		yellowColor.Fprintln(os.Stdout, result.Inspect())
	}
	return nil
}

// dumpTokens lexes a script file and prints its token stream with source
// positions, a debugging aid for symbol-table changes.
func dumpTokens(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	unit := lexer.NewLexer().Lex(string(source))
	for _, msg := range unit.Errors {
		redColor.Fprintln(os.Stderr, msg)
	}
	for i, tok := range unit.Tokens {
		pos := unit.Positions[i]
		fmt.Printf("[%d:%d] %s\n", pos.Row, pos.Col, tok.String())
	}
	return nil
}

func startRepl() error {
	environment := eval.NewEnvironment()
	installHostFunctions(environment)

	r := repl.NewRepl(environment, banner, version, strings.Repeat("-", 48), ">>> ")
	r.Start(os.Stdout)
	return nil
}

func main() {
	app := &cli.App{
		Name:    "rebar",
		Usage:   "embeddable scripting language",
		Version: version,
		Action: func(ctx *cli.Context) error {
			if ctx.Args().Present() {
				return runFile(ctx.Args().First())
			}
			return startRepl()
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "compile and execute a script file",
				ArgsUsage: "<file>",
				Action: func(ctx *cli.Context) error {
					if !ctx.Args().Present() {
						return cli.Exit("run requires a script file", 1)
					}
					return runFile(ctx.Args().First())
				},
			},
			{
				Name:  "repl",
				Usage: "start an interactive session",
				Action: func(ctx *cli.Context) error {
					return startRepl()
				},
			},
			{
				Name:      "tokens",
				Usage:     "print the token stream of a script file",
				ArgsUsage: "<file>",
				Action: func(ctx *cli.Context) error {
					if !ctx.Args().Present() {
						return cli.Exit("tokens requires a script file", 1)
					}
					return dumpTokens(ctx.Args().First())
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		redColor.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
