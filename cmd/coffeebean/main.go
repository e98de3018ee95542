/*
File   : coffeebean/cmd/coffeebean/main.go

Package main is the CLI entry point: `coffeebean [FILE] [-d|--debug]`.
Grounded on go-mix/main/main.go's argument dispatch (help/version flags,
file mode vs REPL mode, colored stderr reporting), with go-mix's TCP
"server" REPL mode dropped -- SPEC_FULL.md's external-interfaces section
scopes the CLI to a single local process, matching spec.md §6's CLI
contract exactly.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"coffeebean/debugdump"
	"coffeebean/errs"
	"coffeebean/interp"
	"coffeebean/lexer"
	"coffeebean/parser"
	"coffeebean/repl"
)

const (
	version = "v1.0.0"
	author  = "coffeebean contributors"
	prompt  = "coffee-bean >>> "
	line    = "----------------------------------------------------------------"
)

const banner = `
   ___        __  __                 ____
  / __\___   / _|/ _| ___  ___      / __ \___  __ _ _ __
 / /  / _ \ | |_| |_ / _ \/ _ \    / / _\/ _ \/ _` + "`" + ` | '_ \
/ /__| (_) ||  _|  _|  __/  __/   / /_\\  __/ (_| | | | |
\____/\___/ |_| |_| \___|\___|    \____/\___|\__,_|_| |_|
`

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	var file string
	debug := false

	for _, arg := range os.Args[1:] {
		switch arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		case "--debug", "-d":
			debug = true
		default:
			file = arg
		}
	}

	if file == "" {
		repler := repl.New(banner, version, author, line, prompt)
		repler.Start(os.Stdout)
		return
	}
	runFile(file, debug)
}

func showHelp() {
	cyanColor.Println("Coffee Bean - an interpreted scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  coffeebean                 Start interactive REPL mode")
	yellowColor.Println("  coffeebean <path-to-file>  Execute a Coffee Bean file")
	yellowColor.Println("  coffeebean <file> -d       Execute a file, dumping tokens and AST first")
	yellowColor.Println("  coffeebean --help          Display this help message")
	yellowColor.Println("  coffeebean --version       Display version information")
}

func showVersion() {
	cyanColor.Printf("Coffee Bean %s\n", version)
}

// runFile reads source, runs the full tokenize/parse/interpret
// pipeline, prints echo output to stdout, and prints any error to
// stdout per spec.md §6's observed convention, exiting non-zero on
// failure.
func runFile(path string, debug bool) {
	contents, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stdout, "Error: could not read file '%s': %v\n", path, err)
		os.Exit(1)
	}
	source := string(contents)

	tokens, err := lexer.Tokenize(source)
	if err != nil {
		fmt.Fprintln(os.Stdout, errs.FormatError(err))
		os.Exit(1)
	}
	if debug {
		debugdump.Tokens(os.Stdout, tokens)
	}

	stmts, err := parser.Parse(tokens)
	if err != nil {
		fmt.Fprintln(os.Stdout, errs.FormatError(err))
		os.Exit(1)
	}
	if debug {
		debugdump.Statements(os.Stdout, stmts)
	}

	it := interp.New()
	it.SetWriter(os.Stdout)
	if err := it.Run(stmts); err != nil {
		fmt.Fprintln(os.Stdout, errs.FormatError(err))
		os.Exit(1)
	}
}
