/*
File   : coffeebean/repl/repl.go
Package: repl

Implements the Coffee Bean REPL: an interactive loop reading one
program fragment at a time, executed against a persistent global
environment shared across the whole session. Grounded on
go-mix/repl/repl.go's Repl struct (banner/version/prompt fields,
readline for line editing and history, fatih/color for feedback,
panic-recovery around each line's evaluation) adapted to Coffee Bean's
tokenize/parse/interpret pipeline and its multi-line `do ... end` /
`func ... end` block syntax, which needs more than one line of input
before it can be parsed.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"coffeebean/errs"
	"coffeebean/interp"
	"coffeebean/lexer"
	"coffeebean/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session: banner text, version, and
// prompt string, mirroring go-mix/repl.Repl's field set.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// New creates a Repl with the given display configuration.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Welcome to Coffee Bean!")
	cyanColor.Fprintf(w, "%s\n", "Type your code and press enter; 'do'/'func' blocks may span multiple lines.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL main loop against a persistent Interp: each
// accepted fragment shares the same global environment as every
// fragment before it, so top-level bindings survive across lines
// (spec.md §6: "each line is an independent input sharing the
// persistent global environment").
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interp.New()
	it.SetWriter(w)

	var pending strings.Builder
	depth := 0
	for {
		prompt := r.Prompt
		if depth > 0 {
			prompt = strings.Repeat("  ", depth) + "... "
			rl.SetPrompt(prompt)
		} else {
			rl.SetPrompt(r.Prompt)
		}

		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good Bye!\n"))
			return
		}

		if depth == 0 && strings.TrimSpace(line) == ".exit" {
			w.Write([]byte("Good Bye!\n"))
			return
		}
		if depth == 0 && strings.TrimSpace(line) == "" {
			continue
		}

		depth += blockDelta(line)
		pending.WriteString(line)
		pending.WriteString("\n")
		rl.SaveHistory(line)

		if depth > 0 {
			continue
		}

		source := pending.String()
		pending.Reset()
		depth = 0
		r.executeWithRecovery(w, source, it)
	}
}

// blockDelta counts net block-opener/closer keywords on a line, a
// simple heuristic so the REPL knows to keep reading until a `do`/`func`
// block is balanced before attempting to parse. Only `do` opens a
// block: a `func` declaration's body always starts with its own `do`.
func blockDelta(line string) int {
	delta := 0
	for _, word := range strings.Fields(line) {
		switch word {
		case "do":
			delta++
		case "end":
			delta--
		}
	}
	return delta
}

// executeWithRecovery runs one fragment end to end, printing whatever
// it echoes or, on failure, the two-line error report from errs.FormatError.
// A recovered panic is reported the same way so the REPL session
// survives an unexpected internal failure instead of crashing.
func (r *Repl) executeWithRecovery(w io.Writer, source string, it *interp.Interp) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(w, "Error: %v\n", recovered)
		}
	}()

	tokens, err := lexer.Tokenize(source)
	if err != nil {
		redColor.Fprintf(w, "%s\n", errs.FormatError(err))
		return
	}
	stmts, err := parser.Parse(tokens)
	if err != nil {
		redColor.Fprintf(w, "%s\n", errs.FormatError(err))
		return
	}
	if err := it.Run(stmts); err != nil {
		redColor.Fprintf(w, "%s\n", errs.FormatError(err))
	}
}
