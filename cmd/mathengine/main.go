package main

// A thin driver around the expression engine. With arguments, each argument
// is evaluated as one expression; without, a REPL reads expressions from
// stdin line by line.

import (
	"bufio"
	"fmt"
	"os"

	"github.com/javif89/mathengine/internal/mathengine"
)

func main() {
	args := os.Args[1:]
	reporter := mathengine.NewSimpleReporter(os.Stderr)
	if len(args) == 0 {
		runPrompt(reporter)
	} else {
		for _, expression := range args {
			run(expression, reporter)
		}
		exitIf(reporter.HadError(), 65)
	}
}

func run(expression string, reporter mathengine.Reporter) {
	value, err := mathengine.EvaluateExpression(expression)
	if err != nil {
		reporter.Report(err)
		return
	}
	fmt.Println(value)
}

// Run the engine in REPL mode
func runPrompt(reporter mathengine.Reporter) {
	s := bufio.NewScanner(os.Stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Print("> ")
		if !s.Scan() {
			break
		}
		run(s.Text(), reporter)
		reporter.Reset()
	}
	exitOnError(s.Err(), 1)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
