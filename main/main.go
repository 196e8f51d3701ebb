/*
File    : monkey/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Monkey interpreter.
It provides two modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute a Monkey source file given on the command line

The interpreter uses a lexer-parser-evaluator pipeline to process Monkey code.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/monkey/environment"
	"github.com/akashmaji946/monkey/eval"
	"github.com/akashmaji946/monkey/lexer"
	"github.com/akashmaji946/monkey/objects"
	"github.com/akashmaji946/monkey/parser"
	"github.com/akashmaji946/monkey/repl"
	"github.com/fatih/color"
)

// VERSION represents the current version of the Monkey interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license (MIT License)
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = ">> "

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
  888b     d888                    888
  8888b   d8888                    888
  88888b.d88888                    888
  888Y88888P888  .d88b.  88888b.   888  888  .d88b.  888  888
  888 Y888P 888 d88""88b 888 "88b  888 .88P d8P  Y8b 888  888
  888  Y8P  888 888  888 888  888  888888K  88888888 888  888
  888   "   888 Y88..88P 888  888  888 "88b Y8b.      Y88b 888
  888       888  "Y88P"  888  888  888  888  "Y8888    "Y88888
                                                           888
                                                      Y8b d88P
                                                       "Y88P"
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the Monkey interpreter. Usage:
//
//	monkey              - Start in REPL (interactive) mode
//	monkey <filename>   - Execute the specified Monkey source file
//	monkey --help       - Display help information
//	monkey --version    - Display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("Monkey - An Interpreted Programming Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  monkey                    Start interactive REPL mode")
	yellowColor.Println("  monkey <path-to-file>     Execute a Monkey file")
	yellowColor.Println("  monkey --help             Display this help message")
	yellowColor.Println("  monkey --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                     Exit the REPL")
}

func showVersion() {
	cyanColor.Println("Monkey - An Interpreted Programming Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a Monkey source file, exiting non-zero only
// when the file itself cannot be read - parser and evaluation errors are
// reported on stdout but do not change the process exit code.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	lex := lexer.NewLexer(string(source))
	p := parser.New(lex)
	program := p.ParseProgram()

	if p.HasErrors() {
		fmt.Fprintln(os.Stdout, "Whoops! Parser errors:")
		for _, msg := range p.GetErrors() {
			fmt.Fprintf(os.Stdout, "\t%s\n", msg)
		}
		return
	}

	eval.SetOutput(os.Stdout)
	env := environment.NewEnvironment()

	result := eval.Eval(program, env)
	if result == nil {
		return
	}
	if result.Type() == objects.ErrorType {
		redColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
	} else {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
	}
}
