/*
File    : go-mix/cmd/monkey/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Monkey interpreter.
It provides two modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute a Monkey source file from the command line

The interpreter uses a lexer-parser-evaluator pipeline to process Monkey code.
*/
package main

import (
	"os"

	"github.com/akashmaji946/go-mix/eval"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/object"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/akashmaji946/go-mix/repl"
	"github.com/fatih/color"
)

// VERSION represents the current version of the Monkey interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = ">>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
 __  __             _
|  \/  | ___  _ __  | | _____ _   _
| |\/| |/ _ \| '_ \ | |/ / _ \ | | |
| |  | | (_) | | | ||   <  __/ |_| |
|_|  |_|\___/|_| |_||_|\_\___|\__, |
                               |___/
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main determines the operating mode based on command-line arguments:
//
// Usage:
//
//	monkey              - Start in REPL (interactive) mode
//	monkey <filename>    - Execute the specified Monkey source file
//	monkey --help        - Display help information
//	monkey --version     - Display version information
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

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("Monkey - An Interpreted Expression Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  monkey                    Start interactive REPL mode")
	yellowColor.Println("  monkey <path-to-file>     Execute a Monkey source file")
	yellowColor.Println("  monkey --help             Display this help message")
	yellowColor.Println("  monkey --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL:")
	yellowColor.Println("  .exit                     Exit the REPL")
}

func showVersion() {
	cyanColor.Println("Monkey - An Interpreted Expression Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a Monkey source file against a fresh
// environment, printing the final statement's Inspect()'d value (unless
// it's null) or any parser/evaluation errors.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	executeFileWithRecovery(string(fileContent))
}

// executeFileWithRecovery runs one source program to completion. Unlike
// the REPL, a bad program here exits the process with a non-zero status
// instead of looping for another line.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) != 0 {
		for _, msg := range p.Errors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		os.Exit(1)
	}

	env := object.NewEnvironment()
	result := eval.Eval(program, env)

	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}

	if result != object.NULL {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
	}
}
