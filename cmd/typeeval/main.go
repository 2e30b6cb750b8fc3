package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

const usage = `Usage:
  %[1]s stub [path]                             list the builtin classes and their MRO
  %[1]s check [-config file] <module.yaml>...   check declaration modules
  %[1]s show <module.yaml>...                   print modules with their computed types
`

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	log.SetFlags(0)
	log.SetPrefix("typeeval: ")
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run dispatches a command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintf(stderr, usage, args[0])
		return 2
	}
	switch args[1] {
	case "stub":
		return handleStub(args[2:], stdout, stderr)
	case "check":
		return handleCheck(args[2:], stdout, stderr)
	case "show":
		return handleShow(args[2:], stdout, stderr)
	case "help", "-help", "--help", "-h":
		fmt.Fprintf(stdout, usage, args[0])
		return 0
	}
	fmt.Fprintf(stderr, "unknown command %q\n", args[1])
	fmt.Fprintf(stderr, usage, args[0])
	return 2
}
