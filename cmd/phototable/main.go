package main

import (
	"fmt"
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], DefaultEnv()))
}

// run dispatches to a subcommand and returns the process exit code.
// The default command is generate, so plain "phototable <dir>" works.
func run(args []string, env *Environment) int {
	cmd := "generate"
	rest := args

	if len(args) > 0 {
		switch args[0] {
		case "generate", "doctor", "version", "help", "-h", "--help":
			cmd = args[0]
			rest = args[1:]
		}
	}

	switch cmd {
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	case "version":
		fmt.Fprintf(env.Stdout, "phototable %s\n", Version)
		return ExitSuccess
	case "doctor":
		return runDoctorCmd(rest, env)
	default:
		return runGenerateCmd(rest, env)
	}
}
