// Command demo exercises agentfx's round scheduler and region engine
// outside of any test harness, the way garaekz-tfx/cmd/demo exercises
// its own subsystems: argv picks one of a handful of demonstrations.
package main

import (
	"fmt"
	"os"
	"strings"
)

const (
	version = "0.1.0"
	banner  = `
agentfx demo - exercise the round scheduler and region engine
`
)

func main() {
	if len(os.Args) < 2 {
		showHelp()
		return
	}

	switch strings.ToLower(os.Args[1]) {
	case "collatz", "-c":
		runCollatzDemo()
	case "ui", "-u":
		runUIDemo()
	case "version", "-v":
		fmt.Printf("agentfx demo v%s\n", version)
	case "help", "-h":
		showHelp()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		showHelp()
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Print(banner)
	fmt.Println("Usage: demo <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  collatz, -c    Run the 10,000-agent Collatz fanout scenario")
	fmt.Println("  ui, -u         Run a splitter/attachment UI against the terminal")
	fmt.Println("  version, -v    Show version information")
	fmt.Println("  help, -h       Show this help message")
}
