package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/launcher/cmd/launcher/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "init":
		err = commands.Init(args)
	case "resolve":
		err = commands.Resolve(args)
	case "check":
		err = commands.Check(args)
	case "create-mobile":
		err = commands.CreateMobile(args)
	case "version", "-v", "--version":
		fmt.Printf("launcher version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`launcher - mobile game launcher CLI

Usage: launcher <command> [options]

Commands:
  init            Create launcher.toml for a project
  resolve         Show the module reference a project resolves to
  check           Bootstrap a project against its native library and report the outcome
  create-mobile   Generate the mobile entry package for a project
  version         Print version information
  help            Show this help message

Examples:
  launcher init --id dungeon-crawler
  launcher resolve dungeon-crawler
  launcher check --lib ./build/libdungeon_crawler.so
  launcher create-mobile --output mobile/dungeon-crawler

Configuration:
  Projects are configured via launcher.toml in the project root.
  LAUNCHER_PROJECT, LAUNCHER_LIB_PATH, LAUNCHER_SEARCH_PATHS and
  LAUNCHER_FAILURE_POLICY override the file.`)
}
