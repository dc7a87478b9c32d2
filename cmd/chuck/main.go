// Package main provides the entry point for chuck, a command-line client
// for the chucknorris.io jokes API.
//
// Usage:
//
//	chuck random [--category NAME]
//	chuck categories
//	chuck search QUERY [--limit N]
//
// Global flags:
//
//	--verbose/-v  Include joke metadata in text output
//	--json        Print the raw API payload as indented JSON
//	--api-url     Jokes API base URL (default: https://api.chucknorris.io)
//	--timeout     Request timeout (default: 10s)
//
// Exit codes: 0 on success, 2 for handled failures (empty query, network,
// decode or API errors), 1 when no subcommand ran.
package main

import (
	"os"

	"chuck/internal/client/commands"
)

func main() {
	os.Exit(commands.Execute())
}
