// ABOUTME: Main entry point for the newsdesk server
// ABOUTME: Delegates to the cobra command tree

package main

import (
	"os"

	"newsdesk-api/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
