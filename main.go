// ABOUTME: Entry point for the gigdesk CLI, TUI and MCP server
// ABOUTME: Hands control to the cobra command tree in package cli
package main

import "github.com/harperreed/gigdesk/cli"

func main() {
	cli.Execute()
}
