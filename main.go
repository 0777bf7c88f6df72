// Package main is the entry point for the cubes CLI.
package main

import (
	"cubes/cli/cmd"
)

func main() {
	cmd.Execute()
}
