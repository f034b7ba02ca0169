// Package main is the entry point for the mwsctl CLI.
package main

import (
	"github.com/IvanTurko/mws-sdk-go/cmd/mwsctl/cmd"
)

func main() {
	cmd.Execute()
}
