/*
File   : golox/cmd/golox/main.go

The golox binary's entry point. All behavior lives in package cmd; main
only translates its returned exit code into os.Exit.
*/
package main

import (
	"os"

	"golox/cmd/golox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
