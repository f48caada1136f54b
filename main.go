package main

import (
	"fmt"
	"os"

	clientCmd "github.com/goto/foundry/client/cmd"
)

const defaultExitCode = 1

func main() {
	command := clientCmd.New()
	if err := command.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(defaultExitCode)
	}
}
