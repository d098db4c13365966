// Command hsmctl is a demonstration harness for the hsm engine.
package main

import (
	"fmt"
	"os"

	"github.com/devicesmith/jcpm-hsm/cmd/hsmctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
