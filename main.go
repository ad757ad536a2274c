package main

import (
	"fmt"
	"os"

	"github.com/perchhub/perch-config/cmd"
)

func main() {
	if os.Geteuid() != 0 {
		fmt.Fprintln(os.Stderr, "perch-config needs root privileges to run")
		fmt.Fprintln(os.Stderr, "Try using sudo before the perch-config command you wanted to run")
		os.Exit(1)
	}

	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "perch-config: %v\n", err)
		os.Exit(1)
	}
}
