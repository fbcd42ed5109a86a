package main

import (
	"fmt"
	"os"

	"github.com/spec-kit/school-portal/cmd/portalctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
