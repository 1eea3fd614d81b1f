package main

import (
	"os"

	"github.com/vaultpass/passgen-go/cmd/passgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
