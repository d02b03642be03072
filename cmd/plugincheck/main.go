package main

import (
	"os"

	"github.com/vaultkit/plugincheck/internal/cmd/plugincheck"
)

func main() {
	os.Exit(plugincheck.Run(os.Args[1:]))
}
