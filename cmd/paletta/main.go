// Paletta - a tint palette generator
//
// Paletta blends a base colour towards white in five steps, keeps a history
// of the palettes you generate and exports them for other tools.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/jmylchreest/paletta/internal/cli"
)

func main() {
	// A .env in the working directory may set PALETTA_* overrides.
	_ = godotenv.Load()

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
