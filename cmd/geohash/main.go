package main

import (
	"os"

	"geohash-service/cmd/geohash/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
