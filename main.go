package main

import (
	"os"

	"portfolio-assistant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
