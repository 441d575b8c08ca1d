package main

import (
	"os"

	"github.com/WKLive/jelastic-inventory/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
