package main

import (
	"os"

	"github.com/fusionprintdesign/fusionsite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
