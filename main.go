package main

import (
	"os"

	"github.com/evsight/evsight/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
