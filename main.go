package main

import (
	"os"

	"github.com/will4381/comic-slideshows/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
