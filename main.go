package main

import (
	"os"

	"github.com/rayyanquantum/rayui/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
