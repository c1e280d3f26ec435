package main

import (
	"fmt"
	"os"

	"day-planner/internal/cli"
	"day-planner/internal/config"
)

func main() {
	root := cli.NewRootCommand(config.NewLoader(), cli.OpenDefaultPlanner)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
