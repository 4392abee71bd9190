package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/alienpatrol/internal/config"
	"chosenoffset.com/alienpatrol/internal/placeholders"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults are used when empty)")
	root := flag.String("root", ".", "Directory the asset paths are relative to")
	flag.Parse()

	fmt.Println("Alien Patrol Placeholder Asset Generator")
	fmt.Println("========================================")
	fmt.Println()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := placeholders.GenerateAndSave(cfg, *root); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Run the game to see the placeholders in action.")
}
