// Package main is the entry point for the roguelike action server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roguelike-api",
	Short: "Roguelike action resolution service",
	Long:  `roguelike-api resolves turn-based dungeon actions: movement, combat, items, equipment, and stairs, with narration history per session.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}
