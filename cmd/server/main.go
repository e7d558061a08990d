// Package main is the entry point for the battle API server and its tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pokebattle/battle-api/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "battle-api",
	Short: "Pokemon battle API",
	Long:  `Battle API resolves pokemon from PokeAPI and simulates battles between them over HTTP and gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(battleCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
