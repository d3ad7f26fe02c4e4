// Package main is the entry point for the perception server and its tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-perception/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-perception",
	Short: "RPG perception gRPC server",
	Long:  `RPG perception stores room graphs and describes what characters in them can see.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
