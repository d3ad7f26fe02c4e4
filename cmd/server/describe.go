package main

import (
	"fmt"

	"github.com/spf13/cobra"

	percept "github.com/KirkDiggler/rpg-perception/internal/perception"
	"github.com/KirkDiggler/rpg-perception/internal/world"
)

var (
	describeFile     string
	describeObserver string
	describeAll      bool
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Describe a world file without a server",
	Long: `Load a YAML world file and print what a character sees. With --all every
character in the world is described in turn.`,
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().StringVarP(&describeFile, "file", "f", "", "World YAML file (required)")
	describeCmd.Flags().StringVar(&describeObserver, "observer", "", "Observing character ID")
	describeCmd.Flags().BoolVar(&describeAll, "all", false, "Describe the world from every character")
	_ = describeCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init
}

func runDescribe(_ *cobra.Command, _ []string) error {
	if describeObserver == "" && !describeAll {
		return fmt.Errorf("one of --observer or --all is required")
	}

	snap, err := world.LoadFile(describeFile)
	if err != nil {
		return fmt.Errorf("failed to load world: %w", err)
	}

	observers := []string{describeObserver}
	if describeAll {
		observers = observers[:0]
		for _, c := range snap.Characters() {
			observers = append(observers, c.ID)
		}
	}

	for i, id := range observers {
		desc, err := percept.DescribeRoom(snap, id)
		if err != nil {
			return fmt.Errorf("failed to describe room for %s: %w", id, err)
		}
		if i > 0 {
			fmt.Println()
		}
		if describeAll {
			fmt.Printf("== %s ==\n", id)
		}
		if desc.Text == "" {
			fmt.Println("You see nothing of note.")
			continue
		}
		fmt.Println(desc.Text)
	}
	return nil
}
