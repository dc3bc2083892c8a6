package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List heroes in the catalog",
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		heroes, err := d.RosterHandler.HandleList(ctx)
		if err != nil {
			return fmt.Errorf("listing heroes: %w", err)
		}

		if len(heroes) == 0 {
			fmt.Println("No heroes yet. Run 'herodex create' to make one.")
			return nil
		}

		fmt.Printf("Heroes (%d total):\n\n", len(heroes))
		for _, hero := range heroes {
			portrait := " "
			if hero.ImagePath != "" {
				portrait = "*"
			}
			fmt.Printf("  %s %-38s %s\n", portrait, hero.ID, hero.Name)
		}
		fmt.Println("\n(* has portrait)")

		return nil
	})
}
