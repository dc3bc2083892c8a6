package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/herodex/herodex/internal/application/handlers"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <hero-id>",
		Short: "Show a hero's profile and story so far",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		detail, err := d.RosterHandler.HandleShow(ctx, args[0])
		if err != nil {
			fmt.Println(handlers.UserMessage(err))
			return err
		}

		hero := detail.Hero
		fmt.Printf("%s (%s)\n", hero.Name, hero.ID)
		fmt.Printf("Created:     %s\n", hero.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Printf("Powers:      %s\n", hero.Superpowers)
		fmt.Printf("Hometown:    %s\n", hero.Hometown)
		fmt.Printf("Personality: %s\n", hero.PersonalityTraits)
		fmt.Printf("Appearance:  %s\n", hero.Appearance)
		if hero.ImagePath != "" {
			fmt.Printf("Portrait:    %s\n", hero.ImagePath)
		}
		fmt.Printf("\n%s\n", hero.Backstory)

		if detail.StorySoFar != "" {
			fmt.Println("\n--- Story so far ---")
			fmt.Println(detail.StorySoFar)
		}

		return nil
	})
}
