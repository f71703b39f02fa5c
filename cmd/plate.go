package main

import (
	"carlot/pkg/plate"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func plateCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "plate",
		Short: "Prints randomly generated license plates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return errors.New("count must be at least 1")
			}

			g := plate.NewSwedish()
			for range count {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), g.Generate()); err != nil {
					return fmt.Errorf("could not print plate: %w", err)
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of plates to generate")

	return cmd
}
