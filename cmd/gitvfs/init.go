package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or migrate the repository store at --db",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openStore(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer p.Close()

		if err := p.Init(context.Background()); err != nil {
			return fmt.Errorf("failed to initialize store: %w", err)
		}
		fmt.Fprintf(os.Stdout, "initialized %s\n", dbPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
