package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statCmd = &cobra.Command{
	Use:   "stat [path]",
	Short: "Show metadata for a path in the repository store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openStore(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer p.Close()

		ctx := context.Background()
		if err := p.Init(ctx); err != nil {
			return fmt.Errorf("failed to initialize store: %w", err)
		}

		stats, err := p.Stat(ctx, args[0])
		if err != nil {
			return err
		}

		kind := "file"
		if stats.IsDirectory() {
			kind = "directory"
		}
		fmt.Printf("path:  %s\n", args[0])
		fmt.Printf("type:  %s\n", kind)
		fmt.Printf("size:  %d\n", stats.Size)
		fmt.Printf("mode:  %o\n", stats.Mode)
		fmt.Printf("mtime: %d\n", stats.MtimeMs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statCmd)
}
