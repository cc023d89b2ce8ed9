package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate storage statistics for the repository store",
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

		s, err := p.StorageStats(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("objects: %d\n", s.TotalObjects)
		fmt.Printf("total:   %s (%d bytes)\n", humanize.Bytes(uint64(s.TotalBytes)), s.TotalBytes)
		if s.LargestObject != nil {
			fmt.Printf("largest: %s (%s, %d bytes)\n",
				s.LargestObject.Path, humanize.Bytes(uint64(s.LargestObject.Bytes)), s.LargestObject.Bytes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
