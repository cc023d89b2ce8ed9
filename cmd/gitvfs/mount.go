package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gitvfs/internal/fuseadapter"
)

var mountCmd = &cobra.Command{
	Use:   "mount [path]",
	Short: "Mount the repository store as a debug FUSE filesystem",
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

		mounter, err := fuseadapter.Mount(args[0], p)
		if err != nil {
			return fmt.Errorf("failed to mount: %w", err)
		}
		mounter.Serve()
		fmt.Printf("mounted %s at %s, press Ctrl-C to unmount\n", dbPath, mounter.Path())

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		return mounter.Unmount()
	},
}

func init() {
	rootCmd.AddCommand(mountCmd)
}
