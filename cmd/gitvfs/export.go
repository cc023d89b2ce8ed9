package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the store's .git/-prefixed objects out to a host directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportDir == "" {
			return fmt.Errorf("--dir is required")
		}
		return runExport(dbPath, exportDir)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "Host directory to write .git/ into")
	rootCmd.AddCommand(exportCmd)
}

func runExport(dbPath, outputDir string) error {
	p, err := openStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer p.Close()

	ctx := context.Background()
	if err := p.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	objs, err := p.ExportGitObjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to export objects: %w", err)
	}

	for _, obj := range objs {
		hostPath := filepath.Join(outputDir, obj.Path)
		if err := os.MkdirAll(filepath.Dir(hostPath), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", obj.Path, err)
		}
		if err := os.WriteFile(hostPath, obj.Data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", hostPath, err)
		}
		fmt.Printf("FILE %s (%d bytes)\n", obj.Path, len(obj.Data))
	}
	return nil
}
