package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var importDir string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Walk a host directory tree into the repository store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if importDir == "" {
			return fmt.Errorf("--dir is required")
		}
		return runImport(dbPath, importDir)
	},
}

func init() {
	importCmd.Flags().StringVar(&importDir, "dir", "", "Host directory to import")
	rootCmd.AddCommand(importCmd)
}

func runImport(dbPath, inputDir string) error {
	info, err := os.Stat(inputDir)
	if err != nil {
		return fmt.Errorf("cannot access input directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", inputDir)
	}

	p, err := openStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer p.Close()

	ctx := context.Background()
	if err := p.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	return filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		switch {
		case d.IsDir():
			if err := p.Mkdir(ctx, relPath); err != nil {
				return fmt.Errorf("mkdir %s: %w", relPath, err)
			}
			fmt.Printf("DIR  %s\n", relPath)

		case d.Type()&fs.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return fmt.Errorf("readlink %s: %w", relPath, err)
			}
			if err := p.Symlink(ctx, target, relPath); err != nil {
				return fmt.Errorf("symlink %s: %w", relPath, err)
			}
			fmt.Printf("LINK %s -> %s\n", relPath, target)

		case d.Type().IsRegular():
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", relPath, err)
			}
			if err := p.WriteFile(ctx, relPath, data); err != nil {
				return fmt.Errorf("write %s: %w", relPath, err)
			}
			fmt.Printf("FILE %s (%d bytes)\n", relPath, len(data))
		}
		return nil
	})
}
