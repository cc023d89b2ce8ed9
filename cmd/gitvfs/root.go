package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dbPath     string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "gitvfs",
	Short: "gitvfs: a relational-storage-backed virtual filesystem for a git store",
	Long:  "Inspect, import into, and export from a SQLite-backed git object store.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = log.InfoLevel
		}
		log.SetLevel(level)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	home, _ := os.UserHomeDir()
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "gitvfs.db", "Path to the SQLite-backed repository store")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", home+"/.gitvfs.yaml", "Path to the CLI config file")
}
