package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gohow/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var forceInit bool

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the gohow config file",
}

// configInitCmd writes the default config
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Writes the default settings to the config file so they can be edited.
An existing file is left alone unless --force is given.

Example:
  gohow config init
  gohow config init --config ./gohow.yaml --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	_, err := os.Stat(path)
	switch {
	case err == nil && !forceInit:
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("check config file: %w", err)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	logger.Info("Config written", zap.String("path", path), zap.Bool("force", forceInit))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
	return nil
}
