package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foyerhq/foyer/internal/config"
)

func init() {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example config file",
		RunE:  runConfigInit,
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the config file for errors",
		RunE:  runConfigValidate,
	}

	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return err
		}
		path = discovered
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return &config.ConfigError{Path: path, Errors: errs}
	}
	fmt.Printf("%s is valid\n", path)
	return nil
}
