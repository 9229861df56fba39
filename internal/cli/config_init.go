package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/ileap/internal/config"
)

// NewConfigInitCmd creates the config init command, which writes the
// default configuration globally or into a project.
func NewConfigInitCmd() *cobra.Command {
	var (
		force bool
		local bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a configuration file with default values at ~/.ileap/config.yaml,
or $ILEAP_HOME/config.yaml when set.

With --local, creates a project configuration at .ileap/config.yaml in the
current directory, or in the directory given by --project-dir. Project
configuration overrides the global one section by section.`,
		Example: `  # Create global configuration
  ileap config init

  # Create project configuration
  ileap config init --local

  # Overwrite an existing file
  ileap config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := filepath.Join(config.Dir(), "config.yaml")
			if local {
				dir, err := localConfigDir(cmd)
				if err != nil {
					return err
				}
				path = filepath.Join(dir, "config.yaml")
			}
			return initConfig(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&local, "local", false, "create project configuration instead of the global one")

	return cmd
}

func localConfigDir(cmd *cobra.Command) (string, error) {
	if flag, _ := cmd.Flags().GetString("project-dir"); flag != "" {
		return config.ResolveProjectDir(cmd.Context(), flag, ""), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return filepath.Join(cwd, ".ileap"), nil
}

func initConfig(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	cfg := config.Default()
	cfg.SetConfigPath(path)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized at %s\n", path)
	return nil
}
