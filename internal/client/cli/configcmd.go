package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

func newConfigCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the client configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the --config file",
		Long: `Writes the configuration assembled from the existing file, RESORG_*
environment variables and command line flags to the --config path.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"offline": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runConfigInit(cmd, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

// runConfigInit сохраняет итоговые настройки, не открывая базу и не обращаясь к серверу
func (rt *runtime) runConfigInit(cmd *cobra.Command, force bool) error {
	path := rt.flags.configPath
	if path == "" {
		return errors.New("config path is empty, pass --config")
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists, use --force to overwrite", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}
	}

	cfg, err := rt.loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Save(path); err != nil {
		return err
	}

	rt.io.Printf("Configuration written to %s\n", path)
	return nil
}
