package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appconfig "github.com/erooms-in/erooms/internal/config"
)

func newConfigCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or replace the application configuration",
		Long:  "Print the stored application configuration, or replace it from a JSON file with --file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file to replace the configuration with")

	return cmd
}

func runConfig(file string) error {
	st, db, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB(db)

	svc := appconfig.NewService(st)

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		var cfg appconfig.AppConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
		if err := svc.Save(cfg); err != nil {
			return err
		}
	}

	cfg := svc.Load()

	if isJSON() {
		return printJSON(cfg)
	}

	printAppConfig(cfg)
	return nil
}
