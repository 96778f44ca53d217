package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmorgan/tasktrack/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure tasktrack",
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the config path and effective data file",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Config: " + config.Path(config.Dir()))
		fmt.Println("Data file: " + cfg.DataFile(dataFile))
		return nil
	},
}

var configSetFileCmd = &cobra.Command{
	Use:   "set-file <path>",
	Short: "Set the default data file path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.File = args[0]
		if err := config.Save(config.Dir(), cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Println("Default data file set to " + args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configSetFileCmd)
	rootCmd.AddCommand(configCmd)
}
