package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/themelint/internal/audit"
	"github.com/dotcommander/themelint/internal/config"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the discovered themes and their extracted API surfaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(rootPath)
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}

		themes, err := audit.New(cfg, audit.Options{}).LoadThemes()
		if err != nil {
			return err
		}

		if len(themes) == 0 {
			fmt.Println("No themes found.")
			return nil
		}
		for _, t := range themes {
			fmt.Printf("%-16s %-24s v%-10s %d components, %d hooks, %d utils, %d types\n",
				t.ID, t.Name, t.Version,
				len(t.Components), len(t.Hooks), len(t.Utils), len(t.Types))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
