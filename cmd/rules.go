package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/themelint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the built-in consistency rules",
	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range rules.Builtin() {
			fmt.Printf("%-32s %s\n", r.Name(), r.Description())
		}
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
