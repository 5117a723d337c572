package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/themelint/internal/audit"
	"github.com/dotcommander/themelint/internal/config"
)

var (
	rootPath       string
	quiet          bool
	verbose        bool
	outputFormat   string
	outputFile     string
	failOn         string
	strict         bool
	useBaseline    bool
	createBaseline bool
	baselinePath   string
)

var rootCmd = &cobra.Command{
	Use:   "themelint",
	Short: "Cross-theme API consistency auditor for themed component libraries",
	Long: `Themelint audits parallel theme implementations of a shared component
contract and reports where their public API surfaces diverge: button props,
hook signatures, theme definition shape, style utilities, and event sets.

Themes are described by theme.yaml manifests discovered under the themes
root. The exit code is non-zero when error-level findings remain, so the
audit slots directly into CI or a pre-publish hook.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAudit(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Themes root directory (default \"themes\")")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().StringVar(&failOn, "fail-on", "error", "Fail build on specified level (error|warning)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Treat warnings as errors")
	rootCmd.Flags().BoolVar(&useBaseline, "baseline", false, "Ignore findings recorded in the baseline file")
	rootCmd.Flags().BoolVar(&createBaseline, "create-baseline", false, "Record current findings as the accepted baseline and exit 0")
	rootCmd.Flags().StringVar(&baselinePath, "baseline-path", ".themelint-baseline.json", "Baseline file path (relative to themes root)")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("failOn", rootCmd.PersistentFlags().Lookup("fail-on"))
	viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
}

func initConfig() {
	configPaths := []string{".themelintrc.json", ".themelintrc.yaml", ".themelintrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}

func runAudit() error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	auditor := audit.New(cfg, audit.Options{
		UseBaseline:    useBaseline,
		CreateBaseline: createBaseline,
		BaselinePath:   baselinePath,
	})
	_, err = auditor.Run()
	return err
}
