package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/clicycle/internal/version"
	"github.com/arthur-debert/clicycle/pkg/logging"
	"github.com/arthur-debert/clicycle/pkg/theme"
)

var (
	verbosity int
	themeName string
	themeFile string

	rootCmd = &cobra.Command{
		Use:   "clicycle",
		Short: "Showcase for the clicycle terminal rendering library",
		Long: `clicycle renders themed terminal output: headers, messages, tables,
panels, spinners, progress bars and prompts, with automatic spacing
between components.

This binary demonstrates the library; applications use the packages
under pkg/ directly.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "default", "Built-in theme: default, minimal, high-contrast")
	rootCmd.PersistentFlags().StringVar(&themeFile, "theme-file", "", "Load a theme from a YAML or TOML file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(docsCmd)
}

// loadTheme resolves the theme flags: an explicit file wins over the
// built-in name
func loadTheme() (theme.Theme, error) {
	if themeFile != "" {
		return theme.Load(themeFile)
	}
	th, ok := theme.Builtin(themeName)
	if !ok {
		return theme.Theme{}, fmt.Errorf("unknown theme %q", themeName)
	}
	return th, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("clicycle version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in themes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range []string{"default", "minimal", "high-contrast"} {
			fmt.Fprintln(os.Stdout, name)
		}
	},
}
