package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/zoro11031/finder-sidebar/internal/cli"
	"github.com/zoro11031/finder-sidebar/internal/config"
	"github.com/zoro11031/finder-sidebar/internal/ui"
	"github.com/zoro11031/finder-sidebar/pkg/version"
)

var (
	configPath string

	cfg = config.New("")
	out = ui.New()

	// openSidebar binds the sidebar services for one command
	openSidebar = cli.NewSidebarContext
)

var rootCmd = &cobra.Command{
	Use:   "finder-sidebar",
	Short: "Manage the macOS Finder sidebar favorites",
	Long: `A command-line tool for reading and editing the Finder sidebar.

Commands:
  ls       - List favorites and their paths
  add      - Add a local folder or a network share at the top
  rm       - Remove favorites by name or path
  mv       - Move a favorite after another one
  rename   - Rename a favorite (not supported by macOS)`,
	SilenceUsage:      true, // We handle errors manually, but silence usage on error
	SilenceErrors:     true, // We format errors ourselves for consistent output
	PersistentPreRunE: loadConfig,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Info())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Configuration file (default "+config.DefaultPath()+")")
	flags.Bool("verbose", false, "Print debug output")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("non-interactive", false, "Fail instead of prompting")

	rootCmd.AddCommand(versionCmd)
}

// loadConfig layers the config file and explicit flags, then applies the
// output settings to the UI
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg = config.New(configPath)
	if err := cfg.Load(); err != nil {
		return err
	}
	if err := cfg.BindFlags(cmd.Flags()); err != nil {
		return err
	}

	if cfg.Bool(config.KeyNoColor) {
		ui.DisableColor()
	}
	out.SetVerbose(cfg.Bool(config.KeyVerbose))
	out.SetNonInteractive(cfg.Bool(config.KeyNonInteractive))

	if out.IsVerbose() {
		out.Debugf("using configuration %s", cfg.FilePath())
		settings := cfg.GetAll()
		keys := make([]string, 0, len(settings))
		for key := range settings {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			out.Debugf("  %s = %s", key, settings[key])
		}
	}
	return nil
}

// withSidebar opens the sidebar for one command and closes it afterwards
func withSidebar(cmd *cobra.Command, fn func(ctx *cli.SidebarContext) error) error {
	ctx, err := openSidebar(cfg, out, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to open the Finder sidebar: %w", err)
	}
	defer func() {
		if err := ctx.Close(); err != nil {
			out.Debugf("failed to release the sidebar: %v", err)
		}
	}()
	return fn(ctx)
}

// execute runs one command line and returns the process exit code. Results
// go to stdout; diagnostics and the single error line go to stderr.
func execute(args []string, stdout, stderr io.Writer) int {
	out = ui.NewWithWriter(stderr)

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		out.Error(err.Error())
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
