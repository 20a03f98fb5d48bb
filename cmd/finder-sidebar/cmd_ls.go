package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/finder-sidebar/internal/cli"
)

var lsRaw bool

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List favorites",
	Long: `List the sidebar favorites as name/path pairs.

Formats:
  txt         - Tab separated (default)
  quoted-txt  - Tab separated, every field quoted
  csv         - Comma separated, every field quoted
  table       - Bordered table
  json        - Not yet implemented

Virtual entries such as AirDrop are listed with an empty path.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	lsCmd.Flags().BoolVar(&lsRaw, "raw", false, "Dump the raw sidebar snapshot and exit")
	lsCmd.Flags().String("output-format", "txt", "Output format: txt|quoted-txt|json|csv|table")

	rootCmd.AddCommand(lsCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	// --output-format reaches List through the output_format config key
	return withSidebar(cmd, func(ctx *cli.SidebarContext) error {
		return cli.List(ctx, cli.ListOptions{Raw: lsRaw})
	})
}
