package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/finder-sidebar/internal/cli"
)

var renameCmd = &cobra.Command{
	Use:   "rename <from> <to>",
	Short: "Rename a favorite (not supported)",
	Long:  `Check that both favorites exist, then fail: macOS cannot rename sidebar items.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	return withSidebar(cmd, func(ctx *cli.SidebarContext) error {
		return cli.Rename(ctx, args[0], args[1])
	})
}
