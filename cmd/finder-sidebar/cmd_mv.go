package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/finder-sidebar/internal/cli"
)

var mvCmd = &cobra.Command{
	Use:   "mv <to-move> <to-after>",
	Short: "Move a favorite after another one",
	Long: `Move the favorite named <to-move> so it follows <to-after>.

Names are case-sensitive. Nothing happens when either name is unknown.`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(mvCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	return withSidebar(cmd, func(ctx *cli.SidebarContext) error {
		return cli.Move(ctx, args[0], args[1])
	})
}
