package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/finder-sidebar/internal/cli"
)

var rmOpts cli.RemoveOptions

var rmCmd = &cobra.Command{
	Use:   "rm <name-or-path>",
	Short: "Remove favorites",
	Long: `Remove every favorite whose name matches, ignoring case.

Without --force the name must match a favorite exactly, and the command
fails when it does not. With --by-path the argument is compared against
the resolved paths instead. With --interactive and no argument, the
favorite is picked from a list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

func init() {
	rmCmd.Flags().BoolVarP(&rmOpts.Force, "force", "f", false, "Skip the existence check")
	rmCmd.Flags().BoolVar(&rmOpts.ByPath, "by-path", false, "Match the resolved path instead of the name")
	rmCmd.Flags().BoolVarP(&rmOpts.Interactive, "interactive", "i", false, "Pick the favorite to remove")

	rootCmd.AddCommand(rmCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	// A missing argument is rejected by Remove unless --interactive is set
	target := ""
	if len(args) > 0 {
		target = args[0]
	}

	return withSidebar(cmd, func(ctx *cli.SidebarContext) error {
		return cli.Remove(ctx, target, rmOpts)
	})
}
