package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/finder-sidebar/internal/cli"
	"github.com/zoro11031/finder-sidebar/internal/common"
	"github.com/zoro11031/finder-sidebar/internal/sidebar"
)

var addForce bool

var addCmd = &cobra.Command{
	Use:   "add <path> [<uri>] [<order>]",
	Short: "Add a favorite at the top of the sidebar",
	Long: `Add a local folder, or a folder on an afp:// or smb:// share, as the
first favorite.

Shares are mounted before they are added, e.g.
  finder-sidebar add /media smb://user@nas.local

The order argument is accepted but not yet implemented. Use mv to place
the new favorite.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().BoolVarP(&addForce, "force", "f", false, "Skip path existence checks")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	opts := cli.AddOptions{
		Force:   addForce,
		Verbose: out.IsVerbose(),
	}
	if len(args) > 1 {
		opts.URI = args[1]
	}
	if len(args) > 2 {
		order, err := common.ParseOrder(args[2])
		if err != nil {
			return sidebar.Validationf("%v", err)
		}
		opts.Order = order
	}

	return withSidebar(cmd, func(ctx *cli.SidebarContext) error {
		return cli.Add(ctx, args[0], opts)
	})
}
