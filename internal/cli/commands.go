package cli

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/zoro11031/finder-sidebar/internal/common"
	"github.com/zoro11031/finder-sidebar/internal/config"
	"github.com/zoro11031/finder-sidebar/internal/sidebar"
)

// ListOptions controls ls
type ListOptions struct {
	Raw    bool
	Format string // empty selects the configured default
}

// List renders the favorites, or dumps the raw snapshot for debugging
func List(ctx *SidebarContext, opts ListOptions) error {
	if opts.Raw {
		spew.Fdump(ctx.Out, ctx.Sidebar.Snapshot())
		return nil
	}

	name := opts.Format
	if name == "" {
		name = ctx.Config.GetOrDefault(config.KeyOutputFormat, string(FormatTxt))
	}
	format, err := ParseOutputFormat(name)
	if err != nil {
		return err
	}

	return RenderFavorites(ctx.Out, ctx.Sidebar.Favorites().Entries(), format)
}

// RemoveOptions controls rm
type RemoveOptions struct {
	Force       bool // skip the existence check
	ByPath      bool // match resolved paths instead of display names
	Interactive bool // pick the favorite from a list when none is given
}

// Remove deletes favorites by name (case-insensitive) or by path
func Remove(ctx *SidebarContext, target string, opts RemoveOptions) error {
	picked := false
	if target == "" && opts.Interactive {
		if ctx.UI.IsNonInteractive() {
			return sidebar.Validationf("a favorite name or path is required when prompts are disabled")
		}
		choice, err := pickFavorite(ctx, opts.ByPath)
		if err != nil {
			return err
		}
		if choice == "" {
			ctx.UI.Info("Nothing removed")
			return nil
		}
		target, picked = choice, true
	}

	if err := common.ValidateNotEmpty(target); err != nil {
		return sidebar.Validationf("name or path is empty or whitespace only")
	}

	var removed int
	var err error
	if opts.ByPath {
		if !opts.Force && !ctx.Sidebar.HasPath(target) {
			return &sidebar.NotFoundError{Name: target}
		}
		removed, err = ctx.Sidebar.RemoveByPath(target)
	} else {
		if !opts.Force && !ctx.Sidebar.Exists(target) {
			return &sidebar.NotFoundError{Name: target}
		}
		removed, err = ctx.Sidebar.Remove(target)
	}
	if err != nil {
		return err
	}

	if picked {
		ctx.UI.Infof("Removed %s", target)
	}
	ctx.UI.Debugf("removed %d item(s) matching %q", removed, target)
	return nil
}

// pickFavorite asks the user which favorite to remove and confirms it.
// An empty result means the user declined.
func pickFavorite(ctx *SidebarContext, byPath bool) (string, error) {
	var options, values []string
	for _, f := range ctx.Sidebar.Favorites().Entries() {
		if byPath {
			if f.Path == "" {
				continue
			}
			options = append(options, fmt.Sprintf("%s (%s)", f.Name, f.Path))
			values = append(values, f.Path)
			continue
		}
		options = append(options, f.Name)
		values = append(values, f.Name)
	}
	if len(options) == 0 {
		return "", sidebar.Validationf("the sidebar has no favorites to remove")
	}

	idx, err := ctx.UI.PromptSelect("Favorite to remove", options)
	if err != nil {
		return "", fmt.Errorf("failed to prompt for favorite: %w", err)
	}

	confirm, err := ctx.UI.PromptYesNo(fmt.Sprintf("Remove %s?", options[idx]), false)
	if err != nil {
		return "", fmt.Errorf("failed to confirm removal: %w", err)
	}
	if !confirm {
		return "", nil
	}
	return values[idx], nil
}

// AddOptions controls add
type AddOptions struct {
	URI     string // empty selects the configured default
	Order   int    // accepted, not yet functional
	Force   bool   // skip uri and path checks
	Verbose bool
}

// Add puts path at the top of the sidebar, mounting afp/smb shares first
func Add(ctx *SidebarContext, path string, opts AddOptions) error {
	if err := common.ValidateNotEmpty(path); err != nil {
		return sidebar.Validationf("path is empty or whitespace only")
	}

	uri := opts.URI
	if uri == "" {
		uri = ctx.Config.GetOrDefault(config.KeyDefaultURI, sidebar.DefaultURI)
	}
	if opts.Order != 0 {
		ctx.UI.Warningf("order %d is not yet implemented; new favorites are always added at the top (use mv)", opts.Order)
	}

	if !opts.Force {
		if err := checkAddPaths(ctx, path, uri); err != nil {
			return err
		}
	}

	if opts.Verbose {
		_, _ = fmt.Fprintf(ctx.Out, "adding %q as %s\n", path, uri)
	}
	return ctx.Sidebar.Add(path, uri)
}

func checkAddPaths(ctx *SidebarContext, path, uri string) error {
	if err := common.ValidateURI(uri); err != nil {
		return sidebar.Validationf("%v", err)
	}

	exists, err := ctx.FS.PathExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return sidebar.Validationf("%q not found", path)
	}
	if isDir, err := ctx.FS.DirectoryExists(path); err == nil && !isDir {
		ctx.UI.Warningf("%s is a file, not a folder", path)
	}

	if uri == sidebar.DefaultURI {
		return nil
	}

	finalPath, err := common.ShareLocalPath(uri, path, ctx.FS.Abs)
	if err != nil {
		return sidebar.Validationf("%v", err)
	}
	exists, err = ctx.FS.PathExists(finalPath)
	if err != nil {
		return err
	}
	if !exists {
		return sidebar.Validationf("%q not found", finalPath)
	}
	return nil
}

// Move places toMove right after toAfter; unknown names are ignored
func Move(ctx *SidebarContext, toMove, toAfter string) error {
	return ctx.Sidebar.Move(toMove, toAfter)
}

// Rename checks both names and then fails: the shared file list has no
// rename primitive
func Rename(ctx *SidebarContext, from, to string) error {
	for _, name := range []string{from, to} {
		if !ctx.Sidebar.Exists(name) {
			return &sidebar.NotFoundError{Name: name}
		}
	}
	return &sidebar.UnimplementedError{
		Feature: "rename",
		Reason:  "the shared file list API has no method to rename an item",
	}
}
