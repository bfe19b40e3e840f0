package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medusaphp/filesystem/errors"
	"github.com/medusaphp/filesystem/filter"
	"github.com/medusaphp/filesystem/resource"
)

type listOptions struct {
	mode     string
	tree     bool
	maxDepth int
	regexp   string
	glob     string
	output   string
}

func newListCommand(a *app) *cobra.Command {
	o := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list DIR",
		Short: "List the resources below a directory",
		Long: `List walks DIR and prints the accepted resources keyed by their
canonical path. With --tree the result is nested by the path segments
below DIR.

Modes:
  leaf      entries that are not descended into (default)
  dirs      directories only
  relative  every entry except DIR itself`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := o.filter()
			if err != nil {
				return err
			}
			result, err := resource.NewDirectory(args[0], a.options()...).GetResources(f)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), result, o.output)
		},
	}

	cmd.Flags().StringVarP(&o.mode, "mode", "m", "leaf", "Traversal mode: leaf, dirs or relative")
	cmd.Flags().BoolVarP(&o.tree, "tree", "t", false, "Nest the result by path segments")
	cmd.Flags().IntVarP(&o.maxDepth, "max-depth", "d", 0, "Levels to descend below the entries of DIR (0 is unlimited)")
	cmd.Flags().StringVar(&o.regexp, "regexp", "", "Keep names matching a regular expression such as /\\.php$/i")
	cmd.Flags().StringVar(&o.glob, "glob", "", "Keep names matching a glob pattern")
	cmd.Flags().StringVarP(&o.output, "output", "o", "text", "Output format: text or yaml")
	cmd.MarkFlagsMutuallyExclusive("regexp", "glob")
	return cmd
}

// filter builds the filter described by the flags.
func (o *listOptions) filter() (filter.Filter, error) {
	opts := []filter.Option{
		filter.WithMaxDepth(o.maxDepth),
		filter.WithResultAsTree(o.tree),
	}

	switch {
	case o.regexp != "":
		m, err := filter.Regexp(o.regexp)
		if err != nil {
			return nil, err
		}
		opts = append(opts, filter.WithPattern(m))
	case o.glob != "":
		m, err := filter.Glob(o.glob)
		if err != nil {
			return nil, err
		}
		opts = append(opts, filter.WithPattern(m))
	}

	switch o.mode {
	case "leaf":
		return filter.NewLeaf(opts...), nil
	case "dirs":
		return filter.NewDirectoryOnly(opts...), nil
	case "relative":
		return filter.NewRootRelative(opts...), nil
	}
	return nil, errors.New(errors.CodeInvalidInput, fmt.Sprintf("unknown mode %q", o.mode))
}
