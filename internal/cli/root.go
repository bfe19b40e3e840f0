// Package cli implements the fsres command line tool.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/medusaphp/filesystem/resource"
)

// app carries the state shared by every subcommand.
type app struct {
	verbose bool
	logger  *slog.Logger
}

// options returns the resource options every command passes to handles.
func (a *app) options() []resource.Option {
	return []resource.Option{resource.WithLogger(a.logger)}
}

// NewRootCommand builds the fsres command tree. Logs go to errOut.
func NewRootCommand(errOut io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "fsres",
		Short: "Inspect and manipulate files and directories",
		Long: `fsres lists directory trees with filters, copies, moves and links
files and directories, builds tar archives and reads INI files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newListCommand(a),
		newCopyCommand(a),
		newMoveCommand(a),
		newLinkCommand(a),
		newMkdirCommand(a),
		newArchiveCommand(a),
		newIniCommand(a),
	)
	return root
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand(os.Stderr).Execute()
}
