package cli

import (
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/medusaphp/filesystem/errors"
	"github.com/medusaphp/filesystem/exec"
	"github.com/medusaphp/filesystem/resource"
)

// locate returns a Directory handle when location is an existing directory
// and a handle of the fallback kind otherwise.
func locate(location string, fallback resource.Kind, opts []resource.Option) resource.Resource {
	if d := resource.NewDirectory(location, opts...); d.Exists() || fallback == resource.KindDirectory {
		return d
	}
	return resource.NewFile(location, opts...)
}

// source returns the handle for an existing location.
func source(location string, opts []resource.Option) (resource.Resource, error) {
	res := locate(location, resource.KindFile, opts)
	if !res.Exists() {
		return nil, errors.WithContext(errors.New(errors.CodeNotFound, "no such file or directory"),
			"location", location)
	}
	return res, nil
}

func newCopyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copy SOURCE TARGET",
		Short: "Copy a file or directory",
		Long: `Copy SOURCE to TARGET. When TARGET is an existing directory the
source is copied into it under its own name.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := source(args[0], a.options())
			if err != nil {
				return err
			}
			return src.Copy(locate(args[1], src.Kind(), a.options()))
		},
	}
}

func newMoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move SOURCE TARGET",
		Short: "Move a file or directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := source(args[0], a.options())
			if err != nil {
				return err
			}
			return src.Move(locate(args[1], src.Kind(), a.options()))
		},
	}
}

func newLinkCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "link TARGET LINK",
		Short: "Point the symbolic link LINK at TARGET",
		Long: `Link creates LINK pointing at TARGET. An existing link pointing
elsewhere is replaced. Any other existing entry at LINK is an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := source(args[0], a.options())
			if err != nil {
				return err
			}
			var link resource.Resource
			if target.Kind() == resource.KindDirectory {
				link = resource.NewDirectory(args[1], a.options()...)
			} else {
				link = resource.NewFile(args[1], a.options()...)
			}
			return link.SetSymlinkTarget(target)
		},
	}
}

func newMkdirCommand(a *app) *cobra.Command {
	var (
		parents bool
		mode    string
	)

	cmd := &cobra.Command{
		Use:   "mkdir DIR",
		Short: "Create a directory with an exact mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			perm, err := strconv.ParseUint(mode, 8, 32)
			if err != nil {
				return errors.Wrapf(err, errors.CodeInvalidInput, "invalid mode %q", mode)
			}
			return resource.NewDirectory(args[0], a.options()...).Mkdir(parents, fs.FileMode(perm)&fs.ModePerm)
		},
	}
	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "Create missing parent directories")
	cmd.Flags().StringVar(&mode, "mode", fmt.Sprintf("%o", resource.DirPerm), "Octal permission bits")
	return cmd
}

func newArchiveCommand(a *app) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "archive DIR TARGET",
		Short: "Write a tar archive of a directory",
		Long: `Archive runs the system tar to write DIR to TARGET. The archive
holds DIR under its base name.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.options()
			if timeout > 0 {
				opts = append(opts, resource.WithExecutor(exec.New(exec.WithInheritEnv(), exec.WithTimeout(timeout))))
			}
			dir := resource.NewDirectory(args[0], opts...)
			if !dir.Exists() {
				return errors.WithContext(errors.New(errors.CodeNotFound, "no such directory"),
					"location", args[0])
			}
			return dir.CreateArchive(cmd.Context(), resource.NewFile(args[1], opts...))
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort tar after this long (0 waits forever)")
	return cmd
}
