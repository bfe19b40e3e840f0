package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/medusaphp/filesystem/errors"
	"github.com/medusaphp/filesystem/ini"
	"github.com/medusaphp/filesystem/resource"
)

func newIniCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ini",
		Short: "Read and edit INI files",
	}

	var (
		typed  bool
		output string
	)
	show := &cobra.Command{
		Use:   "show FILE",
		Short: "Print an INI file as yaml or normalized INI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := ini.ScannerRaw
			if typed {
				mode = ini.ScannerTyped
			}
			f, err := ini.Open(resource.NewFile(args[0], a.options()...),
				ini.WithSections(true), ini.WithScannerMode(mode))
			if err != nil {
				return err
			}

			switch output {
			case "yaml":
				return writeYAML(cmd.OutOrStdout(), valueNode(f.Data()))
			case "ini":
				text, err := f.Content()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			}
			return errors.Newf(errors.CodeInvalidInput, "unknown output format %q", output)
		},
	}
	show.Flags().BoolVar(&typed, "typed", false, "Convert numbers and booleans")
	show.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: yaml or ini")

	var section string
	set := &cobra.Command{
		Use:   "set FILE KEY VALUE",
		Short: "Set a value and save the file",
		Long: `Set stores VALUE under KEY, inside --section when given, and writes
the file back. The file is created when missing.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ini.Open(resource.NewFile(args[0], a.options()...), ini.WithSections(true))
			if err != nil {
				return err
			}
			data := f.Data()
			if section == "" {
				data[args[1]] = args[2]
			} else {
				s, ok := data[section].(map[string]interface{})
				if !ok {
					s = map[string]interface{}{}
					data[section] = s
				}
				s[args[1]] = args[2]
			}
			f.SetData(data)
			return f.Save()
		},
	}
	set.Flags().StringVarP(&section, "section", "s", "", "Section to store the key in")

	cmd.AddCommand(show, set)
	return cmd
}

// sortedKeys orders numeric keys numerically before the others.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		}
		return keys[i] < keys[j]
	})
	return keys
}
