package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/rayyanquantum/rayui/internal/errors"
	"github.com/rayyanquantum/rayui/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var (
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the rayui version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			case "text":
				if detailed {
					fmt.Fprintln(out, info.Detailed())
				} else {
					fmt.Fprintln(out, info.String())
				}
				return nil
			default:
				return errors.NewValidationError(errors.ErrCodeInvalidFormat,
					fmt.Sprintf("invalid format %q", format)).WithSuggestions("text", "json")
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "show detailed build information")

	return cmd
}
