package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path <instance-id>",
		Short: "Print the settings file path of an instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(flags)
			if err != nil {
				return err
			}
			defer e.log.Close()

			fmt.Fprintln(cmd.OutOrStdout(), e.dir.DocumentPath(args[0]))
			return nil
		},
	}
}
