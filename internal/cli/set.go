package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billie-coop/winprefs/internal/settings"
)

func newSetCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "set <instance-id> <key> <value>",
		Short: "Change one setting and save immediately",
		Long: `Validates value for key and writes it to the instance's settings file.

Choices take their label or numeric code (group-windows smart, group-windows 2),
toggles take true/false or on/off, durations take milliseconds in [0, 5000].`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, key, raw := args[0], args[1], args[2]

			field, ok := settings.LookupField(key)
			if !ok {
				return fmt.Errorf("%w: %s", settings.ErrUnknownKey, key)
			}
			value, err := field.Parse(raw)
			if err != nil {
				return err
			}

			e, err := setup(flags)
			if err != nil {
				return err
			}
			defer e.log.Close()

			store, err := e.openStore(id)
			if err != nil {
				return err
			}
			defer store.Close()

			if _, ok := store.Get(key); !ok {
				return fmt.Errorf("%s is not present in %s", key, store.Path())
			}
			if err := store.SetEntry(key, value, true); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, field.Format(value))
			return nil
		},
	}
}
