package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newLocationCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "location",
		Args:  cobra.NoArgs,
		Short: "Manage post locations",
	}

	var (
		name        string
		unpublished bool
	)

	add := &cobra.Command{
		Use:   "add",
		Short: "Create a location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bm, closeFn, err := rt.manager(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			location, err := bm.CreateLocation(cmd.Context(), time.Now(), name, !unpublished)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "location %q created with id %d\n", location.Name, location.ID)
			return nil
		},
	}

	add.Flags().StringVarP(&name, "name", "n", "", "location name")
	add.Flags().BoolVar(&unpublished, "unpublished", false, "create the location hidden")
	_ = add.MarkFlagRequired("name")

	cmd.AddCommand(add)
	return cmd
}
