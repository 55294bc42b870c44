package cli

import (
	"github.com/spf13/cobra"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <table> <id>",
		Short: "Get an entity by ID",
		Long: `Get retrieves an entity from the specified table by its ID.

Valid table names: people, simple_people, settings

Example:
  roster get people 0190d7e2-...
  roster get settings nickname`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := a.attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			tbl, err := table(backend, args[0])
			if err != nil {
				return err
			}
			entity, err := tbl.Get(args[1])
			if err != nil {
				return entityError("get entity", err)
			}
			return writeJSON(cmd.OutOrStdout(), entity)
		},
	}
}
