package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newIDArg asks set to generate a new ID.
const newIDArg = "-"

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <table> <id|-> <json>",
		Short: "Create or update an entity in a table",
		Long: `Set creates or updates an entity. Pass "-" as the ID to create a new
entity with a generated ID.

Example:
  roster set people - '{"name":"Alice","age":30,"hobby":"chess"}'`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tableName, id, payload := args[0], args[1], args[2]
			if id == newIDArg {
				id = ""
			}

			backend, err := a.attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			tbl, err := table(backend, tableName)
			if err != nil {
				return err
			}
			entity, err := parseEntityJSON(tableName, []byte(payload))
			if err != nil {
				return userError(fmt.Errorf("parse JSON: %w", err))
			}
			savedID, err := tbl.Set(id, entity)
			if err != nil {
				return entityError("set entity", err)
			}
			result, err := tbl.Get(savedID)
			if err != nil {
				return entityError("get saved entity", err)
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
}
