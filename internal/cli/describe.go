package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// describeJSON is the --json output of describe.
type describeJSON struct {
	PersonID    string `json:"person_id"`
	Description string `json:"description"`
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <person-id>",
		Short: "Print a person's greeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := a.attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			tbl, err := table(backend, types.TablePeople)
			if err != nil {
				return err
			}
			entity, err := tbl.Get(args[0])
			if err != nil {
				return entityError("get person", err)
			}
			p, ok := entity.(*types.Person)
			if !ok {
				return sysError(fmt.Errorf("unexpected entity type %T", entity))
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), describeJSON{
					PersonID:    p.PersonID,
					Description: p.Describe(),
				})
			}
			p.SaySomething(cmd.OutOrStdout())
			return nil
		},
	}
}
