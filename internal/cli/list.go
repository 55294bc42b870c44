package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/types"
)

type listFlags struct {
	name   string
	hobby  string
	minAge int
	maxAge int
}

func newListCmd(a *app) *cobra.Command {
	var lf listFlags

	cmd := &cobra.Command{
		Use:   "list <table>",
		Short: "List entities in a table",
		Long: `List prints every entity in the table that matches the filter flags,
ordered by name. Settings are ordered by key and take no filters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := map[string]any{}
			if cmd.Flags().Changed("name") {
				filter[types.FilterName] = lf.name
			}
			if cmd.Flags().Changed("hobby") {
				filter[types.FilterHobby] = lf.hobby
			}
			if cmd.Flags().Changed("min-age") {
				filter[types.FilterMinAge] = lf.minAge
			}
			if cmd.Flags().Changed("max-age") {
				filter[types.FilterMaxAge] = lf.maxAge
			}

			backend, err := a.attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			tbl, err := table(backend, args[0])
			if err != nil {
				return err
			}
			results, err := tbl.Fetch(filter)
			if err != nil {
				return entityError("list entities", err)
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			for _, r := range results {
				writeRow(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lf.name, "name", "", "match name exactly")
	cmd.Flags().StringVar(&lf.hobby, "hobby", "", "match hobby exactly (people only)")
	cmd.Flags().IntVar(&lf.minAge, "min-age", 0, "minimum age, inclusive")
	cmd.Flags().IntVar(&lf.maxAge, "max-age", 0, "maximum age, inclusive")
	return cmd
}

// writeRow prints one entity as a tab-separated line.
func writeRow(w io.Writer, entity any) {
	switch e := entity.(type) {
	case *types.Person:
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", e.PersonID, e.Name, e.Age, e.Hobby)
	case *types.SimplePerson:
		fmt.Fprintf(w, "%s\t%s\t%d\n", e.SimplePersonID, e.Name, e.Age)
	case *types.Setting:
		fmt.Fprintf(w, "%s\t%s\n", e.Key, e.Value)
	}
}
