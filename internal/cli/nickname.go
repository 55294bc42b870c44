package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/types"
)

func newNicknameCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nickname",
		Short: "Read or change the nickname shared by all people",
	}
	cmd.AddCommand(newNicknameGetCmd(a), newNicknameSetCmd(a))
	return cmd
}

func newNicknameGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the shared nickname",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Attach restores the persisted nickname.
			backend, err := a.attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			nickname := types.SharedNickname()
			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), types.Setting{Key: types.SettingNickname, Value: nickname})
			}
			fmt.Fprintln(cmd.OutOrStdout(), nickname)
			return nil
		},
	}
}

func newNicknameSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <nickname>",
		Short: "Change the shared nickname",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := a.attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			tbl, err := table(backend, types.TableSettings)
			if err != nil {
				return err
			}
			if _, err := tbl.Set(types.SettingNickname, &types.Setting{Value: args[0]}); err != nil {
				return entityError("set nickname", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Shared nickname set to %q\n", types.SharedNickname())
			return nil
		},
	}
}
